package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/clinicore/admin-dashboard/internal/middleware"
	"github.com/clinicore/admin-dashboard/internal/view"
)

// Dashboard renders the requested section with freshly fetched data.
// Navigation is the section switcher: each link reloads only its own
// section's collection, and abandoning the page cancels the request
// context, which cancels any in-flight backend fetch with it.
func (h *Handler) Dashboard(c echo.Context) error {
	cred := middleware.CredentialFrom(c)
	ctx := c.Request().Context()

	section := c.QueryParam("section")
	switch section {
	case "appointments", "medical-records", "users", "audit-logs", "overview":
	default:
		section = "overview"
	}

	d := view.DashboardData{
		Username: cred.Username,
		Section:  section,
		Notices:  h.notices(c),
	}

	switch section {
	case "overview":
		d.Stats = []view.Stat{
			{Label: "Total Appointments", Value: len(h.Backend.ListAppointments(ctx, cred))},
			{Label: "Total Users", Value: len(h.Backend.ListUsers(ctx, cred))},
		}
	case "appointments":
		if pf := c.QueryParam("patient"); pf != "" {
			if pid, err := strconv.ParseInt(pf, 10, 64); err == nil {
				d.PatientFilter = pf
				d.Rows = view.AppointmentRows(h.Backend.ListAppointmentsByPatient(ctx, cred, pid))
				break
			}
		}
		d.Rows = view.AppointmentRows(h.Backend.ListAppointments(ctx, cred))
	case "medical-records":
		d.Rows = view.MedicalRecordRows(h.Backend.ListMedicalRecords(ctx, cred))
	case "users":
		d.Rows = view.UserRows(h.Backend.ListUsers(ctx, cred))
	case "audit-logs":
		d.Rows = view.AuditLogRows(h.Backend.ListAuditLogs(ctx, cred))
	}

	html, err := view.Dashboard(d)
	if err != nil {
		return err
	}
	return c.HTML(http.StatusOK, html)
}

// Home redirects the bare root to the dashboard; the auth middleware
// bounces it on to /login when no session exists.
func (h *Handler) Home(c echo.Context) error {
	return c.Redirect(http.StatusSeeOther, "/dashboard")
}
