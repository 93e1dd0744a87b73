package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/clinicore/admin-dashboard/internal/middleware"
	"github.com/clinicore/admin-dashboard/internal/model"
)

// defaultDurationMin is used when the duration field is blank or not
// a positive number.
const defaultDurationMin = 30

// CreateAppointment gathers the modal form's fields, coerces the
// numeric ones, normalizes the date to second-precision ISO, and
// submits the appointment to the backend.  Success and failure both
// land back on the appointments section with a flash notice.
func (h *Handler) CreateAppointment(c echo.Context) error {
	cred := middleware.CredentialFrom(c)

	a := model.Appointment{
		PatientID:         formInt64(c, "patientId"),
		DoctorID:          formInt64(c, "doctorId"),
		AppointmentType:   c.FormValue("appointmentType"),
		AppointmentDate:   normalizeDateTime(c.FormValue("appointmentDate")),
		ScheduledDuration: durationOrDefault(c.FormValue("scheduledDuration")),
		Reason:            c.FormValue("reason"),
		Notes:             c.FormValue("notes"),
	}

	created, err := h.Backend.CreateAppointment(c.Request().Context(), cred, a)
	if err != nil {
		h.flash(c, "error", "Error creating appointment: "+err.Error())
		return c.Redirect(http.StatusSeeOther, "/dashboard?section=appointments")
	}
	h.flash(c, "success", "Appointment created successfully!")
	h.publishAction(c, "CREATE", "APPOINTMENT", strconv.FormatInt(created.AppointmentID, 10))
	return c.Redirect(http.StatusSeeOther, "/dashboard?section=appointments")
}

// DeleteAppointment issues exactly one DELETE for the given ID.  The
// confirmation dialog lives in the page, so a declined confirm never
// produces a request.  On success the redirect reloads the list; on
// failure only the notice is shown.
func (h *Handler) DeleteAppointment(c echo.Context) error {
	cred := middleware.CredentialFrom(c)
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.flash(c, "error", "Error deleting appointment")
		return c.Redirect(http.StatusSeeOther, "/dashboard?section=appointments")
	}
	if h.Backend.DeleteAppointment(c.Request().Context(), cred, id) {
		h.flash(c, "success", "Appointment deleted successfully!")
		h.publishAction(c, "DELETE", "APPOINTMENT", c.Param("id"))
	} else {
		h.flash(c, "error", "Error deleting appointment")
	}
	return c.Redirect(http.StatusSeeOther, "/dashboard?section=appointments")
}

// formInt64 coerces a numeric form field, zero when absent or
// malformed; the backend rejects what it cannot use.
func formInt64(c echo.Context, field string) int64 {
	n, _ := strconv.ParseInt(c.FormValue(field), 10, 64)
	return n
}

// durationOrDefault parses the duration field, substituting the
// default when it is blank, malformed, or not positive.
func durationOrDefault(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return defaultDurationMin
	}
	return n
}

// normalizeDateTime converts the datetime-local form value
// (minute precision) to the second-precision ISO form the backend
// expects on create.  Anything unparsable passes through verbatim.
func normalizeDateTime(s string) string {
	for _, layout := range []string{"2006-01-02T15:04", "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02T15:04:05")
		}
	}
	return s
}
