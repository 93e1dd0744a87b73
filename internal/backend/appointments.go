package backend

import (
	"context"
	"net/http"
	"strconv"

	"github.com/clinicore/admin-dashboard/internal/model"
)

// ListAppointments returns every appointment visible to the
// credential.  A 403 is deliberately treated like an empty list
// rather than an authorization failure; the backend answers 403 both
// for "nothing to see" and "not allowed to see", and the dashboard
// has always shown an empty table for either.
func (c *Client) ListAppointments(ctx context.Context, cred model.Credential) []model.Appointment {
	out := []model.Appointment{}
	c.list(ctx, cred, "/appointments", &out, http.StatusForbidden)
	return out
}

// ListAppointmentsByPatient returns the appointments of a single patient.
func (c *Client) ListAppointmentsByPatient(ctx context.Context, cred model.Credential, patientID int64) []model.Appointment {
	out := []model.Appointment{}
	c.list(ctx, cred, "/appointments/patient/"+strconv.FormatInt(patientID, 10), &out)
	return out
}

// CreateAppointment creates an appointment and returns the record the
// backend stored.
func (c *Client) CreateAppointment(ctx context.Context, cred model.Credential, a model.Appointment) (model.Appointment, error) {
	var out model.Appointment
	err := c.create(ctx, cred, "/appointments", nil, a, &out, "Failed to create appointment")
	return out, err
}

// DeleteAppointment deletes an appointment by ID and reports bare
// success; the backend sends no body and no failure detail.
func (c *Client) DeleteAppointment(ctx context.Context, cred model.Credential, id int64) bool {
	return c.delete(ctx, cred, "/appointments/"+strconv.FormatInt(id, 10))
}
