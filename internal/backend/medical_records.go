package backend

import (
	"context"
	"net/url"
	"strconv"

	"github.com/clinicore/admin-dashboard/internal/model"
)

// ListMedicalRecords returns every medical record visible to the
// credential.
func (c *Client) ListMedicalRecords(ctx context.Context, cred model.Credential) []model.MedicalRecord {
	out := []model.MedicalRecord{}
	c.list(ctx, cred, "/medical-records", &out)
	return out
}

// CreateMedicalRecord creates a medical record.  The backend expects
// patientId and doctorId both inside the JSON body and repeated as
// query parameters; the duplication is part of its contract.
func (c *Client) CreateMedicalRecord(ctx context.Context, cred model.Credential, rec model.MedicalRecord) (model.MedicalRecord, error) {
	q := url.Values{}
	q.Set("patientId", strconv.FormatInt(rec.PatientID, 10))
	q.Set("doctorId", strconv.FormatInt(rec.DoctorID, 10))
	var out model.MedicalRecord
	err := c.create(ctx, cred, "/medical-records", q, rec, &out, "Failed to create medical record")
	return out, err
}
