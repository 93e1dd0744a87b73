package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/clinicore/admin-dashboard/internal/middleware"
	"github.com/clinicore/admin-dashboard/internal/model"
)

// CreateMedicalRecord submits the record modal's fields to the
// backend.
func (h *Handler) CreateMedicalRecord(c echo.Context) error {
	cred := middleware.CredentialFrom(c)

	rec := model.MedicalRecord{
		PatientID:  formInt64(c, "patientId"),
		DoctorID:   formInt64(c, "doctorId"),
		Diagnosis:  c.FormValue("diagnosis"),
		RecordType: c.FormValue("recordType"),
	}

	created, err := h.Backend.CreateMedicalRecord(c.Request().Context(), cred, rec)
	if err != nil {
		h.flash(c, "error", "Error creating medical record: "+err.Error())
		return c.Redirect(http.StatusSeeOther, "/dashboard?section=medical-records")
	}
	h.flash(c, "success", "Medical record created successfully!")
	h.publishAction(c, "CREATE", "MEDICAL_RECORD", strconv.FormatInt(created.RecordID, 10))
	return c.Redirect(http.StatusSeeOther, "/dashboard?section=medical-records")
}

// DeleteMedicalRecord is a deliberate stub: the backend exposes no
// delete endpoint for medical records, so the button acknowledges the
// action without issuing any call.
func (h *Handler) DeleteMedicalRecord(c echo.Context) error {
	h.flash(c, "error", "Deleting medical records is not available yet")
	return c.Redirect(http.StatusSeeOther, "/dashboard?section=medical-records")
}
