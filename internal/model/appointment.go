// Package model defines the records exchanged with the clinical
// backend and the session credential.  The backend owns every shape
// here: the dashboard decodes, displays, and re-encodes without
// validating or transforming.
package model

// Appointment is an appointment record as returned by the clinical
// backend.  The json tags mirror the backend's camelCase field names
// exactly.
//
// Fields:
//  AppointmentID     – backend identifier of the appointment.
//  PatientID         – numeric patient identifier.
//  DoctorID          – numeric doctor identifier.
//  AppointmentType   – free-form type label (e.g. CONSULTATION).
//  AppointmentDate   – ISO-8601 date-time, second precision on create.
//  ScheduledDuration – planned duration in minutes.
//  Status            – backend status; lower-cased to pick a badge style.
//  Reason            – visit reason entered on creation.
//  Notes             – free-form notes entered on creation.
type Appointment struct {
	AppointmentID     int64  `json:"appointmentId"`
	PatientID         int64  `json:"patientId"`
	DoctorID          int64  `json:"doctorId"`
	AppointmentType   string `json:"appointmentType"`
	AppointmentDate   string `json:"appointmentDate"`
	ScheduledDuration int    `json:"scheduledDuration"`
	Status            string `json:"status"`
	Reason            string `json:"reason,omitempty"`
	Notes             string `json:"notes,omitempty"`
}
