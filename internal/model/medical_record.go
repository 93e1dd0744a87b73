package model

// MedicalRecord is a medical record entry as returned by the clinical
// backend.  Diagnosis may be absent; the view layer substitutes "N/A"
// when it is empty.
//
// Fields:
//  RecordID   – backend identifier of the record.
//  PatientID  – numeric patient identifier.
//  DoctorID   – numeric doctor identifier.
//  Diagnosis  – diagnosis text, optional.
//  RecordType – free-form record type label.
type MedicalRecord struct {
	RecordID   int64  `json:"recordId"`
	PatientID  int64  `json:"patientId"`
	DoctorID   int64  `json:"doctorId"`
	Diagnosis  string `json:"diagnosis,omitempty"`
	RecordType string `json:"recordType"`
}
