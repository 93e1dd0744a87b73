package view

import (
	"strings"
	"testing"

	"github.com/clinicore/admin-dashboard/internal/model"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "N/A"},
		{"2026-03-01T10:30:00", "Mar 1, 2026 10:30:00"},
		{"2026-03-01T10:30:00Z", "Mar 1, 2026 10:30:00"},
		{"not-a-date", "not-a-date"},
	}
	for _, tt := range tests {
		if got := FormatDate(tt.in); got != tt.want {
			t.Errorf("FormatDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// An empty collection renders exactly one full-width row, never an
// empty table body.
func TestEmptyCollectionsRenderSingleRow(t *testing.T) {
	tests := []struct {
		name    string
		html    string
		colspan string
		text    string
	}{
		{"appointments", string(AppointmentRows(nil)), `colspan="7"`, "No appointments found"},
		{"records", string(MedicalRecordRows(nil)), `colspan="6"`, "No medical records found"},
		{"users", string(UserRows(nil)), `colspan="5"`, "No users found"},
		{"audit", string(AuditLogRows(nil)), `colspan="6"`, "No audit logs found"},
	}
	for _, tt := range tests {
		if n := strings.Count(tt.html, "<tr>"); n != 1 {
			t.Errorf("%s: %d rows, want exactly 1", tt.name, n)
		}
		if !strings.Contains(tt.html, tt.colspan) {
			t.Errorf("%s: missing %s in %q", tt.name, tt.colspan, tt.html)
		}
		if !strings.Contains(tt.html, tt.text) {
			t.Errorf("%s: missing %q in %q", tt.name, tt.text, tt.html)
		}
	}
}

func TestAppointmentRows(t *testing.T) {
	html := string(AppointmentRows([]model.Appointment{
		{AppointmentID: 1, PatientID: 2, DoctorID: 3, AppointmentType: "CONSULTATION",
			AppointmentDate: "2026-03-01T10:30:00", Status: "SCHEDULED"},
	}))

	// The status drives a lower-cased CSS class while the label keeps
	// the backend's casing.
	if !strings.Contains(html, `class="status-badge scheduled"`) {
		t.Errorf("missing lower-cased status class in %q", html)
	}
	if !strings.Contains(html, ">SCHEDULED<") {
		t.Errorf("missing status label in %q", html)
	}
	if !strings.Contains(html, "Mar 1, 2026 10:30:00") {
		t.Errorf("missing formatted date in %q", html)
	}
	if !strings.Contains(html, "/appointments/1/delete") {
		t.Errorf("missing delete action in %q", html)
	}
	if !strings.Contains(html, "confirm(") {
		t.Errorf("delete form without confirmation guard in %q", html)
	}
}

func TestMedicalRecordRowsDiagnosisFallback(t *testing.T) {
	html := string(MedicalRecordRows([]model.MedicalRecord{
		{RecordID: 1, PatientID: 2, DoctorID: 3, RecordType: "NOTE"},
	}))
	if !strings.Contains(html, "N/A") {
		t.Errorf("missing N/A for absent diagnosis in %q", html)
	}
}

func TestUserRowsEmailFallback(t *testing.T) {
	html := string(UserRows([]model.User{
		{ID: 1, Username: "alice", Role: "ADMIN"},
	}))
	if !strings.Contains(html, "N/A") {
		t.Errorf("missing N/A for absent email in %q", html)
	}
	if !strings.Contains(html, `class="role-badge"`) {
		t.Errorf("missing role badge in %q", html)
	}
}

func TestAuditLogRows(t *testing.T) {
	html := string(AuditLogRows([]model.AuditLogEntry{
		{ID: 1, UserID: 2, Action: "DELETE", ResourceType: "APPOINTMENT", ResourceID: "42",
			Timestamp: "2026-03-01T10:30:00"},
	}))
	for _, want := range []string{">DELETE<", ">APPOINTMENT<", ">42<", "Mar 1, 2026 10:30:00"} {
		if !strings.Contains(html, want) {
			t.Errorf("missing %q in %q", want, html)
		}
	}
	// Audit logs are read-only: no action buttons.
	if strings.Contains(html, "btn-delete") {
		t.Errorf("unexpected delete action in audit rows %q", html)
	}
}

func TestRowsEscapeHTML(t *testing.T) {
	html := string(AppointmentRows([]model.Appointment{
		{AppointmentID: 1, AppointmentType: "<script>alert(1)</script>", Status: "X"},
	}))
	if strings.Contains(html, "<script>") {
		t.Fatalf("unescaped markup in %q", html)
	}
}

func TestLoginPage(t *testing.T) {
	html, err := Login(LoginData{Error: "Invalid username or password"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !strings.Contains(html, "Invalid username or password") {
		t.Error("login page missing error message")
	}
	if !strings.Contains(html, `action="/login"`) {
		t.Error("login page missing form action")
	}
}

func TestDashboardPageSections(t *testing.T) {
	html, err := Dashboard(DashboardData{
		Username: "alice",
		Section:  "appointments",
		Notices:  []Notice{{Kind: "success", Message: "done"}, {Kind: "error", Message: "nope"}},
		Rows:     AppointmentRows(nil),
	})
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if !strings.Contains(html, "Welcome, alice") {
		t.Error("missing user display")
	}
	if !strings.Contains(html, "No appointments found") {
		t.Error("missing rendered rows")
	}
	// Notices stack as independent elements.
	if n := strings.Count(html, `class="notification `); n != 2 {
		t.Errorf("%d notifications, want 2", n)
	}
	// Only the active section's table is present.
	if strings.Contains(html, `id="usersTable"`) {
		t.Error("inactive section rendered")
	}
	if !strings.Contains(html, `id="appointmentsTable"`) {
		t.Error("active section not rendered")
	}
}
