package view

// tables.go maps resource collections to table-body markup.  The
// renderers are pure — data in, HTML out — so they are testable
// without a live page.  An empty collection renders exactly one
// full-width "no data" row instead of an empty table body.

import (
	"bytes"
	"html/template"
	"log"
	"strings"

	"github.com/clinicore/admin-dashboard/internal/model"
)

var tableFuncs = template.FuncMap{
	"formatDate": FormatDate,
	"orNA":       orNA,
	"lower":      strings.ToLower,
}

var appointmentRowsTmpl = template.Must(template.New("appointmentRows").Funcs(tableFuncs).Parse(`{{range .}}<tr>
<td>{{.AppointmentID}}</td>
<td>{{.PatientID}}</td>
<td>{{.DoctorID}}</td>
<td>{{.AppointmentType}}</td>
<td>{{formatDate .AppointmentDate}}</td>
<td><span class="status-badge {{lower .Status}}">{{.Status}}</span></td>
<td><div class="action-buttons">
<form method="POST" action="/appointments/{{.AppointmentID}}/delete" onsubmit="return confirm('Are you sure you want to delete this appointment?')"><button class="btn-delete" type="submit">Delete</button></form>
</div></td>
</tr>
{{end}}`))

var recordRowsTmpl = template.Must(template.New("recordRows").Funcs(tableFuncs).Parse(`{{range .}}<tr>
<td>{{.RecordID}}</td>
<td>{{.PatientID}}</td>
<td>{{.DoctorID}}</td>
<td>{{orNA .Diagnosis}}</td>
<td>{{.RecordType}}</td>
<td><div class="action-buttons">
<form method="POST" action="/medical-records/{{.RecordID}}/delete" onsubmit="return confirm('Are you sure you want to delete this record?')"><button class="btn-delete" type="submit">Delete</button></form>
</div></td>
</tr>
{{end}}`))

var userRowsTmpl = template.Must(template.New("userRows").Funcs(tableFuncs).Parse(`{{range .}}<tr>
<td>{{.ID}}</td>
<td>{{.Username}}</td>
<td>{{orNA .Email}}</td>
<td><span class="role-badge">{{.Role}}</span></td>
<td><div class="action-buttons">
<form method="POST" action="/users/{{.ID}}/edit"><button class="btn-edit" type="submit">Edit</button></form>
<form method="POST" action="/users/{{.ID}}/delete" onsubmit="return confirm('Are you sure you want to delete this user?')"><button class="btn-delete" type="submit">Delete</button></form>
</div></td>
</tr>
{{end}}`))

var auditRowsTmpl = template.Must(template.New("auditRows").Funcs(tableFuncs).Parse(`{{range .}}<tr>
<td>{{.ID}}</td>
<td>{{.UserID}}</td>
<td>{{.Action}}</td>
<td>{{.ResourceType}}</td>
<td>{{.ResourceID}}</td>
<td>{{formatDate .Timestamp}}</td>
</tr>
{{end}}`))

// AppointmentRows renders the appointments table body (7 columns).
func AppointmentRows(list []model.Appointment) template.HTML {
	if len(list) == 0 {
		return `<tr><td colspan="7" class="center">No appointments found</td></tr>`
	}
	return execRows(appointmentRowsTmpl, list)
}

// MedicalRecordRows renders the medical-records table body (6 columns).
func MedicalRecordRows(list []model.MedicalRecord) template.HTML {
	if len(list) == 0 {
		return `<tr><td colspan="6" class="center">No medical records found</td></tr>`
	}
	return execRows(recordRowsTmpl, list)
}

// UserRows renders the users table body (5 columns).
func UserRows(list []model.User) template.HTML {
	if len(list) == 0 {
		return `<tr><td colspan="5" class="center">No users found</td></tr>`
	}
	return execRows(userRowsTmpl, list)
}

// AuditLogRows renders the audit-log table body (6 columns).
func AuditLogRows(list []model.AuditLogEntry) template.HTML {
	if len(list) == 0 {
		return `<tr><td colspan="6" class="center">No audit logs found</td></tr>`
	}
	return execRows(auditRowsTmpl, list)
}

func execRows(t *template.Template, data any) template.HTML {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		// Cannot happen with the static templates above; log and
		// render nothing rather than panic mid-page.
		log.Printf("view: render %s: %v", t.Name(), err)
		return ""
	}
	return template.HTML(buf.String())
}
