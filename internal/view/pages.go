package view

// pages.go holds the full-page templates: the login screen and the
// dashboard shell.  The dashboard renders one active section per
// request — navigation links carry a section query parameter and the
// server fetches only that section's data.  Flash notices stack in a
// fixed corner container and dismiss themselves after three seconds.

import (
	"bytes"
	"html/template"
)

// Notice is a transient notification rendered at the top of the next
// page.  Kind is "success" or "error".
type Notice struct {
	Kind    string
	Message string
}

// Stat is one overview card.
type Stat struct {
	Label string
	Value int
}

// LoginData feeds the login page template.
type LoginData struct {
	Error string
}

// DashboardData feeds the dashboard template.  Exactly one section is
// active; Rows holds that section's pre-rendered table body.
type DashboardData struct {
	Username      string
	Section       string
	Notices       []Notice
	Stats         []Stat
	PatientFilter string
	Rows          template.HTML
}

const baseCSS = `<style>
*{box-sizing:border-box;margin:0;padding:0}
body{font-family:-apple-system,'Segoe UI',Roboto,sans-serif;background:#f5f6fa;color:#2d3436;line-height:1.6}
.hdr{background:#2c3e50;color:#fff;padding:14px 24px;display:flex;justify-content:space-between;align-items:center}
.hdr h1{font-size:18px;font-weight:600}
.hdr a{color:#dfe6e9;font-size:13px;text-decoration:none}
.nav{background:#fff;border-bottom:2px solid #e5e7eb;padding:0 16px;display:flex}
.nav a{padding:12px 18px;font-size:14px;color:#666;text-decoration:none;border-bottom:2px solid transparent;margin-bottom:-2px}
.nav a.active{color:#2980b9;border-bottom-color:#2980b9}
.content{max-width:1100px;margin:0 auto;padding:24px 16px}
.cards{display:grid;grid-template-columns:repeat(auto-fit,minmax(200px,1fr));gap:14px;margin-bottom:20px}
.card{background:#fff;border-radius:8px;padding:18px;box-shadow:0 1px 3px rgba(0,0,0,.1)}
.card .num{font-size:28px;font-weight:700;color:#2980b9}
.card .lbl{font-size:13px;color:#888}
.toolbar{display:flex;justify-content:space-between;align-items:center;margin-bottom:12px;gap:10px;flex-wrap:wrap}
table{width:100%;background:#fff;border-collapse:collapse;border-radius:8px;overflow:hidden;box-shadow:0 1px 3px rgba(0,0,0,.1)}
th{background:#34495e;color:#fff;text-align:left;font-size:12px;text-transform:uppercase;padding:10px 12px}
td{padding:10px 12px;border-bottom:1px solid #f0f0f0;font-size:14px}
td.center{text-align:center;color:#888}
.status-badge,.role-badge{display:inline-block;padding:2px 10px;border-radius:12px;font-size:12px;background:#ecf0f1}
.status-badge.scheduled{background:#dbeafe;color:#1e40af}
.status-badge.completed{background:#dcfce7;color:#166534}
.status-badge.cancelled{background:#fee2e2;color:#991b1b}
.btn{padding:8px 14px;border:none;border-radius:6px;cursor:pointer;font-size:13px;background:#2980b9;color:#fff}
.btn-delete{padding:4px 10px;border:1px solid #e74c3c;background:#fff;color:#e74c3c;border-radius:4px;cursor:pointer;font-size:12px}
.btn-edit{padding:4px 10px;border:1px solid #2980b9;background:#fff;color:#2980b9;border-radius:4px;cursor:pointer;font-size:12px}
.action-buttons{display:flex;gap:6px}
.modal{display:none;position:fixed;inset:0;background:rgba(0,0,0,.5);z-index:100}
.modal.show{display:flex;align-items:center;justify-content:center}
.modal-box{background:#fff;border-radius:8px;padding:22px;width:420px;max-height:90vh;overflow-y:auto}
.modal-box h2{font-size:16px;margin-bottom:14px}
.form-group{margin-bottom:12px}
.form-group label{display:block;font-size:13px;margin-bottom:4px;color:#555}
.form-group input,.form-group select,.form-group textarea{width:100%;padding:8px 10px;border:1px solid #ddd;border-radius:6px;font-size:14px}
.notifications{position:fixed;top:20px;right:20px;z-index:1000;display:flex;flex-direction:column;gap:8px}
.notification{padding:14px 18px;border-radius:5px;color:#fff;font-size:14px}
.notification.success{background:#27ae60}
.notification.error{background:#e74c3c}
.login-wrap{display:flex;align-items:center;justify-content:center;min-height:100vh}
.login-box{background:#fff;border-radius:8px;padding:28px;width:340px;box-shadow:0 2px 10px rgba(0,0,0,.15)}
.login-box h1{font-size:18px;margin-bottom:18px;text-align:center}
.login-error{color:#e74c3c;font-size:13px;margin-bottom:10px;display:none}
.login-error.show{display:block}
</style>`

const notifyScript = `<script>
document.querySelectorAll('.notification').forEach(function(n){
  setTimeout(function(){ n.remove(); }, 3000);
});
function openModal(id){document.getElementById(id).classList.add('show');}
function closeModal(id){document.getElementById(id).classList.remove('show');}
</script>`

var loginTmpl = template.Must(template.New("login").Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>Clinic Admin - Login</title>` + baseCSS + `</head>
<body>
<div class="login-wrap">
<div class="login-box">
<h1>Clinic Administration</h1>
<div id="loginError" class="login-error{{if .Error}} show{{end}}">{{.Error}}</div>
<form method="POST" action="/login">
<div class="form-group"><label for="username">Username</label><input id="username" name="username" required></div>
<div class="form-group"><label for="password">Password</label><input id="password" name="password" type="password" required></div>
<button class="btn" type="submit" style="width:100%">Sign In</button>
</form>
</div>
</div>
</body>
</html>`))

var dashboardTmpl = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>Clinic Admin - Dashboard</title>` + baseCSS + `</head>
<body>
<div class="notifications">{{range .Notices}}<div class="notification {{.Kind}}">{{.Message}}</div>{{end}}</div>
<header class="hdr">
<h1>Clinic Administration</h1>
<div><span id="userDisplay" style="font-size:13px;margin-right:14px">Welcome, {{.Username}}</span><a href="/logout">Logout</a></div>
</header>
<nav class="nav">
<a href="/dashboard?section=overview"{{if eq .Section "overview"}} class="active"{{end}}>Overview</a>
<a href="/dashboard?section=appointments"{{if eq .Section "appointments"}} class="active"{{end}}>Appointments</a>
<a href="/dashboard?section=medical-records"{{if eq .Section "medical-records"}} class="active"{{end}}>Medical Records</a>
<a href="/dashboard?section=users"{{if eq .Section "users"}} class="active"{{end}}>Users</a>
<a href="/dashboard?section=audit-logs"{{if eq .Section "audit-logs"}} class="active"{{end}}>Audit Logs</a>
</nav>
<main class="content">
{{if eq .Section "overview"}}
<div class="cards">
{{range .Stats}}<div class="card"><div class="num">{{.Value}}</div><div class="lbl">{{.Label}}</div></div>{{end}}
</div>
{{end}}

{{if eq .Section "appointments"}}
<div class="toolbar">
<form method="GET" action="/dashboard" style="display:flex;gap:6px">
<input type="hidden" name="section" value="appointments">
<input name="patient" placeholder="Filter by patient ID" value="{{.PatientFilter}}" style="padding:7px 10px;border:1px solid #ddd;border-radius:6px">
<button class="btn" type="submit">Filter</button>
</form>
<button class="btn" onclick="openModal('appointmentModal')">+ New Appointment</button>
</div>
<table>
<thead><tr><th>ID</th><th>Patient</th><th>Doctor</th><th>Type</th><th>Date</th><th>Status</th><th>Actions</th></tr></thead>
<tbody id="appointmentsTable">{{.Rows}}</tbody>
</table>
<div id="appointmentModal" class="modal">
<div class="modal-box">
<h2>New Appointment</h2>
<form id="appointmentForm" method="POST" action="/appointments">
<div class="form-group"><label for="patientId">Patient ID</label><input id="patientId" name="patientId" type="number" required></div>
<div class="form-group"><label for="doctorId">Doctor ID</label><input id="doctorId" name="doctorId" type="number" required></div>
<div class="form-group"><label for="appointmentType">Type</label>
<select id="appointmentType" name="appointmentType">
<option>CONSULTATION</option><option>FOLLOW_UP</option><option>CHECKUP</option><option>EMERGENCY</option>
</select></div>
<div class="form-group"><label for="appointmentDate">Date</label><input id="appointmentDate" name="appointmentDate" type="datetime-local" required></div>
<div class="form-group"><label for="scheduledDuration">Duration (minutes)</label><input id="scheduledDuration" name="scheduledDuration" type="number" placeholder="30"></div>
<div class="form-group"><label for="reason">Reason</label><input id="reason" name="reason"></div>
<div class="form-group"><label for="notes">Notes</label><textarea id="notes" name="notes" rows="2"></textarea></div>
<button class="btn" type="submit">Create</button>
<button class="btn" type="button" style="background:#95a5a6" onclick="closeModal('appointmentModal')">Cancel</button>
</form>
</div>
</div>
{{end}}

{{if eq .Section "medical-records"}}
<div class="toolbar">
<span></span>
<button class="btn" onclick="openModal('recordModal')">+ New Record</button>
</div>
<table>
<thead><tr><th>ID</th><th>Patient</th><th>Doctor</th><th>Diagnosis</th><th>Type</th><th>Actions</th></tr></thead>
<tbody id="recordsTable">{{.Rows}}</tbody>
</table>
<div id="recordModal" class="modal">
<div class="modal-box">
<h2>New Medical Record</h2>
<form method="POST" action="/medical-records">
<div class="form-group"><label for="recPatientId">Patient ID</label><input id="recPatientId" name="patientId" type="number" required></div>
<div class="form-group"><label for="recDoctorId">Doctor ID</label><input id="recDoctorId" name="doctorId" type="number" required></div>
<div class="form-group"><label for="diagnosis">Diagnosis</label><input id="diagnosis" name="diagnosis"></div>
<div class="form-group"><label for="recordType">Record Type</label>
<select id="recordType" name="recordType">
<option>DIAGNOSIS</option><option>PRESCRIPTION</option><option>LAB_RESULT</option><option>NOTE</option>
</select></div>
<button class="btn" type="submit">Create</button>
<button class="btn" type="button" style="background:#95a5a6" onclick="closeModal('recordModal')">Cancel</button>
</form>
</div>
</div>
{{end}}

{{if eq .Section "users"}}
<div class="toolbar">
<span></span>
<button class="btn" onclick="openModal('userModal')">+ New User</button>
</div>
<table>
<thead><tr><th>ID</th><th>Username</th><th>Email</th><th>Role</th><th>Actions</th></tr></thead>
<tbody id="usersTable">{{.Rows}}</tbody>
</table>
<div id="userModal" class="modal">
<div class="modal-box">
<h2>New User</h2>
<form method="POST" action="/users">
<div class="form-group"><label for="newUsername">Username</label><input id="newUsername" name="username" required></div>
<div class="form-group"><label for="newPassword">Password</label><input id="newPassword" name="password" type="password" required></div>
<div class="form-group"><label for="newEmail">Email</label><input id="newEmail" name="email" type="email"></div>
<div class="form-group"><label for="newRole">Role</label>
<select id="newRole" name="role"><option>ADMIN</option><option>DOCTOR</option><option>NURSE</option><option>RECEPTIONIST</option></select></div>
<button class="btn" type="submit">Create</button>
<button class="btn" type="button" style="background:#95a5a6" onclick="closeModal('userModal')">Cancel</button>
</form>
</div>
</div>
{{end}}

{{if eq .Section "audit-logs"}}
<table>
<thead><tr><th>ID</th><th>User</th><th>Action</th><th>Resource Type</th><th>Resource ID</th><th>Timestamp</th></tr></thead>
<tbody id="logsTable">{{.Rows}}</tbody>
</table>
{{end}}
</main>
` + notifyScript + `
</body>
</html>`))

// Login renders the login page.
func Login(d LoginData) (string, error) {
	return execPage(loginTmpl, d)
}

// Dashboard renders the dashboard shell with the active section.
func Dashboard(d DashboardData) (string, error) {
	return execPage(dashboardTmpl, d)
}

func execPage(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
