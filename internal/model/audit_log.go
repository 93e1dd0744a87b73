package model

// AuditLogEntry is a read-only audit trail row from the clinical
// backend.  The dashboard only lists these; there are no mutation
// operations.
//
// Fields:
//  ID           – backend identifier of the entry.
//  UserID       – account that performed the action.
//  Action       – action name (e.g. CREATE, DELETE, LOGIN).
//  ResourceType – kind of resource the action touched.
//  ResourceID   – identifier of the touched resource.
//  Timestamp    – ISO-8601 time of the action.
type AuditLogEntry struct {
	ID           int64  `json:"id"`
	UserID       int64  `json:"userId"`
	Action       string `json:"action"`
	ResourceType string `json:"resourceType"`
	ResourceID   string `json:"resourceId"`
	Timestamp    string `json:"timestamp"`
}
