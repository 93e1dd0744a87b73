package backend

import (
	"context"

	"github.com/clinicore/admin-dashboard/internal/model"
)

// ListAuditLogs returns the backend audit trail.  Audit logs are
// read-only; there are no create or delete operations.
func (c *Client) ListAuditLogs(ctx context.Context, cred model.Credential) []model.AuditLogEntry {
	out := []model.AuditLogEntry{}
	c.list(ctx, cred, "/audit-logs", &out)
	return out
}
