package backend

import (
	"context"

	"github.com/clinicore/admin-dashboard/internal/model"
)

// ListUsers returns every account visible to the credential.
func (c *Client) ListUsers(ctx context.Context, cred model.Credential) []model.User {
	out := []model.User{}
	c.list(ctx, cred, "/users", &out)
	return out
}

// CreateUser creates a backend account and returns the stored record.
func (c *Client) CreateUser(ctx context.Context, cred model.Credential, u model.NewUser) (model.User, error) {
	var out model.User
	err := c.create(ctx, cred, "/users", nil, u, &out, "Failed to create user")
	return out, err
}
