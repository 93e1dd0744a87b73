package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/clinicore/admin-dashboard/internal/middleware"
	"github.com/clinicore/admin-dashboard/internal/model"
)

// CreateUser submits the user modal's fields to the backend.
func (h *Handler) CreateUser(c echo.Context) error {
	cred := middleware.CredentialFrom(c)

	u := model.NewUser{
		Username: c.FormValue("username"),
		Password: c.FormValue("password"),
		Email:    c.FormValue("email"),
		Role:     c.FormValue("role"),
	}

	created, err := h.Backend.CreateUser(c.Request().Context(), cred, u)
	if err != nil {
		h.flash(c, "error", "Error creating user: "+err.Error())
		return c.Redirect(http.StatusSeeOther, "/dashboard?section=users")
	}
	h.flash(c, "success", "User created successfully!")
	h.publishAction(c, "CREATE", "USER", strconv.FormatInt(created.ID, 10))
	return c.Redirect(http.StatusSeeOther, "/dashboard?section=users")
}

// EditUser is a deliberate stub: the backend exposes no user update
// endpoint.  The button stays in the table so the gap is visible
// rather than silently dropped.
func (h *Handler) EditUser(c echo.Context) error {
	h.flash(c, "error", "Editing users is not available yet")
	return c.Redirect(http.StatusSeeOther, "/dashboard?section=users")
}

// DeleteUser is a deliberate stub for the same reason as EditUser.
func (h *Handler) DeleteUser(c echo.Context) error {
	h.flash(c, "error", "Deleting users is not available yet")
	return c.Redirect(http.StatusSeeOther, "/dashboard?section=users")
}
