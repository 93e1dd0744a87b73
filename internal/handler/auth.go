package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/clinicore/admin-dashboard/internal/auth"
	"github.com/clinicore/admin-dashboard/internal/middleware"
	"github.com/clinicore/admin-dashboard/internal/model"
	"github.com/clinicore/admin-dashboard/internal/view"
)

// ShowLogin renders the login page.
func (h *Handler) ShowLogin(c echo.Context) error {
	html, err := view.Login(view.LoginData{})
	if err != nil {
		return err
	}
	return c.HTML(http.StatusOK, html)
}

// Login validates the submitted username and password against the
// backend's check-username probe.  On success the encoded credential
// is stored server-side and a signed session cookie is issued; the
// cookie carries no expiry so the browser drops it when the session
// ends, matching the credential's session-scoped lifetime.  The
// plaintext password is discarded as soon as the credential is
// encoded.
func (h *Handler) Login(c echo.Context) error {
	username := strings.TrimSpace(c.FormValue("username"))
	password := c.FormValue("password")
	if username == "" || password == "" {
		return h.loginError(c, "Invalid username or password")
	}

	ok, err := h.Backend.CheckUsername(c.Request().Context(), username, password)
	if err != nil {
		return h.loginError(c, "Connection error. Please try again.")
	}
	if !ok {
		return h.loginError(c, "Invalid username or password")
	}

	cred := model.NewCredential(username, password)
	sid, err := h.Sessions.Create(c.Request().Context(), cred)
	if err != nil {
		return h.loginError(c, "Connection error. Please try again.")
	}
	ttl := time.Duration(h.Cfg.SessionTTLMin) * time.Minute
	token, err := auth.NewSessionToken(h.Cfg.SessionSecret, sid, ttl)
	if err != nil {
		return h.loginError(c, "Connection error. Please try again.")
	}
	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

// Logout clears the server-side session and the cookie together, then
// sends the user back to the login view.
func (h *Handler) Logout(c echo.Context) error {
	if sid := middleware.SessionIDFrom(c); sid != "" {
		_ = h.Sessions.Delete(c.Request().Context(), sid)
	}
	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return c.Redirect(http.StatusSeeOther, "/login")
}

func (h *Handler) loginError(c echo.Context, msg string) error {
	html, err := view.Login(view.LoginData{Error: msg})
	if err != nil {
		return err
	}
	return c.HTML(http.StatusUnauthorized, html)
}
