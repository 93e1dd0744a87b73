package middleware // contains reusable HTTP middleware functions

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clinicore/admin-dashboard/internal/auth"
	"github.com/clinicore/admin-dashboard/internal/model"
	"github.com/clinicore/admin-dashboard/internal/session"
)

// CookieName is the session cookie set on login and cleared on logout.
const CookieName = "clinic_session"

// Context keys under which the middleware publishes the resolved
// session for handlers.
const (
	SessionIDKey  = "session_id"
	CredentialKey = "credential"
)

// RequireSession returns middleware that resolves the session cookie
// into a stored credential before any protected handler runs.  A
// missing, tampered, or expired session is never an in-page error:
// the request is redirected to the login view and no backend call is
// issued.  Handlers read the credential from the context and pass it
// explicitly into every backend operation.
func RequireSession(secret string, store session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				return c.Redirect(http.StatusSeeOther, "/login")
			}
			sid, err := auth.ParseSessionToken(secret, cookie.Value)
			if err != nil {
				return c.Redirect(http.StatusSeeOther, "/login")
			}
			data, err := store.Get(c.Request().Context(), sid)
			if err != nil {
				// Covers both an expired session and a store outage;
				// either way the credential is unavailable and the
				// only safe answer is a fresh login.
				return c.Redirect(http.StatusSeeOther, "/login")
			}
			c.Set(SessionIDKey, sid)
			c.Set(CredentialKey, data.Credential)
			return next(c)
		}
	}
}

// CredentialFrom extracts the credential the middleware stored in the
// context.  It returns the zero credential when the middleware did
// not run; backend operations fail closed on it.
func CredentialFrom(c echo.Context) model.Credential {
	if cred, ok := c.Get(CredentialKey).(model.Credential); ok {
		return cred
	}
	return model.Credential{}
}

// SessionIDFrom extracts the session ID the middleware stored in the
// context, or "" when the middleware did not run.
func SessionIDFrom(c echo.Context) string {
	if sid, ok := c.Get(SessionIDKey).(string); ok {
		return sid
	}
	return ""
}
