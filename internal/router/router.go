package router // package router defines how HTTP routes are registered for the dashboard

import (
	"github.com/labstack/echo/v4"

	"github.com/clinicore/admin-dashboard/internal/handler"
	"github.com/clinicore/admin-dashboard/internal/middleware"
	"github.com/clinicore/admin-dashboard/internal/session"
)

// Register wires every route on the provided Echo instance.  The
// login view and health check are public; everything else requires a
// resolved session and redirects to /login without one.
func Register(e *echo.Echo, h *handler.Handler, sessions session.Store, sessionSecret string) {
	// Public routes.  The health check lets load balancers verify the
	// process; the login pair is the only way to mint a session.
	e.GET("/healthz", handler.Health)
	e.GET("/login", h.ShowLogin)
	e.POST("/login", h.Login)

	// Every protected route runs the session middleware first so no
	// backend call can ever be attempted without a credential.
	auth := e.Group("", middleware.RequireSession(sessionSecret, sessions))
	auth.GET("/", h.Home)
	auth.GET("/dashboard", h.Dashboard)
	auth.GET("/logout", h.Logout)

	auth.POST("/appointments", h.CreateAppointment)
	auth.POST("/appointments/:id/delete", h.DeleteAppointment)

	auth.POST("/medical-records", h.CreateMedicalRecord)
	auth.POST("/medical-records/:id/delete", h.DeleteMedicalRecord)

	auth.POST("/users", h.CreateUser)
	auth.POST("/users/:id/edit", h.EditUser)
	auth.POST("/users/:id/delete", h.DeleteUser)
}
