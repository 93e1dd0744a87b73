// Package handler implements the dashboard's HTTP handlers.  Every
// handler translates a navigational request or form submission into
// backend API calls and re-renders the affected section; all state
// beyond the session credential lives on the backend.
package handler

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/clinicore/admin-dashboard/internal/backend"
	"github.com/clinicore/admin-dashboard/internal/config"
	"github.com/clinicore/admin-dashboard/internal/middleware"
	"github.com/clinicore/admin-dashboard/internal/queue"
	queue_publisher "github.com/clinicore/admin-dashboard/internal/service"
	"github.com/clinicore/admin-dashboard/internal/session"
	"github.com/clinicore/admin-dashboard/internal/view"
)

// Handler bundles the dependencies shared by all dashboard endpoints.
type Handler struct {
	Cfg      config.Config
	Backend  *backend.Client
	Sessions session.Store
}

// New constructs a Handler.
func New(cfg config.Config, b *backend.Client, s session.Store) *Handler {
	return &Handler{Cfg: cfg, Backend: b, Sessions: s}
}

// flash queues a transient notice for the next rendered page.  A
// failed push only costs the user a notification, so it is logged and
// dropped.
func (h *Handler) flash(c echo.Context, kind, message string) {
	sid := middleware.SessionIDFrom(c)
	if sid == "" {
		return
	}
	if err := h.Sessions.PushFlash(c.Request().Context(), sid, session.Flash{Kind: kind, Message: message}); err != nil {
		log.Printf("handler: push flash: %v", err)
	}
}

// notices drains the session's queued flashes for rendering.
func (h *Handler) notices(c echo.Context) []view.Notice {
	sid := middleware.SessionIDFrom(c)
	if sid == "" {
		return nil
	}
	flashes, err := h.Sessions.PopFlashes(c.Request().Context(), sid)
	if err != nil {
		log.Printf("handler: pop flashes: %v", err)
		return nil
	}
	out := make([]view.Notice, 0, len(flashes))
	for _, f := range flashes {
		out = append(out, view.Notice{Kind: f.Kind, Message: f.Message})
	}
	return out
}

// publishAction emits an action event to the broker.  Failures are
// already logged by the publisher and never surface to the user.
func (h *Handler) publishAction(c echo.Context, action, resourceType, resourceID string) {
	ev := queue.ActionEvent{
		Username:     middleware.CredentialFrom(c).Username,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		OccurredAt:   time.Now().UTC().Format(time.RFC3339),
	}
	_ = queue_publisher.PublishAction(c.Request().Context(), h.Cfg.AMQPURL, ev)
}
