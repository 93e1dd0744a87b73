package main // Entry point package

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/clinicore/admin-dashboard/internal/backend"
	"github.com/clinicore/admin-dashboard/internal/config"
	"github.com/clinicore/admin-dashboard/internal/handler"
	"github.com/clinicore/admin-dashboard/internal/router"
	"github.com/clinicore/admin-dashboard/internal/session"
)

func main() {
	cfg := config.Load()

	ttl := time.Duration(cfg.SessionTTLMin) * time.Minute
	var sessions session.Store
	if rdb := config.NewRedisClient(); rdb != nil {
		sessions = session.NewRedisStore(rdb, ttl)
	} else {
		// Sessions survive only as long as the process, which is
		// acceptable for a credential that is session-scoped anyway.
		log.Printf("redis unavailable, using in-memory session store")
		sessions = session.NewMemoryStore(ttl)
	}

	client := backend.New(cfg.BackendBaseURL, time.Duration(cfg.HTTPTimeoutSec)*time.Second)
	h := handler.New(cfg, client, sessions)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	router.Register(e, h, sessions, cfg.SessionSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, backend=%s)", addr, cfg.Env, cfg.BackendBaseURL)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
