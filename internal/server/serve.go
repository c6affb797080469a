package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/luquetti/mis18/internal/shared"
	"github.com/luquetti/mis18/internal/store"
	"github.com/luquetti/mis18/internal/tasks"
)

// New assembles the full party API server: logging on every route, the
// guest handler, the long-poll event bridge, and the organizer stats
// endpoint behind the admin token.
func New(cfg *shared.Config, engine *tasks.PartyEngine, bus *store.Bus, logger *log.Logger) *http.Server {
	router := NewBasicRouter()
	router.Use(Logging(logger))

	router.Handler(NewPartyHandler(engine))
	router.Handler(NewEventsHandler(bus))
	router.Handle(http.MethodGet, "/api/stats",
		AdminOnly(cfg.Party.AdminToken)(StatsHandler(engine)))

	return &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
}
