package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sdg-portal/portal/internal/services"
	"github.com/sdg-portal/portal/internal/session"
)

// StatsHandler serves the statistics report page.
type StatsHandler struct {
	statsService *services.StatsService
	sessions     *session.Manager
	views        *Renderer
}

func NewStatsHandler(statsService *services.StatsService, sessions *session.Manager, views *Renderer) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
		sessions:     sessions,
		views:        views,
	}
}

// StatsRouter registers the statistics route. Any signed-in user may view
// the report; it is not admin-only.
func StatsRouter(r chi.Router, statsService *services.StatsService, sessions *session.Manager, views *Renderer) {
	handler := NewStatsHandler(statsService, sessions, views)

	r.With(sessions.RequireUser).Get("/statistics", handler.Statistics)
}

func (h *StatsHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	identity, _ := h.sessions.Identity(r)

	stats, err := h.statsService.Compute(r.Context())
	if err != nil {
		h.views.Render(w, "statistics", map[string]any{
			"User":  identity,
			"Error": "Error loading statistics",
		})
		return
	}

	h.views.Render(w, "statistics", map[string]any{
		"User":  identity,
		"Stats": stats,
	})
}
