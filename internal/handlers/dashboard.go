package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sdg-portal/portal/internal/services"
	"github.com/sdg-portal/portal/internal/session"
	"github.com/sdg-portal/portal/types"
)

const dashboardFeedLimit = 10

// DashboardHandler serves the landing page and the activity feed.
type DashboardHandler struct {
	activityService *services.ActivityService
	sessions        *session.Manager
	views           *Renderer
}

func NewDashboardHandler(activityService *services.ActivityService, sessions *session.Manager, views *Renderer) *DashboardHandler {
	return &DashboardHandler{
		activityService: activityService,
		sessions:        sessions,
		views:           views,
	}
}

// DashboardRouter registers the landing page and dashboard routes.
func DashboardRouter(r chi.Router, activityService *services.ActivityService, sessions *session.Manager, views *Renderer) {
	handler := NewDashboardHandler(activityService, sessions, views)

	r.Get("/", handler.Home)
	r.With(sessions.RequireUser).Get("/dashboard", handler.Dashboard)
}

func (h *DashboardHandler) Home(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{}
	if identity, ok := h.sessions.Identity(r); ok {
		data["User"] = identity
		data["LoggedIn"] = true
	}
	h.views.Render(w, "index", data)
}

func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	identity, _ := h.sessions.Identity(r)

	// A broken feed degrades to an empty page rather than an error.
	activities, err := h.activityService.Recent(r.Context(), dashboardFeedLimit)
	if err != nil {
		activities = []types.Activity{}
	}

	h.views.Render(w, "dashboard", map[string]any{
		"User":       identity,
		"Activities": activities,
	})
}
