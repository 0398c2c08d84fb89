package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sdg-portal/portal/internal/services"
	"github.com/sdg-portal/portal/internal/session"
	"github.com/sdg-portal/portal/internal/store"
	"github.com/sdg-portal/portal/types"
)

// SuggestionHandler serves the suggestion list, submission, and review
// routes.
type SuggestionHandler struct {
	suggestionService *services.SuggestionService
	sessions          *session.Manager
	views             *Renderer
}

func NewSuggestionHandler(suggestionService *services.SuggestionService, sessions *session.Manager, views *Renderer) *SuggestionHandler {
	return &SuggestionHandler{
		suggestionService: suggestionService,
		sessions:          sessions,
		views:             views,
	}
}

// SuggestionRouter registers the suggestion routes. Listing and submitting
// need a session; reviewing needs an admin.
func SuggestionRouter(r chi.Router, suggestionService *services.SuggestionService, sessions *session.Manager, views *Renderer) {
	handler := NewSuggestionHandler(suggestionService, sessions, views)

	r.Group(func(r chi.Router) {
		r.Use(sessions.RequireUser)
		r.Get("/suggestions", handler.List)
		r.Post("/submit-suggestion", handler.Submit)
	})
	r.Group(func(r chi.Router) {
		r.Use(sessions.RequireAdmin)
		r.Post("/update-suggestion/{suggestionID}", handler.Review)
	})
}

func (h *SuggestionHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, _ := h.sessions.Identity(r)

	statusFilter := r.URL.Query().Get("status")
	if statusFilter == "" {
		statusFilter = services.StatusFilterAll
	}

	suggestions, counts, err := h.suggestionService.List(r.Context(), statusFilter)
	if err != nil {
		h.views.Render(w, "suggestions", map[string]any{
			"User":          identity,
			"Suggestions":   []types.Suggestion{},
			"Counts":        types.SuggestionCounts{},
			"CurrentStatus": services.StatusFilterAll,
			"Error":         "Error loading suggestions",
		})
		return
	}

	h.views.Render(w, "suggestions", map[string]any{
		"User":          identity,
		"Suggestions":   suggestions,
		"Counts":        counts,
		"CurrentStatus": statusFilter,
		"Success":       r.URL.Query().Get("success"),
		"Error":         r.URL.Query().Get("error"),
	})
}

func (h *SuggestionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	identity, _ := h.sessions.Identity(r)

	input := services.SubmitInput{
		Email:       r.FormValue("email"),
		SDGCategory: r.FormValue("sdg_category"),
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
	}

	if _, err := h.suggestionService.Submit(r.Context(), input, identity); err != nil {
		var validation *services.ValidationError
		if errors.As(err, &validation) {
			redirectError(w, r, "/suggestions", validation.Message)
			return
		}
		redirectError(w, r, "/suggestions", "Error submitting suggestion")
		return
	}

	redirectSuccess(w, r, "/suggestions", "Suggestion submitted successfully!")
}

func (h *SuggestionHandler) Review(w http.ResponseWriter, r *http.Request) {
	identity, _ := h.sessions.Identity(r)

	id, err := parseIDParam(r, "suggestionID")
	if err != nil {
		redirectError(w, r, "/suggestions", "Suggestion not found")
		return
	}

	newStatus := r.FormValue("status")
	if newStatus == "" {
		newStatus = types.StatusPending
	}

	action, err := h.suggestionService.Review(r.Context(), id, newStatus, identity)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			redirectError(w, r, "/suggestions", "Invalid status")
		case errors.Is(err, store.ErrNotFound):
			redirectError(w, r, "/suggestions", "Suggestion not found")
		default:
			redirectError(w, r, "/suggestions", "Error updating suggestion")
		}
		return
	}

	// "marked as pending" shortens to "Suggestion pending!".
	redirectSuccess(w, r, "/suggestions", "Suggestion "+lastWord(action)+"!")
}

func lastWord(s string) string {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == ' ' {
			return s[i+1:]
		}
	}
	return s
}
