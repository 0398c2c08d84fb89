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

// UserAdminHandler serves the admin-only account management pages.
type UserAdminHandler struct {
	userService *services.UserService
	sessions    *session.Manager
	views       *Renderer
}

func NewUserAdminHandler(userService *services.UserService, sessions *session.Manager, views *Renderer) *UserAdminHandler {
	return &UserAdminHandler{
		userService: userService,
		sessions:    sessions,
		views:       views,
	}
}

// UserAdminRouter registers the management routes. Every route is behind
// the admin gate.
func UserAdminRouter(r chi.Router, userService *services.UserService, sessions *session.Manager, views *Renderer) {
	handler := NewUserAdminHandler(userService, sessions, views)

	r.Group(func(r chi.Router) {
		r.Use(sessions.RequireAdmin)
		r.Get("/manage", handler.Manage)
		r.Post("/add-user", handler.AddUser)
		r.Post("/update-user/{userID}", handler.UpdateUser)
		r.Post("/delete-user/{userID}", handler.DeleteUser)
	})
}

func (h *UserAdminHandler) Manage(w http.ResponseWriter, r *http.Request) {
	identity, _ := h.sessions.Identity(r)

	users, counts, err := h.userService.List(r.Context())
	if err != nil {
		h.views.Render(w, "manage", map[string]any{
			"User":   identity,
			"Users":  []types.User{},
			"Counts": types.UserCounts{},
			"Error":  "Error loading users",
		})
		return
	}

	h.views.Render(w, "manage", map[string]any{
		"User":    identity,
		"Users":   users,
		"Counts":  counts,
		"Success": r.URL.Query().Get("success"),
		"Error":   r.URL.Query().Get("error"),
	})
}

func (h *UserAdminHandler) AddUser(w http.ResponseWriter, r *http.Request) {
	identity, _ := h.sessions.Identity(r)

	input := services.CreateUserInput{
		Fullname: r.FormValue("fullname"),
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
		Role:     r.FormValue("role"),
	}

	if _, err := h.userService.Create(r.Context(), input, identity); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			redirectError(w, r, "/manage", "Email already exists")
			return
		}
		redirectError(w, r, "/manage", "Error adding user")
		return
	}

	redirectSuccess(w, r, "/manage", "User added successfully")
}

func (h *UserAdminHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	identity, _ := h.sessions.Identity(r)

	targetID, err := parseIDParam(r, "userID")
	if err != nil {
		redirectError(w, r, "/manage", "Error updating user")
		return
	}

	input := services.UpdateUserInput{
		Fullname: r.FormValue("fullname"),
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
		Role:     r.FormValue("role"),
	}

	if err := h.userService.Update(r.Context(), targetID, input, identity); err != nil {
		switch {
		case errors.Is(err, services.ErrSelfAction):
			redirectError(w, r, "/manage", "Cannot change your own role")
		case errors.Is(err, store.ErrDuplicateEmail):
			redirectError(w, r, "/manage", "Email already exists")
		default:
			redirectError(w, r, "/manage", "Error updating user")
		}
		return
	}

	redirectSuccess(w, r, "/manage", "User updated successfully")
}

func (h *UserAdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	identity, _ := h.sessions.Identity(r)

	targetID, err := parseIDParam(r, "userID")
	if err != nil {
		redirectError(w, r, "/manage", "Error deleting user")
		return
	}

	if err := h.userService.Delete(r.Context(), targetID, identity); err != nil {
		if errors.Is(err, services.ErrSelfAction) {
			redirectError(w, r, "/manage", "Cannot delete your own account")
			return
		}
		redirectError(w, r, "/manage", "Error deleting user")
		return
	}

	redirectSuccess(w, r, "/manage", "User deleted successfully")
}
