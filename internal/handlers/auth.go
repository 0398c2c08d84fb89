package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sdg-portal/portal/internal/services"
	"github.com/sdg-portal/portal/internal/session"
	"github.com/sdg-portal/portal/internal/store"
)

// AuthHandler serves the login, logout, and registration pages.
type AuthHandler struct {
	userService *services.UserService
	sessions    *session.Manager
	views       *Renderer
}

func NewAuthHandler(userService *services.UserService, sessions *session.Manager, views *Renderer) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		sessions:    sessions,
		views:       views,
	}
}

// AuthRouter registers the authentication routes on the given router.
func AuthRouter(r chi.Router, userService *services.UserService, sessions *session.Manager, views *Renderer) {
	handler := NewAuthHandler(userService, sessions, views)

	r.Get("/login", handler.LoginPage)
	r.Post("/login", handler.Login)
	r.Get("/logout", handler.Logout)
	r.Get("/register", handler.RegisterPage)
	r.Post("/register", handler.Register)
}

func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.views.Render(w, "login", map[string]any{
		"Registered": r.URL.Query().Get("registered") == "true",
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	password := r.FormValue("password")

	identity, err := h.userService.Authenticate(r.Context(), email, password)
	if err != nil {
		message := "An error occurred. Please try again."
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			message = "Invalid email or password"
		case errors.Is(err, services.ErrStoreUnavailable):
			message = "Database error. Please try again later."
		}
		h.views.Render(w, "login", map[string]any{"Error": message})
		return
	}

	if err := h.sessions.SignIn(w, r, identity); err != nil {
		h.views.Render(w, "login", map[string]any{"Error": "An error occurred. Please try again."})
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	_ = h.sessions.SignOut(w, r)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	h.views.Render(w, "register", nil)
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	input := services.RegisterInput{
		Fullname:        r.FormValue("fullname"),
		Email:           r.FormValue("email"),
		Password:        r.FormValue("password"),
		ConfirmPassword: r.FormValue("confirm_password"),
		RequestedRole:   r.FormValue("role"),
	}

	// The role field is only honored for a signed-in admin; the service
	// forces everyone else to the user role.
	var actor *session.Identity
	if identity, ok := h.sessions.Identity(r); ok {
		actor = &identity
	}

	if _, err := h.userService.Register(r.Context(), input, actor); err != nil {
		var validation *services.ValidationError
		message := "Registration failed: " + err.Error()
		switch {
		case errors.As(err, &validation):
			message = validation.Message
		case errors.Is(err, store.ErrDuplicateEmail):
			message = "Email already registered"
		}
		h.views.Render(w, "register", map[string]any{"Error": message})
		return
	}

	http.Redirect(w, r, "/login?registered=true", http.StatusSeeOther)
}
