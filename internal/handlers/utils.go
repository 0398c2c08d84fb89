package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func parseIDParam(r *http.Request, name string) (int, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

// redirectSuccess and redirectError carry user feedback as query params on
// the redirect target; there is no structured response body anywhere.
func redirectSuccess(w http.ResponseWriter, r *http.Request, target, message string) {
	http.Redirect(w, r, target+"?success="+url.QueryEscape(message), http.StatusSeeOther)
}

func redirectError(w http.ResponseWriter, r *http.Request, target, message string) {
	http.Redirect(w, r, target+"?error="+url.QueryEscape(message), http.StatusSeeOther)
}
