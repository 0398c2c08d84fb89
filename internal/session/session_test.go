package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sdg-portal/portal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitials(t *testing.T) {
	tests := []struct {
		fullname string
		want     string
	}{
		{"Ada Lovelace", "AL"},
		{"Ada Byron Lovelace", "AB"},
		{"ada", "A"},
		{"", ""},
		{"  jo   smith  ", "JS"},
		{"Ödön Barna", "ÖB"},
		{"élise du pont", "ÉD"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Initials(tt.fullname), "fullname %q", tt.fullname)
	}
}

func signIn(t *testing.T, m *Manager, identity Identity) []*http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/login", nil)
	require.NoError(t, m.SignIn(w, r, identity))
	return w.Result().Cookies()
}

func requestWith(cookies []*http.Cookie, target string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, target, nil)
	for _, c := range cookies {
		r.AddCookie(c)
	}
	return r
}

func TestSignInRoundTrip(t *testing.T) {
	m := NewManager("test-secret")
	cookies := signIn(t, m, Identity{
		UserID:   7,
		Fullname: "Jo Smith",
		Email:    "jo@example.com",
		Role:     types.RoleUser,
		Initials: "JS",
	})

	identity, ok := m.Identity(requestWith(cookies, "/dashboard"))
	require.True(t, ok)
	assert.Equal(t, 7, identity.UserID)
	assert.Equal(t, "Jo Smith", identity.Fullname)
	assert.Equal(t, "jo@example.com", identity.Email)
	assert.Equal(t, types.RoleUser, identity.Role)
	assert.Equal(t, "JS", identity.Initials)
	assert.False(t, identity.IsAdmin())
}

func TestIdentityAbsentWithoutCookie(t *testing.T) {
	m := NewManager("test-secret")
	_, ok := m.Identity(httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	assert.False(t, ok)
}

func TestRequireUserRedirects(t *testing.T) {
	m := NewManager("test-secret")
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	w := httptest.NewRecorder()
	m.RequireUser(next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestRequireAdminRedirectsNonAdmins(t *testing.T) {
	m := NewManager("test-secret")
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	gate := m.RequireAdmin(next)

	// Anonymous visitor.
	w := httptest.NewRecorder()
	gate.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/manage", nil))
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	// Signed-in regular user gets the same redirect, not a forbidden page.
	cookies := signIn(t, m, Identity{UserID: 7, Fullname: "Jo", Role: types.RoleUser})
	w = httptest.NewRecorder()
	gate.ServeHTTP(w, requestWith(cookies, "/manage"))
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	// Admin passes through.
	cookies = signIn(t, m, Identity{UserID: 1, Fullname: "Root", Role: types.RoleAdmin})
	w = httptest.NewRecorder()
	gate.ServeHTTP(w, requestWith(cookies, "/manage"))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSignOutClearsSession(t *testing.T) {
	m := NewManager("test-secret")
	cookies := signIn(t, m, Identity{UserID: 7, Fullname: "Jo", Role: types.RoleUser})

	w := httptest.NewRecorder()
	r := requestWith(cookies, "/logout")
	require.NoError(t, m.SignOut(w, r))

	// The replacement cookie must be expired.
	out := w.Result().Cookies()
	require.NotEmpty(t, out)
	assert.Negative(t, out[0].MaxAge)
}
