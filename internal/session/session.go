package session

import (
	"net/http"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gorilla/sessions"
	"github.com/sdg-portal/portal/types"
)

const (
	sessionName = "session"

	keyUserID   = "user_id"
	keyFullname = "fullname"
	keyEmail    = "email"
	keyRole     = "role"
	keyAvatar   = "avatar"
)

// Identity is the authenticated user carried by a browser session. It is
// constructed at login and never re-read from the users table mid-session.
type Identity struct {
	UserID   int
	Fullname string
	Email    string
	Role     string
	Initials string
}

// IsAdmin reports whether the identity holds the admin role.
func (id Identity) IsAdmin() bool {
	return id.Role == types.RoleAdmin
}

// Initials derives an avatar label from a full name: the first letter of
// each whitespace-separated token, uppercased, truncated to two letters.
func Initials(fullname string) string {
	var b strings.Builder
	for i, part := range strings.Fields(fullname) {
		if i == 2 {
			break
		}
		r, _ := utf8.DecodeRuneInString(part)
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// Manager wraps a cookie store holding the per-browser session.
type Manager struct {
	store *sessions.CookieStore
}

func NewManager(secret string) *Manager {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{store: store}
}

// Identity loads the identity bound to the request's session. The second
// return value is false when nobody is signed in.
func (m *Manager) Identity(r *http.Request) (Identity, bool) {
	sess, _ := m.store.Get(r, sessionName)
	userID, ok := sess.Values[keyUserID].(int)
	if !ok {
		return Identity{}, false
	}

	identity := Identity{UserID: userID}
	identity.Fullname, _ = sess.Values[keyFullname].(string)
	identity.Email, _ = sess.Values[keyEmail].(string)
	identity.Role, _ = sess.Values[keyRole].(string)
	identity.Initials, _ = sess.Values[keyAvatar].(string)
	return identity, true
}

// SignIn binds the identity to the session cookie.
func (m *Manager) SignIn(w http.ResponseWriter, r *http.Request, identity Identity) error {
	sess, _ := m.store.Get(r, sessionName)
	sess.Values[keyUserID] = identity.UserID
	sess.Values[keyFullname] = identity.Fullname
	sess.Values[keyEmail] = identity.Email
	sess.Values[keyRole] = identity.Role
	sess.Values[keyAvatar] = identity.Initials
	return sess.Save(r, w)
}

// SignOut clears the session.
func (m *Manager) SignOut(w http.ResponseWriter, r *http.Request) error {
	sess, _ := m.store.Get(r, sessionName)
	sess.Options.MaxAge = -1
	sess.Values = map[interface{}]interface{}{}
	return sess.Save(r, w)
}

// RequireUser redirects unauthenticated requests to the login page.
func (m *Manager) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := m.Identity(r); !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin redirects requests without an admin session to the login
// page. Non-admins get the same redirect as anonymous visitors; there is
// no separate forbidden page.
func (m *Manager) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := m.Identity(r)
		if !ok || !identity.IsAdmin() {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
