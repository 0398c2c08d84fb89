package types

// Role values assignable to accounts. RoleModerator appears in the
// statistics report but is not offered by the management forms.
const (
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
	RoleUser      = "user"
)

// User represents an account in the system.
type User struct {
	// ID is the unique identifier of the user.
	ID int `json:"id" db:"id"`

	// Fullname is the user's display name.
	Fullname string `json:"fullname" db:"fullname"`

	// Email is the user's email address. It is unique across accounts.
	Email string `json:"email" db:"email"`

	// Password is the stored credential. It is kept as plaintext to match
	// the legacy schema; a known defect, not a design choice.
	Password string `json:"-" db:"password"`

	// Role indicates the user's authorization level within the system
	// (one of "admin", "moderator", "user").
	Role string `json:"role" db:"role"`
}

// UserCounts summarizes the role distribution on the management page.
type UserCounts struct {
	Admins       int `json:"admins"`
	RegularUsers int `json:"regular_users"`
}
