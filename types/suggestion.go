package types

import "time"

// Suggestion status values. StatusPending is the sole initial state;
// review may move a suggestion between any of the three.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// ValidStatus reports whether s is one of the three allowed status values.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Suggestion represents a user-submitted improvement suggestion tied to
// an SDG category.
type Suggestion struct {
	// ID is the unique identifier of the suggestion.
	ID int `json:"id" db:"id"`

	// UserID identifies the user who made the submission.
	UserID int `json:"user_id" db:"user_id"`

	// Fullname is the submitter's display name captured at submission
	// time. It is a snapshot and is not rewritten if the account is
	// later renamed.
	Fullname string `json:"fullname" db:"fullname"`

	// Email is the contact address supplied on the submission form.
	Email string `json:"email" db:"email"`

	// SDGCategory is the taxonomy tag, treated as opaque text.
	SDGCategory string `json:"sdg_category" db:"sdg_category"`

	// Title is the short summary of the suggestion.
	Title string `json:"title" db:"title"`

	// Description is the full text of the suggestion.
	Description string `json:"description" db:"description"`

	// Status is the review outcome, one of "pending", "approved",
	// "rejected".
	Status string `json:"status" db:"status"`

	// CreatedAt is the timestamp when the suggestion was created.
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// SuggestionCounts holds per-status totals, independent of any list filter.
type SuggestionCounts struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}
