package types

import "time"

// Activity is an append-only log entry describing something a user did.
// Entries are never mutated or deleted.
type Activity struct {
	ID int `json:"id" db:"id"`

	// UserID is the acting user. Nil when the actor is unknown.
	UserID *int `json:"user_id" db:"user_id"`

	Message   string    `json:"message" db:"message"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
