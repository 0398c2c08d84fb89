package services

import "errors"

var (
	// ErrInvalidCredentials covers both unknown email and wrong password;
	// callers are given no way to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrSelfAction is returned when an admin tries to update or delete
	// the account bound to their own session.
	ErrSelfAction = errors.New("cannot act on your own account")

	// ErrInvalidStatus is returned when a review names a status outside
	// pending/approved/rejected.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrStoreUnavailable wraps backing-store failures surfaced to users
	// as a generic "try again later" message.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// ValidationError marks missing or malformed form input. The message is
// shown to the user on the originating form.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
