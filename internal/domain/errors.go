package domain

import "errors"

// Sentinel errors shared across services. Repositories map store-level
// failures onto these; the HTTP layer maps them onto status codes.
var (
	ErrNotFound     = errors.New("not found")
	ErrExists       = errors.New("already exists")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidInput = errors.New("invalid input")

	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateEmail     = errors.New("email already in use")
	ErrHandleTaken        = errors.New("handle already taken")
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrAlreadyFriends    = errors.New("already friends with this user")
	ErrDuplicateRequest  = errors.New("friend request already sent")
	ErrReciprocalPending = errors.New("this user has already sent you a friend request")

	// ErrReciprocalConflict is returned when accepting a request while an
	// independent pending request exists in the opposite direction. The
	// conflict requires manual cleanup (cancel one side) rather than an
	// automatic resolution.
	ErrReciprocalConflict = errors.New("reciprocal pending friend requests; cancel one before accepting")
)
