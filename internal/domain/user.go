package domain

import (
	"context"
	"time"
)

// User represents a registered user. Handle is the unique lowercase
// username; Name is the display name shown next to it.
// swagger:model User
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Handle    string    `json:"handle"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Credential fields are persisted but never serialized in responses.
	PasswordHash string `json:"-"`
	Salt         string `json:"-"`
}

// NewUser returns a new User with the given fields. ID is set by the repository on create.
func NewUser(email, name, handle string, createdAt, updatedAt time.Time) *User {
	return &User{
		Email:     email,
		Name:      name,
		Handle:    handle,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// PasswordHasher handles salt generation, hashing, and verification.
// Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated user.
type TokenIssuer interface {
	Issue(userID, email string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated user ID.
type TokenVerifier interface {
	Verify(token string) (userID string, err error)
}

// UserRepository defines the interface for user document storage
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByHandle(ctx context.Context, handle string) (*User, error)
	// Search returns users whose handle or name contains term
	// (case-insensitive), excluding excludeID, capped at limit.
	Search(ctx context.Context, term, excludeID string, limit int) ([]*User, error)
}

// UserService defines sign-up, login, and user lookup business logic.
type UserService interface {
	SignUp(ctx context.Context, email, password, name, handle string) (token string, user *User, err error)
	Login(ctx context.Context, email, password string) (token string, user *User, err error)
	GetByID(ctx context.Context, id string) (*User, error)
	Search(ctx context.Context, viewerID, term string) ([]*User, error)
}
