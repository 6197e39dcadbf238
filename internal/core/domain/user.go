package domain

import (
	"errors"
	"time"
)

// Role is the coarse authorization tier. Exactly two tiers exist; every
// role comparison in the system goes through this type.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// IsValid reports whether r is one of the two known roles.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleUser
}

var (
	// ErrInvalidCredentials covers both unknown username and wrong password.
	// Callers must never learn which factor failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingToken       = errors.New("authentication token required")
	ErrInvalidToken       = errors.New("invalid token")
	ErrForbidden          = errors.New("admin access required")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrWeakPassword       = errors.New("password does not meet the password policy")
	ErrInvalidInput       = errors.New("invalid input")
)

// User models a stored credential record.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the non-secret projection of a User. It is what gets baked
// into tokens and attached to authenticated requests.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// Identity returns the public identity of the user.
func (u *User) Identity() Identity {
	return Identity{ID: u.ID, Username: u.Username, Role: u.Role}
}

// IsAdmin reports whether the identity carries the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
