package ports

import (
	"context"

	"github.com/epms/payroll-system/internal/core/domain"
)

// RegisterInput carries the fields needed to create an account. The password
// is plaintext here and must be hashed before it reaches any store.
type RegisterInput struct {
	Username string
	Password string
	Role     domain.Role
}

type AuthService interface {
	// Login verifies credentials and returns a signed token plus the public
	// identity. Unknown usernames and wrong passwords are indistinguishable.
	Login(ctx context.Context, username, password string) (string, domain.Identity, error)
	// Register creates an account. Only admins may call it.
	Register(ctx context.Context, requestor domain.Identity, input RegisterInput) (*domain.User, error)
	// VerifyPassword re-checks the live credential of an authenticated user.
	VerifyPassword(ctx context.Context, userID, password string) (bool, error)
	// ChangePassword re-verifies the current password, enforces the password
	// policy on the new one, and replaces the stored hash.
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
}
