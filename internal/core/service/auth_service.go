package service

import (
	"context"
	"errors"
	"time"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/epms/payroll-system/internal/core/auth"
	"github.com/epms/payroll-system/internal/core/domain"
	"github.com/epms/payroll-system/internal/core/ports"
)

// AuthService implements login, registration, and the password verification
// and change flows. It holds no cross-request state; the credential store is
// the only shared resource.
type AuthService struct {
	repo   ports.UserRepository
	hasher *auth.Hasher
	codec  *auth.TokenCodec
	logger zerolog.Logger

	// dummyHash is compared against when a username does not exist, so the
	// unknown-user and wrong-password paths cost roughly the same.
	dummyHash string
}

func NewAuthService(repo ports.UserRepository, hasher *auth.Hasher, codec *auth.TokenCodec, logger zerolog.Logger) *AuthService {
	dummy, err := hasher.Hash("not-a-real-password")
	if err != nil {
		// bcrypt only fails on an out-of-range cost, which NewHasher clamps.
		dummy = ""
	}
	return &AuthService{
		repo:      repo,
		hasher:    hasher,
		codec:     codec,
		logger:    logger,
		dummyHash: dummy,
	}
}

// Login verifies the credentials and returns a signed token plus the public
// identity. An unknown username and a wrong password produce the same error.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, domain.Identity, error) {
	if username == "" || password == "" {
		return "", domain.Identity{}, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Burn a comparable amount of CPU before failing.
			s.hasher.Verify(password, s.dummyHash)
			return "", domain.Identity{}, domain.ErrInvalidCredentials
		}
		return "", domain.Identity{}, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.logger.Info().Str("username", username).Msg("login failed")
		return "", domain.Identity{}, domain.ErrInvalidCredentials
	}

	identity := user.Identity()
	token, err := s.codec.Issue(identity)
	if err != nil {
		return "", domain.Identity{}, err
	}

	s.logger.Info().Str("username", username).Str("role", string(identity.Role)).Msg("login succeeded")
	return token, identity, nil
}

// Register creates an account. Only an admin requestor may register users,
// and the plaintext password never reaches the store.
func (s *AuthService) Register(ctx context.Context, requestor domain.Identity, input ports.RegisterInput) (*domain.User, error) {
	if !requestor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if input.Username == "" || input.Password == "" || !input.Role.IsValid() {
		return nil, domain.ErrInvalidInput
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     input.Username,
		PasswordHash: hash,
		Role:         input.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Str("role", string(created.Role)).Msg("account created")
	return created, nil
}

// VerifyPassword re-fetches the account and checks the supplied password
// against the live stored hash. A mismatch is a false return, not an error.
func (s *AuthService) VerifyPassword(ctx context.Context, userID, password string) (bool, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return false, err
	}
	return s.hasher.Verify(password, user.PasswordHash), nil
}

// ChangePassword re-verifies the current password against the store (a token
// alone is not trusted for this), enforces the password policy on the new
// one, and replaces the stored hash in a single update.
func (s *AuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if !s.hasher.Verify(currentPassword, user.PasswordHash) {
		return domain.ErrInvalidCredentials
	}

	if err := checkPasswordPolicy(currentPassword, newPassword); err != nil {
		return err
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	if err := s.repo.UpdatePasswordHash(ctx, userID, hash); err != nil {
		return err
	}

	s.logger.Info().Str("username", user.Username).Msg("password changed")
	return nil
}

// checkPasswordPolicy enforces the rules for a replacement password:
// at least 6 characters, at least one uppercase letter, one lowercase
// letter, and one digit, and different from the current password.
func checkPasswordPolicy(current, next string) error {
	if len(next) < 6 {
		return domain.ErrWeakPassword
	}
	var hasUpper, hasLower, hasDigit bool
	for _, r := range next {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return domain.ErrWeakPassword
	}
	if next == current {
		return domain.ErrWeakPassword
	}
	return nil
}
