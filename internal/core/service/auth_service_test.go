package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/epms/payroll-system/internal/core/auth"
	"github.com/epms/payroll-system/internal/core/domain"
	"github.com/epms/payroll-system/internal/core/ports"
)

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if u, ok := r.users[username]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = user.Username // deterministic id for tests
	r.users[created.Username] = cloneUser(created)
	return cloneUser(created), nil
}

func (r *stubUserRepo) UpdatePasswordHash(_ context.Context, id, newHash string) error {
	for _, u := range r.users {
		if u.ID == id {
			u.PasswordHash = newHash
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func newTestAuthService(repo ports.UserRepository) *AuthService {
	hasher := auth.NewHasher(bcrypt.MinCost)
	codec := auth.NewTokenCodec("test-secret", time.Hour)
	return NewAuthService(repo, hasher, codec, zerolog.Nop())
}

func adminIdentity() domain.Identity {
	return domain.Identity{ID: "admin", Username: "admin", Role: domain.RoleAdmin}
}

func registerTestUser(t *testing.T, svc *AuthService, username, password string, role domain.Role) *domain.User {
	t.Helper()
	user, err := svc.Register(context.Background(), adminIdentity(), ports.RegisterInput{
		Username: username,
		Password: password,
		Role:     role,
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	return user
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	user := registerTestUser(t, svc, "alice", "Passw0rd", domain.RoleUser)

	if user.PasswordHash == "Passw0rd" {
		t.Fatalf("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Passw0rd")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_NonAdminForbidden(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	requestor := domain.Identity{ID: "u2", Username: "bob", Role: domain.RoleUser}
	_, err := svc.Register(context.Background(), requestor, ports.RegisterInput{
		Username: "mallory",
		Password: "Passw0rd",
		Role:     domain.RoleUser,
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	cases := []ports.RegisterInput{
		{Username: "", Password: "Passw0rd", Role: domain.RoleUser},
		{Username: "carol", Password: "", Role: domain.RoleUser},
		{Username: "carol", Password: "Passw0rd", Role: "superadmin"},
	}
	for _, input := range cases {
		if _, err := svc.Register(context.Background(), adminIdentity(), input); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", input, err)
		}
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	registerTestUser(t, svc, "bob", "Passw0rd", domain.RoleUser)
	_, err := svc.Register(context.Background(), adminIdentity(), ports.RegisterInput{
		Username: "bob",
		Password: "Other1pw",
		Role:     domain.RoleUser,
	})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())
	registerTestUser(t, svc, "carol", "S3cretpw", domain.RoleAdmin)

	token, identity, err := svc.Login(context.Background(), "carol", "S3cretpw")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if identity.Username != "carol" || identity.Role != domain.RoleAdmin {
		t.Fatalf("unexpected identity: %+v", identity)
	}

	codec := auth.NewTokenCodec("test-secret", time.Hour)
	verified, err := codec.Verify(token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if verified != identity {
		t.Fatalf("token claims mismatch: %+v != %+v", verified, identity)
	}
}

func TestAuthService_Login_UniformFailure(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())
	registerTestUser(t, svc, "dave", "G00dpass", domain.RoleUser)

	_, _, unknownErr := svc.Login(context.Background(), "nouser", "anything")
	_, _, wrongErr := svc.Login(context.Background(), "dave", "wrongpassword")

	if !errors.Is(unknownErr, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", unknownErr)
	}
	if !errors.Is(wrongErr, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongErr)
	}
	if unknownErr.Error() != wrongErr.Error() {
		t.Fatalf("failure messages differ: %q vs %q", unknownErr, wrongErr)
	}
}

func TestAuthService_Login_EmptyInput(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	if _, _, err := svc.Login(context.Background(), "", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_VerifyPassword(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())
	user := registerTestUser(t, svc, "erin", "Curr3ntpw", domain.RoleUser)

	valid, err := svc.VerifyPassword(context.Background(), user.ID, "Curr3ntpw")
	if err != nil {
		t.Fatalf("VerifyPassword returned error: %v", err)
	}
	if !valid {
		t.Fatalf("expected correct password to verify")
	}

	valid, err = svc.VerifyPassword(context.Background(), user.ID, "wrong")
	if err != nil {
		t.Fatalf("VerifyPassword returned error for mismatch: %v", err)
	}
	if valid {
		t.Fatalf("expected wrong password to fail verification")
	}
}

func TestAuthService_ChangePassword_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)
	user := registerTestUser(t, svc, "frank", "Oldpass1", domain.RoleUser)

	if err := svc.ChangePassword(context.Background(), user.ID, "Oldpass1", "Newpass2"); err != nil {
		t.Fatalf("ChangePassword returned error: %v", err)
	}

	// Old password no longer works; new one does.
	if _, _, err := svc.Login(context.Background(), "frank", "Oldpass1"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("old password still accepted: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "frank", "Newpass2"); err != nil {
		t.Fatalf("new password rejected: %v", err)
	}
}

func TestAuthService_ChangePassword_WrongCurrent(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())
	user := registerTestUser(t, svc, "grace", "Curr3ntpw", domain.RoleUser)

	err := svc.ChangePassword(context.Background(), user.ID, "notmypassword", "Newpass2")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_ChangePassword_Policy(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())
	user := registerTestUser(t, svc, "heidi", "Curr3ntpw", domain.RoleUser)

	weak := []string{
		"Ab1",       // too short
		"alllower1", // missing uppercase
		"ALLUPPER1", // missing lowercase
		"NoDigits",  // missing digit
		"Curr3ntpw", // same as current
	}
	for _, pw := range weak {
		if err := svc.ChangePassword(context.Background(), user.ID, "Curr3ntpw", pw); !errors.Is(err, domain.ErrWeakPassword) {
			t.Fatalf("expected ErrWeakPassword for %q, got %v", pw, err)
		}
	}

	if err := svc.ChangePassword(context.Background(), user.ID, "Curr3ntpw", "Passw0rd"); err != nil {
		t.Fatalf("expected Passw0rd to be accepted, got %v", err)
	}
}
