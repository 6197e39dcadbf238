package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/epms/payroll-system/internal/api/handler"
	"github.com/epms/payroll-system/internal/api/middleware"
	"github.com/epms/payroll-system/internal/core/auth"
	"github.com/epms/payroll-system/internal/core/domain"
	"github.com/epms/payroll-system/internal/core/service"
)

type memUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*domain.User)}
}

func (r *memUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if u, ok := r.users[username]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	r.nextID++
	created := *user
	created.ID = fmt.Sprintf("u%d", r.nextID)
	r.users[created.Username] = &created
	clone := created
	return &clone, nil
}

func (r *memUserRepo) UpdatePasswordHash(_ context.Context, id, newHash string) error {
	for _, u := range r.users {
		if u.ID == id {
			u.PasswordHash = newHash
			return nil
		}
	}
	return domain.ErrUserNotFound
}

type emptyEmployeeService struct{}

func (emptyEmployeeService) List(context.Context) ([]domain.Employee, error) {
	return []domain.Employee{}, nil
}
func (emptyEmployeeService) Create(context.Context, *domain.Employee) error { return nil }

func (emptyEmployeeService) Update(context.Context, string, *domain.Employee) error { return nil }

func (emptyEmployeeService) Delete(context.Context, string) error { return nil }

type emptyDepartmentService struct{}

func (emptyDepartmentService) List(context.Context) ([]domain.Department, error) {
	return []domain.Department{}, nil
}
func (emptyDepartmentService) Create(context.Context, *domain.Department) error { return nil }

func (emptyDepartmentService) Update(context.Context, string, *domain.Department) error { return nil }

func (emptyDepartmentService) Delete(context.Context, string) error { return nil }

type emptySalaryService struct{}

func (emptySalaryService) List(context.Context) ([]domain.Salary, error) {
	return []domain.Salary{}, nil
}
func (emptySalaryService) Create(context.Context, *domain.Salary) error { return nil }

func (emptySalaryService) Update(context.Context, string, string, *domain.Salary) error { return nil }

func (emptySalaryService) Delete(context.Context, string, string) error { return nil }

type emptyReportService struct{}

func (emptyReportService) Summary(_ context.Context, month string) (*domain.ReportSummary, error) {
	return &domain.ReportSummary{Month: month, PerDepartment: []domain.DepartmentTotals{}}, nil
}

func (emptyReportService) SummaryCSV(context.Context, string) ([]byte, error) {
	return []byte("Department,Gross,Deduction,Net\nTotals,0,0,0\n"), nil
}

// newTestRouter assembles the real route table around a real auth core and an
// in-memory credential store, seeded with one admin account.
func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())

	hasher := auth.NewHasher(bcrypt.MinCost)
	codec := auth.NewTokenCodec("router-test-secret", time.Hour)

	repo := newMemUserRepo()
	adminHash, err := hasher.Hash("Adm1npw")
	if err != nil {
		t.Fatalf("hash admin password: %v", err)
	}
	if _, err := repo.Create(context.Background(), &domain.User{
		Username:     "root",
		PasswordHash: adminHash,
		Role:         domain.RoleAdmin,
	}); err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	authService := service.NewAuthService(repo, hasher, codec, zerolog.Nop())

	registerRoutes(e, routes{
		auth:        handler.NewAuthHandler(authService),
		employees:   handler.NewEmployeeHandler(emptyEmployeeService{}, nil),
		departments: handler.NewDepartmentHandler(emptyDepartmentService{}, nil),
		salaries:    handler.NewSalaryHandler(emptySalaryService{}, nil),
		reports:     handler.NewReportHandler(emptyReportService{}),
		health:      handler.NewHealthHandler(),
		ready:       handler.NewHealthDependenciesHandler(nil, nil),

		authenticated: middleware.Auth(codec),
		adminOnly:     middleware.RBAC(domain.RoleAdmin),
	})

	return e
}

func doJSON(e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func loginToken(t *testing.T, e *echo.Echo, username, password string) string {
	t.Helper()
	rec := doJSON(e, http.MethodPost, "/auth/login", "",
		fmt.Sprintf(`{"username":%q,"password":%q}`, username, password))
	if rec.Code != http.StatusOK {
		t.Fatalf("login %s: expected 200, got %d: %s", username, rec.Code, rec.Body.String())
	}
	var body struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if body.Token == "" {
		t.Fatalf("login %s returned an empty token", username)
	}
	return body.Token
}

func TestRouter_AdminRegistersAndUserIsGated(t *testing.T) {
	e := newTestRouter(t)

	adminToken := loginToken(t, e, "root", "Adm1npw")

	rec := doJSON(e, http.MethodGet, "/auth/me", adminToken, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("/auth/me: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var me domain.Identity
	if err := json.Unmarshal(rec.Body.Bytes(), &me); err != nil {
		t.Fatalf("decode /auth/me: %v", err)
	}
	if me.Username != "root" || me.Role != domain.RoleAdmin {
		t.Fatalf("unexpected identity: %+v", me)
	}

	rec = doJSON(e, http.MethodPost, "/auth/register", adminToken,
		`{"username":"bob","password":"Passw0rd","role":"user"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("admin register: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	userToken := loginToken(t, e, "bob", "Passw0rd")

	// The freshly registered user must not be able to register accounts.
	rec = doJSON(e, http.MethodPost, "/auth/register", userToken,
		`{"username":"mallory","password":"Passw0rd","role":"user"}`)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("user register: expected 403, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_UnauthenticatedRequestsRejected(t *testing.T) {
	e := newTestRouter(t)

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/auth/me"},
		{http.MethodPost, "/auth/register"},
		{http.MethodPost, "/auth/change-password"},
		{http.MethodGet, "/employees"},
		{http.MethodGet, "/departments"},
		{http.MethodGet, "/salaries"},
		{http.MethodGet, "/reports/summary?month=2026-03"},
	} {
		rec := doJSON(e, tc.method, tc.path, "", "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s without token: expected 401, got %d", tc.method, tc.path, rec.Code)
		}
		var body errorResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s %s: decode error envelope: %v", tc.method, tc.path, err)
		}
		if body.Error == "" {
			t.Fatalf("%s %s: empty error message", tc.method, tc.path)
		}
	}
}

func TestRouter_AuthenticatedPayrollAccess(t *testing.T) {
	e := newTestRouter(t)
	token := loginToken(t, e, "root", "Adm1npw")

	for _, path := range []string{"/employees", "/departments", "/salaries"} {
		rec := doJSON(e, http.MethodGet, path, token, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("GET %s: expected 200, got %d: %s", path, rec.Code, rec.Body.String())
		}
	}

	rec := doJSON(e, http.MethodGet, "/reports/summary?month=2026-03", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /reports/summary: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_LoginRejectsBadCredentials(t *testing.T) {
	e := newTestRouter(t)

	rec := doJSON(e, http.MethodPost, "/auth/login", "",
		`{"username":"root","password":"wrong"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", rec.Code, rec.Body.String())
	}
	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	if body.Error != "invalid credentials" {
		t.Fatalf("unexpected error message: %q", body.Error)
	}
}

func TestRouter_HealthIsPublic(t *testing.T) {
	e := newTestRouter(t)

	rec := doJSON(e, http.MethodGet, "/health", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /health: expected 200, got %d", rec.Code)
	}
}
