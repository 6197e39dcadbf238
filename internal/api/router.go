package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/epms/payroll-system/internal/api/handler"
	"github.com/epms/payroll-system/internal/api/middleware"
	"github.com/epms/payroll-system/internal/core/auth"
	"github.com/epms/payroll-system/internal/core/domain"
	"github.com/epms/payroll-system/internal/core/ports"
	"github.com/epms/payroll-system/internal/core/service"
	"github.com/epms/payroll-system/internal/infrastructure/config"
	mongodb "github.com/epms/payroll-system/internal/infrastructure/db/mongo"
	redisdb "github.com/epms/payroll-system/internal/infrastructure/db/redis"
)

// routes groups the handlers and middleware the HTTP surface is assembled
// from, so route registration is independent of how the dependencies were
// constructed.
type routes struct {
	auth        *handler.AuthHandler
	employees   *handler.EmployeeHandler
	departments *handler.DepartmentHandler
	salaries    *handler.SalaryHandler
	reports     *handler.ReportHandler
	health      *handler.HealthHandler
	ready       *handler.HealthDependenciesHandler

	authenticated echo.MiddlewareFunc
	adminOnly     echo.MiddlewareFunc
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger, audit ports.AuditSink) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("payroll"))

	// --- Auth core ---
	hasher := auth.NewHasher(cfg.BcryptCost)
	codec := auth.NewTokenCodec(cfg.JWTSecret, cfg.TokenTTL)
	userRepo := mongodb.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, hasher, codec, log)

	// --- Payroll services ---
	employeeRepo := mongodb.NewEmployeeRepository(db)
	departmentRepo := mongodb.NewDepartmentRepository(db)
	salaryRepo := mongodb.NewSalaryRepository(db)
	reportRepo := mongodb.NewReportRepository(db)
	reportCache := redisdb.NewReportCache(rdb)

	registerRoutes(e, routes{
		auth:        handler.NewAuthHandler(authService),
		employees:   handler.NewEmployeeHandler(service.NewEmployeeService(employeeRepo, log), audit),
		departments: handler.NewDepartmentHandler(service.NewDepartmentService(departmentRepo, log), audit),
		salaries:    handler.NewSalaryHandler(service.NewSalaryService(salaryRepo, log), audit),
		reports:     handler.NewReportHandler(service.NewReportService(reportRepo, reportCache, log)),
		health:      handler.NewHealthHandler(),
		ready:       handler.NewHealthDependenciesHandler(db, rdb),

		authenticated: middleware.Auth(codec),
		adminOnly:     middleware.RBAC(domain.RoleAdmin),
	})

	return e
}

func registerRoutes(e *echo.Echo, r routes) {
	// --- Auth routes ---
	e.POST("/auth/login", r.auth.Login)
	e.GET("/auth/me", r.auth.Me, r.authenticated)
	e.POST("/auth/register", r.auth.Register, r.authenticated, r.adminOnly)
	e.POST("/auth/verify-password", r.auth.VerifyPassword, r.authenticated)
	e.POST("/auth/change-password", r.auth.ChangePassword, r.authenticated)

	// --- Payroll routes (any authenticated identity) ---
	employees := e.Group("/employees", r.authenticated)
	employees.GET("", r.employees.List)
	employees.POST("", r.employees.Create)
	employees.PUT("/:id", r.employees.Update)
	employees.DELETE("/:id", r.employees.Delete)

	departments := e.Group("/departments", r.authenticated)
	departments.GET("", r.departments.List)
	departments.POST("", r.departments.Create)
	departments.PUT("/:code", r.departments.Update)
	departments.DELETE("/:code", r.departments.Delete)

	salaries := e.Group("/salaries", r.authenticated)
	salaries.GET("", r.salaries.List)
	salaries.POST("", r.salaries.Create)
	salaries.PUT("/:id", r.salaries.Update)
	salaries.DELETE("/:id/:month", r.salaries.Delete)

	reports := e.Group("/reports", r.authenticated)
	reports.GET("/summary", r.reports.Summary)
	reports.GET("/summary.csv", r.reports.SummaryCSV)

	// --- Observability (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())

	// liveness: is the process alive; readiness: are dependencies up.
	e.GET("/health", r.health.Liveness)
	e.GET("/health/ready", r.ready.Readiness)
}
