package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/epms/payroll-system/internal/core/domain"
	"github.com/epms/payroll-system/internal/core/ports"
)

// SalaryHandler handles HTTP requests for monthly salary records.
type SalaryHandler struct {
	service ports.SalaryService
	audit   ports.AuditSink
}

func NewSalaryHandler(service ports.SalaryService, audit ports.AuditSink) *SalaryHandler {
	return &SalaryHandler{service: service, audit: audit}
}

type salaryRequest struct {
	EmployeeNumber string  `json:"employee_number" validate:"required"`
	Month          string  `json:"month" validate:"required,len=7"`
	GrossSalary    float64 `json:"gross_salary"`
	TotalDeduction float64 `json:"total_deduction"`
}

func (r *salaryRequest) toDomain() *domain.Salary {
	return &domain.Salary{
		EmployeeNumber: r.EmployeeNumber,
		Month:          r.Month,
		GrossSalary:    r.GrossSalary,
		TotalDeduction: r.TotalDeduction,
	}
}

// List returns all salary records.
//
// @Summary      List salary records
// @Tags         salaries
// @Produce      json
// @Success      200  {array}  domain.Salary
// @Router       /salaries [get]
func (h *SalaryHandler) List(c echo.Context) error {
	salaries, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, salaries)
}

// Create records a salary line for an employee and month.
//
// @Summary      Create salary record
// @Tags         salaries
// @Accept       json
// @Produce      json
// @Param        body  body  salaryRequest  true  "Salary details"
// @Success      201   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /salaries [post]
func (h *SalaryHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req salaryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.Create(c.Request().Context(), req.toDomain()); err != nil {
		return err
	}

	h.recordAudit(identity, "create", req.EmployeeNumber+"/"+req.Month)
	return c.JSON(http.StatusCreated, map[string]string{"message": "salary record created successfully"})
}

// Update replaces the salary record for an employee and month.
//
// @Summary      Update salary record
// @Tags         salaries
// @Accept       json
// @Produce      json
// @Param        id    path  string         true  "Employee number"
// @Param        body  body  salaryRequest  true  "Salary details"
// @Success      200   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /salaries/{id} [put]
func (h *SalaryHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	number := c.Param("id")
	var req salaryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.Update(c.Request().Context(), number, req.Month, req.toDomain()); err != nil {
		return err
	}

	h.recordAudit(identity, "update", number+"/"+req.Month)
	return c.JSON(http.StatusOK, map[string]string{"message": "salary record updated successfully"})
}

// Delete removes the salary record for an employee and month.
//
// @Summary      Delete salary record
// @Tags         salaries
// @Produce      json
// @Param        id     path  string  true  "Employee number"
// @Param        month  path  string  true  "Month (YYYY-MM)"
// @Success      200    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Router       /salaries/{id}/{month} [delete]
func (h *SalaryHandler) Delete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	number := c.Param("id")
	month := c.Param("month")
	if err := h.service.Delete(c.Request().Context(), number, month); err != nil {
		return err
	}

	h.recordAudit(identity, "delete", number+"/"+month)
	return c.JSON(http.StatusOK, map[string]string{"message": "salary record deleted successfully"})
}

func (h *SalaryHandler) recordAudit(identity domain.Identity, action, key string) {
	if h.audit == nil {
		return
	}
	h.audit.Enqueue(domain.AuditEntry{
		Actor:     identity.Username,
		Action:    action,
		Entity:    "salary",
		EntityKey: key,
		At:        time.Now().UTC(),
	})
}
