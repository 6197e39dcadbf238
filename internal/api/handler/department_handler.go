package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/epms/payroll-system/internal/core/domain"
	"github.com/epms/payroll-system/internal/core/ports"
)

// DepartmentHandler handles HTTP requests for departments.
type DepartmentHandler struct {
	service ports.DepartmentService
	audit   ports.AuditSink
}

func NewDepartmentHandler(service ports.DepartmentService, audit ports.AuditSink) *DepartmentHandler {
	return &DepartmentHandler{service: service, audit: audit}
}

type departmentRequest struct {
	DepartmentCode string  `json:"department_code" validate:"required"`
	DepartmentName string  `json:"department_name" validate:"required"`
	GrossSalary    float64 `json:"gross_salary"`
	TotalDeduction float64 `json:"total_deduction"`
}

func (r *departmentRequest) toDomain() *domain.Department {
	return &domain.Department{
		DepartmentCode: r.DepartmentCode,
		DepartmentName: r.DepartmentName,
		GrossSalary:    r.GrossSalary,
		TotalDeduction: r.TotalDeduction,
	}
}

// List returns all departments.
//
// @Summary      List departments
// @Tags         departments
// @Produce      json
// @Success      200  {array}  domain.Department
// @Router       /departments [get]
func (h *DepartmentHandler) List(c echo.Context) error {
	departments, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, departments)
}

// Create adds a new department.
//
// @Summary      Create department
// @Tags         departments
// @Accept       json
// @Produce      json
// @Param        body  body  departmentRequest  true  "Department details"
// @Success      201   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /departments [post]
func (h *DepartmentHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req departmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.Create(c.Request().Context(), req.toDomain()); err != nil {
		return err
	}

	h.recordAudit(identity, "create", req.DepartmentCode)
	return c.JSON(http.StatusCreated, map[string]string{"message": "department created successfully"})
}

// Update replaces the department identified by its code.
//
// @Summary      Update department
// @Tags         departments
// @Accept       json
// @Produce      json
// @Param        code  path  string             true  "Department code"
// @Param        body  body  departmentRequest  true  "Department details"
// @Success      200   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /departments/{code} [put]
func (h *DepartmentHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	code := c.Param("code")
	var req departmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.Update(c.Request().Context(), code, req.toDomain()); err != nil {
		return err
	}

	h.recordAudit(identity, "update", code)
	return c.JSON(http.StatusOK, map[string]string{"message": "department updated successfully"})
}

// Delete removes the department identified by its code.
//
// @Summary      Delete department
// @Tags         departments
// @Produce      json
// @Param        code  path  string  true  "Department code"
// @Success      200   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /departments/{code} [delete]
func (h *DepartmentHandler) Delete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	code := c.Param("code")
	if err := h.service.Delete(c.Request().Context(), code); err != nil {
		return err
	}

	h.recordAudit(identity, "delete", code)
	return c.JSON(http.StatusOK, map[string]string{"message": "department deleted successfully"})
}

func (h *DepartmentHandler) recordAudit(identity domain.Identity, action, key string) {
	if h.audit == nil {
		return
	}
	h.audit.Enqueue(domain.AuditEntry{
		Actor:     identity.Username,
		Action:    action,
		Entity:    "department",
		EntityKey: key,
		At:        time.Now().UTC(),
	})
}
