package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/epms/payroll-system/internal/core/domain"
	"github.com/epms/payroll-system/internal/core/ports"
)

// EmployeeHandler handles HTTP requests for employee records.
type EmployeeHandler struct {
	service ports.EmployeeService
	audit   ports.AuditSink
}

func NewEmployeeHandler(service ports.EmployeeService, audit ports.AuditSink) *EmployeeHandler {
	return &EmployeeHandler{service: service, audit: audit}
}

type employeeRequest struct {
	EmployeeNumber string    `json:"employee_number" validate:"required"`
	FirstName      string    `json:"first_name" validate:"required"`
	LastName       string    `json:"last_name" validate:"required"`
	Position       string    `json:"position"`
	Address        string    `json:"address"`
	Telephone      string    `json:"telephone"`
	Gender         string    `json:"gender"`
	HireDate       time.Time `json:"hire_date"`
	DepartmentCode string    `json:"department_code" validate:"required"`
}

func (r *employeeRequest) toDomain() *domain.Employee {
	return &domain.Employee{
		EmployeeNumber: r.EmployeeNumber,
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Position:       r.Position,
		Address:        r.Address,
		Telephone:      r.Telephone,
		Gender:         r.Gender,
		HireDate:       r.HireDate,
		DepartmentCode: r.DepartmentCode,
	}
}

// List returns all employees.
//
// @Summary      List employees
// @Tags         employees
// @Produce      json
// @Success      200  {array}  domain.Employee
// @Router       /employees [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	employees, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employees)
}

// Create adds a new employee.
//
// @Summary      Create employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        body  body  employeeRequest  true  "Employee details"
// @Success      201   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /employees [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req employeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.Create(c.Request().Context(), req.toDomain()); err != nil {
		return err
	}

	h.recordAudit(identity, "create", req.EmployeeNumber)
	return c.JSON(http.StatusCreated, map[string]string{"message": "employee created successfully"})
}

// Update replaces the employee identified by its number.
//
// @Summary      Update employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        id    path  string           true  "Employee number"
// @Param        body  body  employeeRequest  true  "Employee details"
// @Success      200   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /employees/{id} [put]
func (h *EmployeeHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	number := c.Param("id")
	var req employeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.Update(c.Request().Context(), number, req.toDomain()); err != nil {
		return err
	}

	h.recordAudit(identity, "update", number)
	return c.JSON(http.StatusOK, map[string]string{"message": "employee updated successfully"})
}

// Delete removes the employee identified by its number.
//
// @Summary      Delete employee
// @Tags         employees
// @Produce      json
// @Param        id  path  string  true  "Employee number"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /employees/{id} [delete]
func (h *EmployeeHandler) Delete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	number := c.Param("id")
	if err := h.service.Delete(c.Request().Context(), number); err != nil {
		return err
	}

	h.recordAudit(identity, "delete", number)
	return c.JSON(http.StatusOK, map[string]string{"message": "employee deleted successfully"})
}

func (h *EmployeeHandler) recordAudit(identity domain.Identity, action, key string) {
	if h.audit == nil {
		return
	}
	h.audit.Enqueue(domain.AuditEntry{
		Actor:     identity.Username,
		Action:    action,
		Entity:    "employee",
		EntityKey: key,
		At:        time.Now().UTC(),
	})
}
