package ports

import (
	"context"

	"github.com/epms/payroll-system/internal/core/domain"
)

type EmployeeService interface {
	List(ctx context.Context) ([]domain.Employee, error)
	Create(ctx context.Context, employee *domain.Employee) error
	Update(ctx context.Context, employeeNumber string, employee *domain.Employee) error
	Delete(ctx context.Context, employeeNumber string) error
}
