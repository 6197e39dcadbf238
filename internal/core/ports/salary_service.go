package ports

import (
	"context"

	"github.com/epms/payroll-system/internal/core/domain"
)

type SalaryService interface {
	List(ctx context.Context) ([]domain.Salary, error)
	Create(ctx context.Context, salary *domain.Salary) error
	Update(ctx context.Context, employeeNumber, month string, salary *domain.Salary) error
	Delete(ctx context.Context, employeeNumber, month string) error
}
