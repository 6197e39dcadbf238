package ports

import (
	"context"

	"github.com/epms/payroll-system/internal/core/domain"
)

type DepartmentService interface {
	List(ctx context.Context) ([]domain.Department, error)
	Create(ctx context.Context, department *domain.Department) error
	Update(ctx context.Context, departmentCode string, department *domain.Department) error
	Delete(ctx context.Context, departmentCode string) error
}
