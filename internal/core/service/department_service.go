package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/epms/payroll-system/internal/core/domain"
	"github.com/epms/payroll-system/internal/core/ports"
)

// DepartmentService implements CRUD over departments.
type DepartmentService struct {
	repo   ports.DepartmentRepository
	logger zerolog.Logger
}

func NewDepartmentService(repo ports.DepartmentRepository, logger zerolog.Logger) *DepartmentService {
	return &DepartmentService{repo: repo, logger: logger}
}

func (s *DepartmentService) List(ctx context.Context) ([]domain.Department, error) {
	return s.repo.List(ctx)
}

func (s *DepartmentService) Create(ctx context.Context, department *domain.Department) error {
	if department.DepartmentCode == "" {
		return domain.ErrInvalidInput
	}
	if err := s.repo.Create(ctx, department); err != nil {
		return err
	}
	s.logger.Info().Str("department_code", department.DepartmentCode).Msg("department created")
	return nil
}

func (s *DepartmentService) Update(ctx context.Context, departmentCode string, department *domain.Department) error {
	if err := s.repo.Update(ctx, departmentCode, department); err != nil {
		return err
	}
	s.logger.Info().Str("department_code", departmentCode).Msg("department updated")
	return nil
}

func (s *DepartmentService) Delete(ctx context.Context, departmentCode string) error {
	if err := s.repo.Delete(ctx, departmentCode); err != nil {
		return err
	}
	s.logger.Info().Str("department_code", departmentCode).Msg("department deleted")
	return nil
}
