package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/epms/payroll-system/internal/core/domain"
	"github.com/epms/payroll-system/internal/core/ports"
)

// EmployeeService implements CRUD over personnel records.
type EmployeeService struct {
	repo   ports.EmployeeRepository
	logger zerolog.Logger
}

func NewEmployeeService(repo ports.EmployeeRepository, logger zerolog.Logger) *EmployeeService {
	return &EmployeeService{repo: repo, logger: logger}
}

func (s *EmployeeService) List(ctx context.Context) ([]domain.Employee, error) {
	return s.repo.List(ctx)
}

func (s *EmployeeService) Create(ctx context.Context, employee *domain.Employee) error {
	if employee.EmployeeNumber == "" {
		return domain.ErrInvalidInput
	}
	if err := s.repo.Create(ctx, employee); err != nil {
		return err
	}
	s.logger.Info().Str("employee_number", employee.EmployeeNumber).Msg("employee created")
	return nil
}

func (s *EmployeeService) Update(ctx context.Context, employeeNumber string, employee *domain.Employee) error {
	if err := s.repo.Update(ctx, employeeNumber, employee); err != nil {
		return err
	}
	s.logger.Info().Str("employee_number", employeeNumber).Msg("employee updated")
	return nil
}

func (s *EmployeeService) Delete(ctx context.Context, employeeNumber string) error {
	if err := s.repo.Delete(ctx, employeeNumber); err != nil {
		return err
	}
	s.logger.Info().Str("employee_number", employeeNumber).Msg("employee deleted")
	return nil
}
