package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/epms/payroll-system/internal/core/domain"
	"github.com/epms/payroll-system/internal/core/ports"
)

// SalaryService implements CRUD over monthly salary records. The net figure
// is recomputed on every write so it can never drift from gross - deduction.
type SalaryService struct {
	repo   ports.SalaryRepository
	logger zerolog.Logger
}

func NewSalaryService(repo ports.SalaryRepository, logger zerolog.Logger) *SalaryService {
	return &SalaryService{repo: repo, logger: logger}
}

func (s *SalaryService) List(ctx context.Context) ([]domain.Salary, error) {
	return s.repo.List(ctx)
}

func (s *SalaryService) Create(ctx context.Context, salary *domain.Salary) error {
	if salary.EmployeeNumber == "" {
		return domain.ErrInvalidInput
	}
	if !domain.ValidMonth(salary.Month) {
		return domain.ErrInvalidMonth
	}
	salary.NetSalary = salary.GrossSalary - salary.TotalDeduction
	if err := s.repo.Create(ctx, salary); err != nil {
		return err
	}
	s.logger.Info().
		Str("employee_number", salary.EmployeeNumber).
		Str("month", salary.Month).
		Msg("salary record created")
	return nil
}

func (s *SalaryService) Update(ctx context.Context, employeeNumber, month string, salary *domain.Salary) error {
	if !domain.ValidMonth(month) {
		return domain.ErrInvalidMonth
	}
	salary.NetSalary = salary.GrossSalary - salary.TotalDeduction
	if err := s.repo.Update(ctx, employeeNumber, month, salary); err != nil {
		return err
	}
	s.logger.Info().
		Str("employee_number", employeeNumber).
		Str("month", month).
		Msg("salary record updated")
	return nil
}

func (s *SalaryService) Delete(ctx context.Context, employeeNumber, month string) error {
	if err := s.repo.Delete(ctx, employeeNumber, month); err != nil {
		return err
	}
	s.logger.Info().
		Str("employee_number", employeeNumber).
		Str("month", month).
		Msg("salary record deleted")
	return nil
}
