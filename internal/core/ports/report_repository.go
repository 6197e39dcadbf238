package ports

import (
	"context"

	"github.com/epms/payroll-system/internal/core/domain"
)

// ReportRepository answers the aggregation queries behind the monthly
// payroll summary.
type ReportRepository interface {
	// SummaryByMonth returns per-department totals computed from the salary
	// records of the given month, ordered by department code.
	SummaryByMonth(ctx context.Context, month string) ([]domain.DepartmentTotals, error)
	// BaselineTotals returns per-department totals derived from department
	// baseline figures and employee headcount, used when a month has no
	// salary rows.
	BaselineTotals(ctx context.Context) ([]domain.DepartmentTotals, error)
}
