package ports

import (
	"context"

	"github.com/epms/payroll-system/internal/core/domain"
)

type ReportService interface {
	Summary(ctx context.Context, month string) (*domain.ReportSummary, error)
	SummaryCSV(ctx context.Context, month string) ([]byte, error)
}

// ReportCache stores rendered monthly summaries. A miss is (nil, nil);
// cache failures must never fail a report request.
type ReportCache interface {
	Get(ctx context.Context, month string) (*domain.ReportSummary, error)
	Set(ctx context.Context, month string, summary *domain.ReportSummary) error
}
