package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/epms/payroll-system/internal/core/domain"
	"github.com/epms/payroll-system/internal/core/ports"
)

const (
	reportSourceLive     = "live"
	reportSourceCache    = "cache"
	reportSourceFallback = "fallback"
)

// ReportService produces the monthly payroll summary. Summaries are served
// from cache when possible; when a month has no salary records the summary
// falls back to department baseline figures so the report is never empty
// just because payroll has not run yet.
type ReportService struct {
	repo   ports.ReportRepository
	cache  ports.ReportCache
	logger zerolog.Logger
}

func NewReportService(repo ports.ReportRepository, cache ports.ReportCache, logger zerolog.Logger) *ReportService {
	return &ReportService{repo: repo, cache: cache, logger: logger}
}

// Summary returns per-department totals plus grand totals for the month.
func (s *ReportService) Summary(ctx context.Context, month string) (*domain.ReportSummary, error) {
	if !domain.ValidMonth(month) {
		return nil, domain.ErrInvalidMonth
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, month)
		if err != nil {
			s.logger.Warn().Err(err).Str("month", month).Msg("report cache read failed")
		} else if cached != nil {
			cached.Source = reportSourceCache
			return cached, nil
		}
	}

	rows, err := s.repo.SummaryByMonth(ctx, month)
	if err != nil {
		return nil, err
	}

	source := reportSourceLive
	fallback := false
	if len(rows) == 0 {
		rows, err = s.repo.BaselineTotals(ctx)
		if err != nil {
			return nil, err
		}
		source = reportSourceFallback
		fallback = true
	}

	summary := &domain.ReportSummary{
		Month:         month,
		PerDepartment: rows,
		Fallback:      fallback,
		Source:        source,
	}
	for _, r := range rows {
		summary.Totals.GrossTotal += r.GrossTotal
		summary.Totals.DeductionTotal += r.DeductionTotal
		summary.Totals.NetTotal += r.NetTotal
	}

	if s.cache != nil && !fallback {
		if err := s.cache.Set(ctx, month, summary); err != nil {
			s.logger.Warn().Err(err).Str("month", month).Msg("report cache write failed")
		}
	}

	return summary, nil
}

// SummaryCSV renders the monthly summary as CSV with a trailing Totals row.
func (s *ReportService) SummaryCSV(ctx context.Context, month string) ([]byte, error) {
	summary, err := s.Summary(ctx, month)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString("Department,Gross,Deduction,Net\n")
	for _, r := range summary.PerDepartment {
		fmt.Fprintf(&buf, "%s,%g,%g,%g\n", r.DepartmentCode, r.GrossTotal, r.DeductionTotal, r.NetTotal)
	}
	fmt.Fprintf(&buf, "Totals,%g,%g,%g\n",
		summary.Totals.GrossTotal, summary.Totals.DeductionTotal, summary.Totals.NetTotal)

	return buf.Bytes(), nil
}
