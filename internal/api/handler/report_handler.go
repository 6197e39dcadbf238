package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/epms/payroll-system/internal/api/metrics"
	"github.com/epms/payroll-system/internal/core/ports"
)

// ReportHandler serves the monthly payroll summary in JSON and CSV form.
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Summary returns per-department totals for the requested month.
//
// @Summary      Monthly payroll summary
// @Tags         reports
// @Produce      json
// @Param        month  query  string  true  "Month (YYYY-MM)"
// @Success      200    {object}  domain.ReportSummary
// @Failure      400    {object}  map[string]string
// @Router       /reports/summary [get]
func (h *ReportHandler) Summary(c echo.Context) error {
	month := c.QueryParam("month")
	if month == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "month is required (YYYY-MM)")
	}

	summary, err := h.service.Summary(c.Request().Context(), month)
	if err != nil {
		return err
	}

	metrics.ReportsGeneratedTotal.WithLabelValues(summary.Source).Inc()
	return c.JSON(http.StatusOK, summary)
}

// SummaryCSV returns the monthly summary as a CSV download.
//
// @Summary      Monthly payroll summary (CSV)
// @Tags         reports
// @Produce      text/csv
// @Param        month  query  string  true  "Month (YYYY-MM)"
// @Success      200    {string}  string
// @Failure      400    {object}  map[string]string
// @Router       /reports/summary.csv [get]
func (h *ReportHandler) SummaryCSV(c echo.Context) error {
	month := c.QueryParam("month")
	if month == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "month is required (YYYY-MM)")
	}

	csv, err := h.service.SummaryCSV(c.Request().Context(), month)
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="summary-%s.csv"`, month))
	return c.Blob(http.StatusOK, "text/csv", csv)
}
