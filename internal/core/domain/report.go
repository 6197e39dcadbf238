package domain

// DepartmentTotals is one row of the monthly payroll summary.
type DepartmentTotals struct {
	DepartmentCode string  `json:"department_code"`
	GrossTotal     float64 `json:"gross_total"`
	DeductionTotal float64 `json:"deduction_total"`
	NetTotal       float64 `json:"net_total"`
}

// ReportTotals aggregates all departments for the month.
type ReportTotals struct {
	GrossTotal     float64 `json:"gross_total"`
	DeductionTotal float64 `json:"deduction_total"`
	NetTotal       float64 `json:"net_total"`
}

// ReportSummary is the monthly payroll report: per-department rows plus
// grand totals. Fallback reports are derived from department baseline
// figures when the month has no salary rows.
type ReportSummary struct {
	Month         string             `json:"month"`
	PerDepartment []DepartmentTotals `json:"per_department"`
	Totals        ReportTotals       `json:"totals"`
	Fallback      bool               `json:"fallback,omitempty"`

	// Source records how the summary was produced ("live", "cache", or
	// "fallback"); it is not part of the response body.
	Source string `json:"-"`
}
