package domain

import "errors"

var (
	ErrDepartmentNotFound = errors.New("department not found")
	ErrDepartmentExists   = errors.New("department already exists")
)

// Department carries the departmental baseline salary figures alongside the
// identifying code and name. The baseline figures feed the report fallback
// when a month has no recorded salaries.
type Department struct {
	DepartmentCode string  `json:"department_code" bson:"department_code"`
	DepartmentName string  `json:"department_name" bson:"department_name"`
	GrossSalary    float64 `json:"gross_salary" bson:"gross_salary"`
	TotalDeduction float64 `json:"total_deduction" bson:"total_deduction"`
}
