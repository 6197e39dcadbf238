package domain

import (
	"errors"
	"regexp"
)

var (
	ErrSalaryNotFound = errors.New("salary record not found")
	ErrSalaryExists   = errors.New("salary record already exists")
	ErrInvalidMonth   = errors.New("month must be in YYYY-MM format")
)

var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// ValidMonth reports whether s is a payroll month in YYYY-MM format.
func ValidMonth(s string) bool {
	return monthPattern.MatchString(s)
}

// Salary is one payroll line: what an employee earned in a given month.
// The (EmployeeNumber, Month) pair is the record's composite key.
type Salary struct {
	EmployeeNumber string  `json:"employee_number" bson:"employee_number"`
	Month          string  `json:"month" bson:"month"`
	GrossSalary    float64 `json:"gross_salary" bson:"gross_salary"`
	TotalDeduction float64 `json:"total_deduction" bson:"total_deduction"`
	NetSalary      float64 `json:"net_salary" bson:"net_salary"`
}
