package domain

import (
	"errors"
	"time"
)

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmployeeExists   = errors.New("employee already exists")
)

// Employee is a personnel record keyed by employee number.
type Employee struct {
	EmployeeNumber string    `json:"employee_number" bson:"employee_number"`
	FirstName      string    `json:"first_name" bson:"first_name"`
	LastName       string    `json:"last_name" bson:"last_name"`
	Position       string    `json:"position" bson:"position"`
	Address        string    `json:"address" bson:"address"`
	Telephone      string    `json:"telephone" bson:"telephone"`
	Gender         string    `json:"gender" bson:"gender"`
	HireDate       time.Time `json:"hire_date" bson:"hire_date"`
	DepartmentCode string    `json:"department_code" bson:"department_code"`
}
