package model

import "time"

type Employee struct {
	EmployeeID int64      `json:"employeeID"`
	FirstName  string     `json:"firstName"`
	LastName   string     `json:"lastName"`
	Email      string     `json:"email"`
	HireDate   *time.Time `json:"hireDate,omitempty"`
}
