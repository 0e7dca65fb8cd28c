package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is the header row. TotalAmount is derived from the line items and is
// never edited directly.
type Sale struct {
	SalesID      int64           `json:"salesID"`
	OrderDate    time.Time       `json:"orderDate"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	CustomerID   *int64          `json:"customerID"`
	EmployeeID   *int64          `json:"employeeID"`
	CustomerName *string         `json:"customerName,omitempty"`
	EmployeeName *string         `json:"employeeName,omitempty"`
}
