package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentType distinguishes an advance from a salary payment.
type PaymentType string

const (
	PaymentTypeAdvance PaymentType = "advance"
	PaymentTypeSalary  PaymentType = "salary"
)

// IsValid reports whether the payment type is one of the known values.
func (t PaymentType) IsValid() bool {
	return t == PaymentTypeAdvance || t == PaymentTypeSalary
}

// Payment is money handed to an employee, counted against their earnings.
type Payment struct {
	PaymentID  int64
	EmployeeID int64
	Amount     decimal.Decimal
	Type       PaymentType
	Note       string
	CreatedAt  time.Time

	// Employee name, joined on read for list views.
	EmployeeLastName  string
	EmployeeFirstName string
}
