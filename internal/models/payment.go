package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment mirrors the payments table (employee payments).
type Payment struct {
	PaymentID  int64           `db:"id"`
	EmployeeID int64           `db:"employee_id"`
	Amount     decimal.Decimal `db:"amount"`
	Type       string          `db:"type"`
	Note       *string         `db:"note"`
	CreatedAt  time.Time       `db:"created_at"`

	// Joined from employees for list reads.
	EmployeeLastName  *string
	EmployeeFirstName *string
}
