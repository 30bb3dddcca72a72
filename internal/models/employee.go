package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee mirrors the employees table.
type Employee struct {
	EmployeeID int64            `db:"id"`
	LastName   string           `db:"last_name"`
	FirstName  string           `db:"first_name"`
	Phone      *string          `db:"phone"`
	Type       string           `db:"type"`
	DailyRate  *decimal.Decimal `db:"daily_rate"`
	CreatedAt  time.Time        `db:"created_at"`
}
