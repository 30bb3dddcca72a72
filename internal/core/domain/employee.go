package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmployeeType distinguishes how an employee is paid.
type EmployeeType string

const (
	// EmployeeTypeDaily is paid a fixed rate per day present.
	EmployeeTypeDaily EmployeeType = "daily"
	// EmployeeTypeMeter is paid per meter of completed work.
	EmployeeTypeMeter EmployeeType = "meter"
)

// Employee is a worker of the business. Daily employees accrue pay from
// attendance records, meter employees from meter work records.
type Employee struct {
	EmployeeID int64
	LastName   string
	FirstName  string
	Phone      string
	Type       EmployeeType
	DailyRate  *decimal.Decimal // nil for meter employees
	CreatedAt  time.Time
}

// PayrollSummary carries the derived pay figures for one employee.
// Balance may be negative when the employee has been overpaid.
type PayrollSummary struct {
	EmployeeID int64
	Earned     decimal.Decimal
	Paid       decimal.Decimal
	Balance    decimal.Decimal
}
