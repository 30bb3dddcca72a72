package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MeterWorkRecord is one unit-of-work entry for a meter employee.
// Total is persisted at creation time (meters × price per meter).
type MeterWorkRecord struct {
	MeterWorkID   int64
	EmployeeID    int64
	WorkDate      time.Time
	Meters        decimal.Decimal
	PricePerMeter decimal.Decimal
	Total         decimal.Decimal
	CreatedAt     time.Time
}
