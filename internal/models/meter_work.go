package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MeterWorkRecord mirrors the meter_work table.
type MeterWorkRecord struct {
	MeterWorkID   int64           `db:"id"`
	EmployeeID    int64           `db:"employee_id"`
	WorkDate      time.Time       `db:"work_date"`
	Meters        decimal.Decimal `db:"meters"`
	PricePerMeter decimal.Decimal `db:"price_per_meter"`
	Total         decimal.Decimal `db:"total"`
	CreatedAt     time.Time       `db:"created_at"`
}
