package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaterialDescription is one cost entry of a material step. Quantity and
// price are optional; a missing value counts as zero in totals.
type MaterialDescription struct {
	DescriptionID int64
	StepID        int64
	Description   string
	Quantity      *decimal.Decimal
	Price         *decimal.Decimal
	CreatedAt     time.Time
}

// MaterialStep is a named stage of work for a client, grouping material and
// ingredient cost descriptions. Descriptions are cascade-deleted with the
// step and fully replaced on update.
type MaterialStep struct {
	StepID    int64
	ClientID  int64
	Name      string
	CreatedAt time.Time

	Descriptions []MaterialDescription
}
