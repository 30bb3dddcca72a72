package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaterialStep mirrors the material_steps table.
type MaterialStep struct {
	StepID    int64     `db:"id"`
	ClientID  int64     `db:"client_id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

// MaterialDescription mirrors the material_descriptions table.
type MaterialDescription struct {
	DescriptionID int64            `db:"id"`
	StepID        int64            `db:"step_id"`
	Description   string           `db:"description"`
	Quantity      *decimal.Decimal `db:"quantity"`
	Price         *decimal.Decimal `db:"price"`
	CreatedAt     time.Time        `db:"created_at"`
}
