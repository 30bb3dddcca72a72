package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quote mirrors the quotes table. Articles holds the serialized line items
// exactly as stored in the jsonb column.
type Quote struct {
	QuoteID      int64           `db:"id"`
	ClientID     int64           `db:"client_id"`
	Title        string          `db:"title"`
	Description  string          `db:"description"`
	Articles     []byte          `db:"articles"`
	Subtotal     decimal.Decimal `db:"subtotal"`
	TaxAmount    decimal.Decimal `db:"tax_amount"`
	Total        decimal.Decimal `db:"total"`
	Status       string          `db:"status"`
	ValidityDays int             `db:"validity_days"`
	CreatedAt    time.Time       `db:"created_at"`

	// Joined from clients for list reads.
	ClientLastName  *string
	ClientFirstName *string
}
