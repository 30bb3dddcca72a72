package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice mirrors the invoices table.
type Invoice struct {
	InvoiceID   int64     `db:"id"`
	ClientID    int64     `db:"client_id"`
	Description string    `db:"description"`
	InvoiceDate time.Time `db:"invoice_date"`
	CreatedAt   time.Time `db:"created_at"`
}

// InvoiceLine mirrors the invoice_lines table.
type InvoiceLine struct {
	LineID      int64           `db:"id"`
	InvoiceID   int64           `db:"invoice_id"`
	Description string          `db:"description"`
	Quantity    decimal.Decimal `db:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
}

// InvoicePayment mirrors the invoice_payments table.
type InvoicePayment struct {
	PaymentID   int64           `db:"id"`
	InvoiceID   int64           `db:"invoice_id"`
	Amount      decimal.Decimal `db:"amount"`
	PaymentType *string         `db:"payment_type"`
	PaymentDate *time.Time      `db:"payment_date"`
	CreatedAt   time.Time       `db:"created_at"`
}
