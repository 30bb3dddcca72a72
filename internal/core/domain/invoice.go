package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceLine is one billed item of an invoice. Its total is never stored;
// it is derived as quantity × unit price on read.
type InvoiceLine struct {
	LineID      int64
	InvoiceID   int64
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
}

// InvoicePayment is a payment received against an invoice.
type InvoicePayment struct {
	PaymentID   int64
	InvoiceID   int64
	Amount      decimal.Decimal
	PaymentType string
	PaymentDate *time.Time
	CreatedAt   time.Time
}

// Invoice is a bill issued to a client. Lines are cascade-deleted with the
// invoice and fully replaced on update.
type Invoice struct {
	InvoiceID   int64
	ClientID    int64
	Description string
	InvoiceDate time.Time
	CreatedAt   time.Time

	Lines    []InvoiceLine
	Payments []InvoicePayment
}
