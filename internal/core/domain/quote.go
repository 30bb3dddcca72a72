package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteStatus is the lifecycle state of a quote.
type QuoteStatus string

const (
	QuoteStatusPending  QuoteStatus = "pending"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusRefused  QuoteStatus = "refused"
)

// Article is one line item of a quote.
type Article struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Total       decimal.Decimal `json:"total"`
}

// Quote (devis) is a priced offer to a client. Articles are stored as an
// ordered list alongside the quote, and the totals are a snapshot taken at
// creation time; they are never recomputed on read.
type Quote struct {
	QuoteID      int64
	ClientID     int64
	Title        string
	Description  string
	Articles     []Article
	Subtotal     decimal.Decimal
	TaxAmount    decimal.Decimal
	Total        decimal.Decimal
	Status       QuoteStatus
	ValidityDays int
	CreatedAt    time.Time

	// Client name, joined on read for list views.
	ClientLastName  string
	ClientFirstName string
}
