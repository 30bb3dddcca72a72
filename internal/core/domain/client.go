package domain

import "time"

// Client is a customer of the business; it owns invoices, quotes and
// material steps.
type Client struct {
	ClientID  int64
	LastName  string
	FirstName string
	Phone     string
	Address   string
	CreatedAt time.Time
}
