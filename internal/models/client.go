package models

import "time"

// Client mirrors the clients table.
type Client struct {
	ClientID  int64     `db:"id"`
	LastName  string    `db:"last_name"`
	FirstName string    `db:"first_name"`
	Phone     *string   `db:"phone"`
	Address   *string   `db:"address"`
	CreatedAt time.Time `db:"created_at"`
}
