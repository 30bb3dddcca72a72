package domain

import "time"

// User is an operator account for the back office.
type User struct {
	UserID       int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
