package models

import "time"

// User mirrors the users table.
type User struct {
	UserID       int64     `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}
