package models

import "time"

// User is a dashboard account. Only a single admin is seeded today, but the
// repository keeps the door open to more accounts later.
type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
