package user

import "time"

// AdminUser is an operator allowed into the admin panel.
type AdminUser struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

const (
	MaxUsernameLen = 80
	MinPasswordLen = 8
)
