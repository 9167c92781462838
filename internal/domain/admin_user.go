package domain

import "time"

// AdminUser is a staff account for the admin panel
type AdminUser struct {
	ID           int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
