package domain

import "time"

type User struct {
	ID            string
	Email         string // stored lowercase, unique
	FullName      string
	PasswordHash  string // argon2id encoded
	PlatformAdmin bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
