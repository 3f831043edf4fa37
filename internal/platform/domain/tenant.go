package domain

import "time"

type Tenant struct {
	ID        string
	Name      string
	Slug      string // URL-safe unique identifier
	CreatedAt time.Time
	UpdatedAt time.Time
}
