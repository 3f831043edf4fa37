package domain

import "time"

// Engagement statuses.
const (
	EngagementStatusDraft    = "draft"
	EngagementStatusActive   = "active"
	EngagementStatusWon      = "won"
	EngagementStatusLost     = "lost"
	EngagementStatusArchived = "archived"
)

// Engagement is a POC engagement between a vendor tenant and a customer.
type Engagement struct {
	ID           string
	TenantID     string
	Name         string
	CustomerName string
	Status       string
	CreatedBy    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
