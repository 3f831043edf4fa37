package domain

import "time"

// DemoSignup tracks the self-service demo onboarding flow:
// created (unverified) -> verified (email confirmed) -> completed
// (password set, tenant provisioned). Each stage gates the next.
type DemoSignup struct {
	ID              string
	Email           string // stored lowercase
	Company         string
	VerifyTokenHash string
	SetupTokenHash  string
	Verified        bool
	VerifiedAt      *time.Time
	Completed       bool
	CompletedAt     *time.Time
	TenantID        string // set when the tenant is provisioned
	VerifyExpiresAt time.Time
	SetupExpiresAt  time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
