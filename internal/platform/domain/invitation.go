package domain

import "time"

// Invitation kinds.
const (
	InvitationKindPlatform   = "platform"   // grants platform-admin, no tenant
	InvitationKindTenant     = "tenant"     // joins a tenant with a role
	InvitationKindEngagement = "engagement" // joins a tenant's POC engagement
)

// Invitation statuses. pending is the only non-terminal state: it moves to
// accepted exactly once, or to revoked/expired, and never back.
const (
	InvitationStatusPending  = "pending"
	InvitationStatusAccepted = "accepted"
	InvitationStatusRevoked  = "revoked"
	InvitationStatusExpired  = "expired"
)

type Invitation struct {
	ID           string
	TokenHash    string // SHA-256 fingerprint of the opaque token
	Kind         string
	Email        string // invitee address, stored lowercase
	Role         string
	TenantID     string // empty for platform invitations
	EngagementID string // engagement invitations only
	InvitedBy    string
	Status       string
	ExpiresAt    time.Time
	AcceptedBy   string // user who accepted, empty until then
	AcceptedAt   *time.Time
	RevokedAt    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Usable reports whether the invitation can still be validated or
// accepted at the given instant.
func (i Invitation) Usable(now time.Time) bool {
	return i.Status == InvitationStatusPending && now.Before(i.ExpiresAt)
}
