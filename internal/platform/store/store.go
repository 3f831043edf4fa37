package store

import (
	"context"
	"errors"
	"time"

	"github.com/trialdesk/trialdesk/internal/platform/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and a transaction entry point for the multi-step operations
// that must be atomic (invitation acceptance, demo completion, default
// membership switches).
type Store interface {
	Users() Users
	Tenants() Tenants
	Memberships() Memberships
	Invitations() Invitations
	DemoSignups() DemoSignups
	Engagements() Engagements

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, committing when fn returns
	// nil and rolling back otherwise. Prefer this over Tx directly.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail looks a user up by lowercase email. Used during
	// login and invitation acceptance.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by the app via ULID).
	CreateUser(ctx context.Context, u domain.User) error

	// UpdatePasswordHash sets the password_hash and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, userID, newHash string) error

	// SetPlatformAdmin flips the platform_admin flag.
	SetPlatformAdmin(ctx context.Context, userID string, admin bool) error
}

type Tenants interface {
	// GetTenantByID fetches a tenant by id.
	GetTenantByID(ctx context.Context, id string) (domain.Tenant, error)

	// GetTenantBySlug fetches a tenant by its unique slug.
	GetTenantBySlug(ctx context.Context, slug string) (domain.Tenant, error)

	// CreateTenant inserts a new tenant.
	CreateTenant(ctx context.Context, t domain.Tenant) error

	// ListTenants returns all tenants ordered by creation date (newest
	// first). Platform admin surface only.
	ListTenants(ctx context.Context) ([]domain.Tenant, error)
}

type Memberships interface {
	// GetMembership returns the membership joining a user to a tenant.
	GetMembership(ctx context.Context, userID, tenantID string) (domain.Membership, error)

	// ListMembershipsByUser returns every tenant membership a user holds.
	ListMembershipsByUser(ctx context.Context, userID string) ([]domain.Membership, error)

	// ListMembershipsByTenant returns a tenant's member roster.
	ListMembershipsByTenant(ctx context.Context, tenantID string) ([]domain.Membership, error)

	// CreateMembership inserts a membership. Fails with ErrAlreadyExists
	// when the (user, tenant) pair already has one.
	CreateMembership(ctx context.Context, m domain.Membership) error

	// ClearDefault unsets is_default on all of a user's memberships.
	// Callers pair it with MarkDefault inside one transaction so the
	// "at most one default" invariant holds.
	ClearDefault(ctx context.Context, userID string) error

	// MarkDefault flags one membership as the user's default.
	MarkDefault(ctx context.Context, membershipID string) error
}

type Invitations interface {
	// CreateInvitation writes a new invitation (token_hash is the SHA-256
	// fingerprint of the opaque token).
	CreateInvitation(ctx context.Context, inv domain.Invitation) error

	// GetInvitationByTokenHash returns an invitation by fingerprint
	// regardless of status; callers decide how to treat non-pending rows.
	GetInvitationByTokenHash(ctx context.Context, hash string) (domain.Invitation, error)

	// GetInvitationByID fetches an invitation by id.
	GetInvitationByID(ctx context.Context, id string) (domain.Invitation, error)

	// ListInvitations returns invitations of one kind, optionally scoped
	// to a tenant, newest first.
	ListInvitations(ctx context.Context, kind, tenantID string) ([]domain.Invitation, error)

	// MarkInvitationAccepted transitions pending -> accepted, recording
	// the accepting user. Returns ErrNotFound when the row is no longer
	// pending, which is how concurrent accepts lose the race.
	MarkInvitationAccepted(ctx context.Context, invitationID, acceptedBy string) error

	// MarkInvitationRevoked transitions pending -> revoked. Returns
	// ErrNotFound when the row is not pending.
	MarkInvitationRevoked(ctx context.Context, invitationID string) error

	// ExpireOverdueInvitations flips pending rows whose expiry has passed
	// to expired, so listings agree with validate/accept behaviour.
	ExpireOverdueInvitations(ctx context.Context, now time.Time) (int64, error)
}

type DemoSignups interface {
	// CreateDemoSignup inserts a new signup request.
	CreateDemoSignup(ctx context.Context, d domain.DemoSignup) error

	// GetDemoSignupByVerifyTokenHash fetches a signup by its email
	// verification token fingerprint.
	GetDemoSignupByVerifyTokenHash(ctx context.Context, hash string) (domain.DemoSignup, error)

	// GetDemoSignupBySetupTokenHash fetches a signup by its password
	// setup token fingerprint.
	GetDemoSignupBySetupTokenHash(ctx context.Context, hash string) (domain.DemoSignup, error)

	// GetOpenDemoSignupByEmail returns the newest uncompleted signup for
	// an email, if any.
	GetOpenDemoSignupByEmail(ctx context.Context, email string) (domain.DemoSignup, error)

	// MarkDemoVerified transitions an unverified signup to verified and
	// stores the setup token. Returns ErrNotFound when already verified.
	MarkDemoVerified(ctx context.Context, signupID, setupTokenHash string, setupExpiresAt time.Time) error

	// MarkDemoCompleted transitions a verified, uncompleted signup to
	// completed and records the provisioned tenant. Returns ErrNotFound
	// when the stage guard fails.
	MarkDemoCompleted(ctx context.Context, signupID, tenantID string) error

	// DeleteDemoSignup removes a signup, invalidating its tokens. Used
	// when a repeated demo request supersedes an open signup.
	DeleteDemoSignup(ctx context.Context, signupID string) error

	// DeleteExpiredDemoSignups removes uncompleted signups whose tokens
	// have all expired.
	DeleteExpiredDemoSignups(ctx context.Context, now time.Time) (int64, error)
}

type Engagements interface {
	// GetEngagementByID fetches an engagement by id.
	GetEngagementByID(ctx context.Context, id string) (domain.Engagement, error)

	// ListEngagementsByTenant returns a tenant's engagements, newest
	// first.
	ListEngagementsByTenant(ctx context.Context, tenantID string) ([]domain.Engagement, error)

	// CreateEngagement inserts a new engagement.
	CreateEngagement(ctx context.Context, e domain.Engagement) error

	// UpdateEngagementStatus moves an engagement to a new status.
	UpdateEngagementStatus(ctx context.Context, engagementID, status string) error
}
