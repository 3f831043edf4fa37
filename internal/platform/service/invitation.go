package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/trialdesk/trialdesk/internal/platform/domain"
	"github.com/trialdesk/trialdesk/internal/platform/store"
	"github.com/trialdesk/trialdesk/pkg/cryptox"
	"github.com/trialdesk/trialdesk/pkg/idx"
	"github.com/trialdesk/trialdesk/pkg/slogx"
)

const (
	// DefaultInvitationTTL applies when a mint request carries no TTL.
	DefaultInvitationTTL = 7 * 24 * time.Hour
	// MaxInvitationTTL caps how far out an invitation may expire.
	MaxInvitationTTL = 30 * 24 * time.Hour
)

var (
	ErrInvalidOrExpiredToken    = errors.New("invitation token is invalid or expired")
	ErrAlreadyProcessed         = errors.New("invitation has already been processed")
	ErrEmailMismatch            = errors.New("invitation was issued for a different email address")
	ErrInvalidInvitationRequest = errors.New("invalid invitation request")
	ErrInvitationNotFound       = errors.New("invitation not found")
	ErrInvalidTenant            = errors.New("invalid tenant")
	ErrInvalidEngagement        = errors.New("invalid engagement")
	ErrInvalidRole              = errors.New("invalid role")
)

type InvitationService struct {
	Store store.Store
}

// MintInvitationParams carries the kind-specific fields for a new
// invitation. TenantID is required for tenant and engagement kinds and
// forbidden for platform kind; EngagementID only for engagement kind.
type MintInvitationParams struct {
	Kind         string
	Email        string
	Role         string
	TenantID     string
	EngagementID string
	InvitedBy    string
	TTL          time.Duration
}

// MintInvitation creates a new single-use invitation token. The raw token
// is returned exactly once; only its fingerprint is stored.
func (s *InvitationService) MintInvitation(
	ctx context.Context,
	params MintInvitationParams,
) (string, domain.Invitation, error) {
	log := slogx.FromContext(ctx)

	// 1. Normalise and validate common fields.
	email := strings.ToLower(strings.TrimSpace(params.Email))
	if email == "" || !strings.Contains(email, "@") {
		return "", domain.Invitation{}, ErrInvalidInvitationRequest
	}
	if params.InvitedBy == "" {
		return "", domain.Invitation{}, ErrInvalidInvitationRequest
	}

	ttl := params.TTL
	if ttl <= 0 {
		ttl = DefaultInvitationTTL
	}
	if ttl > MaxInvitationTTL {
		ttl = MaxInvitationTTL
	}

	// 2. Validate kind-specific references.
	role := params.Role
	switch params.Kind {
	case domain.InvitationKindPlatform:
		if params.TenantID != "" || params.EngagementID != "" {
			return "", domain.Invitation{}, ErrInvalidInvitationRequest
		}
		// Platform invitations grant the admin flag, not a tenant role.
		role = ""

	case domain.InvitationKindTenant:
		if params.EngagementID != "" {
			return "", domain.Invitation{}, ErrInvalidInvitationRequest
		}
		if role == "" {
			role = domain.RoleMember
		}
		if !domain.ValidRole(role) {
			return "", domain.Invitation{}, ErrInvalidRole
		}
		if err := s.checkTenant(ctx, params.TenantID); err != nil {
			return "", domain.Invitation{}, err
		}

	case domain.InvitationKindEngagement:
		// Customers join as viewers unless explicitly raised.
		if role == "" {
			role = domain.RoleViewer
		}
		if !domain.ValidRole(role) {
			return "", domain.Invitation{}, ErrInvalidRole
		}
		if err := s.checkTenant(ctx, params.TenantID); err != nil {
			return "", domain.Invitation{}, err
		}
		if err := s.checkEngagement(ctx, params.EngagementID, params.TenantID); err != nil {
			return "", domain.Invitation{}, err
		}

	default:
		return "", domain.Invitation{}, ErrInvalidInvitationRequest
	}

	// 3. Generate the token and store only its fingerprint.
	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		log.Error("failed to generate invitation token", slog.Any("error", err))
		return "", domain.Invitation{}, err
	}

	invitation := domain.Invitation{
		ID:           idx.New().String(),
		TokenHash:    cryptox.FingerprintToken(token),
		Kind:         params.Kind,
		Email:        email,
		Role:         role,
		TenantID:     params.TenantID,
		EngagementID: params.EngagementID,
		InvitedBy:    params.InvitedBy,
		Status:       domain.InvitationStatusPending,
		ExpiresAt:    time.Now().Add(ttl),
	}

	if err := s.Store.Invitations().CreateInvitation(ctx, invitation); err != nil {
		log.Error("failed to create invitation",
			slog.String("invitation_id", invitation.ID),
			slog.Any("error", err),
		)
		return "", domain.Invitation{}, err
	}

	log.Info("invitation minted",
		slog.String("invitation_id", invitation.ID),
		slog.String("kind", invitation.Kind),
		slog.String("tenant_id", invitation.TenantID),
		slog.Time("expires_at", invitation.ExpiresAt),
	)

	return token, invitation, nil
}

// ValidateInvitation returns the invitation metadata for a raw token iff
// it is pending and unexpired. Every other state, including an unknown
// token, reports ErrInvalidOrExpiredToken so callers cannot probe status.
func (s *InvitationService) ValidateInvitation(
	ctx context.Context,
	kind string,
	rawToken string,
) (domain.Invitation, error) {
	if rawToken == "" {
		return domain.Invitation{}, ErrInvalidOrExpiredToken
	}

	fingerprint := cryptox.FingerprintToken(rawToken)
	invitation, err := s.Store.Invitations().GetInvitationByTokenHash(ctx, fingerprint)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invitation{}, ErrInvalidOrExpiredToken
		}
		return domain.Invitation{}, err
	}

	if invitation.Kind != kind || !invitation.Usable(time.Now()) {
		return domain.Invitation{}, ErrInvalidOrExpiredToken
	}

	return invitation, nil
}

// AcceptInvitationParams carries the new-account fields for acceptance.
type AcceptInvitationParams struct {
	FullName        string
	Password        string
	PasswordConfirm string
}

// AcceptInvitation redeems a pending invitation, creating the invitee's
// account when none exists and attaching the granted access. The status
// transition and every membership mutation commit in one transaction, so
// of two concurrent accepts exactly one succeeds and the other observes
// ErrAlreadyProcessed.
func (s *InvitationService) AcceptInvitation(
	ctx context.Context,
	kind string,
	rawToken string,
	params AcceptInvitationParams,
) (domain.User, domain.Invitation, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate form input.
	if err := validatePassword(params.Password, params.PasswordConfirm); err != nil {
		return domain.User{}, domain.Invitation{}, err
	}
	fullName := strings.TrimSpace(params.FullName)
	if fullName == "" {
		return domain.User{}, domain.Invitation{}, newValidationError("full name is required")
	}

	// 2. Look the invitation up and check its state.
	invitation, err := s.lookupForAccept(ctx, kind, rawToken)
	if err != nil {
		return domain.User{}, domain.Invitation{}, err
	}

	// 3. Find or create the invitee, then flip the invitation, atomically.
	var user domain.User
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		existing, err := tx.Users().GetUserByEmail(ctx, invitation.Email)
		switch {
		case err == nil:
			user = existing
		case errors.Is(err, store.ErrNotFound):
			hash, err := cryptox.HashPassword(params.Password)
			if err != nil {
				return err
			}
			user = domain.User{
				ID:           idx.New().String(),
				Email:        invitation.Email,
				FullName:     fullName,
				PasswordHash: hash,
			}
			if err := tx.Users().CreateUser(ctx, user); err != nil {
				return err
			}
		default:
			return err
		}

		return s.grantAndConsume(ctx, tx, invitation, user.ID)
	})
	if err != nil {
		return domain.User{}, domain.Invitation{}, err
	}

	log.Info("invitation accepted",
		slog.String("invitation_id", invitation.ID),
		slog.String("kind", invitation.Kind),
		slog.String("user_id", user.ID),
	)

	return user, invitation, nil
}

// AcceptInvitationExisting redeems an engagement invitation for an
// already-authenticated user. The session's email must match the
// invitation's target.
func (s *InvitationService) AcceptInvitationExisting(
	ctx context.Context,
	kind string,
	rawToken string,
	userID string,
	userEmail string,
) (domain.Invitation, error) {
	log := slogx.FromContext(ctx)

	invitation, err := s.lookupForAccept(ctx, kind, rawToken)
	if err != nil {
		return domain.Invitation{}, err
	}

	if !strings.EqualFold(invitation.Email, userEmail) {
		log.Warn("invitation acceptance attempted by mismatched account",
			slog.String("invitation_id", invitation.ID),
		)
		return domain.Invitation{}, ErrEmailMismatch
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		return s.grantAndConsume(ctx, tx, invitation, userID)
	})
	if err != nil {
		return domain.Invitation{}, err
	}

	log.Info("invitation accepted by existing account",
		slog.String("invitation_id", invitation.ID),
		slog.String("user_id", userID),
	)

	return invitation, nil
}

// RevokeInvitation moves a pending invitation to revoked. Irreversible.
func (s *InvitationService) RevokeInvitation(ctx context.Context, kind, invitationID string) error {
	log := slogx.FromContext(ctx)

	invitation, err := s.Store.Invitations().GetInvitationByID(ctx, invitationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvitationNotFound
		}
		return err
	}
	if invitation.Kind != kind {
		return ErrInvitationNotFound
	}

	if err := s.Store.Invitations().MarkInvitationRevoked(ctx, invitationID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Row exists but is no longer pending.
			return ErrAlreadyProcessed
		}
		return err
	}

	log.Info("invitation revoked",
		slog.String("invitation_id", invitationID),
		slog.String("kind", kind),
	)
	return nil
}

// ListInvitations returns invitations of one kind, optionally scoped to a
// tenant.
func (s *InvitationService) ListInvitations(ctx context.Context, kind, tenantID string) ([]domain.Invitation, error) {
	return s.Store.Invitations().ListInvitations(ctx, kind, tenantID)
}

// lookupForAccept fetches an invitation by raw token and classifies its
// state: terminal states report ErrAlreadyProcessed, everything else that
// is unusable reports ErrInvalidOrExpiredToken.
func (s *InvitationService) lookupForAccept(
	ctx context.Context,
	kind string,
	rawToken string,
) (domain.Invitation, error) {
	if rawToken == "" {
		return domain.Invitation{}, ErrInvalidOrExpiredToken
	}

	fingerprint := cryptox.FingerprintToken(rawToken)
	invitation, err := s.Store.Invitations().GetInvitationByTokenHash(ctx, fingerprint)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invitation{}, ErrInvalidOrExpiredToken
		}
		return domain.Invitation{}, err
	}

	if invitation.Kind != kind {
		return domain.Invitation{}, ErrInvalidOrExpiredToken
	}

	switch invitation.Status {
	case domain.InvitationStatusAccepted, domain.InvitationStatusRevoked:
		return domain.Invitation{}, ErrAlreadyProcessed
	case domain.InvitationStatusExpired:
		return domain.Invitation{}, ErrInvalidOrExpiredToken
	}

	if time.Now().After(invitation.ExpiresAt) {
		return domain.Invitation{}, ErrInvalidOrExpiredToken
	}

	return invitation, nil
}

// grantAndConsume applies the invitation's grant and consumes the token
// inside the caller's transaction. The status flip runs first: if another
// request already consumed the token, nothing else is mutated.
func (s *InvitationService) grantAndConsume(
	ctx context.Context,
	tx store.Tx,
	invitation domain.Invitation,
	userID string,
) error {
	if err := tx.Invitations().MarkInvitationAccepted(ctx, invitation.ID, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAlreadyProcessed
		}
		return err
	}

	if invitation.Kind == domain.InvitationKindPlatform {
		return tx.Users().SetPlatformAdmin(ctx, userID, true)
	}

	// Tenant and engagement invitations grant a tenant membership. An
	// existing membership is left untouched; accepting twice through two
	// different invitations must not duplicate or demote it.
	_, err := tx.Memberships().GetMembership(ctx, userID, invitation.TenantID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	existing, err := tx.Memberships().ListMembershipsByUser(ctx, userID)
	if err != nil {
		return err
	}

	return tx.Memberships().CreateMembership(ctx, domain.Membership{
		ID:        idx.New().String(),
		UserID:    userID,
		TenantID:  invitation.TenantID,
		Role:      invitation.Role,
		IsDefault: len(existing) == 0, // first tenant becomes the default
	})
}

func (s *InvitationService) checkTenant(ctx context.Context, tenantID string) error {
	if tenantID == "" {
		return ErrInvalidTenant
	}
	if _, err := s.Store.Tenants().GetTenantByID(ctx, tenantID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvalidTenant
		}
		return err
	}
	return nil
}

func (s *InvitationService) checkEngagement(ctx context.Context, engagementID, tenantID string) error {
	if engagementID == "" {
		return ErrInvalidEngagement
	}
	engagement, err := s.Store.Engagements().GetEngagementByID(ctx, engagementID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvalidEngagement
		}
		return err
	}
	if engagement.TenantID != tenantID {
		return ErrInvalidEngagement
	}
	return nil
}
