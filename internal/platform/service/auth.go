package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/trialdesk/trialdesk/internal/platform/domain"
	"github.com/trialdesk/trialdesk/internal/platform/store"
	"github.com/trialdesk/trialdesk/pkg/cryptox"
	"github.com/trialdesk/trialdesk/pkg/jwtx"
	"github.com/trialdesk/trialdesk/pkg/slogx"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotATenantMember   = errors.New("user does not belong to the requested tenant")
	ErrNoTenantAccess     = errors.New("user has no tenant access")
)

type AuthService struct {
	Store  store.Store
	Signer *jwtx.Signer
}

// TenantChoice is one selectable membership in a tenant-selection
// challenge.
type TenantChoice struct {
	TenantID   string
	TenantName string
	Role       string
	IsDefault  bool
}

// LoginResult is either an issued session or a tenant-selection
// challenge, never both.
type LoginResult struct {
	// SessionToken is set when a session was issued.
	SessionToken string
	// Tenant and Role describe the issued session's scope; Tenant is nil
	// for platform-admin sessions outside any tenant.
	Tenant *domain.Tenant
	Role   string
	User   domain.User

	// TenantSelectionRequired is set when the user belongs to several
	// tenants and did not name one. Choices lists them.
	TenantSelectionRequired bool
	Choices                 []TenantChoice
}

// Login authenticates a user and issues a session scoped to exactly one
// tenant.
//
// When the user belongs to several tenants and named none, no session is
// issued; the caller must repeat the request with a tenant_id. That
// repeat carries the credentials again, so the selection is re-verified
// server-side rather than trusting any client-held list.
func (s *AuthService) Login(ctx context.Context, email, password, tenantID string) (LoginResult, error) {
	log := slogx.FromContext(ctx)

	// 1. Authenticate.
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return LoginResult{}, ErrInvalidCredentials
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, err
	}
	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			log.Warn("login failed", slog.String("user_id", user.ID))
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, err
	}

	// 2. Resolve the tenant scope.
	memberships, err := s.Store.Memberships().ListMembershipsByUser(ctx, user.ID)
	if err != nil {
		return LoginResult{}, err
	}

	// Explicit selection: re-check the membership server-side. A forged
	// tenant_id must never produce a session.
	if tenantID != "" {
		membership, err := s.Store.Memberships().GetMembership(ctx, user.ID, tenantID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				log.Warn("login attempted into tenant without membership",
					slog.String("user_id", user.ID),
					slog.String("tenant_id", tenantID),
				)
				return LoginResult{}, ErrNotATenantMember
			}
			return LoginResult{}, err
		}
		return s.issueTenantSession(ctx, user, membership)
	}

	switch len(memberships) {
	case 0:
		// Platform admins may operate without any tenant scope.
		if user.PlatformAdmin {
			return s.issuePlatformSession(user)
		}
		return LoginResult{}, ErrNoTenantAccess

	case 1:
		return s.issueTenantSession(ctx, user, memberships[0])

	default:
		// A default-flagged membership short-circuits the selection step.
		for _, m := range memberships {
			if m.IsDefault {
				return s.issueTenantSession(ctx, user, m)
			}
		}
		return s.selectionChallenge(ctx, user, memberships)
	}
}

// ChangePassword verifies the current password before storing the new
// one. A mismatch reports ErrInvalidCredentials, same as a failed login.
func (s *AuthService) ChangePassword(
	ctx context.Context,
	userID string,
	current string,
	newPassword string,
	newPasswordConfirm string,
) error {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvalidCredentials
		}
		return err
	}

	if err := cryptox.VerifyPassword(current, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			log.Warn("password change failed", slog.String("user_id", user.ID))
			return ErrInvalidCredentials
		}
		return err
	}

	if err := validatePassword(newPassword, newPasswordConfirm); err != nil {
		return err
	}

	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.Store.Users().UpdatePasswordHash(ctx, user.ID, hash); err != nil {
		return err
	}

	log.Info("password changed", slog.String("user_id", user.ID))
	return nil
}

func (s *AuthService) issueTenantSession(
	ctx context.Context,
	user domain.User,
	membership domain.Membership,
) (LoginResult, error) {
	log := slogx.FromContext(ctx)

	tenant, err := s.Store.Tenants().GetTenantByID(ctx, membership.TenantID)
	if err != nil {
		return LoginResult{}, err
	}

	claims := jwtx.ForUser(user.ID, user.Email)
	claims.TenantID = tenant.ID
	claims.Role = membership.Role
	claims.PlatformAdmin = user.PlatformAdmin

	token, err := s.Signer.Sign(claims)
	if err != nil {
		return LoginResult{}, err
	}

	log.Info("session issued",
		slog.String("user_id", user.ID),
		slog.String("tenant_id", tenant.ID),
		slog.String("role", membership.Role),
	)

	return LoginResult{
		SessionToken: token,
		Tenant:       &tenant,
		Role:         membership.Role,
		User:         user,
	}, nil
}

func (s *AuthService) issuePlatformSession(user domain.User) (LoginResult, error) {
	claims := jwtx.ForUser(user.ID, user.Email)
	claims.PlatformAdmin = true

	token, err := s.Signer.Sign(claims)
	if err != nil {
		return LoginResult{}, err
	}
	return LoginResult{SessionToken: token, User: user}, nil
}

func (s *AuthService) selectionChallenge(
	ctx context.Context,
	user domain.User,
	memberships []domain.Membership,
) (LoginResult, error) {
	choices := make([]TenantChoice, 0, len(memberships))
	for _, m := range memberships {
		tenant, err := s.Store.Tenants().GetTenantByID(ctx, m.TenantID)
		if err != nil {
			return LoginResult{}, err
		}
		choices = append(choices, TenantChoice{
			TenantID:   tenant.ID,
			TenantName: tenant.Name,
			Role:       m.Role,
			IsDefault:  m.IsDefault,
		})
	}

	return LoginResult{
		TenantSelectionRequired: true,
		Choices:                 choices,
		User:                    user,
	}, nil
}
