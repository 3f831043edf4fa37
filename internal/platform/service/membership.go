package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/trialdesk/trialdesk/internal/platform/domain"
	"github.com/trialdesk/trialdesk/internal/platform/store"
	"github.com/trialdesk/trialdesk/pkg/slogx"
)

var ErrMembershipNotFound = errors.New("membership not found")

type MembershipService struct {
	Store store.Store
}

// ListForUser returns every tenant membership the user holds.
func (s *MembershipService) ListForUser(ctx context.Context, userID string) ([]domain.Membership, error) {
	return s.Store.Memberships().ListMembershipsByUser(ctx, userID)
}

// TenantMember is one row of a tenant's member roster.
type TenantMember struct {
	UserID   string
	Email    string
	FullName string
	Role     string
	JoinedAt time.Time
}

// ListForTenant returns the tenant's member roster with account details.
func (s *MembershipService) ListForTenant(ctx context.Context, tenantID string) ([]TenantMember, error) {
	memberships, err := s.Store.Memberships().ListMembershipsByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	members := make([]TenantMember, 0, len(memberships))
	for _, m := range memberships {
		user, err := s.Store.Users().GetUserByID(ctx, m.UserID)
		if err != nil {
			return nil, err
		}
		members = append(members, TenantMember{
			UserID:   user.ID,
			Email:    user.Email,
			FullName: user.FullName,
			Role:     m.Role,
			JoinedAt: m.CreatedAt,
		})
	}
	return members, nil
}

// SetDefault flags the user's membership in tenantID as their default,
// clearing any previous default in the same transaction so at most one
// exists per user.
func (s *MembershipService) SetDefault(ctx context.Context, userID, tenantID string) error {
	log := slogx.FromContext(ctx)

	membership, err := s.Store.Memberships().GetMembership(ctx, userID, tenantID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrMembershipNotFound
		}
		return err
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Memberships().ClearDefault(ctx, userID); err != nil {
			return err
		}
		return tx.Memberships().MarkDefault(ctx, membership.ID)
	})
	if err != nil {
		return err
	}

	log.Info("default tenant updated",
		slog.String("user_id", userID),
		slog.String("tenant_id", tenantID),
	)
	return nil
}
