package service

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/trialdesk/trialdesk/internal/platform/domain"
	"github.com/trialdesk/trialdesk/pkg/cryptox"
	"github.com/trialdesk/trialdesk/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestHousekeeping_Sweep(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	inviter := seedUser(t, st, "owner@acme.test", "ownerpass1")
	tenant := seedTenant(t, st, "Acme", "acme")
	ctx := context.Background()

	// One overdue pending invitation, one still live.
	overdueRaw, err := cryptox.GenerateToken(cryptox.TokenSize256)
	require.NoError(t, err)
	overdue := domain.Invitation{
		ID:        idx.New().String(),
		TokenHash: cryptox.FingerprintToken(overdueRaw),
		Kind:      domain.InvitationKindTenant,
		Email:     "overdue@acme.test",
		Role:      domain.RoleMember,
		TenantID:  tenant.ID,
		InvitedBy: inviter.ID,
		Status:    domain.InvitationStatusPending,
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	require.NoError(t, st.Invitations().CreateInvitation(ctx, overdue))

	inviteSvc := &InvitationService{Store: st}
	_, live, err := inviteSvc.MintInvitation(ctx, MintInvitationParams{
		Kind:      domain.InvitationKindTenant,
		Email:     "live@acme.test",
		TenantID:  tenant.ID,
		InvitedBy: inviter.ID,
	})
	require.NoError(t, err)

	// One abandoned demo signup past every deadline.
	abandonedRaw, err := cryptox.GenerateToken(cryptox.TokenSize256)
	require.NoError(t, err)
	require.NoError(t, st.DemoSignups().CreateDemoSignup(ctx, domain.DemoSignup{
		ID:              idx.New().String(),
		Email:           "abandoned@startup.test",
		Company:         "Abandoned Inc",
		VerifyTokenHash: cryptox.FingerprintToken(abandonedRaw),
		VerifyExpiresAt: time.Now().Add(-time.Hour),
	}))

	hk := NewHousekeepingService(st, slog.Default(), time.Hour)
	hk.Start()
	hk.Stop()

	// The startup sweep ran before Stop returned.
	got, err := st.Invitations().GetInvitationByID(ctx, overdue.ID)
	require.NoError(t, err)
	require.Equal(t, domain.InvitationStatusExpired, got.Status)

	got, err = st.Invitations().GetInvitationByID(ctx, live.ID)
	require.NoError(t, err)
	require.Equal(t, domain.InvitationStatusPending, got.Status)

	_, err = st.DemoSignups().GetDemoSignupByVerifyTokenHash(ctx, cryptox.FingerprintToken(abandonedRaw))
	require.Error(t, err)
}
