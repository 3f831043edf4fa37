package service

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"testing"
	"time"

	"github.com/trialdesk/trialdesk/internal/platform/domain"
	"github.com/trialdesk/trialdesk/pkg/idx"
	"github.com/trialdesk/trialdesk/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newTestSigner(t *testing.T) *jwtx.Signer {
	t.Helper()

	_, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	signer, err := jwtx.NewSigner("trialdesk-test", priv, time.Hour)
	require.NoError(t, err)
	return signer
}

func TestLogin_SingleTenant(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	user := seedUser(t, st, "alice@acme.test", "alicepass1")
	tenant := seedTenant(t, st, "Acme", "acme")
	seedMembership(t, st, user, tenant, domain.RoleAdmin, false)

	signer := newTestSigner(t)
	svc := &AuthService{Store: st, Signer: signer}

	result, err := svc.Login(context.Background(), "Alice@Acme.Test", "alicepass1", "")
	require.NoError(t, err)
	require.False(t, result.TenantSelectionRequired)
	require.NotEmpty(t, result.SessionToken)
	require.Equal(t, tenant.ID, result.Tenant.ID)
	require.Equal(t, domain.RoleAdmin, result.Role)

	claims, err := signer.Verify(result.SessionToken)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.Subject)
	require.Equal(t, tenant.ID, claims.TenantID)
	require.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestLogin_BadCredentials(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	user := seedUser(t, st, "alice@acme.test", "alicepass1")
	tenant := seedTenant(t, st, "Acme", "acme")
	seedMembership(t, st, user, tenant, domain.RoleAdmin, false)

	svc := &AuthService{Store: st, Signer: newTestSigner(t)}
	ctx := context.Background()

	_, err := svc.Login(ctx, "alice@acme.test", "wrongpassword", "")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	// Unknown accounts report the same error as bad passwords.
	_, err = svc.Login(ctx, "nobody@acme.test", "whatever123", "")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "", "", "")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_TenantSelection(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	user := seedUser(t, st, "bob@multi.test", "bobpass123")
	acme := seedTenant(t, st, "Acme", "acme")
	globex := seedTenant(t, st, "Globex", "globex")
	seedMembership(t, st, user, acme, domain.RoleAdmin, false)
	seedMembership(t, st, user, globex, domain.RoleMember, false)

	signer := newTestSigner(t)
	svc := &AuthService{Store: st, Signer: signer}
	ctx := context.Background()

	// No tenant named: a challenge, not a session.
	result, err := svc.Login(ctx, "bob@multi.test", "bobpass123", "")
	require.NoError(t, err)
	require.True(t, result.TenantSelectionRequired)
	require.Empty(t, result.SessionToken)
	require.Len(t, result.Choices, 2)

	// The repeat names a tenant and carries credentials again.
	result, err = svc.Login(ctx, "bob@multi.test", "bobpass123", globex.ID)
	require.NoError(t, err)
	require.NotEmpty(t, result.SessionToken)

	claims, err := signer.Verify(result.SessionToken)
	require.NoError(t, err)
	require.Equal(t, globex.ID, claims.TenantID)
	require.Equal(t, domain.RoleMember, claims.Role)
}

func TestLogin_ForgedTenantNeverGrantsSession(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	user := seedUser(t, st, "bob@multi.test", "bobpass123")
	acme := seedTenant(t, st, "Acme", "acme")
	other := seedTenant(t, st, "Globex", "globex")
	seedMembership(t, st, user, acme, domain.RoleAdmin, false)

	svc := &AuthService{Store: st, Signer: newTestSigner(t)}
	ctx := context.Background()

	// A tenant the user does not belong to.
	result, err := svc.Login(ctx, "bob@multi.test", "bobpass123", other.ID)
	require.ErrorIs(t, err, ErrNotATenantMember)
	require.Empty(t, result.SessionToken)

	// A tenant that does not exist at all.
	result, err = svc.Login(ctx, "bob@multi.test", "bobpass123", idx.New().String())
	require.ErrorIs(t, err, ErrNotATenantMember)
	require.Empty(t, result.SessionToken)
}

func TestLogin_DefaultMembershipShortCircuits(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	user := seedUser(t, st, "carol@multi.test", "carolpass1")
	acme := seedTenant(t, st, "Acme", "acme")
	globex := seedTenant(t, st, "Globex", "globex")
	seedMembership(t, st, user, acme, domain.RoleMember, false)
	seedMembership(t, st, user, globex, domain.RoleAdmin, true)

	signer := newTestSigner(t)
	svc := &AuthService{Store: st, Signer: signer}

	result, err := svc.Login(context.Background(), "carol@multi.test", "carolpass1", "")
	require.NoError(t, err)
	require.False(t, result.TenantSelectionRequired)

	claims, err := signer.Verify(result.SessionToken)
	require.NoError(t, err)
	require.Equal(t, globex.ID, claims.TenantID)
}

func TestLogin_NoMemberships(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	svc := &AuthService{Store: st, Signer: newTestSigner(t)}
	ctx := context.Background()

	t.Run("regular user is refused", func(t *testing.T) {
		seedUser(t, st, "orphan@none.test", "orphanpass")

		_, err := svc.Login(ctx, "orphan@none.test", "orphanpass", "")
		require.ErrorIs(t, err, ErrNoTenantAccess)
	})

	t.Run("platform admin gets an unscoped session", func(t *testing.T) {
		admin := seedUser(t, st, "root@platform.test", "rootpass12")
		require.NoError(t, st.Users().SetPlatformAdmin(ctx, admin.ID, true))

		result, err := svc.Login(ctx, "root@platform.test", "rootpass12", "")
		require.NoError(t, err)
		require.NotEmpty(t, result.SessionToken)
		require.Nil(t, result.Tenant)

		claims, err := svc.Signer.Verify(result.SessionToken)
		require.NoError(t, err)
		require.Empty(t, claims.TenantID)
		require.True(t, claims.PlatformAdmin)
	})
}

func TestSetDefaultMembership(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	user := seedUser(t, st, "dana@multi.test", "danapass12")
	acme := seedTenant(t, st, "Acme", "acme")
	globex := seedTenant(t, st, "Globex", "globex")
	seedMembership(t, st, user, acme, domain.RoleAdmin, true)
	seedMembership(t, st, user, globex, domain.RoleMember, false)

	svc := &MembershipService{Store: st}
	ctx := context.Background()

	require.NoError(t, svc.SetDefault(ctx, user.ID, globex.ID))

	// At most one default at any time.
	got, err := st.Memberships().GetMembership(ctx, user.ID, acme.ID)
	require.NoError(t, err)
	require.False(t, got.IsDefault)
	got, err = st.Memberships().GetMembership(ctx, user.ID, globex.ID)
	require.NoError(t, err)
	require.True(t, got.IsDefault)

	t.Run("unknown membership", func(t *testing.T) {
		err := svc.SetDefault(ctx, user.ID, idx.New().String())
		require.ErrorIs(t, err, ErrMembershipNotFound)
	})
}

func TestChangePassword(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	user := seedUser(t, st, "erin@acme.test", "erinpass12")
	tenant := seedTenant(t, st, "Acme", "acme")
	seedMembership(t, st, user, tenant, domain.RoleMember, true)

	signer := newTestSigner(t)
	svc := &AuthService{Store: st, Signer: signer}
	ctx := context.Background()

	t.Run("wrong current password is rejected", func(t *testing.T) {
		err := svc.ChangePassword(ctx, user.ID, "not-the-password", "freshpass12", "freshpass12")
		require.ErrorIs(t, err, ErrInvalidCredentials)

		// The old password still works.
		_, err = svc.Login(ctx, user.Email, "erinpass12", "")
		require.NoError(t, err)
	})

	t.Run("weak new password fails validation", func(t *testing.T) {
		err := svc.ChangePassword(ctx, user.ID, "erinpass12", "short", "short")
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("mismatched confirmation fails validation", func(t *testing.T) {
		err := svc.ChangePassword(ctx, user.ID, "erinpass12", "freshpass12", "freshpass13")
		require.ErrorIs(t, err, ErrValidation)
	})

	require.NoError(t, svc.ChangePassword(ctx, user.ID, "erinpass12", "freshpass12", "freshpass12"))

	_, err := svc.Login(ctx, user.Email, "erinpass12", "")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(ctx, user.Email, "freshpass12", "")
	require.NoError(t, err)
}

func TestListTenantMembers(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	tenant := seedTenant(t, st, "Acme", "acme")
	other := seedTenant(t, st, "Globex", "globex")
	owner := seedUser(t, st, "owner@acme.test", "ownerpass1")
	hire := seedUser(t, st, "hire@acme.test", "hirepass12")
	outsider := seedUser(t, st, "out@globex.test", "outpass123")
	seedMembership(t, st, owner, tenant, domain.RoleAdmin, true)
	seedMembership(t, st, hire, tenant, domain.RoleMember, true)
	seedMembership(t, st, outsider, other, domain.RoleAdmin, true)

	svc := &MembershipService{Store: st}

	members, err := svc.ListForTenant(context.Background(), tenant.ID)
	require.NoError(t, err)
	require.Len(t, members, 2)

	byEmail := make(map[string]TenantMember, len(members))
	for _, m := range members {
		byEmail[m.Email] = m
	}
	require.Equal(t, domain.RoleAdmin, byEmail["owner@acme.test"].Role)
	require.Equal(t, domain.RoleMember, byEmail["hire@acme.test"].Role)
	require.NotContains(t, byEmail, "out@globex.test")
	require.False(t, byEmail["owner@acme.test"].JoinedAt.IsZero())
}
