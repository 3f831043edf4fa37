package service

import (
	"context"
	"testing"
	"time"

	"github.com/trialdesk/trialdesk/internal/platform/domain"
	"github.com/trialdesk/trialdesk/pkg/cryptox"
	"github.com/trialdesk/trialdesk/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestDemoFlow(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	svc := &DemoService{Store: st}
	ctx := context.Background()

	verifyToken, signup, err := svc.RequestDemo(ctx, "Founder@Startup.Test", "Startup Inc")
	require.NoError(t, err)
	require.NotEmpty(t, verifyToken)
	require.Equal(t, "founder@startup.test", signup.Email)
	require.False(t, signup.Verified)

	setupToken, verified, err := svc.VerifyEmail(ctx, verifyToken)
	require.NoError(t, err)
	require.NotEmpty(t, setupToken)
	require.True(t, verified.Verified)

	user, tenant, err := svc.CompleteSignup(ctx, setupToken, "hunter2hunter2", "hunter2hunter2")
	require.NoError(t, err)
	require.Equal(t, "founder@startup.test", user.Email)
	require.Equal(t, "Startup Inc", tenant.Name)
	require.Equal(t, "startup-inc", tenant.Slug)

	// The provisioned membership is an admin default.
	m, err := st.Memberships().GetMembership(ctx, user.ID, tenant.ID)
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, m.Role)
	require.True(t, m.IsDefault)
}

func TestRequestDemo_Validation(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	svc := &DemoService{Store: st}
	ctx := context.Background()

	t.Run("rejects malformed email", func(t *testing.T) {
		_, _, err := svc.RequestDemo(ctx, "not-an-email", "Startup Inc")
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("rejects empty company", func(t *testing.T) {
		_, _, err := svc.RequestDemo(ctx, "founder@startup.test", "  ")
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("rejects existing accounts", func(t *testing.T) {
		seedUser(t, st, "taken@startup.test", "takenpass1")

		_, _, err := svc.RequestDemo(ctx, "Taken@Startup.Test", "Startup Inc")
		require.ErrorIs(t, err, ErrAccountExists)
	})
}

func TestVerifyEmail_Guards(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	svc := &DemoService{Store: st}
	ctx := context.Background()

	t.Run("unknown token", func(t *testing.T) {
		garbage, err := cryptox.GenerateToken(cryptox.TokenSize256)
		require.NoError(t, err)

		_, _, err = svc.VerifyEmail(ctx, garbage)
		require.ErrorIs(t, err, ErrInvalidOrExpiredToken)
	})

	t.Run("replay reports already processed", func(t *testing.T) {
		verifyToken, _, err := svc.RequestDemo(ctx, "replay@startup.test", "Replay Inc")
		require.NoError(t, err)

		_, _, err = svc.VerifyEmail(ctx, verifyToken)
		require.NoError(t, err)
		_, _, err = svc.VerifyEmail(ctx, verifyToken)
		require.ErrorIs(t, err, ErrAlreadyProcessed)
	})

	t.Run("expired link", func(t *testing.T) {
		raw, err := cryptox.GenerateToken(cryptox.TokenSize256)
		require.NoError(t, err)
		require.NoError(t, st.DemoSignups().CreateDemoSignup(ctx, domain.DemoSignup{
			ID:              idx.New().String(),
			Email:           "slow@startup.test",
			Company:         "Slow Inc",
			VerifyTokenHash: cryptox.FingerprintToken(raw),
			VerifyExpiresAt: time.Now().Add(-time.Minute),
		}))

		_, _, err = svc.VerifyEmail(ctx, raw)
		require.ErrorIs(t, err, ErrInvalidOrExpiredToken)
	})
}

func TestCompleteSignup_Guards(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	svc := &DemoService{Store: st}
	ctx := context.Background()

	t.Run("verify token cannot set the password", func(t *testing.T) {
		// The request stage issues only a verification token; presenting it
		// at the password stage must fail, gating set-password on
		// verify-email.
		verifyToken, _, err := svc.RequestDemo(ctx, "eager@startup.test", "Eager Inc")
		require.NoError(t, err)

		_, _, err = svc.CompleteSignup(ctx, verifyToken, "hunter2hunter2", "hunter2hunter2")
		require.ErrorIs(t, err, ErrInvalidOrExpiredToken)
	})

	t.Run("weak password", func(t *testing.T) {
		verifyToken, _, err := svc.RequestDemo(ctx, "weak@startup.test", "Weak Inc")
		require.NoError(t, err)
		setupToken, _, err := svc.VerifyEmail(ctx, verifyToken)
		require.NoError(t, err)

		_, _, err = svc.CompleteSignup(ctx, setupToken, "short", "short")
		require.ErrorIs(t, err, ErrValidation)

		// A validation failure does not consume the token.
		_, _, err = svc.CompleteSignup(ctx, setupToken, "hunter2hunter2", "hunter2hunter2")
		require.NoError(t, err)
	})

	t.Run("replay reports already processed", func(t *testing.T) {
		verifyToken, _, err := svc.RequestDemo(ctx, "twice@startup.test", "Twice Inc")
		require.NoError(t, err)
		setupToken, _, err := svc.VerifyEmail(ctx, verifyToken)
		require.NoError(t, err)

		_, _, err = svc.CompleteSignup(ctx, setupToken, "hunter2hunter2", "hunter2hunter2")
		require.NoError(t, err)
		_, _, err = svc.CompleteSignup(ctx, setupToken, "hunter2hunter2", "hunter2hunter2")
		require.ErrorIs(t, err, ErrAlreadyProcessed)
	})

	t.Run("expired setup token", func(t *testing.T) {
		raw, err := cryptox.GenerateToken(cryptox.TokenSize256)
		require.NoError(t, err)
		signup := domain.DemoSignup{
			ID:              idx.New().String(),
			Email:           "stale@startup.test",
			Company:         "Stale Inc",
			VerifyTokenHash: cryptox.FingerprintToken(raw),
			VerifyExpiresAt: time.Now().Add(DemoVerifyTTL),
		}
		require.NoError(t, st.DemoSignups().CreateDemoSignup(ctx, signup))
		setupRaw, err := cryptox.GenerateToken(cryptox.TokenSize256)
		require.NoError(t, err)
		require.NoError(t, st.DemoSignups().MarkDemoVerified(ctx, signup.ID,
			cryptox.FingerprintToken(setupRaw), time.Now().Add(-time.Minute)))

		_, _, err = svc.CompleteSignup(ctx, setupRaw, "hunter2hunter2", "hunter2hunter2")
		require.ErrorIs(t, err, ErrInvalidOrExpiredToken)
	})
}

func TestCompleteSignup_SlugCollision(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	svc := &DemoService{Store: st}
	ctx := context.Background()

	seedTenant(t, st, "Collide Inc", "collide-inc")

	verifyToken, _, err := svc.RequestDemo(ctx, "founder@collide.test", "Collide Inc")
	require.NoError(t, err)
	setupToken, _, err := svc.VerifyEmail(ctx, verifyToken)
	require.NoError(t, err)

	_, tenant, err := svc.CompleteSignup(ctx, setupToken, "hunter2hunter2", "hunter2hunter2")
	require.NoError(t, err)
	require.NotEqual(t, "collide-inc", tenant.Slug)
	require.Contains(t, tenant.Slug, "collide-inc-")
}

func TestRequestDemo_SupersedesOpenSignup(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	svc := &DemoService{Store: st}
	ctx := context.Background()

	firstToken, first, err := svc.RequestDemo(ctx, "founder@startup.test", "Startup Inc")
	require.NoError(t, err)

	secondToken, second, err := svc.RequestDemo(ctx, "founder@startup.test", "Startup Inc")
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)

	// The superseded verification link is dead; the new one works.
	_, _, err = svc.VerifyEmail(ctx, firstToken)
	require.ErrorIs(t, err, ErrInvalidOrExpiredToken)
	_, verified, err := svc.VerifyEmail(ctx, secondToken)
	require.NoError(t, err)
	require.Equal(t, second.ID, verified.ID)
}
