package platform_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/trialdesk/trialdesk/pkg/platformsdk"
)

// TestDemoOnboardingFlow walks the self-service signup end to end:
// request a demo, verify the email, set a password, then log in to the
// freshly provisioned tenant.
func TestDemoOnboardingFlow(t *testing.T) {
	client, _ := setupPlatformServer(t)
	ctx := context.Background()

	requested, err := client.RequestDemo(ctx, platformsdk.DemoRequestRequest{
		Email:   "founder@startup.test",
		Company: "Startup Inc",
	})
	require.NoError(t, err)
	require.NotEmpty(t, requested.VerificationToken)
	t.Logf("demo requested, verification token issued")

	verified, err := client.VerifyDemoEmail(ctx, requested.VerificationToken)
	require.NoError(t, err)
	require.NotEmpty(t, verified.SetupToken)
	require.NotEqual(t, requested.VerificationToken, verified.SetupToken)
	t.Logf("email verified, setup token issued")

	completed, err := client.SetDemoPassword(ctx, platformsdk.DemoSetPasswordRequest{
		Token:           verified.SetupToken,
		Password:        "FounderPass1!",
		PasswordConfirm: "FounderPass1!",
	})
	require.NoError(t, err)
	require.Equal(t, "founder@startup.test", completed.Email)
	require.Equal(t, "startup-inc", completed.Tenant.Slug)
	t.Logf("demo tenant %s provisioned", completed.Tenant.Slug)

	// The founder logs in as admin of the new tenant.
	session, err := client.AuthenticateWithPassword(ctx, "founder@startup.test", "FounderPass1!", "")
	require.NoError(t, err)

	info, err := session.GetUserInfo(ctx)
	require.NoError(t, err)
	require.NotNil(t, info.Tenant)
	require.Equal(t, completed.Tenant.ID, info.Tenant.ID)
	require.Equal(t, "admin", info.Role)
}

// TestDemoSetPasswordRequiresVerifiedEmail checks the staged tokens are
// not interchangeable and that each stage is single use.
func TestDemoSetPasswordRequiresVerifiedEmail(t *testing.T) {
	client, _ := setupPlatformServer(t)
	ctx := context.Background()

	requested, err := client.RequestDemo(ctx, platformsdk.DemoRequestRequest{
		Email:   "founder@startup.test",
		Company: "Startup Inc",
	})
	require.NoError(t, err)

	// The verification token must not work as a setup token.
	_, err = client.SetDemoPassword(ctx, platformsdk.DemoSetPasswordRequest{
		Token:           requested.VerificationToken,
		Password:        "FounderPass1!",
		PasswordConfirm: "FounderPass1!",
	})
	requireAPIError(t, err, http.StatusGone)

	verified, err := client.VerifyDemoEmail(ctx, requested.VerificationToken)
	require.NoError(t, err)

	// Replaying the verification is rejected.
	_, err = client.VerifyDemoEmail(ctx, requested.VerificationToken)
	requireAPIError(t, err, http.StatusConflict)

	// A weak password fails validation without consuming the setup token.
	_, err = client.SetDemoPassword(ctx, platformsdk.DemoSetPasswordRequest{
		Token:           verified.SetupToken,
		Password:        "short",
		PasswordConfirm: "short",
	})
	requireAPIError(t, err, http.StatusBadRequest)

	_, err = client.SetDemoPassword(ctx, platformsdk.DemoSetPasswordRequest{
		Token:           verified.SetupToken,
		Password:        "FounderPass1!",
		PasswordConfirm: "FounderPass1!",
	})
	require.NoError(t, err)

	// The setup token is consumed by the successful completion.
	_, err = client.SetDemoPassword(ctx, platformsdk.DemoSetPasswordRequest{
		Token:           verified.SetupToken,
		Password:        "AnotherPass1!",
		PasswordConfirm: "AnotherPass1!",
	})
	requireAPIError(t, err, http.StatusConflict)
}

// TestRequestDemoExistingAccount makes sure signup cannot shadow an
// existing account.
func TestRequestDemoExistingAccount(t *testing.T) {
	client, st := setupPlatformServer(t)
	ctx := context.Background()

	seedUser(t, st, "taken@startup.test", adminPassword, false)

	_, err := client.RequestDemo(ctx, platformsdk.DemoRequestRequest{
		Email:   "taken@startup.test",
		Company: "Startup Inc",
	})
	requireAPIError(t, err, http.StatusConflict)
}
