package platform_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/trialdesk/trialdesk/internal/platform/domain"
	"github.com/trialdesk/trialdesk/pkg/platformsdk"
)

// TestTenantInvitationLifecycle walks the full tenant invitation flow
// through the public API: a tenant admin mints an invite, the invitee
// validates and accepts it, and the new member can log in.
func TestTenantInvitationLifecycle(t *testing.T) {
	client, st := setupPlatformServer(t)
	ctx := context.Background()

	admin := seedUser(t, st, "owner@vendor.test", adminPassword, false)
	tenant := seedTenant(t, st, "Vendor Co", "vendor-co")
	seedMembership(t, st, admin, tenant, domain.RoleAdmin, true)

	session, err := client.AuthenticateWithPassword(ctx, admin.Email, adminPassword, "")
	require.NoError(t, err)
	t.Logf("tenant admin logged in")

	minted, err := session.MintInvitation(ctx, platformsdk.NamespaceTenant, platformsdk.MintInvitationRequest{
		Email: "newhire@vendor.test",
		Role:  "member",
	})
	require.NoError(t, err)
	require.NotEmpty(t, minted.InvitationToken)
	require.Equal(t, "pending", minted.Invitation.Status)
	require.Equal(t, tenant.ID, minted.Invitation.TenantID)
	t.Logf("minted invitation %s", minted.Invitation.ID)

	inv, err := client.ValidateInvitation(ctx, platformsdk.NamespaceTenant, minted.InvitationToken)
	require.NoError(t, err)
	require.Equal(t, "newhire@vendor.test", inv.Email)
	require.Equal(t, "member", inv.Role)

	accepted, err := client.AcceptInvitation(ctx, platformsdk.NamespaceTenant, platformsdk.AcceptInvitationRequest{
		Token:           minted.InvitationToken,
		FullName:        "New Hire",
		Password:        "NewHirePass1!",
		PasswordConfirm: "NewHirePass1!",
	})
	require.NoError(t, err)
	require.Equal(t, "newhire@vendor.test", accepted.Email)
	require.Equal(t, tenant.ID, accepted.TenantID)
	t.Logf("invitation accepted, user %s created", accepted.UserID)

	// The new member can log in; their sole membership scopes the session.
	member, err := client.AuthenticateWithPassword(ctx, "newhire@vendor.test", "NewHirePass1!", "")
	require.NoError(t, err)

	info, err := member.GetUserInfo(ctx)
	require.NoError(t, err)
	require.Equal(t, accepted.UserID, info.UserID)
	require.NotNil(t, info.Tenant)
	require.Equal(t, tenant.ID, info.Tenant.ID)
	require.Equal(t, "member", info.Role)

	// The roster now lists both the admin and the new member.
	members, err := session.ListMembers(ctx)
	require.NoError(t, err)
	require.Len(t, members, 2)

	// The member can rotate their password and log back in with it.
	err = member.ChangePassword(ctx, "NewHirePass1!", "RotatedPass2!", "RotatedPass2!")
	require.NoError(t, err)
	_, err = client.AuthenticateWithPassword(ctx, "newhire@vendor.test", "NewHirePass1!", "")
	requireAPIError(t, err, http.StatusUnauthorized)
	_, err = client.AuthenticateWithPassword(ctx, "newhire@vendor.test", "RotatedPass2!", "")
	require.NoError(t, err)

	// A second accept of the same token must fail without side effects.
	_, err = client.AcceptInvitation(ctx, platformsdk.NamespaceTenant, platformsdk.AcceptInvitationRequest{
		Token:           minted.InvitationToken,
		FullName:        "Imposter",
		Password:        "ImposterPass1!",
		PasswordConfirm: "ImposterPass1!",
	})
	requireAPIError(t, err, http.StatusConflict)
}

// TestInvitationRevocation checks that a revoked token validates and
// accepts as already processed, and that the listing reflects it.
func TestInvitationRevocation(t *testing.T) {
	client, st := setupPlatformServer(t)
	ctx := context.Background()

	admin := seedUser(t, st, "owner@vendor.test", adminPassword, false)
	tenant := seedTenant(t, st, "Vendor Co", "vendor-co")
	seedMembership(t, st, admin, tenant, domain.RoleAdmin, true)

	session, err := client.AuthenticateWithPassword(ctx, admin.Email, adminPassword, "")
	require.NoError(t, err)

	minted, err := session.MintInvitation(ctx, platformsdk.NamespaceTenant, platformsdk.MintInvitationRequest{
		Email: "revoked@vendor.test",
		Role:  "viewer",
	})
	require.NoError(t, err)

	require.NoError(t, session.RevokeInvitation(ctx, platformsdk.NamespaceTenant, minted.Invitation.ID))
	t.Logf("invitation %s revoked", minted.Invitation.ID)

	// Validation hides terminal states; acceptance reports the conflict.
	_, err = client.ValidateInvitation(ctx, platformsdk.NamespaceTenant, minted.InvitationToken)
	requireAPIError(t, err, http.StatusGone)

	_, err = client.AcceptInvitation(ctx, platformsdk.NamespaceTenant, platformsdk.AcceptInvitationRequest{
		Token:           minted.InvitationToken,
		FullName:        "Too Late",
		Password:        "TooLatePass1!",
		PasswordConfirm: "TooLatePass1!",
	})
	requireAPIError(t, err, http.StatusConflict)

	invitations, err := session.ListInvitations(ctx, platformsdk.NamespaceTenant)
	require.NoError(t, err)
	require.Len(t, invitations, 1)
	require.Equal(t, "revoked", invitations[0].Status)
}

// TestPlatformInvitationFlow covers the platform-admin namespace: only
// platform admins may mint, and accepting grants an unscoped admin
// session.
func TestPlatformInvitationFlow(t *testing.T) {
	client, st := setupPlatformServer(t)
	ctx := context.Background()

	seedUser(t, st, adminEmail, adminPassword, true)

	session, err := client.AuthenticateWithPassword(ctx, adminEmail, adminPassword, "")
	require.NoError(t, err)

	minted, err := session.MintInvitation(ctx, platformsdk.NamespacePlatform, platformsdk.MintInvitationRequest{
		Email: "colleague@vendor.test",
	})
	require.NoError(t, err)

	_, err = client.AcceptInvitation(ctx, platformsdk.NamespacePlatform, platformsdk.AcceptInvitationRequest{
		Token:           minted.InvitationToken,
		FullName:        "Platform Colleague",
		Password:        "ColleaguePass1!",
		PasswordConfirm: "ColleaguePass1!",
	})
	require.NoError(t, err)

	colleague, err := client.AuthenticateWithPassword(ctx, "colleague@vendor.test", "ColleaguePass1!", "")
	require.NoError(t, err)

	info, err := colleague.GetUserInfo(ctx)
	require.NoError(t, err)
	require.True(t, info.PlatformAdmin)
	require.Nil(t, info.Tenant)
	t.Logf("platform invite accepted, %s is a platform admin", info.Email)

	// A tenant admin must not be able to mint platform invitations.
	tenantAdmin := seedUser(t, st, "owner@vendor.test", adminPassword, false)
	tenant := seedTenant(t, st, "Vendor Co", "vendor-co")
	seedMembership(t, st, tenantAdmin, tenant, domain.RoleAdmin, true)

	ownerSession, err := client.AuthenticateWithPassword(ctx, tenantAdmin.Email, adminPassword, "")
	require.NoError(t, err)

	_, err = ownerSession.MintInvitation(ctx, platformsdk.NamespacePlatform, platformsdk.MintInvitationRequest{
		Email: "sneaky@vendor.test",
	})
	requireAPIError(t, err, http.StatusForbidden)
}

// TestPOCInvitationAcceptExisting covers attaching a POC engagement
// invite to an account that already exists, including the email match
// guard.
func TestPOCInvitationAcceptExisting(t *testing.T) {
	client, st := setupPlatformServer(t)
	ctx := context.Background()

	admin := seedUser(t, st, "owner@vendor.test", adminPassword, false)
	tenant := seedTenant(t, st, "Vendor Co", "vendor-co")
	seedMembership(t, st, admin, tenant, domain.RoleAdmin, true)

	// The consultant already holds an account via another tenant.
	consultant := seedUser(t, st, "consultant@customer.test", "ConsultPass1!", false)
	other := seedTenant(t, st, "Customer Org", "customer-org")
	seedMembership(t, st, consultant, other, domain.RoleMember, true)

	adminSession, err := client.AuthenticateWithPassword(ctx, admin.Email, adminPassword, "")
	require.NoError(t, err)

	engagement, err := adminSession.CreateEngagement(ctx, platformsdk.CreateEngagementRequest{
		Name:         "ACME trial",
		CustomerName: "ACME Corp",
	})
	require.NoError(t, err)

	minted, err := adminSession.MintInvitation(ctx, platformsdk.NamespacePOC, platformsdk.MintInvitationRequest{
		Email:        consultant.Email,
		Role:         "viewer",
		EngagementID: engagement.ID,
	})
	require.NoError(t, err)

	// A session under a different email must be rejected.
	adminAccept, err := client.AuthenticateWithPassword(ctx, admin.Email, adminPassword, "")
	require.NoError(t, err)
	_, err = adminAccept.AcceptInvitationExisting(ctx, minted.InvitationToken)
	requireAPIError(t, err, http.StatusForbidden)

	consultantSession, err := client.AuthenticateWithPassword(ctx, consultant.Email, "ConsultPass1!", "")
	require.NoError(t, err)

	accepted, err := consultantSession.AcceptInvitationExisting(ctx, minted.InvitationToken)
	require.NoError(t, err)
	require.Equal(t, consultant.ID, accepted.UserID)
	require.Equal(t, tenant.ID, accepted.TenantID)
	t.Logf("consultant attached to tenant %s", tenant.Slug)

	info, err := consultantSession.GetUserInfo(ctx)
	require.NoError(t, err)
	require.Len(t, info.Memberships, 2)
}

// requireAPIError asserts err is an API error with the given status.
func requireAPIError(t *testing.T, err error, status int) {
	t.Helper()

	var apiErr *platformsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode)
	require.NotEmpty(t, apiErr.Detail)
}
