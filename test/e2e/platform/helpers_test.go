package platform_test

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/trialdesk/trialdesk/internal/platform/domain"
	httpapi "github.com/trialdesk/trialdesk/internal/platform/http"
	"github.com/trialdesk/trialdesk/internal/platform/service"
	"github.com/trialdesk/trialdesk/internal/platform/store"
	"github.com/trialdesk/trialdesk/internal/platform/store/drivers/sqlite"
	"github.com/trialdesk/trialdesk/pkg/cryptox"
	"github.com/trialdesk/trialdesk/pkg/idx"
	"github.com/trialdesk/trialdesk/pkg/jwtx"
	"github.com/trialdesk/trialdesk/pkg/platformsdk"
	"github.com/trialdesk/trialdesk/pkg/slogx"
)

/*
 * Common helpers for platform service end-to-end tests. Each test spins
 * up the fully wired router over httptest and talks to it exclusively
 * through the public SDK; the returned store is only for seeding.
 */

const (
	adminEmail    = "admin@vendor.test"
	adminPassword = "AdminPass123!"
)

// setupPlatformServer starts an in-process platform service backed by a
// temp-dir SQLite database and returns an SDK client against it.
func setupPlatformServer(t *testing.T) (*platformsdk.SDKClient, store.Store) {
	t.Helper()

	logger := slogx.New(slogx.Config{
		Service: "platform-service",
		Version: "e2e",
		Env:     "dev",
		Level:   "error",
		Format:  "text",
	})

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "platform.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	_, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	signer, err := jwtx.NewSigner("trialdesk-e2e", priv, time.Hour)
	require.NoError(t, err)

	router := httpapi.NewRouter(signer, "e2e", st, logger, []string{"*"})
	router.AuthService = &service.AuthService{Store: st, Signer: signer}
	router.MembershipService = &service.MembershipService{Store: st}
	router.InvitationService = &service.InvitationService{Store: st}
	router.DemoService = &service.DemoService{Store: st}
	router.TenantService = &service.TenantService{Store: st}
	router.EngagementService = &service.EngagementService{Store: st}
	router.ApplyRoutes()

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return platformsdk.NewSDKClient(server.URL), st
}

// seedUser creates an account directly in the store.
func seedUser(t *testing.T, st store.Store, email, password string, platformAdmin bool) domain.User {
	t.Helper()

	hash, err := cryptox.HashPassword(password)
	require.NoError(t, err)

	user := domain.User{
		ID:            idx.New().String(),
		Email:         email,
		FullName:      "E2E User",
		PasswordHash:  hash,
		PlatformAdmin: platformAdmin,
	}
	require.NoError(t, st.Users().CreateUser(context.Background(), user))
	return user
}

func seedTenant(t *testing.T, st store.Store, name, slug string) domain.Tenant {
	t.Helper()

	tenant := domain.Tenant{ID: idx.New().String(), Name: name, Slug: slug}
	require.NoError(t, st.Tenants().CreateTenant(context.Background(), tenant))
	return tenant
}

func seedMembership(t *testing.T, st store.Store, user domain.User, tenant domain.Tenant, role string, isDefault bool) {
	t.Helper()

	require.NoError(t, st.Memberships().CreateMembership(context.Background(), domain.Membership{
		ID:        idx.New().String(),
		UserID:    user.ID,
		TenantID:  tenant.ID,
		Role:      role,
		IsDefault: isDefault,
	}))
}
