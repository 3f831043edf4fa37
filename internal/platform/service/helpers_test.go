package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/trialdesk/trialdesk/internal/platform/domain"
	"github.com/trialdesk/trialdesk/internal/platform/store"
	"github.com/trialdesk/trialdesk/internal/platform/store/drivers/sqlite"
	"github.com/trialdesk/trialdesk/pkg/cryptox"
	"github.com/trialdesk/trialdesk/pkg/idx"
	"github.com/stretchr/testify/require"
)

// newTestStore opens a migrated file-backed store in a per-test temp dir
// so concurrent transactions behave as they do in production.
func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "platform.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func seedUser(t *testing.T, st store.Store, email, password string) domain.User {
	t.Helper()

	hash, err := cryptox.HashPassword(password)
	require.NoError(t, err)

	user := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		FullName:     "Test User",
		PasswordHash: hash,
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

func seedMembership(t *testing.T, st store.Store, user domain.User, tenant domain.Tenant, role string, isDefault bool) domain.Membership {
	t.Helper()

	m := domain.Membership{
		ID:        idx.New().String(),
		UserID:    user.ID,
		TenantID:  tenant.ID,
		Role:      role,
		IsDefault: isDefault,
	}
	require.NoError(t, st.Memberships().CreateMembership(context.Background(), m))
	return m
}
