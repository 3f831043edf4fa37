package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/trialdesk/trialdesk/internal/platform/domain"
	"github.com/trialdesk/trialdesk/internal/platform/store"
	"github.com/trialdesk/trialdesk/pkg/idx"
	"github.com/trialdesk/trialdesk/pkg/slogx"
)

var (
	ErrTenantNotFound = errors.New("tenant not found")
	ErrSlugTaken      = errors.New("tenant slug is already taken")
)

type TenantService struct {
	Store store.Store
}

// CreateTenant provisions a new vendor tenant. Slug defaults to a
// slugified name when not provided.
func (s *TenantService) CreateTenant(ctx context.Context, name, slug string) (domain.Tenant, error) {
	log := slogx.FromContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Tenant{}, newValidationError("tenant name is required")
	}

	if slug == "" {
		slug = slugify(name)
	} else {
		slug = slugify(slug)
	}
	if slug == "" {
		return domain.Tenant{}, newValidationError("tenant slug is required")
	}

	tenant := domain.Tenant{
		ID:   idx.New().String(),
		Name: name,
		Slug: slug,
	}
	if err := s.Store.Tenants().CreateTenant(ctx, tenant); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Tenant{}, ErrSlugTaken
		}
		return domain.Tenant{}, err
	}

	log.Info("tenant created",
		slog.String("tenant_id", tenant.ID),
		slog.String("slug", tenant.Slug),
	)
	return tenant, nil
}

func (s *TenantService) GetTenant(ctx context.Context, id string) (domain.Tenant, error) {
	tenant, err := s.Store.Tenants().GetTenantByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Tenant{}, ErrTenantNotFound
		}
		return domain.Tenant{}, err
	}
	return tenant, nil
}

func (s *TenantService) ListTenants(ctx context.Context) ([]domain.Tenant, error) {
	return s.Store.Tenants().ListTenants(ctx)
}

// slugify lowercases and strips a name down to [a-z0-9-].
func slugify(s string) string {
	var b strings.Builder
	lastDash := true // trim leading dashes
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// uniqueSlug returns a slug for name that is free within tx, appending a
// random suffix when the natural slug is taken.
func uniqueSlug(ctx context.Context, tx store.Tx, name string) string {
	base := slugify(name)
	if base == "" {
		base = "tenant"
	}

	if _, err := tx.Tenants().GetTenantBySlug(ctx, base); errors.Is(err, store.ErrNotFound) {
		return base
	}

	// Tail of a fresh ULID: random, short, slug-safe once lowercased.
	suffix := strings.ToLower(idx.New().String()[20:])
	return base + "-" + suffix
}
