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

var ErrEngagementNotFound = errors.New("engagement not found")

type EngagementService struct {
	Store store.Store
}

// CreateEngagement opens a new POC engagement within a tenant.
func (s *EngagementService) CreateEngagement(
	ctx context.Context,
	tenantID, name, customerName, createdBy string,
) (domain.Engagement, error) {
	log := slogx.FromContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Engagement{}, newValidationError("engagement name is required")
	}
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return domain.Engagement{}, newValidationError("customer name is required")
	}

	engagement := domain.Engagement{
		ID:           idx.New().String(),
		TenantID:     tenantID,
		Name:         name,
		CustomerName: customerName,
		Status:       domain.EngagementStatusDraft,
		CreatedBy:    createdBy,
	}
	if err := s.Store.Engagements().CreateEngagement(ctx, engagement); err != nil {
		return domain.Engagement{}, err
	}

	log.Info("engagement created",
		slog.String("engagement_id", engagement.ID),
		slog.String("tenant_id", tenantID),
	)
	return engagement, nil
}

// GetEngagement fetches an engagement, scoped to the caller's tenant.
// An engagement belonging to a different tenant reads as not found.
func (s *EngagementService) GetEngagement(ctx context.Context, engagementID, tenantID string) (domain.Engagement, error) {
	engagement, err := s.Store.Engagements().GetEngagementByID(ctx, engagementID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Engagement{}, ErrEngagementNotFound
		}
		return domain.Engagement{}, err
	}
	if engagement.TenantID != tenantID {
		return domain.Engagement{}, ErrEngagementNotFound
	}
	return engagement, nil
}

// ListEngagements returns the tenant's engagements.
func (s *EngagementService) ListEngagements(ctx context.Context, tenantID string) ([]domain.Engagement, error) {
	return s.Store.Engagements().ListEngagementsByTenant(ctx, tenantID)
}

// UpdateStatus moves a tenant's engagement to a new status.
func (s *EngagementService) UpdateStatus(ctx context.Context, engagementID, tenantID, status string) (domain.Engagement, error) {
	switch status {
	case domain.EngagementStatusDraft, domain.EngagementStatusActive,
		domain.EngagementStatusWon, domain.EngagementStatusLost,
		domain.EngagementStatusArchived:
	default:
		return domain.Engagement{}, newValidationError("unknown engagement status")
	}

	engagement, err := s.GetEngagement(ctx, engagementID, tenantID)
	if err != nil {
		return domain.Engagement{}, err
	}

	if err := s.Store.Engagements().UpdateEngagementStatus(ctx, engagement.ID, status); err != nil {
		return domain.Engagement{}, err
	}
	engagement.Status = status
	return engagement, nil
}
