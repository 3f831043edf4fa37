package platformsdk

import (
	"context"
	"net/http"
)

// CreateTenant provisions a new vendor tenant. Platform admin only.
func (s *Session) CreateTenant(ctx context.Context, req CreateTenantRequest) (*TenantInfo, error) {
	var resp TenantInfo
	if err := s.postJSON(ctx, "/v1/tenants", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListTenants returns all tenants. Platform admin only.
func (s *Session) ListTenants(ctx context.Context) ([]TenantInfo, error) {
	var resp ListTenantsResponse
	if err := s.getJSON(ctx, "/v1/tenants", &resp); err != nil {
		return nil, err
	}
	return resp.Tenants, nil
}

// GetTenant fetches one tenant. Available to platform admins and to
// members of that tenant.
func (s *Session) GetTenant(ctx context.Context, tenantID string) (*TenantInfo, error) {
	var resp TenantInfo
	if err := s.getJSON(ctx, "/v1/tenants/"+tenantID, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateEngagement opens a new POC engagement in the session's tenant.
func (s *Session) CreateEngagement(ctx context.Context, req CreateEngagementRequest) (*Engagement, error) {
	var resp Engagement
	if err := s.postJSON(ctx, "/v1/engagements", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListEngagements returns the session tenant's engagements.
func (s *Session) ListEngagements(ctx context.Context) ([]Engagement, error) {
	var resp ListEngagementsResponse
	if err := s.getJSON(ctx, "/v1/engagements", &resp); err != nil {
		return nil, err
	}
	return resp.Engagements, nil
}

// GetEngagement fetches one engagement within the session's tenant.
func (s *Session) GetEngagement(ctx context.Context, engagementID string) (*Engagement, error) {
	var resp Engagement
	if err := s.getJSON(ctx, "/v1/engagements/"+engagementID, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateEngagementStatus moves an engagement to a new status.
func (s *Session) UpdateEngagementStatus(ctx context.Context, engagementID, status string) (*Engagement, error) {
	var resp Engagement
	req := UpdateEngagementStatusRequest{Status: status}
	if err := s.doJSON(ctx, http.MethodPatch, "/v1/engagements/"+engagementID+"/status", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
