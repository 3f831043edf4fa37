package http

import (
	"encoding/json"
	"net/http"

	"github.com/trialdesk/trialdesk/internal/platform/domain"
	"github.com/trialdesk/trialdesk/internal/platform/service"
	"github.com/trialdesk/trialdesk/pkg/httpx"
	"github.com/trialdesk/trialdesk/pkg/platformsdk"
)

type TenantsHandler struct {
	TenantService *service.TenantService
}

// HandleCreate provisions a new vendor tenant.
//
//	@Summary		Create Tenant Endpoint
//	@Description	Creates a new vendor tenant. The slug is derived from the name when omitted
//	@Description	and must be unique. Platform admin only.
//	@Tags			Tenants
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		platformsdk.CreateTenantRequest	true	"Tenant to create"
//	@Success		201		{object}	platformsdk.TenantInfo			"id, name, slug"
//	@Failure		400		{object}	platformsdk.DetailResponse		"detail"
//	@Failure		409		{object}	platformsdk.DetailResponse		"detail"
//	@Router			/v1/tenants [post].
func (h *TenantsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req platformsdk.CreateTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteDetail(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	tenant, err := h.TenantService.CreateTenant(ctx, req.Name, req.Slug)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, sdkTenant(tenant))
}

// HandleList lists all tenants.
//
//	@Summary		List Tenants Endpoint
//	@Description	Returns all tenants, newest first. Platform admin only.
//	@Tags			Tenants
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	platformsdk.ListTenantsResponse	"tenants"
//	@Failure		403	{object}	platformsdk.DetailResponse		"detail"
//	@Router			/v1/tenants [get].
func (h *TenantsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tenants, err := h.TenantService.ListTenants(ctx)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := platformsdk.ListTenantsResponse{
		Tenants: make([]platformsdk.TenantInfo, 0, len(tenants)),
	}
	for _, t := range tenants {
		resp.Tenants = append(resp.Tenants, sdkTenant(t))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleGet fetches one tenant. Platform admins can read any tenant;
// other sessions only the tenant they are scoped to.
//
//	@Summary		Get Tenant Endpoint
//	@Description	Returns one tenant. Available to platform admins and to sessions scoped to
//	@Description	that tenant.
//	@Tags			Tenants
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string						true	"Tenant ID"
//	@Success		200	{object}	platformsdk.TenantInfo		"id, name, slug"
//	@Failure		403	{object}	platformsdk.DetailResponse	"detail"
//	@Failure		404	{object}	platformsdk.DetailResponse	"detail"
//	@Router			/v1/tenants/{id} [get].
func (h *TenantsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tenantID := r.PathValue("id")

	claims, ok := httpx.ClaimsFromContext(ctx)
	if !ok {
		httpx.WriteDetail(w, http.StatusUnauthorized, "authentication required")
		return
	}
	if !claims.PlatformAdmin && claims.TenantID != tenantID {
		httpx.WriteDetail(w, http.StatusForbidden, "access to this tenant is not permitted")
		return
	}

	tenant, err := h.TenantService.GetTenant(ctx, tenantID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, sdkTenant(tenant))
}

func sdkTenant(t domain.Tenant) platformsdk.TenantInfo {
	return platformsdk.TenantInfo{
		ID:        t.ID,
		Name:      t.Name,
		Slug:      t.Slug,
		CreatedAt: t.CreatedAt,
	}
}
