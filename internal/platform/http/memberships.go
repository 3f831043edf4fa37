package http

import (
	"encoding/json"
	"net/http"

	"github.com/trialdesk/trialdesk/internal/platform/service"
	"github.com/trialdesk/trialdesk/pkg/httpx"
	"github.com/trialdesk/trialdesk/pkg/platformsdk"
)

type MembershipHandler struct {
	MembershipService *service.MembershipService
}

// HandleSetDefault marks one of the user's memberships as the default.
//
//	@Summary		Set Default Tenant Endpoint
//	@Description	Flags the authenticated user's membership in the given tenant as their default,
//	@Description	clearing any previous default atomically. The default tenant is logged into
//	@Description	without a selection step.
//	@Tags			Memberships
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body	platformsdk.SetDefaultMembershipRequest	true	"Tenant to mark default"
//	@Success		204		"no content"
//	@Failure		400		{object}	platformsdk.DetailResponse	"detail"
//	@Failure		404		{object}	platformsdk.DetailResponse	"detail"
//	@Router			/v1/memberships/default [put].
func (h *MembershipHandler) HandleSetDefault(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req platformsdk.SetDefaultMembershipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteDetail(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.TenantID == "" {
		httpx.WriteDetail(w, http.StatusBadRequest, "tenant_id is required")
		return
	}

	userID := httpx.UserIDFromContext(ctx)
	if err := h.MembershipService.SetDefault(ctx, userID, req.TenantID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleListMembers returns the member roster of the session's tenant.
//
//	@Summary		Tenant Member Roster Endpoint
//	@Description	Lists every member of the tenant the session is scoped to, with their role
//	@Description	and when they joined.
//	@Tags			Memberships
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	platformsdk.ListMembersResponse	"members"
//	@Failure		401	{object}	platformsdk.DetailResponse		"detail"
//	@Failure		403	{object}	platformsdk.DetailResponse		"detail"
//	@Router			/v1/members [get].
func (h *MembershipHandler) HandleListMembers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claims, ok := httpx.ClaimsFromContext(ctx)
	if !ok || claims.TenantID == "" {
		httpx.WriteDetail(w, http.StatusForbidden, "a tenant-scoped session is required")
		return
	}

	members, err := h.MembershipService.ListForTenant(ctx, claims.TenantID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := platformsdk.ListMembersResponse{
		Members: make([]platformsdk.TenantMemberInfo, 0, len(members)),
	}
	for _, m := range members {
		resp.Members = append(resp.Members, platformsdk.TenantMemberInfo{
			UserID:   m.UserID,
			Email:    m.Email,
			FullName: m.FullName,
			Role:     m.Role,
			JoinedAt: m.JoinedAt,
		})
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}
