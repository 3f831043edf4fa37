package http

import (
	"net/http"

	"github.com/trialdesk/trialdesk/internal/platform/service"
	"github.com/trialdesk/trialdesk/internal/platform/store"
	"github.com/trialdesk/trialdesk/pkg/httpx"
	"github.com/trialdesk/trialdesk/pkg/platformsdk"
	"github.com/trialdesk/trialdesk/pkg/slogx"
)

type UserInfoHandler struct {
	Store             store.Store
	MembershipService *service.MembershipService
}

// ServeHTTP returns the authenticated user, their session scope and
// every tenant membership they hold.
//
//	@Summary		User Information Endpoint
//	@Description	Returns the authenticated user's profile, the tenant scope of the current session, and all tenant memberships.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	platformsdk.UserInfoResponse	"user, tenant, role, memberships"
//	@Failure		401	{object}	platformsdk.DetailResponse		"detail"
//	@Failure		500	{object}	platformsdk.DetailResponse		"detail"
//	@Router			/v1/userinfo [get]
func (h *UserInfoHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	claims, ok := httpx.ClaimsFromContext(ctx)
	if !ok {
		httpx.WriteDetail(w, http.StatusUnauthorized, "authentication required")
		return
	}

	user, err := h.Store.Users().GetUserByID(ctx, claims.UserID())
	if err != nil {
		log.Warn("failed to load user", "user_id", claims.UserID(), "err", err)
		httpx.WriteDetail(w, http.StatusInternalServerError, "internal server error")
		return
	}

	memberships, err := h.MembershipService.ListForUser(ctx, user.ID)
	if err != nil {
		log.Warn("failed to load memberships", "user_id", user.ID, "err", err)
		httpx.WriteDetail(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := platformsdk.UserInfoResponse{
		UserID:        user.ID,
		Email:         user.Email,
		FullName:      user.FullName,
		PlatformAdmin: user.PlatformAdmin,
		Role:          claims.Role,
		Memberships:   make([]platformsdk.MembershipInfo, 0, len(memberships)),
	}

	for _, m := range memberships {
		tenant, err := h.Store.Tenants().GetTenantByID(ctx, m.TenantID)
		if err != nil {
			log.Warn("failed to load tenant", "tenant_id", m.TenantID, "err", err)
			httpx.WriteDetail(w, http.StatusInternalServerError, "internal server error")
			return
		}
		resp.Memberships = append(resp.Memberships, platformsdk.MembershipInfo{
			TenantID:   tenant.ID,
			TenantName: tenant.Name,
			Role:       m.Role,
			IsDefault:  m.IsDefault,
		})
		if m.TenantID == claims.TenantID {
			resp.Tenant = &platformsdk.TenantInfo{
				ID:   tenant.ID,
				Name: tenant.Name,
				Slug: tenant.Slug,
			}
		}
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}
