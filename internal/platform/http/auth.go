package http

import (
	"encoding/json"
	"net/http"

	"github.com/trialdesk/trialdesk/internal/platform/service"
	"github.com/trialdesk/trialdesk/pkg/httpx"
	"github.com/trialdesk/trialdesk/pkg/platformsdk"
)

type LoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP handles credential login with optional tenant selection.
//
//	@Summary		Login Endpoint
//	@Description	Authenticates with email and password and issues a session token scoped to one tenant.
//	@Description	Users belonging to several tenants receive a tenant selection challenge instead of a
//	@Description	session; repeat the request with a tenant_id (credentials are re-verified server-side).
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		platformsdk.LoginRequest	true	"Login request"
//	@Success		200		{object}	platformsdk.LoginResponse	"session token or tenant selection challenge"
//	@Failure		400		{object}	platformsdk.DetailResponse	"detail"
//	@Failure		401		{object}	platformsdk.DetailResponse	"detail"
//	@Failure		403		{object}	platformsdk.DetailResponse	"detail"
//	@Router			/v1/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req platformsdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteDetail(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result, err := h.AuthService.Login(ctx, req.Email, req.Password, req.TenantID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if result.TenantSelectionRequired {
		choices := make([]platformsdk.TenantChoice, 0, len(result.Choices))
		for _, c := range result.Choices {
			choices = append(choices, platformsdk.TenantChoice{
				TenantID:   c.TenantID,
				TenantName: c.TenantName,
				Role:       c.Role,
				IsDefault:  c.IsDefault,
			})
		}
		httpx.WriteJSON(w, http.StatusOK, platformsdk.LoginResponse{
			TenantSelectionRequired: true,
			Tenants:                 choices,
		})
		return
	}

	resp := platformsdk.LoginResponse{
		SessionToken: result.SessionToken,
		TokenType:    "Bearer",
		ExpiresIn:    int(h.AuthService.Signer.TTL().Seconds()),
		Role:         result.Role,
	}
	if result.Tenant != nil {
		resp.Tenant = &platformsdk.TenantInfo{
			ID:   result.Tenant.ID,
			Name: result.Tenant.Name,
			Slug: result.Tenant.Slug,
		}
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

type PasswordHandler struct {
	AuthService *service.AuthService
}

// HandleChange replaces the authenticated user's password after
// re-verifying the current one.
//
//	@Summary		Change Password Endpoint
//	@Description	Sets a new password for the authenticated user. The current password must be
//	@Description	supplied and is re-verified; existing sessions stay valid until they expire.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body	platformsdk.ChangePasswordRequest	true	"Current and new password"
//	@Success		204		"no content"
//	@Failure		400		{object}	platformsdk.DetailResponse	"detail"
//	@Failure		401		{object}	platformsdk.DetailResponse	"detail"
//	@Router			/v1/userinfo/password [put].
func (h *PasswordHandler) HandleChange(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req platformsdk.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteDetail(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	userID := httpx.UserIDFromContext(ctx)
	err := h.AuthService.ChangePassword(ctx, userID,
		req.CurrentPassword, req.NewPassword, req.NewPasswordConfirm)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
