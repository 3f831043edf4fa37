package http

import (
	"encoding/json"
	"net/http"

	"github.com/trialdesk/trialdesk/internal/platform/service"
	"github.com/trialdesk/trialdesk/pkg/httpx"
	"github.com/trialdesk/trialdesk/pkg/platformsdk"
)

type DemoHandler struct {
	DemoService *service.DemoService
}

// HandleRequest starts the demo onboarding flow.
//
//	@Summary		Demo Request Endpoint
//	@Description	Records a demo signup for an email and company and issues an email verification
//	@Description	token. Emails that already have an account are rejected.
//	@Tags			Demo
//	@Accept			json
//	@Produce		json
//	@Param			request	body		platformsdk.DemoRequestRequest	true	"Demo request"
//	@Success		200		{object}	platformsdk.DemoRequestResponse	"verification_token, expires_at"
//	@Failure		400		{object}	platformsdk.DetailResponse		"detail"
//	@Failure		409		{object}	platformsdk.DetailResponse		"detail"
//	@Router			/v1/demo/request [post].
func (h *DemoHandler) HandleRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req platformsdk.DemoRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteDetail(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	token, signup, err := h.DemoService.RequestDemo(ctx, req.Email, req.Company)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, platformsdk.DemoRequestResponse{
		VerificationToken: token,
		ExpiresAt:         signup.VerifyExpiresAt,
	})
}

// HandleVerifyEmail confirms the signup's email address.
//
//	@Summary		Demo Email Verification Endpoint
//	@Description	Marks the signup's email as verified and returns the password setup token for
//	@Description	the final stage. A verification token can only be used once.
//	@Tags			Demo
//	@Produce		json
//	@Param			token	query		string							true	"Raw verification token"
//	@Success		200		{object}	platformsdk.DemoVerifyResponse	"setup_token, expires_at"
//	@Failure		409		{object}	platformsdk.DetailResponse		"detail"
//	@Failure		410		{object}	platformsdk.DetailResponse		"detail"
//	@Router			/v1/demo/verify-email [get].
func (h *DemoHandler) HandleVerifyEmail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	setupToken, signup, err := h.DemoService.VerifyEmail(ctx, r.URL.Query().Get("token"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, platformsdk.DemoVerifyResponse{
		SetupToken: setupToken,
		ExpiresAt:  signup.SetupExpiresAt,
	})
}

// HandleSetPassword completes onboarding: password, tenant, membership.
//
//	@Summary		Demo Set Password Endpoint
//	@Description	Consumes the setup token, sets the account password and provisions the demo
//	@Description	tenant with an admin membership. Only reachable after email verification; the
//	@Description	whole provisioning step is one transaction.
//	@Tags			Demo
//	@Accept			json
//	@Produce		json
//	@Param			request	body		platformsdk.DemoSetPasswordRequest	true	"Setup token and password"
//	@Success		200		{object}	platformsdk.DemoSetPasswordResponse	"user_id, email, tenant"
//	@Failure		400		{object}	platformsdk.DetailResponse			"detail"
//	@Failure		409		{object}	platformsdk.DetailResponse			"detail"
//	@Failure		410		{object}	platformsdk.DetailResponse			"detail"
//	@Router			/v1/demo/set-password [post].
func (h *DemoHandler) HandleSetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req platformsdk.DemoSetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteDetail(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	user, tenant, err := h.DemoService.CompleteSignup(ctx, req.Token, req.Password, req.PasswordConfirm)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, platformsdk.DemoSetPasswordResponse{
		UserID: user.ID,
		Email:  user.Email,
		Tenant: platformsdk.TenantInfo{
			ID:   tenant.ID,
			Name: tenant.Name,
			Slug: tenant.Slug,
		},
	})
}
