package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/trialdesk/trialdesk/internal/platform/domain"
	"github.com/trialdesk/trialdesk/internal/platform/service"
	"github.com/trialdesk/trialdesk/pkg/httpx"
	"github.com/trialdesk/trialdesk/pkg/platformsdk"
)

// InvitationHandler serves one invitation namespace. The router mounts
// three instances, one per kind, under /v1/invitations,
// /v1/tenant-invitations and /v1/poc-invitations.
type InvitationHandler struct {
	InvitationService *service.InvitationService

	// Kind is the domain invitation kind this instance serves.
	Kind string
}

// HandleMint creates a new invitation and returns the raw token once.
//
//	@Summary		Mint Invitation Endpoint
//	@Description	Creates a single-use invitation token. The raw token is returned exactly once;
//	@Description	only a fingerprint is stored. Tenant and POC invitations are scoped to the
//	@Description	session's tenant. TTL defaults to 7 days and is capped at 30.
//	@Tags			Invitations
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		platformsdk.MintInvitationRequest	true	"Invitation request"
//	@Success		200		{object}	platformsdk.MintInvitationResponse	"invitation_token, invitation"
//	@Failure		400		{object}	platformsdk.DetailResponse			"detail"
//	@Failure		403		{object}	platformsdk.DetailResponse			"detail"
//	@Router			/v1/invitations [post].
func (h *InvitationHandler) HandleMint(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req platformsdk.MintInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteDetail(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Email == "" {
		httpx.WriteDetail(w, http.StatusBadRequest, "email is required")
		return
	}

	claims, ok := httpx.ClaimsFromContext(ctx)
	if !ok {
		httpx.WriteDetail(w, http.StatusUnauthorized, "authentication required")
		return
	}

	params := service.MintInvitationParams{
		Kind:      h.Kind,
		Email:     req.Email,
		Role:      req.Role,
		InvitedBy: claims.UserID(),
		TTL:       time.Duration(req.TTLSeconds) * time.Second,
	}
	if h.Kind != domain.InvitationKindPlatform {
		params.TenantID = claims.TenantID
	}
	if h.Kind == domain.InvitationKindEngagement {
		params.EngagementID = req.EngagementID
	}

	token, invitation, err := h.InvitationService.MintInvitation(ctx, params)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, platformsdk.MintInvitationResponse{
		InvitationToken: token,
		Invitation:      sdkInvitation(invitation),
	})
}

// HandleValidate returns invitation metadata for a pending, unexpired
// token.
//
//	@Summary		Validate Invitation Endpoint
//	@Description	Returns the invitation's metadata iff the token is pending and unexpired.
//	@Description	Unknown, expired, accepted and revoked tokens all answer 410 so callers
//	@Description	cannot probe token state.
//	@Tags			Invitations
//	@Produce		json
//	@Param			token	path		string						true	"Raw invitation token"
//	@Success		200		{object}	platformsdk.Invitation		"invitation metadata"
//	@Failure		410		{object}	platformsdk.DetailResponse	"detail"
//	@Router			/v1/invitations/validate/{token} [get].
func (h *InvitationHandler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	invitation, err := h.InvitationService.ValidateInvitation(ctx, h.Kind, r.PathValue("token"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, sdkInvitation(invitation))
}

// HandleAccept redeems an invitation for a new (or email-matching
// existing) account.
//
//	@Summary		Accept Invitation Endpoint
//	@Description	Redeems a pending invitation: creates the invitee's account when none exists
//	@Description	and attaches the granted access. The token is consumed atomically; concurrent
//	@Description	accepts of one token produce exactly one success.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		platformsdk.AcceptInvitationRequest		true	"Acceptance form"
//	@Success		200		{object}	platformsdk.AcceptInvitationResponse	"user_id, email, tenant_id"
//	@Failure		400		{object}	platformsdk.DetailResponse				"detail"
//	@Failure		409		{object}	platformsdk.DetailResponse				"detail"
//	@Failure		410		{object}	platformsdk.DetailResponse				"detail"
//	@Router			/v1/invitations/accept [post].
func (h *InvitationHandler) HandleAccept(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req platformsdk.AcceptInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteDetail(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	user, invitation, err := h.InvitationService.AcceptInvitation(ctx, h.Kind, req.Token, service.AcceptInvitationParams{
		FullName:        req.FullName,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, platformsdk.AcceptInvitationResponse{
		UserID:   user.ID,
		Email:    user.Email,
		TenantID: invitation.TenantID,
	})
}

// HandleAcceptExisting redeems an invitation for the authenticated
// account.
//
//	@Summary		Accept Invitation (Existing Account) Endpoint
//	@Description	Redeems a POC invitation for the authenticated user. The session's email must
//	@Description	match the invitation's target email exactly.
//	@Tags			Invitations
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		platformsdk.AcceptExistingRequest		true	"Invitation token"
//	@Success		200		{object}	platformsdk.AcceptInvitationResponse	"user_id, email, tenant_id"
//	@Failure		403		{object}	platformsdk.DetailResponse				"detail"
//	@Failure		409		{object}	platformsdk.DetailResponse				"detail"
//	@Failure		410		{object}	platformsdk.DetailResponse				"detail"
//	@Router			/v1/poc-invitations/accept-existing [post].
func (h *InvitationHandler) HandleAcceptExisting(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req platformsdk.AcceptExistingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteDetail(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	claims, ok := httpx.ClaimsFromContext(ctx)
	if !ok {
		httpx.WriteDetail(w, http.StatusUnauthorized, "authentication required")
		return
	}

	invitation, err := h.InvitationService.AcceptInvitationExisting(ctx, h.Kind, req.Token, claims.UserID(), claims.Email)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, platformsdk.AcceptInvitationResponse{
		UserID:   claims.UserID(),
		Email:    claims.Email,
		TenantID: invitation.TenantID,
	})
}

// HandleRevoke irreversibly revokes a pending invitation.
//
//	@Summary		Revoke Invitation Endpoint
//	@Description	Moves a pending invitation to revoked. Already accepted or revoked invitations
//	@Description	answer 409; revocation cannot be undone.
//	@Tags			Invitations
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path	string	true	"Invitation ID"
//	@Success		204	"no content"
//	@Failure		404	{object}	platformsdk.DetailResponse	"detail"
//	@Failure		409	{object}	platformsdk.DetailResponse	"detail"
//	@Router			/v1/invitations/{id}/revoke [post].
func (h *InvitationHandler) HandleRevoke(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.InvitationService.RevokeInvitation(ctx, h.Kind, r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleList lists the namespace's invitations visible to the session.
//
//	@Summary		List Invitations Endpoint
//	@Description	Lists invitations of this kind. Platform invitations list platform-wide;
//	@Description	tenant and POC invitations are scoped to the session's tenant.
//	@Tags			Invitations
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	platformsdk.ListInvitationsResponse	"invitations"
//	@Failure		403	{object}	platformsdk.DetailResponse			"detail"
//	@Router			/v1/invitations [get].
func (h *InvitationHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var tenantID string
	if h.Kind != domain.InvitationKindPlatform {
		claims, ok := httpx.ClaimsFromContext(ctx)
		if !ok {
			httpx.WriteDetail(w, http.StatusUnauthorized, "authentication required")
			return
		}
		tenantID = claims.TenantID
	}

	invitations, err := h.InvitationService.ListInvitations(ctx, h.Kind, tenantID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := platformsdk.ListInvitationsResponse{
		Invitations: make([]platformsdk.Invitation, 0, len(invitations)),
	}
	for _, inv := range invitations {
		resp.Invitations = append(resp.Invitations, sdkInvitation(inv))
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}

func sdkInvitation(inv domain.Invitation) platformsdk.Invitation {
	return platformsdk.Invitation{
		ID:           inv.ID,
		Kind:         inv.Kind,
		Email:        inv.Email,
		Role:         inv.Role,
		TenantID:     inv.TenantID,
		EngagementID: inv.EngagementID,
		Status:       inv.Status,
		ExpiresAt:    inv.ExpiresAt,
		AcceptedAt:   inv.AcceptedAt,
		RevokedAt:    inv.RevokedAt,
		CreatedAt:    inv.CreatedAt,
	}
}
