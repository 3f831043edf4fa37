package http

import (
	"encoding/json"
	"net/http"

	"github.com/trialdesk/trialdesk/internal/platform/domain"
	"github.com/trialdesk/trialdesk/internal/platform/service"
	"github.com/trialdesk/trialdesk/pkg/httpx"
	"github.com/trialdesk/trialdesk/pkg/platformsdk"
)

type EngagementsHandler struct {
	EngagementService *service.EngagementService
}

// HandleCreate opens a new POC engagement in the session's tenant.
//
//	@Summary		Create Engagement Endpoint
//	@Description	Opens a new POC engagement within the session's tenant. New engagements start
//	@Description	in draft status.
//	@Tags			Engagements
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		platformsdk.CreateEngagementRequest	true	"Engagement to create"
//	@Success		201		{object}	platformsdk.Engagement				"engagement"
//	@Failure		400		{object}	platformsdk.DetailResponse			"detail"
//	@Failure		403		{object}	platformsdk.DetailResponse			"detail"
//	@Router			/v1/engagements [post].
func (h *EngagementsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req platformsdk.CreateEngagementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteDetail(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	claims, ok := httpx.ClaimsFromContext(ctx)
	if !ok {
		httpx.WriteDetail(w, http.StatusUnauthorized, "authentication required")
		return
	}

	engagement, err := h.EngagementService.CreateEngagement(ctx, claims.TenantID, req.Name, req.CustomerName, claims.UserID())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, sdkEngagement(engagement))
}

// HandleList lists the session tenant's engagements.
//
//	@Summary		List Engagements Endpoint
//	@Description	Returns the session tenant's engagements, newest first.
//	@Tags			Engagements
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	platformsdk.ListEngagementsResponse	"engagements"
//	@Failure		403	{object}	platformsdk.DetailResponse			"detail"
//	@Router			/v1/engagements [get].
func (h *EngagementsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claims, ok := httpx.ClaimsFromContext(ctx)
	if !ok {
		httpx.WriteDetail(w, http.StatusUnauthorized, "authentication required")
		return
	}

	engagements, err := h.EngagementService.ListEngagements(ctx, claims.TenantID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := platformsdk.ListEngagementsResponse{
		Engagements: make([]platformsdk.Engagement, 0, len(engagements)),
	}
	for _, e := range engagements {
		resp.Engagements = append(resp.Engagements, sdkEngagement(e))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleGet fetches one engagement within the session's tenant.
//
//	@Summary		Get Engagement Endpoint
//	@Description	Returns one engagement. Engagements belonging to another tenant read as not
//	@Description	found.
//	@Tags			Engagements
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string						true	"Engagement ID"
//	@Success		200	{object}	platformsdk.Engagement		"engagement"
//	@Failure		404	{object}	platformsdk.DetailResponse	"detail"
//	@Router			/v1/engagements/{id} [get].
func (h *EngagementsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claims, ok := httpx.ClaimsFromContext(ctx)
	if !ok {
		httpx.WriteDetail(w, http.StatusUnauthorized, "authentication required")
		return
	}

	engagement, err := h.EngagementService.GetEngagement(ctx, r.PathValue("id"), claims.TenantID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, sdkEngagement(engagement))
}

// HandleUpdateStatus moves an engagement to a new status.
//
//	@Summary		Update Engagement Status Endpoint
//	@Description	Moves an engagement to draft, active, won, lost or archived.
//	@Tags			Engagements
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string									true	"Engagement ID"
//	@Param			request	body		platformsdk.UpdateEngagementStatusRequest	true	"New status"
//	@Success		200		{object}	platformsdk.Engagement					"engagement"
//	@Failure		400		{object}	platformsdk.DetailResponse				"detail"
//	@Failure		404		{object}	platformsdk.DetailResponse				"detail"
//	@Router			/v1/engagements/{id}/status [patch].
func (h *EngagementsHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req platformsdk.UpdateEngagementStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteDetail(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	claims, ok := httpx.ClaimsFromContext(ctx)
	if !ok {
		httpx.WriteDetail(w, http.StatusUnauthorized, "authentication required")
		return
	}

	engagement, err := h.EngagementService.UpdateStatus(ctx, r.PathValue("id"), claims.TenantID, req.Status)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, sdkEngagement(engagement))
}

func sdkEngagement(e domain.Engagement) platformsdk.Engagement {
	return platformsdk.Engagement{
		ID:           e.ID,
		TenantID:     e.TenantID,
		Name:         e.Name,
		CustomerName: e.CustomerName,
		Status:       e.Status,
		CreatedAt:    e.CreatedAt,
	}
}
