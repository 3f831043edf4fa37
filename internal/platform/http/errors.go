package http

import (
	"errors"
	"net/http"

	"github.com/trialdesk/trialdesk/internal/platform/service"
	"github.com/trialdesk/trialdesk/pkg/httpx"
	"github.com/trialdesk/trialdesk/pkg/slogx"
)

// writeServiceError maps service errors onto HTTP statuses with the
// standard detail payload. Unrecognized errors are logged and surfaced
// as opaque 500s.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		httpx.WriteDetail(w, http.StatusBadRequest, validationErr.Detail)
		return
	}

	switch {
	case errors.Is(err, service.ErrInvalidOrExpiredToken):
		httpx.WriteDetail(w, http.StatusGone, "invitation token is invalid or expired")

	case errors.Is(err, service.ErrAlreadyProcessed):
		httpx.WriteDetail(w, http.StatusConflict, "this token has already been processed")

	case errors.Is(err, service.ErrEmailMismatch):
		httpx.WriteDetail(w, http.StatusForbidden, "this invitation was issued for a different email address")

	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteDetail(w, http.StatusUnauthorized, "invalid email or password")

	case errors.Is(err, service.ErrNotATenantMember):
		httpx.WriteDetail(w, http.StatusForbidden, "you are not a member of the requested tenant")

	case errors.Is(err, service.ErrNoTenantAccess):
		httpx.WriteDetail(w, http.StatusForbidden, "your account has no tenant access")

	case errors.Is(err, service.ErrAccountExists):
		httpx.WriteDetail(w, http.StatusConflict, "an account already exists for this email")

	case errors.Is(err, service.ErrSlugTaken):
		httpx.WriteDetail(w, http.StatusConflict, "tenant slug is already taken")

	case errors.Is(err, service.ErrInvitationNotFound),
		errors.Is(err, service.ErrMembershipNotFound),
		errors.Is(err, service.ErrTenantNotFound),
		errors.Is(err, service.ErrEngagementNotFound):
		httpx.WriteDetail(w, http.StatusNotFound, "not found")

	case errors.Is(err, service.ErrInvalidInvitationRequest),
		errors.Is(err, service.ErrInvalidRole),
		errors.Is(err, service.ErrInvalidTenant),
		errors.Is(err, service.ErrInvalidEngagement):
		httpx.WriteDetail(w, http.StatusBadRequest, err.Error())

	default:
		slogx.FromContext(r.Context()).Error("unhandled service error", "err", err)
		httpx.WriteDetail(w, http.StatusInternalServerError, "internal server error")
	}
}
