package platformsdk

import (
	"context"
	"net/url"
)

// ValidateInvitation fetches the metadata of a pending, unexpired
// invitation. Anything else (unknown, expired, accepted, revoked)
// reports an *APIError with StatusCode http.StatusGone.
func (c *SDKClient) ValidateInvitation(ctx context.Context, namespace, token string) (*Invitation, error) {
	var resp Invitation
	path := "/v1/" + namespace + "/validate/" + url.PathEscape(token)
	if err := c.getJSON(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AcceptInvitation redeems an invitation token, creating the invitee's
// account when none exists. Use NamespacePlatform, NamespaceTenant or
// NamespacePOC.
func (c *SDKClient) AcceptInvitation(ctx context.Context, namespace string, req AcceptInvitationRequest) (*AcceptInvitationResponse, error) {
	var resp AcceptInvitationResponse
	if err := c.postJSON(ctx, "/v1/"+namespace+"/accept", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
