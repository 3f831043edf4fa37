package platformsdk

import "context"

// MintInvitation creates a new invitation in the given namespace. The
// raw token in the response is returned exactly once.
//
// Authorization depends on the namespace: NamespacePlatform requires a
// platform-admin session, NamespaceTenant a tenant admin, NamespacePOC a
// tenant admin or member.
func (s *Session) MintInvitation(ctx context.Context, namespace string, req MintInvitationRequest) (*MintInvitationResponse, error) {
	var resp MintInvitationResponse
	if err := s.postJSON(ctx, "/v1/"+namespace, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListInvitations returns the namespace's invitations visible to the
// session (platform-wide for platform admins, tenant-scoped otherwise).
func (s *Session) ListInvitations(ctx context.Context, namespace string) ([]Invitation, error) {
	var resp ListInvitationsResponse
	if err := s.getJSON(ctx, "/v1/"+namespace, &resp); err != nil {
		return nil, err
	}
	return resp.Invitations, nil
}

// RevokeInvitation moves a pending invitation to revoked. Irreversible.
func (s *Session) RevokeInvitation(ctx context.Context, namespace, invitationID string) error {
	return s.postJSON(ctx, "/v1/"+namespace+"/"+invitationID+"/revoke", struct{}{}, nil)
}

// AcceptInvitationExisting redeems a POC invitation for the
// authenticated account. The session's email must match the
// invitation's target.
func (s *Session) AcceptInvitationExisting(ctx context.Context, token string) (*AcceptInvitationResponse, error) {
	var resp AcceptInvitationResponse
	req := AcceptExistingRequest{Token: token}
	if err := s.postJSON(ctx, "/v1/"+NamespacePOC+"/accept-existing", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
