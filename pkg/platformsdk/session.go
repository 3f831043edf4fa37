package platformsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Session performs authenticated operations against the platform
// service. Sessions are stateless JWT holders and safe for concurrent
// use; there is no refresh flow, so create a new Session after expiry.
type Session struct {
	client *SDKClient
	token  string
}

// Token returns the raw session token.
func (s *Session) Token() string { return s.token }

// GetUserInfo returns the authenticated user, their session scope and
// all tenant memberships.
func (s *Session) GetUserInfo(ctx context.Context) (*UserInfoResponse, error) {
	var resp UserInfoResponse
	if err := s.getJSON(ctx, "/v1/userinfo", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SetDefaultMembership flags the user's membership in tenantID as the
// default, clearing any previous default.
func (s *Session) SetDefaultMembership(ctx context.Context, tenantID string) error {
	req := SetDefaultMembershipRequest{TenantID: tenantID}
	return s.doJSON(ctx, http.MethodPut, "/v1/memberships/default", req, nil)
}

// ChangePassword replaces the user's password. The current password is
// re-verified server-side.
func (s *Session) ChangePassword(ctx context.Context, current, newPassword, newPasswordConfirm string) error {
	req := ChangePasswordRequest{
		CurrentPassword:    current,
		NewPassword:        newPassword,
		NewPasswordConfirm: newPasswordConfirm,
	}
	return s.doJSON(ctx, http.MethodPut, "/v1/userinfo/password", req, nil)
}

// ListMembers returns the member roster of the session's tenant.
func (s *Session) ListMembers(ctx context.Context) ([]TenantMemberInfo, error) {
	var resp ListMembersResponse
	if err := s.getJSON(ctx, "/v1/members", &resp); err != nil {
		return nil, err
	}
	return resp.Members, nil
}

// doJSON performs an authenticated request with optional JSON body and
// response decoding.
func (s *Session) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.client.url(path), reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	return decodeResponse(resp, out)
}

func (s *Session) getJSON(ctx context.Context, path string, out any) error {
	return s.doJSON(ctx, http.MethodGet, path, nil, out)
}

func (s *Session) postJSON(ctx context.Context, path string, body, out any) error {
	return s.doJSON(ctx, http.MethodPost, path, body, out)
}
