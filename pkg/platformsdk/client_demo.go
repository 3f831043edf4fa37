package platformsdk

import (
	"context"
	"net/url"
)

// RequestDemo starts the self-service demo onboarding flow. The raw
// verification token is returned for out-of-band delivery.
func (c *SDKClient) RequestDemo(ctx context.Context, req DemoRequestRequest) (*DemoRequestResponse, error) {
	var resp DemoRequestResponse
	if err := c.postJSON(ctx, "/v1/demo/request", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// VerifyDemoEmail confirms a signup's email address, returning the raw
// password setup token for the final stage.
func (c *SDKClient) VerifyDemoEmail(ctx context.Context, token string) (*DemoVerifyResponse, error) {
	var resp DemoVerifyResponse
	path := "/v1/demo/verify-email?token=" + url.QueryEscape(token)
	if err := c.getJSON(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SetDemoPassword completes the flow: sets the account password and
// provisions the demo tenant. Only possible after email verification.
func (c *SDKClient) SetDemoPassword(ctx context.Context, req DemoSetPasswordRequest) (*DemoSetPasswordResponse, error) {
	var resp DemoSetPasswordResponse
	if err := c.postJSON(ctx, "/v1/demo/set-password", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
