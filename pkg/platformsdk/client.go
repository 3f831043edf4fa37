package platformsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the trialdesk platform service. It provides
// access to unauthenticated operations and creates authenticated
// Sessions via Login or NewSession.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new platform service client.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Login authenticates with the platform service. When the response is a
// tenant-selection challenge, LoginResponse.TenantSelectionRequired is
// set and no session token is present; repeat the call with a TenantID.
func (c *SDKClient) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	var resp LoginResponse
	if err := c.postJSON(ctx, "/v1/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AuthenticateWithPassword logs in and wraps the issued token in a
// Session. It fails when the server answers with a tenant-selection
// challenge; pass tenantID to resolve the ambiguity.
func (c *SDKClient) AuthenticateWithPassword(ctx context.Context, email, password, tenantID string) (*Session, error) {
	resp, err := c.Login(ctx, LoginRequest{Email: email, Password: password, TenantID: tenantID})
	if err != nil {
		return nil, err
	}
	if resp.TenantSelectionRequired {
		return nil, fmt.Errorf("tenant selection required: %d tenants available", len(resp.Tenants))
	}
	return c.NewSession(resp.SessionToken), nil
}

// NewSession wraps an existing session token.
func (c *SDKClient) NewSession(token string) *Session {
	return &Session{client: c, token: token}
}

// GetLiveness checks the /livez endpoint.
func (c *SDKClient) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	var resp HealthResponse
	if err := c.getJSON(ctx, "/livez", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetReadiness checks the /readyz endpoint.
func (c *SDKClient) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	var resp HealthResponse
	if err := c.getJSON(ctx, "/readyz", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// url builds a complete URL by appending the path to the base URL.
func (c *SDKClient) url(path string) string {
	return c.BaseURL + path
}

// doRequest performs an unauthenticated HTTP request.
func (c *SDKClient) doRequest(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	return resp, nil
}

// postJSON sends a JSON body and decodes a JSON response, translating
// non-2xx statuses into *APIError.
func (c *SDKClient) postJSON(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	return decodeResponse(resp, out)
}

// getJSON fetches a path and decodes a JSON response.
func (c *SDKClient) getJSON(ctx context.Context, path string, out any) error {
	resp, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return decodeResponse(resp, out)
}

// decodeResponse drains and closes the body, mapping error statuses to
// *APIError and decoding success payloads into out.
func decodeResponse(resp *http.Response, out any) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errorFromResponse(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
