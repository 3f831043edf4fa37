/*
Package platformsdk provides a client SDK for the trialdesk platform service.

The package is organized around two main types:

  - SDKClient: unauthenticated operations (login, demo onboarding,
    invitation validation and acceptance) and session creation
  - Session: authenticated operations carrying a Bearer session token

Create an SDKClient to interact with public endpoints and log in:

	client := platformsdk.NewSDKClient("https://platform.example.com")

	result, err := client.Login(ctx, platformsdk.LoginRequest{
		Email:    "user@example.com",
		Password: "secret",
	})
	if result.TenantSelectionRequired {
		// Repeat with a tenant_id from result.Tenants. Credentials are
		// required again; the server re-verifies the membership.
		result, err = client.Login(ctx, platformsdk.LoginRequest{
			Email:    "user@example.com",
			Password: "secret",
			TenantID: result.Tenants[0].TenantID,
		})
	}

	session := client.NewSession(result.SessionToken)
	info, err := session.GetUserInfo(ctx)

Sessions are stateless JWTs scoped to at most one tenant; there is no
refresh flow. When a token expires, log in again.

Error responses unmarshal into APIError, which carries the HTTP status
code and the server's detail string:

	_, err := client.ValidateInvitation(ctx, platformsdk.NamespaceTenant, token)
	var apiErr *platformsdk.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusGone {
		// invalid or expired token
	}
*/
package platformsdk
