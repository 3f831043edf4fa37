package platform_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/trialdesk/trialdesk/pkg/platformsdk"
)

// TestHealthEndpoints checks the liveness and readiness probes of a
// freshly started service.
func TestHealthEndpoints(t *testing.T) {
	client, _ := setupPlatformServer(t)
	ctx := context.Background()

	live, err := client.GetLiveness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)
	require.Equal(t, "e2e", live.Version)

	ready, err := client.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.NotNil(t, ready.Checks)
	require.Equal(t, "ok", ready.Checks.Database)
	require.Equal(t, "ok", ready.Checks.Signer)
}

// TestDemoRequestRateLimited drives the public demo endpoint past the
// strict per-IP burst and expects a 429 with a Retry-After hint.
func TestDemoRequestRateLimited(t *testing.T) {
	client, _ := setupPlatformServer(t)
	ctx := context.Background()

	var limited *platformsdk.APIError
	for i := 0; i < 10; i++ {
		_, err := client.RequestDemo(ctx, platformsdk.DemoRequestRequest{
			Email:   "burst@startup.test",
			Company: "Burst Inc",
		})
		if err != nil {
			var apiErr *platformsdk.APIError
			require.ErrorAs(t, err, &apiErr)
			if apiErr.StatusCode == http.StatusTooManyRequests {
				limited = apiErr
				break
			}
			t.Fatalf("unexpected error before rate limit: %v", err)
		}
	}

	require.NotNil(t, limited, "expected a 429 within 10 requests")
	require.NotEmpty(t, limited.Detail)
	t.Logf("rate limited after burst: %s", limited.Detail)
}
