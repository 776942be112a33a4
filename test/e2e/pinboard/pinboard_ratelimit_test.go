package pinboard_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/aussiebroadwan/pinboard/pkg/pinsdk"
	"github.com/stretchr/testify/require"
)

// TestRateLimitLoginEndpoint verifies POST /v1/sessions is strictly limited
// (5 req/min) to slow down password guessing.
func TestRateLimitLoginEndpoint(t *testing.T) {
	client := setupPinboardContainerWithDefaultRateLimits(t)

	for i := range 5 {
		_, err := client.Authenticate(t.Context(), "wronguser", "wrongpass")
		assertAPIError(t, err, http.StatusUnauthorized)
		t.Logf("request %d rejected as unauthorized", i+1)
	}

	_, err := client.Authenticate(t.Context(), "wronguser", "wrongpass")
	assertRateLimited(t, err)
}

// TestRateLimitRegisterEndpoint verifies account creation is strictly limited.
func TestRateLimitRegisterEndpoint(t *testing.T) {
	client := setupPinboardContainerWithDefaultRateLimits(t)

	var lastErr error
	for range 6 {
		_, lastErr = client.Register(t.Context(), pinsdk.RegisterRequest{})
	}
	assertRateLimited(t, lastErr)
}

// TestRateLimitHealthEndpoints verifies health checks have lenient limits.
func TestRateLimitHealthEndpoints(t *testing.T) {
	client := setupPinboardContainerWithDefaultRateLimits(t)

	for i := range 30 {
		health, err := client.GetLiveness(t.Context())
		require.NoError(t, err, "Liveness request %d should not be rate limited", i+1)
		require.Equal(t, "ok", health.Status)

		health, err = client.GetReadiness(t.Context())
		require.NoError(t, err, "Readiness request %d should not be rate limited", i+1)
		require.Equal(t, "ok", health.Status)
	}
}

// TestRateLimitHeadersPresent verifies a throttled response explains itself.
func TestRateLimitHeadersPresent(t *testing.T) {
	client := setupPinboardContainerWithDefaultRateLimits(t)

	body, err := json.Marshal(pinsdk.LoginRequest{Username: "wronguser", Password: "wrongpass"})
	require.NoError(t, err)

	post := func() *http.Response {
		req, err := http.NewRequestWithContext(t.Context(), http.MethodPost, client.BaseURL+"/v1/sessions", bytes.NewReader(body))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.HTTPClient.Do(req)
		require.NoError(t, err)
		return resp
	}

	for range 5 {
		resp := post()
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}

	resp := post()
	defer resp.Body.Close()

	require.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	require.NotEmpty(t, resp.Header.Get("Retry-After"))
	require.Equal(t, "5", resp.Header.Get("X-RateLimit-Limit"))
	require.Equal(t, "1m0s", resp.Header.Get("X-RateLimit-Window"))
}
