package pinboard_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/aussiebroadwan/pinboard/pkg/pinsdk"
	"github.com/stretchr/testify/require"
)

// TestInvalidCredentials verifies a wrong password is rejected without
// revealing which half was wrong.
func TestInvalidCredentials(t *testing.T) {
	client := setupPinboardContainer(t)

	_ = registerAndLogin(t, client, "ann")

	_, err := client.Authenticate(t.Context(), "ann", "wrong-password")
	wrongPassword := assertAPIError(t, err, http.StatusUnauthorized)

	_, err = client.Authenticate(t.Context(), "nobody", testPassword)
	unknownUser := assertAPIError(t, err, http.StatusUnauthorized)

	require.Equal(t, wrongPassword.Reasons, unknownUser.Reasons)
}

// TestDuplicateRegistration verifies usernames and emails stay unique.
func TestDuplicateRegistration(t *testing.T) {
	client := setupPinboardContainer(t)

	_ = registerAndLogin(t, client, "ann")

	_, err := client.Register(t.Context(), pinsdk.RegisterRequest{
		Username: "ann",
		Email:    "ann@example.com",
		Password: testPassword,
	})
	apiErr := assertAPIError(t, err, http.StatusBadRequest)
	require.Contains(t, apiErr.Reasons, "Username already exists.")
	require.Contains(t, apiErr.Reasons, "Email already exists.")
}

// TestInvalidAccessToken verifies forged tokens are rejected on every
// authenticated route.
func TestInvalidAccessToken(t *testing.T) {
	client := setupPinboardContainer(t)

	forged := client.NewSessionFromToken("invalid-token-12345", "ann", time.Now().Add(time.Hour))

	_, err := forged.CreatePost(t.Context(), pinsdk.PostRequest{Title: "Hi", Body: "There"})
	require.True(t, errors.Is(err, pinsdk.ErrInvalidToken), "got %v", err)

	err = forged.Follow(t.Context(), "bob")
	require.True(t, errors.Is(err, pinsdk.ErrInvalidToken), "got %v", err)
}

// TestAnonymousWritesRejected verifies writes need a token at all.
func TestAnonymousWritesRejected(t *testing.T) {
	client := setupPinboardContainer(t)

	anon := client.NewSessionFromToken("", "", time.Time{})

	_, err := anon.CreatePost(t.Context(), pinsdk.PostRequest{Title: "Hi", Body: "There"})
	assertAPIError(t, err, http.StatusUnauthorized)
}
