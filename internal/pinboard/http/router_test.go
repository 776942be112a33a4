package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	pinhttp "github.com/aussiebroadwan/pinboard/internal/pinboard/http"
	"github.com/aussiebroadwan/pinboard/internal/pinboard/service"
	"github.com/aussiebroadwan/pinboard/internal/pinboard/store/drivers/sqlite"
	"github.com/aussiebroadwan/pinboard/pkg/cryptox"
	"github.com/aussiebroadwan/pinboard/pkg/httpx"
	"github.com/aussiebroadwan/pinboard/pkg/jwtx"
	"github.com/aussiebroadwan/pinboard/pkg/pinsdk"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type testServer struct {
	*httptest.Server
	client *pinsdk.Client
	store  *sqlite.Store
}

func generousLimits() httpx.RateLimitProfiles {
	limit := httpx.RateLimitConfig{RequestsPerWindow: 1000, Window: time.Minute, Burst: 1000}
	return httpx.RateLimitProfiles{Strict: limit, Moderate: limit, Lenient: limit, Public: limit}
}

func newTestServer(t *testing.T, limits httpx.RateLimitProfiles) *testServer {
	t.Helper()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "pinboard.db"))
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{Issuer: "test-issuer", NumKeys: 2})
	require.NoError(t, err)

	credentials := &service.CredentialService{
		Store:  st,
		Hasher: cryptox.Hasher{Algorithm: cryptox.AlgorithmBcrypt, BcryptCost: bcrypt.MinCost},
	}
	posts := &service.PostService{Store: st}
	follows := &service.FollowService{Store: st}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := pinhttp.NewRouter(km.KeySet, km.Verifier, "test", st, limits, logger)
	r.Credentials = credentials
	r.Tokens = &service.TokenService{KeyManager: km, Issuer: "test-issuer", AccessTTL: time.Hour}
	r.Posts = posts
	r.Follows = follows
	r.Profiles = &service.ProfileService{Credentials: credentials, Posts: posts, Follows: follows}
	r.ApplyRoutes()

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return &testServer{Server: srv, client: pinsdk.NewClient(srv.URL), store: st}
}

func (s *testServer) signUp(t *testing.T, username string) *pinsdk.Session {
	t.Helper()
	ctx := context.Background()

	_, err := s.client.Register(ctx, pinsdk.RegisterRequest{
		Username: username,
		Email:    username + "@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	session, err := s.client.Authenticate(ctx, username, "secret123")
	require.NoError(t, err)
	return session
}

func requireAPIError(t *testing.T, err error, target *pinsdk.APIError, reasons ...string) {
	t.Helper()
	require.ErrorIs(t, err, target)
	var apiErr *pinsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	if len(reasons) > 0 {
		require.Equal(t, reasons, apiErr.Reasons)
	}
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t, generousLimits())

	user, err := srv.client.Register(ctx, pinsdk.RegisterRequest{
		Username: "Ann",
		Email:    "ann@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.Equal(t, "ann", user.Username)
	require.Equal(t, "https://gravatar.com/avatar/257c57037d384ae37ea27a07e8a01665?s=128", user.Avatar)

	t.Run("validation reasons in rule order", func(t *testing.T) {
		_, err := srv.client.Register(ctx, pinsdk.RegisterRequest{Username: "a!", Email: "bad", Password: "123"})
		requireAPIError(t, err, pinsdk.ErrValidation,
			service.MsgUsernameCharset,
			service.MsgEmailInvalid,
			service.MsgPasswordTooShort,
			service.MsgUsernameTooShort,
		)
	})

	t.Run("duplicate username", func(t *testing.T) {
		_, err := srv.client.Register(ctx, pinsdk.RegisterRequest{Username: "ann", Email: "other@example.com", Password: "secret123"})
		requireAPIError(t, err, pinsdk.ErrValidation, service.MsgUsernameTaken)
	})

	t.Run("login", func(t *testing.T) {
		resp, err := srv.client.Login(ctx, pinsdk.LoginRequest{Username: "ann", Password: "secret123"})
		require.NoError(t, err)
		require.Equal(t, "Bearer", resp.TokenType)
		require.Equal(t, 3600, resp.ExpiresIn)
		require.NotEmpty(t, resp.AccessToken)
		require.Equal(t, user.ID, resp.User.ID)
		require.Equal(t, user.Avatar, resp.User.Avatar)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := srv.client.Login(ctx, pinsdk.LoginRequest{Username: "ann", Password: "nope"})
		requireAPIError(t, err, pinsdk.ErrInvalidCredentials, service.MsgInvalidLogin)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := srv.client.Login(ctx, pinsdk.LoginRequest{Username: "ghost", Password: "secret123"})
		requireAPIError(t, err, pinsdk.ErrInvalidCredentials, service.MsgInvalidLogin)
	})
}

func TestMalformedBody(t *testing.T) {
	srv := newTestServer(t, generousLimits())

	resp, err := http.Post(srv.URL+"/v1/users", "application/json", strings.NewReader(`{"username":`))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body pinsdk.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, pinsdk.ErrorCodeInvalidRequest, body.Error)
}

func TestPostLifecycle(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t, generousLimits())

	ann := srv.signUp(t, "ann")
	bob := srv.signUp(t, "bob")

	id, err := ann.CreatePost(ctx, pinsdk.PostRequest{Title: "  Tomato soup ", Body: "Roast the tomatoes first."})
	require.NoError(t, err)

	t.Run("owner view", func(t *testing.T) {
		post, err := ann.GetPost(ctx, id)
		require.NoError(t, err)
		require.Equal(t, "Tomato soup", post.Title)
		require.Equal(t, "ann", post.Author.Username)
		require.True(t, post.IsOwner)
	})

	t.Run("anonymous view", func(t *testing.T) {
		post, err := srv.client.GetPost(ctx, id)
		require.NoError(t, err)
		require.False(t, post.IsOwner)
	})

	t.Run("validation", func(t *testing.T) {
		_, err := ann.CreatePost(ctx, pinsdk.PostRequest{Title: " ", Body: ""})
		requireAPIError(t, err, pinsdk.ErrValidation, service.MsgTitleRequired, service.MsgBodyRequired)
	})

	t.Run("anonymous create", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/v1/posts", "application/json", strings.NewReader(`{"title":"x","body":"y"}`))
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("malformed id", func(t *testing.T) {
		_, err := srv.client.GetPost(ctx, "not-an-id")
		requireAPIError(t, err, pinsdk.ErrNotFound, service.MsgInvalidID)
	})

	t.Run("non-owner cannot edit or delete", func(t *testing.T) {
		err := bob.UpdatePost(ctx, id, pinsdk.PostRequest{Title: "Mine now", Body: "!"})
		requireAPIError(t, err, pinsdk.ErrPermissionDenied, service.MsgPermissionDenied)

		err = bob.DeletePost(ctx, id)
		requireAPIError(t, err, pinsdk.ErrPermissionDenied, service.MsgPermissionDenied)

		post, err := srv.client.GetPost(ctx, id)
		require.NoError(t, err)
		require.Equal(t, "Tomato soup", post.Title)
	})

	t.Run("owner edits", func(t *testing.T) {
		require.NoError(t, ann.UpdatePost(ctx, id, pinsdk.PostRequest{Title: "Tomato bisque", Body: "Now with cream."}))

		post, err := srv.client.GetPost(ctx, id)
		require.NoError(t, err)
		require.Equal(t, "Tomato bisque", post.Title)
		require.Equal(t, "Now with cream.", post.Body)
	})

	t.Run("search", func(t *testing.T) {
		found, err := bob.SearchPosts(ctx, "bisque")
		require.NoError(t, err)
		require.Len(t, found, 1)
		require.Equal(t, id, found[0].ID)
		require.False(t, found[0].IsOwner)

		resp, err := http.Get(srv.URL + "/v1/posts/search?q=cream")
		require.NoError(t, err)
		defer resp.Body.Close()
		var byQuery []pinsdk.PostResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&byQuery))
		require.Len(t, byQuery, 1)

		none, err := srv.client.SearchPosts(ctx, "   ")
		require.NoError(t, err)
		require.Empty(t, none)
	})

	t.Run("non-string search term", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/v1/posts/search", "application/json", strings.NewReader(`{"searchTerm":42}`))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var out []pinsdk.PostResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		require.Empty(t, out)
	})

	t.Run("user posts", func(t *testing.T) {
		second, err := ann.CreatePost(ctx, pinsdk.PostRequest{Title: "Bread", Body: "Knead it."})
		require.NoError(t, err)

		posts, err := ann.ListUserPosts(ctx, "ann")
		require.NoError(t, err)
		require.Len(t, posts, 2)
		require.Equal(t, second, posts[0].ID)
		require.True(t, posts[0].IsOwner)

		_, err = srv.client.ListUserPosts(ctx, "ghost")
		requireAPIError(t, err, pinsdk.ErrNotFound, service.MsgUserNotFound)
	})

	t.Run("owner deletes", func(t *testing.T) {
		require.NoError(t, ann.DeletePost(ctx, id))

		_, err := srv.client.GetPost(ctx, id)
		requireAPIError(t, err, pinsdk.ErrNotFound, service.MsgPostNotFound)
	})
}

func TestFollowGraph(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t, generousLimits())

	ann := srv.signUp(t, "ann")
	srv.signUp(t, "bob")

	require.NoError(t, ann.Follow(ctx, "bob"))

	t.Run("duplicate follow", func(t *testing.T) {
		err := ann.Follow(ctx, "bob")
		requireAPIError(t, err, pinsdk.ErrValidation, service.MsgAlreadyFollowing)
	})

	t.Run("missing user", func(t *testing.T) {
		err := ann.Follow(ctx, "ghost")
		requireAPIError(t, err, pinsdk.ErrValidation, service.MsgFollowMissingUser)
	})

	t.Run("self follow", func(t *testing.T) {
		err := ann.Follow(ctx, "ann")
		requireAPIError(t, err, pinsdk.ErrValidation, service.MsgFollowSelf)
	})

	t.Run("profile as follower", func(t *testing.T) {
		profile, err := ann.GetProfile(ctx, "bob")
		require.NoError(t, err)
		require.True(t, profile.IsFollowing)
		require.False(t, profile.IsSelf)
		require.Equal(t, 1, profile.Counts.Followers)
		require.Equal(t, 0, profile.Counts.Following)
	})

	t.Run("profile as self", func(t *testing.T) {
		profile, err := ann.GetProfile(ctx, "ann")
		require.NoError(t, err)
		require.True(t, profile.IsSelf)
		require.Equal(t, 1, profile.Counts.Following)
	})

	t.Run("anonymous profile", func(t *testing.T) {
		profile, err := srv.client.GetProfile(ctx, "bob")
		require.NoError(t, err)
		require.False(t, profile.IsFollowing)
		require.False(t, profile.IsSelf)

		_, err = srv.client.GetProfile(ctx, "ghost")
		requireAPIError(t, err, pinsdk.ErrNotFound, service.MsgUserNotFound)
	})

	t.Run("lists", func(t *testing.T) {
		followers, err := srv.client.ListFollowers(ctx, "bob")
		require.NoError(t, err)
		require.Equal(t, []pinsdk.ProfileSummary{{Username: "ann", Avatar: "https://gravatar.com/avatar/257c57037d384ae37ea27a07e8a01665?s=128"}}, followers)

		following, err := srv.client.ListFollowing(ctx, "bob")
		require.NoError(t, err)
		require.Empty(t, following)
	})

	t.Run("unfollow", func(t *testing.T) {
		require.NoError(t, ann.Unfollow(ctx, "bob"))

		err := ann.Unfollow(ctx, "bob")
		requireAPIError(t, err, pinsdk.ErrValidation, service.MsgNotFollowing)
	})
}

func TestInvalidTokenRejected(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t, generousLimits())

	session := srv.client.NewSessionFromToken("not-a-jwt", "ann", time.Time{})
	err := session.Follow(ctx, "bob")
	var apiErr *pinsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	require.Equal(t, pinsdk.ErrorCodeInvalidToken, apiErr.Code)

	// Optional-auth reads still reject a bad token rather than ignoring it
	_, err = session.GetProfile(ctx, "ann")
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestRateLimitedRegistration(t *testing.T) {
	ctx := context.Background()
	limits := generousLimits()
	limits.Strict = httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Hour, Burst: 1}
	srv := newTestServer(t, limits)

	_, err := srv.client.Register(ctx, pinsdk.RegisterRequest{Username: "ann", Email: "ann@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = srv.client.Register(ctx, pinsdk.RegisterRequest{Username: "bob", Email: "bob@example.com", Password: "secret123"})
	var apiErr *pinsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
	require.Equal(t, "rate_limit_exceeded", apiErr.Code)
}

func TestHealth(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t, generousLimits())

	live, err := srv.client.GetLiveness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)
	require.Equal(t, "test", live.Version)

	ready, err := srv.client.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.Equal(t, "ok", ready.Checks.Database)
	require.Equal(t, "ok", ready.Checks.Signer)

	jwks, err := srv.client.GetJWKS(ctx)
	require.NoError(t, err)
	require.Len(t, jwks.Keys, 2)

	t.Run("store down", func(t *testing.T) {
		require.NoError(t, srv.store.Close())

		_, err := srv.client.GetReadiness(ctx)
		var apiErr *pinsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	})
}
