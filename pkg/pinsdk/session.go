package pinsdk

import (
	"context"
	"net/http"
	"time"
)

// Session is an authenticated connection. Access tokens are not refreshed;
// once expired, log in again.
type Session struct {
	client *Client

	accessToken string
	username    string
	expiresAt   time.Time
	user        *UserResponse
}

func newSession(client *Client, resp *SessionResponse) *Session {
	user := resp.User
	return &Session{
		client:      client,
		accessToken: resp.AccessToken,
		username:    resp.User.Username,
		expiresAt:   time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second),
		user:        &user,
	}
}

// AccessToken returns the bearer token, for persisting between runs.
func (s *Session) AccessToken() string { return s.accessToken }

// Username returns the user the session was created for.
func (s *Session) Username() string { return s.username }

// ExpiresAt returns when the access token stops being accepted.
func (s *Session) ExpiresAt() time.Time { return s.expiresAt }

// Expired reports whether the access token has expired.
func (s *Session) Expired() bool {
	return !s.expiresAt.IsZero() && time.Now().After(s.expiresAt)
}

// User returns the identity returned at login, or nil for resumed sessions.
func (s *Session) User() *UserResponse { return s.user }

// CreatePost publishes a post and returns its id.
func (s *Session) CreatePost(ctx context.Context, req PostRequest) (string, error) {
	var out CreatePostResponse
	if err := s.client.call(ctx, http.MethodPost, "/v1/posts", s.accessToken, req, &out, http.StatusCreated); err != nil {
		return "", err
	}
	return out.ID, nil
}

// UpdatePost replaces the title and body of a post the caller owns.
func (s *Session) UpdatePost(ctx context.Context, id string, req PostRequest) error {
	return s.client.call(ctx, http.MethodPut, postPath(id), s.accessToken, req, nil, http.StatusNoContent)
}

// DeletePost removes a post the caller owns.
func (s *Session) DeletePost(ctx context.Context, id string) error {
	return s.client.call(ctx, http.MethodDelete, postPath(id), s.accessToken, nil, nil, http.StatusNoContent)
}

// GetPost fetches a post with is_owner computed for the caller.
func (s *Session) GetPost(ctx context.Context, id string) (*PostResponse, error) {
	return s.client.getPost(ctx, id, s.accessToken)
}

// SearchPosts searches with is_owner computed for the caller.
func (s *Session) SearchPosts(ctx context.Context, term string) ([]PostResponse, error) {
	return s.client.searchPosts(ctx, term, s.accessToken)
}

// ListUserPosts lists a user's posts with is_owner computed for the caller.
func (s *Session) ListUserPosts(ctx context.Context, username string) ([]PostResponse, error) {
	return s.client.listUserPosts(ctx, username, s.accessToken)
}

// GetProfile fetches a profile with is_following and is_self for the caller.
func (s *Session) GetProfile(ctx context.Context, username string) (*ProfileResponse, error) {
	return s.client.getProfile(ctx, username, s.accessToken)
}

// Follow makes the caller follow username.
func (s *Session) Follow(ctx context.Context, username string) error {
	return s.client.call(ctx, http.MethodPost, userPath(username, "/follow"), s.accessToken, nil, nil, http.StatusNoContent)
}

// Unfollow removes the caller's follow of username.
func (s *Session) Unfollow(ctx context.Context, username string) error {
	return s.client.call(ctx, http.MethodDelete, userPath(username, "/follow"), s.accessToken, nil, nil, http.StatusNoContent)
}
