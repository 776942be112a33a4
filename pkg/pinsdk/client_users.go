package pinsdk

import (
	"context"
	"net/http"
	"net/url"
)

// Register creates an account. Validation failures come back as an
// *APIError whose Reasons list every broken rule.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*UserResponse, error) {
	var out RegisterResponse
	if err := c.call(ctx, http.MethodPost, "/v1/users", "", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// Login exchanges a username and password for an access token.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*SessionResponse, error) {
	var out SessionResponse
	if err := c.call(ctx, http.MethodPost, "/v1/sessions", "", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetProfile fetches a user's profile as an anonymous viewer.
func (c *Client) GetProfile(ctx context.Context, username string) (*ProfileResponse, error) {
	return c.getProfile(ctx, username, "")
}

// ListUserPosts lists a user's posts, newest first.
func (c *Client) ListUserPosts(ctx context.Context, username string) ([]PostResponse, error) {
	return c.listUserPosts(ctx, username, "")
}

// ListFollowers lists who follows username, oldest first.
func (c *Client) ListFollowers(ctx context.Context, username string) ([]ProfileSummary, error) {
	var out []ProfileSummary
	err := c.call(ctx, http.MethodGet, userPath(username, "/followers"), "", nil, &out, http.StatusOK)
	return out, err
}

// ListFollowing lists who username follows, oldest first.
func (c *Client) ListFollowing(ctx context.Context, username string) ([]ProfileSummary, error) {
	var out []ProfileSummary
	err := c.call(ctx, http.MethodGet, userPath(username, "/following"), "", nil, &out, http.StatusOK)
	return out, err
}

func (c *Client) getProfile(ctx context.Context, username, token string) (*ProfileResponse, error) {
	var out ProfileResponse
	if err := c.call(ctx, http.MethodGet, userPath(username, ""), token, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) listUserPosts(ctx context.Context, username, token string) ([]PostResponse, error) {
	var out []PostResponse
	err := c.call(ctx, http.MethodGet, userPath(username, "/posts"), token, nil, &out, http.StatusOK)
	return out, err
}

func userPath(username, suffix string) string {
	return "/v1/users/" + url.PathEscape(username) + suffix
}
