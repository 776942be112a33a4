package pinsdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// Client talks to a pinboard server. It performs anonymous calls and
// creates authenticated Sessions.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client for the server at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Authenticate logs in and returns a session holding the access token.
func (c *Client) Authenticate(ctx context.Context, username, password string) (*Session, error) {
	resp, err := c.Login(ctx, LoginRequest{Username: username, Password: password})
	if err != nil {
		return nil, err
	}
	return newSession(c, resp), nil
}

// NewSessionFromToken resumes a session from a stored access token. The
// server remains the judge of whether it is still valid.
func (c *Client) NewSessionFromToken(accessToken, username string, expiresAt time.Time) *Session {
	return &Session{
		client:      c,
		accessToken: accessToken,
		username:    username,
		expiresAt:   expiresAt,
	}
}
