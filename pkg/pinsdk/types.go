package pinsdk

import (
	"time"

	"github.com/aussiebroadwan/pinboard/pkg/jwtx"
)

// ============================================================================
// Error Types
// ============================================================================

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	// Error is a stable machine-readable code (e.g., "validation_failed")
	Error string `json:"error" example:"validation_failed"`

	// ErrorDescription is a human-readable summary
	ErrorDescription string `json:"error_description" example:"the request failed validation"`

	// Reasons lists every user-facing message, in the order the rules ran
	Reasons []string `json:"reasons,omitempty" example:"You must provide a title."`
}

// ============================================================================
// Account Types
// ============================================================================

// RegisterRequest is the body of POST /v1/users. Fields are decoded loosely;
// non-string values are treated as empty.
type RegisterRequest struct {
	Username string `json:"username" example:"ann"`
	Email    string `json:"email" example:"ann@example.com"`
	Password string `json:"password" example:"correct-horse"`
}

// LoginRequest is the body of POST /v1/sessions.
type LoginRequest struct {
	Username string `json:"username" example:"ann"`
	Password string `json:"password" example:"correct-horse"`
}

// UserResponse is the public view of an identity.
type UserResponse struct {
	ID        string    `json:"id" example:"01HZX3M8Q6J1V9K2T4R5S7W8Y0"`
	Username  string    `json:"username" example:"ann"`
	Avatar    string    `json:"avatar" example:"https://gravatar.com/avatar/257c57037d384ae37ea27a07e8a01665?s=128"`
	CreatedAt time.Time `json:"created_at"`
}

// RegisterResponse is returned from POST /v1/users.
type RegisterResponse struct {
	User UserResponse `json:"user"`
}

// SessionResponse is returned from POST /v1/sessions.
type SessionResponse struct {
	// AccessToken is an EdDSA-signed JWT
	AccessToken string `json:"access_token"`

	// TokenType is always "Bearer"
	TokenType string `json:"token_type" example:"Bearer"`

	// ExpiresIn is the token lifetime in seconds
	ExpiresIn int `json:"expires_in" example:"3600"`

	User UserResponse `json:"user"`
}

// ============================================================================
// Post Types
// ============================================================================

// PostRequest is the body of POST /v1/posts and PUT /v1/posts/{id}.
type PostRequest struct {
	Title string `json:"title" example:"Hello"`
	Body  string `json:"body" example:"First post"`
}

// CreatePostResponse is returned from POST /v1/posts.
type CreatePostResponse struct {
	ID string `json:"id" example:"01HZX3M8Q6J1V9K2T4R5S7W8Y0"`
}

// AuthorResponse is the public face of a post's author.
type AuthorResponse struct {
	Username string `json:"username" example:"ann"`
	Avatar   string `json:"avatar"`
}

// PostResponse is a post joined with its author as seen by the caller.
type PostResponse struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Body      string         `json:"body"`
	CreatedAt time.Time      `json:"created_at"`
	Author    AuthorResponse `json:"author"`
	IsOwner   bool           `json:"is_owner"`
}

// SearchRequest is the body of POST /v1/posts/search.
type SearchRequest struct {
	SearchTerm string `json:"searchTerm" example:"tomatoes"`
}

// ============================================================================
// Profile Types
// ============================================================================

// ProfileSummary is one entry of a follower or following list.
type ProfileSummary struct {
	Username string `json:"username" example:"bob"`
	Avatar   string `json:"avatar"`
}

// ProfileCounts are live aggregates of a profile.
type ProfileCounts struct {
	Posts     int `json:"posts"`
	Followers int `json:"followers"`
	Following int `json:"following"`
}

// ProfileResponse is returned from GET /v1/users/{username}.
type ProfileResponse struct {
	Username    string        `json:"username" example:"bob"`
	Avatar      string        `json:"avatar"`
	IsFollowing bool          `json:"is_following"`
	IsSelf      bool          `json:"is_self"`
	Counts      ProfileCounts `json:"counts"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz endpoints (readyz includes additional Checks field).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains readiness check results (only for /readyz)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks represents the status of critical service dependencies.
type HealthChecks struct {
	// Database indicates the store connection status
	Database string `json:"database"`

	// Signer indicates the JWT signing capability status
	Signer string `json:"signer"`
}

// JWKSResponse contains the public keys used to verify access tokens.
type JWKSResponse jwtx.JWKS
