package service

import (
	"time"

	"github.com/aussiebroadwan/pinboard/internal/pinboard/domain"
	"github.com/aussiebroadwan/pinboard/pkg/idx"
	"github.com/aussiebroadwan/pinboard/pkg/jwtx"
)

// Scopes granted to every signed-in user.
const (
	ScopePostsWrite   = "posts:write"
	ScopeFollowsWrite = "follows:write"
)

// DefaultScopes are embedded in every access token.
var DefaultScopes = []string{ScopePostsWrite, ScopeFollowsWrite}

// AccessToken is a signed bearer token and its lifetime.
type AccessToken struct {
	Token     string
	ExpiresIn time.Duration
	SessionID string
}

// TokenService signs access tokens for authenticated identities.
type TokenService struct {
	KeyManager *jwtx.KeyManager
	Issuer     string
	Audience   []string
	AccessTTL  time.Duration
}

// Issue signs an access token for identity with a fresh session id.
func (s *TokenService) Issue(identity domain.Identity) (AccessToken, error) {
	ttl := s.AccessTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}

	now := time.Now()
	sid := idx.NewAt(now).String()
	claims := jwtx.NewAccessClaims(
		identity.ID.String(),
		sid,
		identity.Username,
		DefaultScopes,
		ttl,
		s.Issuer,
		s.Audience,
		now,
	)

	// Signing is spread across the key manager's keys.
	token, err := s.KeyManager.GetSigner().Sign(claims)
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: token, ExpiresIn: ttl, SessionID: sid}, nil
}
