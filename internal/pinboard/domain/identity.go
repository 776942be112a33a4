package domain

import (
	"crypto/md5" // #nosec G501 - gravatar addresses avatars by md5
	"encoding/hex"
	"strings"
	"time"

	"github.com/aussiebroadwan/pinboard/pkg/idx"
)

// Identity is a registered user. PasswordHash is never serialised by any
// transport. AvatarURI is derived, not stored.
type Identity struct {
	ID           idx.ID
	Username     string
	Email        string
	PasswordHash string
	AvatarURI    string
	CreatedAt    time.Time
}

// WithAvatar returns a copy of the identity with AvatarURI filled in.
func (i Identity) WithAvatar() Identity {
	i.AvatarURI = Avatar(i.Email)
	return i
}

// NormalizeHandle trims and lower-cases usernames and emails.
func NormalizeHandle(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Avatar returns the gravatar URI for email. It makes no network call.
func Avatar(email string) string {
	sum := md5.Sum([]byte(NormalizeHandle(email))) // #nosec G401
	return "https://gravatar.com/avatar/" + hex.EncodeToString(sum[:]) + "?s=128"
}
