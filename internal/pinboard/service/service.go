// Package service implements the pinboard core: credentials, posts, the
// follow graph and the aggregates built on them. Every operation takes the
// acting identity as an explicit argument; idx.Zero means anonymous.
package service

import (
	"context"
	"log/slog"

	"github.com/aussiebroadwan/pinboard/internal/pinboard/domain"
	"github.com/aussiebroadwan/pinboard/pkg/slogx"
)

// PasswordHasher hashes and verifies passwords. cryptox.Hasher satisfies it.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}

// User-facing messages. Transports render them verbatim.
const (
	MsgUsernameRequired  = "You must provide a username."
	MsgUsernameCharset   = "Username can only contain letters and numbers."
	MsgEmailInvalid      = "You must provide a valid email address."
	MsgPasswordRequired  = "You must provide a password."
	MsgPasswordTooShort  = "Password must be at least 6 characters."
	MsgPasswordTooLong   = "Password cannot exceed 50 characters."
	MsgUsernameTooShort  = "Username must be at least 3 characters."
	MsgUsernameTooLong   = "Username cannot exceed 30 characters."
	MsgUsernameTaken     = "Username already exists."
	MsgEmailTaken        = "Email already exists."
	MsgSaveUserFailed    = "Error while saving the user."
	MsgInvalidLogin      = "Invalid user or password !"
	MsgLoginUnavailable  = "Please try again later"
	MsgUserNotFound      = "User not found"
	MsgTitleRequired     = "You must provide a title."
	MsgBodyRequired      = "You must provide post content."
	MsgPostUnavailable   = "Please try again later..."
	MsgInvalidID         = "Invalid ID format"
	MsgPostNotFound      = "Post not found"
	MsgPermissionDenied  = "You do not have permission to perform that action."
	MsgLoginToPost       = "You must be logged in to create a post."
	MsgFollowMissingUser = "Cannot follow a user that doesn't exist"
	MsgAlreadyFollowing  = "You are already following this user"
	MsgNotFollowing      = "You are already not following this user"
	MsgFollowSelf        = "You cannot follow yourself"
	MsgFollowUnavailable = "Error in follow model"
)

// Credential limits, counted in characters.
const (
	UsernameMinLen = 3
	UsernameMaxLen = 30
	PasswordMinLen = 6
	PasswordMaxLen = 50
)

// txFailure passes errors from the taxonomy through and reports anything
// else, such as a failed begin or commit, as a system error with msg.
func txFailure(ctx context.Context, err error, msg string) error {
	if err == nil || domain.KindOf(err) != domain.KindUnknown {
		return err
	}
	slogx.FromContext(ctx).Error("transaction failed", slog.Any("error", err))
	return domain.System(msg, err)
}
