package service

import (
	"context"
	"errors"
	"log/slog"
	"net/mail"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/aussiebroadwan/pinboard/internal/pinboard/domain"
	"github.com/aussiebroadwan/pinboard/internal/pinboard/store"
	"github.com/aussiebroadwan/pinboard/pkg/idx"
	"github.com/aussiebroadwan/pinboard/pkg/slogx"
)

var alphanumeric = regexp.MustCompile(`^[a-z0-9]+$`)

// CredentialService owns identity records: registration, login and the
// read-only lookups other components enrich with.
type CredentialService struct {
	Store  store.Store
	Hasher PasswordHasher
}

// Register validates in (username, email, password), then persists a new
// identity. Every failed rule is reported, in rule order.
func (s *CredentialService) Register(ctx context.Context, in domain.RawInput) (domain.Identity, error) {
	l := slogx.FromContext(ctx)

	username := domain.NormalizeHandle(in.String("username"))
	email := domain.NormalizeHandle(in.String("email"))
	password := in.String("password")

	usernameLen := utf8.RuneCountInString(username)
	passwordLen := utf8.RuneCountInString(password)
	usernameOK := username != "" && alphanumeric.MatchString(username)
	emailOK := validEmail(email)

	var reasons []string
	if username == "" {
		reasons = append(reasons, MsgUsernameRequired)
	}
	if username != "" && !usernameOK {
		reasons = append(reasons, MsgUsernameCharset)
	}
	if !emailOK {
		reasons = append(reasons, MsgEmailInvalid)
	}
	if password == "" {
		reasons = append(reasons, MsgPasswordRequired)
	}
	if passwordLen > 0 && passwordLen < PasswordMinLen {
		reasons = append(reasons, MsgPasswordTooShort)
	}
	if passwordLen > PasswordMaxLen {
		reasons = append(reasons, MsgPasswordTooLong)
	}
	if usernameLen > 0 && usernameLen < UsernameMinLen {
		reasons = append(reasons, MsgUsernameTooShort)
	}
	if usernameLen > UsernameMaxLen {
		reasons = append(reasons, MsgUsernameTooLong)
	}

	checkUsername := usernameOK && usernameLen >= UsernameMinLen && usernameLen <= UsernameMaxLen
	if !checkUsername && !emailOK {
		return domain.Identity{}, domain.Validation(reasons...)
	}

	// The uniqueness checks and the insert share a transaction. The store
	// constraints still back them up, mapped to the same messages.
	var identity domain.Identity
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if checkUsername {
			taken, err := exists(tx.Users().GetByUsername(ctx, username))
			if err != nil {
				l.Error("username lookup failed", slog.Any("error", err))
				return domain.System(MsgSaveUserFailed, err)
			}
			if taken {
				reasons = append(reasons, MsgUsernameTaken)
			}
		}
		if emailOK {
			taken, err := exists(tx.Users().GetByEmail(ctx, email))
			if err != nil {
				l.Error("email lookup failed", slog.Any("error", err))
				return domain.System(MsgSaveUserFailed, err)
			}
			if taken {
				reasons = append(reasons, MsgEmailTaken)
			}
		}

		if err := domain.Validation(reasons...); err != nil {
			return err
		}

		hash, err := s.Hasher.Hash(password)
		if err != nil {
			l.Error("password hashing failed", slog.Any("error", err))
			return domain.System(MsgSaveUserFailed, err)
		}

		now := time.Now().UTC()
		identity = domain.Identity{
			ID:           idx.NewAt(now),
			Username:     username,
			Email:        email,
			PasswordHash: hash,
			CreatedAt:    now,
		}
		return createUser(ctx, tx.Users(), identity)
	})
	if err != nil {
		return domain.Identity{}, txFailure(ctx, err, MsgSaveUserFailed)
	}

	l.Info("user registered", slog.String("user_id", identity.ID.String()))
	return identity.WithAvatar(), nil
}

// Login checks a username and password. Unknown users and wrong passwords
// fail identically.
func (s *CredentialService) Login(ctx context.Context, username, password string) (domain.Identity, error) {
	l := slogx.FromContext(ctx)

	identity, err := s.Store.Users().GetByUsername(ctx, domain.NormalizeHandle(username))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Identity{}, domain.InvalidCredentials(MsgInvalidLogin)
		}
		l.Error("login lookup failed", slog.Any("error", err))
		return domain.Identity{}, domain.System(MsgLoginUnavailable, err)
	}

	if !s.Hasher.Verify(password, identity.PasswordHash) {
		l.Info("login rejected", slog.String("user_id", identity.ID.String()))
		return domain.Identity{}, domain.InvalidCredentials(MsgInvalidLogin)
	}

	return identity.WithAvatar(), nil
}

// GetIdentity returns the identity with its avatar attached.
func (s *CredentialService) GetIdentity(ctx context.Context, id idx.ID) (domain.Identity, error) {
	identity, err := s.Store.Users().GetByID(ctx, id)
	return s.lookup(ctx, identity, err)
}

// GetByUsername resolves a (normalised) username to its identity.
func (s *CredentialService) GetByUsername(ctx context.Context, username string) (domain.Identity, error) {
	identity, err := s.Store.Users().GetByUsername(ctx, domain.NormalizeHandle(username))
	return s.lookup(ctx, identity, err)
}

func (s *CredentialService) lookup(ctx context.Context, identity domain.Identity, err error) (domain.Identity, error) {
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Identity{}, domain.NotFound(MsgUserNotFound)
		}
		slogx.FromContext(ctx).Error("user lookup failed", slog.Any("error", err))
		return domain.Identity{}, domain.System(MsgLoginUnavailable, err)
	}
	return identity.WithAvatar(), nil
}

// createUser inserts identity, mapping uniqueness rejections back to the
// registration messages.
func createUser(ctx context.Context, users store.Users, identity domain.Identity) error {
	err := users.Create(ctx, identity)
	if err == nil {
		return nil
	}

	var cerr *store.ConstraintError
	if errors.As(err, &cerr) {
		switch cerr.Constraint {
		case store.ConstraintUsername:
			return domain.Validation(MsgUsernameTaken)
		case store.ConstraintEmail:
			return domain.Validation(MsgEmailTaken)
		}
	}
	slogx.FromContext(ctx).Error("user insert failed", slog.Any("error", err))
	return domain.System(MsgSaveUserFailed, err)
}

// DeriveAvatar returns the gravatar URI for email.
func DeriveAvatar(email string) string { return domain.Avatar(email) }

// exists turns a lookup result into a presence flag.
func exists(_ domain.Identity, err error) (bool, error) {
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, store.ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}

// validEmail accepts a bare addr-spec with a dotted domain.
func validEmail(email string) bool {
	if email == "" || strings.ContainsAny(email, " <>") {
		return false
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}
	at := strings.LastIndexByte(email, '@')
	domainPart := email[at+1:]
	dot := strings.LastIndexByte(domainPart, '.')
	return dot > 0 && dot < len(domainPart)-2
}
