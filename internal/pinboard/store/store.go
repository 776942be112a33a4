package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/pinboard/internal/pinboard/domain"
	"github.com/aussiebroadwan/pinboard/pkg/idx"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Constraint names reported by ConstraintError.
const (
	ConstraintUsername = "username"
	ConstraintEmail    = "email"
	ConstraintFollow   = "follow"
)

// ConstraintError reports a uniqueness rejection. Constraint names which
// rule fired so callers can map it back to a message.
type ConstraintError struct {
	Constraint string
	Err        error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("store: %s already exists", e.Constraint)
}

func (e *ConstraintError) Is(target error) bool { return target == ErrAlreadyExists }

func (e *ConstraintError) Unwrap() error { return e.Err }

// Store is the root data access interface implemented by the sqlite and
// postgres drivers. Repositories are reached through accessor methods so a
// Tx-scoped store exposes the same surface.
type Store interface {
	Users() Users
	Posts() Posts
	Follows() Follows

	ApplyMigrations() error

	// Tx starts a read/write transaction. The caller must Commit or Rollback.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Optimize runs driver-specific maintenance (index merges, statistics).
	Optimize(ctx context.Context) error

	Ping(ctx context.Context) error
	Close() error
}

// Tx is a transactional store.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// Create inserts u. Duplicate usernames or emails yield a ConstraintError.
	Create(ctx context.Context, u domain.Identity) error

	GetByID(ctx context.Context, id idx.ID) (domain.Identity, error)

	// GetByUsername matches the stored (normalised) username exactly.
	GetByUsername(ctx context.Context, username string) (domain.Identity, error)

	GetByEmail(ctx context.Context, email string) (domain.Identity, error)
}

// PostSelector narrows a post query. Zero fields are ignored; an empty
// selector matches every post.
type PostSelector struct {
	ID       idx.ID
	AuthorID idx.ID
	Text     string // full-text match over title and body
	Limit    int
}

// PostRow is a post joined with its author.
type PostRow struct {
	domain.Post
	AuthorUsername string
	AuthorEmail    string
}

type Posts interface {
	Create(ctx context.Context, p domain.Post) error

	Get(ctx context.Context, id idx.ID) (domain.Post, error)

	// Update replaces title and body only. Missing posts yield ErrNotFound.
	Update(ctx context.Context, id idx.ID, title, body string) error

	// Delete removes the post. Missing posts yield ErrNotFound.
	Delete(ctx context.Context, id idx.ID) error

	// Query returns posts matching sel, joined with their authors. Relevance
	// ordering only applies with a Text selector and otherwise falls back to
	// newest first.
	Query(ctx context.Context, sel PostSelector, order domain.PostOrder) ([]PostRow, error)

	CountByAuthor(ctx context.Context, authorID idx.ID) (int, error)
}

// FollowEntry is one side of an edge joined with that identity's display
// fields.
type FollowEntry struct {
	UserID    idx.ID
	Username  string
	Email     string
	CreatedAt time.Time
}

type Follows interface {
	// Create inserts the edge. An existing edge yields a ConstraintError.
	Create(ctx context.Context, f domain.Follow) error

	// Delete removes the edge. A missing edge yields ErrNotFound.
	Delete(ctx context.Context, followerID, followedID idx.ID) error

	Exists(ctx context.Context, followerID, followedID idx.ID) (bool, error)

	// ListFollowers returns identities following userID, oldest edge first.
	ListFollowers(ctx context.Context, userID idx.ID) ([]FollowEntry, error)

	// ListFollowing returns identities userID follows, oldest edge first.
	ListFollowing(ctx context.Context, userID idx.ID) ([]FollowEntry, error)

	CountFollowers(ctx context.Context, userID idx.ID) (int, error)
	CountFollowing(ctx context.Context, userID idx.ID) (int, error)
}
