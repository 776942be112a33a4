package sqlite_test

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/pinboard/internal/pinboard/domain"
	"github.com/aussiebroadwan/pinboard/internal/pinboard/store"
	"github.com/aussiebroadwan/pinboard/internal/pinboard/store/drivers/sqlite"
	"github.com/aussiebroadwan/pinboard/pkg/idx"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	s, err := sqlite.NewStore(filepath.Join(t.TempDir(), "pinboard.db"))
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func seedUser(t *testing.T, s store.Store, name string) domain.Identity {
	t.Helper()
	u := domain.Identity{
		ID:           idx.New(),
		Username:     name,
		Email:        name + "@example.com",
		PasswordHash: "$argon2id$stub",
		CreatedAt:    epoch,
	}
	require.NoError(t, s.Users().Create(context.Background(), u))
	return u
}

func seedPost(t *testing.T, s store.Store, author idx.ID, title, body string, at time.Time) domain.Post {
	t.Helper()
	p := domain.Post{ID: idx.NewAt(at), Title: title, Body: body, AuthorID: author, CreatedAt: at}
	require.NoError(t, s.Posts().Create(context.Background(), p))
	return p
}

func TestMigrationsAreIdempotent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.Ping(context.Background()))
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	ann := seedUser(t, s, "ann")

	got, err := s.Users().GetByID(ctx, ann.ID)
	require.NoError(t, err)
	require.Equal(t, ann, got)

	got, err = s.Users().GetByUsername(ctx, "ann")
	require.NoError(t, err)
	require.Equal(t, ann.ID, got.ID)

	got, err = s.Users().GetByEmail(ctx, "ann@example.com")
	require.NoError(t, err)
	require.Equal(t, ann.ID, got.ID)

	_, err = s.Users().GetByUsername(ctx, "nobody")
	require.ErrorIs(t, err, store.ErrNotFound)

	t.Run("duplicate username", func(t *testing.T) {
		err := s.Users().Create(ctx, domain.Identity{ID: idx.New(), Username: "ann", Email: "other@example.com", PasswordHash: "x", CreatedAt: epoch})
		var cerr *store.ConstraintError
		require.ErrorAs(t, err, &cerr)
		require.Equal(t, store.ConstraintUsername, cerr.Constraint)
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("duplicate email", func(t *testing.T) {
		err := s.Users().Create(ctx, domain.Identity{ID: idx.New(), Username: "ann2", Email: "ann@example.com", PasswordHash: "x", CreatedAt: epoch})
		var cerr *store.ConstraintError
		require.ErrorAs(t, err, &cerr)
		require.Equal(t, store.ConstraintEmail, cerr.Constraint)
	})
}

func TestPostsCRUD(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	ann := seedUser(t, s, "ann")
	p := seedPost(t, s, ann.ID, "Hello", "First post", epoch)

	got, err := s.Posts().Get(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, p, got)

	require.NoError(t, s.Posts().Update(ctx, p.ID, "Hello again", "Edited"))
	got, err = s.Posts().Get(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, "Hello again", got.Title)
	require.Equal(t, "Edited", got.Body)
	require.Equal(t, p.CreatedAt, got.CreatedAt)
	require.Equal(t, ann.ID, got.AuthorID)

	require.ErrorIs(t, s.Posts().Update(ctx, idx.New(), "x", "y"), store.ErrNotFound)

	require.NoError(t, s.Posts().Delete(ctx, p.ID))
	_, err = s.Posts().Get(ctx, p.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
	require.ErrorIs(t, s.Posts().Delete(ctx, p.ID), store.ErrNotFound)
}

func TestPostsQuery(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	ann := seedUser(t, s, "ann")
	bob := seedUser(t, s, "bob")

	p1 := seedPost(t, s, ann.ID, "Gardening tips", "Tomatoes need sun", epoch)
	p2 := seedPost(t, s, bob.ID, "Cooking", "Tomatoes and basil pasta, tomatoes everywhere", epoch.Add(time.Minute))
	p3 := seedPost(t, s, ann.ID, "Cycling", "Hills are hard", epoch.Add(2*time.Minute))

	ids := func(rows []store.PostRow) []idx.ID {
		out := make([]idx.ID, 0, len(rows))
		for _, r := range rows {
			out = append(out, r.ID)
		}
		return out
	}

	t.Run("newest first", func(t *testing.T) {
		rows, err := s.Posts().Query(ctx, store.PostSelector{}, domain.OrderNewest)
		require.NoError(t, err)
		require.Equal(t, []idx.ID{p3.ID, p2.ID, p1.ID}, ids(rows))
	})

	t.Run("oldest first", func(t *testing.T) {
		rows, err := s.Posts().Query(ctx, store.PostSelector{}, domain.OrderOldest)
		require.NoError(t, err)
		require.Equal(t, []idx.ID{p1.ID, p2.ID, p3.ID}, ids(rows))
	})

	t.Run("by author joins author", func(t *testing.T) {
		rows, err := s.Posts().Query(ctx, store.PostSelector{AuthorID: ann.ID}, domain.OrderNewest)
		require.NoError(t, err)
		require.Equal(t, []idx.ID{p3.ID, p1.ID}, ids(rows))
		require.Equal(t, "ann", rows[0].AuthorUsername)
		require.Equal(t, "ann@example.com", rows[0].AuthorEmail)
	})

	t.Run("by id", func(t *testing.T) {
		rows, err := s.Posts().Query(ctx, store.PostSelector{ID: p2.ID}, domain.OrderNewest)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		require.Equal(t, "bob", rows[0].AuthorUsername)
		require.Equal(t, p2.Body, rows[0].Body)
	})

	t.Run("limit", func(t *testing.T) {
		rows, err := s.Posts().Query(ctx, store.PostSelector{Limit: 2}, domain.OrderNewest)
		require.NoError(t, err)
		require.Len(t, rows, 2)
	})

	t.Run("full text relevance", func(t *testing.T) {
		rows, err := s.Posts().Query(ctx, store.PostSelector{Text: "tomatoes"}, domain.OrderRelevance)
		require.NoError(t, err)
		require.ElementsMatch(t, []idx.ID{p1.ID, p2.ID}, ids(rows))
		require.Equal(t, p2.ID, rows[0].ID, "more occurrences rank first")
	})

	t.Run("full text any word", func(t *testing.T) {
		rows, err := s.Posts().Query(ctx, store.PostSelector{Text: "hills basil"}, domain.OrderRelevance)
		require.NoError(t, err)
		require.ElementsMatch(t, []idx.ID{p2.ID, p3.ID}, ids(rows))
	})

	t.Run("full text operators are literal", func(t *testing.T) {
		rows, err := s.Posts().Query(ctx, store.PostSelector{Text: `zzz* NEAR(unknown) -`}, domain.OrderRelevance)
		require.NoError(t, err)
		require.Empty(t, rows)
	})

	t.Run("search index follows updates and deletes", func(t *testing.T) {
		require.NoError(t, s.Posts().Update(ctx, p3.ID, "Cycling", "Tomatoes on the bike"))
		rows, err := s.Posts().Query(ctx, store.PostSelector{Text: "bike"}, domain.OrderRelevance)
		require.NoError(t, err)
		require.Equal(t, []idx.ID{p3.ID}, ids(rows))

		require.NoError(t, s.Posts().Delete(ctx, p3.ID))
		rows, err = s.Posts().Query(ctx, store.PostSelector{Text: "bike"}, domain.OrderRelevance)
		require.NoError(t, err)
		require.Empty(t, rows)
	})

	t.Run("count by author", func(t *testing.T) {
		n, err := s.Posts().CountByAuthor(ctx, ann.ID)
		require.NoError(t, err)
		require.Equal(t, 1, n)

		n, err = s.Posts().CountByAuthor(ctx, idx.New())
		require.NoError(t, err)
		require.Zero(t, n)
	})

	require.NoError(t, s.Optimize(ctx))
}

func TestFollows(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	ann := seedUser(t, s, "ann")
	bob := seedUser(t, s, "bob")
	cat := seedUser(t, s, "cat")

	follow := func(from, to idx.ID, at time.Time) error {
		return s.Follows().Create(ctx, domain.Follow{FollowerID: from, FollowedID: to, CreatedAt: at})
	}

	require.NoError(t, follow(cat.ID, bob.ID, epoch))
	require.NoError(t, follow(ann.ID, bob.ID, epoch.Add(time.Second)))
	require.NoError(t, follow(ann.ID, cat.ID, epoch.Add(2*time.Second)))

	err := follow(ann.ID, bob.ID, epoch.Add(3*time.Second))
	var cerr *store.ConstraintError
	require.ErrorAs(t, err, &cerr)
	require.Equal(t, store.ConstraintFollow, cerr.Constraint)

	require.Error(t, follow(ann.ID, ann.ID, epoch), "self follow violates check")

	ok, err := s.Follows().Exists(ctx, ann.ID, bob.ID)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = s.Follows().Exists(ctx, bob.ID, ann.ID)
	require.NoError(t, err)
	require.False(t, ok)

	followers, err := s.Follows().ListFollowers(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, followers, 2)
	require.Equal(t, "cat", followers[0].Username)
	require.Equal(t, "ann", followers[1].Username)
	require.Equal(t, "ann@example.com", followers[1].Email)

	following, err := s.Follows().ListFollowing(ctx, ann.ID)
	require.NoError(t, err)
	require.Len(t, following, 2)
	require.Equal(t, "bob", following[0].Username)
	require.Equal(t, "cat", following[1].Username)

	n, err := s.Follows().CountFollowers(ctx, bob.ID)
	require.NoError(t, err)
	require.Equal(t, len(followers), n)
	n, err = s.Follows().CountFollowing(ctx, ann.ID)
	require.NoError(t, err)
	require.Equal(t, len(following), n)

	require.NoError(t, s.Follows().Delete(ctx, ann.ID, bob.ID))
	require.ErrorIs(t, s.Follows().Delete(ctx, ann.ID, bob.ID), store.ErrNotFound)

	n, err = s.Follows().CountFollowers(ctx, bob.ID)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestWithTx(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	ann := seedUser(t, s, "ann")

	boom := errors.New("boom")
	err := s.WithTx(ctx, func(tx store.Tx) error {
		p := domain.Post{ID: idx.New(), Title: "t", Body: "b", AuthorID: ann.ID, CreatedAt: epoch}
		require.NoError(t, tx.Posts().Create(ctx, p))
		return boom
	})
	require.ErrorIs(t, err, boom)

	n, err := s.Posts().CountByAuthor(ctx, ann.ID)
	require.NoError(t, err)
	require.Zero(t, n)

	require.NoError(t, s.WithTx(ctx, func(tx store.Tx) error {
		return tx.Posts().Create(ctx, domain.Post{ID: idx.New(), Title: "t", Body: "b", AuthorID: ann.ID, CreatedAt: epoch})
	}))
	n, err = s.Posts().CountByAuthor(ctx, ann.ID)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestForeignKeysEnforced(t *testing.T) {
	s := newTestStore(t)
	err := s.Posts().Create(context.Background(), domain.Post{
		ID: idx.New(), Title: "t", Body: "b", AuthorID: idx.New(), CreatedAt: epoch,
	})
	require.Error(t, err)
}

func TestSearchSurvivesVacuum(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "pinboard.db")

	s, err := sqlite.NewStore(path)
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })

	ann := seedUser(t, s, "ann")
	first := seedPost(t, s, ann.ID, "Gardening", "Tomatoes need sun", epoch)
	second := seedPost(t, s, ann.ID, "Cycling", "Hills are hard", epoch.Add(time.Minute))
	require.NoError(t, s.Posts().Delete(ctx, first.ID))

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, "VACUUM")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	rows, err := s.Posts().Query(ctx, store.PostSelector{Text: "hills"}, domain.OrderRelevance)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, second.ID, rows[0].ID)

	third := seedPost(t, s, ann.ID, "Baking", "Bread rises overnight", epoch.Add(2*time.Minute))
	rows, err = s.Posts().Query(ctx, store.PostSelector{Text: "bread"}, domain.OrderRelevance)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, third.ID, rows[0].ID)
}
