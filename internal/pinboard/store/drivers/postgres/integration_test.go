package postgres_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/pinboard/internal/pinboard/domain"
	"github.com/aussiebroadwan/pinboard/internal/pinboard/store"
	"github.com/aussiebroadwan/pinboard/internal/pinboard/store/drivers/postgres"
	"github.com/aussiebroadwan/pinboard/pkg/idx"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	containerOnce sync.Once
	containerDSN  string
	containerErr  error
)

// setupStore starts one shared PostgreSQL container per test run and returns
// a migrated store connected to it. Tables are truncated between tests.
func setupStore(t *testing.T) *postgres.Store {
	t.Helper()
	if testing.Short() {
		t.Skip("postgres integration tests skipped in -short mode")
	}

	containerOnce.Do(func() {
		containerDSN, containerErr = startContainer()
	})
	if containerErr != nil {
		t.Skipf("postgres container unavailable: %v", containerErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, containerDSN)
	require.NoError(t, err)

	s := postgres.NewStoreWithPool(pool, containerDSN)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	_, err = pool.Exec(ctx, `TRUNCATE follows, posts, users`)
	require.NoError(t, err)
	return s
}

func startContainer() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:17-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return "", fmt.Errorf("mapped port: %w", err)
	}

	return fmt.Sprintf("postgres://testuser:testpass@%s:%s/testdb?sslmode=disable", host, port.Port()), nil
}

func seed(t *testing.T, s store.Store, name string, at time.Time) domain.Identity {
	t.Helper()
	u := domain.Identity{
		ID:           idx.NewAt(at),
		Username:     name,
		Email:        name + "@example.com",
		PasswordHash: "hash",
		CreatedAt:    at,
	}
	require.NoError(t, s.Users().Create(context.Background(), u))
	return u
}

func TestIntegrationUsers(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	ann := seed(t, s, "ann", at)

	got, err := s.Users().GetByEmail(ctx, "ann@example.com")
	require.NoError(t, err)
	require.Equal(t, ann.ID, got.ID)
	require.True(t, got.CreatedAt.Equal(at))

	err = s.Users().Create(ctx, domain.Identity{ID: idx.New(), Username: "ann", Email: "x@example.com", PasswordHash: "h", CreatedAt: at})
	var cerr *store.ConstraintError
	require.ErrorAs(t, err, &cerr)
	require.Equal(t, store.ConstraintUsername, cerr.Constraint)

	_, err = s.Users().GetByUsername(ctx, "nobody")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestIntegrationPostsSearch(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	ann := seed(t, s, "ann", at)
	mk := func(title, body string, offset time.Duration) domain.Post {
		p := domain.Post{ID: idx.NewAt(at.Add(offset)), Title: title, Body: body, AuthorID: ann.ID, CreatedAt: at.Add(offset)}
		require.NoError(t, s.Posts().Create(ctx, p))
		return p
	}
	p1 := mk("Gardening tips", "Tomatoes need sun", time.Minute)
	p2 := mk("Cooking", "Tomatoes and basil pasta, tomatoes everywhere", 2*time.Minute)
	mk("Cycling", "Hills are hard", 3*time.Minute)

	rows, err := s.Posts().Query(ctx, store.PostSelector{Text: "tomatoes"}, domain.OrderRelevance)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, p2.ID, rows[0].ID)
	require.Equal(t, p1.ID, rows[1].ID)
	require.Equal(t, "ann", rows[0].AuthorUsername)

	rows, err = s.Posts().Query(ctx, store.PostSelector{Text: "basil hills"}, domain.OrderNewest)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	n, err := s.Posts().CountByAuthor(ctx, ann.ID)
	require.NoError(t, err)
	require.Equal(t, 3, n)
}

func TestIntegrationFollows(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	ann := seed(t, s, "ann", at)
	bob := seed(t, s, "bob", at.Add(time.Second))

	require.NoError(t, s.Follows().Create(ctx, domain.Follow{FollowerID: ann.ID, FollowedID: bob.ID, CreatedAt: at}))
	err := s.Follows().Create(ctx, domain.Follow{FollowerID: ann.ID, FollowedID: bob.ID, CreatedAt: at})
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	followers, err := s.Follows().ListFollowers(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, followers, 1)
	require.Equal(t, "ann", followers[0].Username)

	ok, err := s.Follows().Exists(ctx, ann.ID, bob.ID)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, s.Follows().Delete(ctx, ann.ID, bob.ID))
	require.ErrorIs(t, s.Follows().Delete(ctx, ann.ID, bob.ID), store.ErrNotFound)
}
