package service_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/aussiebroadwan/pinboard/internal/pinboard/domain"
	"github.com/aussiebroadwan/pinboard/internal/pinboard/service"
	"github.com/aussiebroadwan/pinboard/internal/pinboard/store/drivers/sqlite"
	"github.com/aussiebroadwan/pinboard/pkg/cryptox"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type env struct {
	store       *sqlite.Store
	credentials *service.CredentialService
	posts       *service.PostService
	follows     *service.FollowService
	profiles    *service.ProfileService
}

func newEnv(t *testing.T) *env {
	t.Helper()

	s, err := sqlite.NewStore(filepath.Join(t.TempDir(), "pinboard.db"))
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })

	hasher := cryptox.Hasher{Algorithm: cryptox.AlgorithmBcrypt, BcryptCost: bcrypt.MinCost}

	e := &env{
		store:       s,
		credentials: &service.CredentialService{Store: s, Hasher: hasher},
		posts:       &service.PostService{Store: s},
		follows:     &service.FollowService{Store: s},
	}
	e.profiles = &service.ProfileService{Credentials: e.credentials, Posts: e.posts, Follows: e.follows}
	return e
}

func (e *env) register(t *testing.T, username string) domain.Identity {
	t.Helper()
	u, err := e.credentials.Register(context.Background(), domain.RawInput{
		"username": username,
		"email":    username + "@example.com",
		"password": "secret123",
	})
	require.NoError(t, err)
	return u
}

func (e *env) post(t *testing.T, author domain.Identity, title, body string) string {
	t.Helper()
	id, err := e.posts.Create(context.Background(), domain.RawInput{"title": title, "body": body}, author.ID)
	require.NoError(t, err)
	return id.String()
}

func requireReasons(t *testing.T, err error, want ...string) {
	t.Helper()
	require.ErrorIs(t, err, domain.ErrValidation)
	require.Equal(t, want, domain.Reasons(err))
}
