package sqlite

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/aussiebroadwan/pinboard/internal/pinboard/domain"
	"github.com/aussiebroadwan/pinboard/pkg/idx"
	"github.com/georgysavva/scany/v2/sqlscan"
)

type userRow struct {
	ID           string `db:"id"`
	Username     string `db:"username"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	CreatedAt    int64  `db:"created_at"`
}

func (r userRow) identity() domain.Identity {
	return domain.Identity{
		ID:           idx.ID(r.ID),
		Username:     r.Username,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		CreatedAt:    fromMillis(r.CreatedAt),
	}
}

var userColumns = []string{"id", "username", "email", "password_hash", "created_at"}

type usersRepo struct {
	q querier
}

func (r *usersRepo) Create(ctx context.Context, u domain.Identity) error {
	query, args, err := psql.Insert("users").
		Columns(userColumns...).
		Values(u.ID.String(), u.Username, u.Email, u.PasswordHash, toMillis(u.CreatedAt)).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		return mapConstraint(err)
	}
	return nil
}

func (r *usersRepo) GetByID(ctx context.Context, id idx.ID) (domain.Identity, error) {
	return r.getBy(ctx, sq.Eq{"id": id.String()})
}

func (r *usersRepo) GetByUsername(ctx context.Context, username string) (domain.Identity, error) {
	return r.getBy(ctx, sq.Eq{"username": username})
}

func (r *usersRepo) GetByEmail(ctx context.Context, email string) (domain.Identity, error) {
	return r.getBy(ctx, sq.Eq{"email": email})
}

func (r *usersRepo) getBy(ctx context.Context, where sq.Eq) (domain.Identity, error) {
	query, args, err := psql.Select(userColumns...).From("users").Where(where).Limit(1).ToSql()
	if err != nil {
		return domain.Identity{}, err
	}

	var row userRow
	if err := sqlscan.Get(ctx, r.q, &row, query, args...); err != nil {
		return domain.Identity{}, mapNotFound(err)
	}
	return row.identity(), nil
}
