package sqlite

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/aussiebroadwan/pinboard/internal/pinboard/domain"
	"github.com/aussiebroadwan/pinboard/internal/pinboard/store"
	"github.com/aussiebroadwan/pinboard/pkg/idx"
	"github.com/georgysavva/scany/v2/sqlscan"
)

type followRow struct {
	UserID    string `db:"user_id"`
	Username  string `db:"username"`
	Email     string `db:"email"`
	CreatedAt int64  `db:"created_at"`
}

type followsRepo struct {
	q querier
}

func (r *followsRepo) Create(ctx context.Context, f domain.Follow) error {
	query, args, err := psql.Insert("follows").
		Columns("follower_id", "followed_id", "created_at").
		Values(f.FollowerID.String(), f.FollowedID.String(), toMillis(f.CreatedAt)).
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.q.ExecContext(ctx, query, args...)
	return mapConstraint(err)
}

func (r *followsRepo) Delete(ctx context.Context, followerID, followedID idx.ID) error {
	query, args, err := psql.Delete("follows").
		Where(sq.Eq{"follower_id": followerID.String(), "followed_id": followedID.String()}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *followsRepo) Exists(ctx context.Context, followerID, followedID idx.ID) (bool, error) {
	n, err := count(ctx, r.q, psql.Select("COUNT(*)").From("follows").
		Where(sq.Eq{"follower_id": followerID.String(), "followed_id": followedID.String()}))
	return n > 0, err
}

func (r *followsRepo) ListFollowers(ctx context.Context, userID idx.ID) ([]store.FollowEntry, error) {
	return r.list(ctx, "f.follower_id", sq.Eq{"f.followed_id": userID.String()})
}

func (r *followsRepo) ListFollowing(ctx context.Context, userID idx.ID) ([]store.FollowEntry, error) {
	return r.list(ctx, "f.followed_id", sq.Eq{"f.follower_id": userID.String()})
}

func (r *followsRepo) list(ctx context.Context, joinCol string, where sq.Eq) ([]store.FollowEntry, error) {
	query, args, err := psql.
		Select("u.id AS user_id", "u.username", "u.email", "f.created_at").
		From("follows f").
		Join("users u ON u.id = "+joinCol).
		Where(where).
		OrderBy("f.created_at ASC", "u.username ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []followRow
	if err := sqlscan.Select(ctx, r.q, &rows, query, args...); err != nil {
		return nil, err
	}

	out := make([]store.FollowEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, store.FollowEntry{
			UserID:    idx.ID(row.UserID),
			Username:  row.Username,
			Email:     row.Email,
			CreatedAt: fromMillis(row.CreatedAt),
		})
	}
	return out, nil
}

func (r *followsRepo) CountFollowers(ctx context.Context, userID idx.ID) (int, error) {
	return count(ctx, r.q, psql.Select("COUNT(*)").From("follows").Where(sq.Eq{"followed_id": userID.String()}))
}

func (r *followsRepo) CountFollowing(ctx context.Context, userID idx.ID) (int, error) {
	return count(ctx, r.q, psql.Select("COUNT(*)").From("follows").Where(sq.Eq{"follower_id": userID.String()}))
}
