package postgres

import (
	"errors"

	"github.com/aussiebroadwan/pinboard/internal/pinboard/store"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func mapNotFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) || pgxscan.NotFound(err) {
		return store.ErrNotFound
	}
	return err
}

// constraintNames maps schema constraint names onto store constraints.
var constraintNames = map[string]string{
	"users_username_key": store.ConstraintUsername,
	"users_email_key":    store.ConstraintEmail,
	"follows_pkey":       store.ConstraintFollow,
}

// mapConstraint turns unique violations into a store.ConstraintError.
func mapConstraint(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return err
	}
	if name, ok := constraintNames[pgErr.ConstraintName]; ok {
		return &store.ConstraintError{Constraint: name, Err: err}
	}
	return err
}
