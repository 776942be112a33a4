package sqlite

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/aussiebroadwan/pinboard/internal/pinboard/store"
	"github.com/georgysavva/scany/v2/sqlscan"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) || sqlscan.NotFound(err) {
		return store.ErrNotFound
	}
	return err
}

// mapConstraint turns UNIQUE and PRIMARY KEY violations into a
// store.ConstraintError naming the rule that fired.
func mapConstraint(err error) error {
	var serr *sqlite.Error
	if !errors.As(err, &serr) {
		return err
	}
	switch serr.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
	default:
		return err
	}

	msg := serr.Error()
	switch {
	case strings.Contains(msg, "users.username"):
		return &store.ConstraintError{Constraint: store.ConstraintUsername, Err: err}
	case strings.Contains(msg, "users.email"):
		return &store.ConstraintError{Constraint: store.ConstraintEmail, Err: err}
	case strings.Contains(msg, "follows."):
		return &store.ConstraintError{Constraint: store.ConstraintFollow, Err: err}
	}
	return err
}

func toMillis(t time.Time) int64 { return t.UTC().UnixMilli() }

func fromMillis(ms int64) time.Time { return time.UnixMilli(ms).UTC() }
