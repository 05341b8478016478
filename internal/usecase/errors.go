package usecase

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinels shared across usecases. Handlers map these onto HTTP statuses.
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrRequestNotFound   = errors.New("blood request not found")
	ErrInvalidDateFormat = errors.New("date must be in YYYY-MM-DD format")
)

// isDuplicateKeyError reports whether err is a Postgres unique violation.
// When constraint is non-empty the violation must involve that constraint
// or column name.
func isDuplicateKeyError(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return false
	}
	if constraint == "" {
		return true
	}
	return strings.Contains(pgErr.ConstraintName, constraint) ||
		strings.Contains(pgErr.Detail, constraint)
}

// isForeignKeyError reports whether err is a Postgres foreign key violation.
func isForeignKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
