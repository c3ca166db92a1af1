package infra

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeUniqueViolation    = "23505"
	pgErrCodeExclusionViolation = "23P01"
)

// ClassifyPgErr maps a low-level postgres error onto a repository kind. The
// exclusion constraint on booking slots surfaces as a conflict.
func ClassifyPgErr(err error) RepositoryErrorKind {
	if errors.Is(err, pgx.ErrNoRows) {
		return KindNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeExclusionViolation:
			return KindConflict
		case pgErrCodeUniqueViolation:
			return KindDuplicateKey
		}
	}
	return KindDBFailure
}
