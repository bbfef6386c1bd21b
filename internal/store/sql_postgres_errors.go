package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

const verificationTokenConstraint = "users_verification_token_key"

// postgresError returns the SQLSTATE code of err, or "" when err does not
// come from PostgreSQL.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// postgresConstraint returns the name of the violated constraint, if any.
func postgresConstraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}

	return ""
}

// mapUserError translates a driver error raised by a statement on the
// users table into one of the package sentinels.
//
//   - sql.ErrNoRows                          → [ErrNoUserWasFound]
//   - unique_violation on verification_token → [ErrVerificationTokenTaken]
//   - unique_violation (email)               → [ErrEmailAlreadyExists]
//   - check_violation                        → [ErrConstraintViolation]
//   - anything else                          → wrapped "unexpected DB error"
func mapUserError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNoUserWasFound
	}

	switch postgresError(err) {
	case pgerrcode.UniqueViolation:
		if postgresConstraint(err) == verificationTokenConstraint {
			return ErrVerificationTokenTaken
		}
		return ErrEmailAlreadyExists
	case pgerrcode.CheckViolation, pgerrcode.NotNullViolation:
		return fmt.Errorf("%w: %s", ErrConstraintViolation, postgresConstraint(err))
	default:
		return fmt.Errorf("unexpected DB error: %w", err)
	}
}
