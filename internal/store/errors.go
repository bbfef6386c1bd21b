package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists in the database.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrVerificationTokenTaken is returned when a freshly generated
	// verification token collides with an existing one.
	ErrVerificationTokenTaken = errors.New("verification token already exists")

	// ErrNoUserWasFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrConstraintViolation is returned when a row would break a CHECK or
	// NOT NULL constraint of the users table.
	ErrConstraintViolation = errors.New("user constraint violated")

	// ErrInvalidFileName is returned by the avatar storage when the uploaded
	// file name has no usable base name.
	ErrInvalidFileName = errors.New("invalid file name")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")
)
