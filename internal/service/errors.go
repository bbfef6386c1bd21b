package service

import "errors"

// Errors returned by [AuthService]. The HTTP layer maps each of them to a
// status code and a client-facing message.
var (
	ErrEmailInUse       = errors.New("email in use")
	ErrWrongCredentials = errors.New("email or password is wrong")
	ErrUnauthorized     = errors.New("not authorized")
	ErrUserNotFound     = errors.New("user not found")

	ErrEmptyBody           = errors.New("body must have at least one field")
	ErrMissingEmail        = errors.New("missing required field email")
	ErrInvalidSubscription = errors.New("invalid subscription")
	ErrInvalidAvatarFile   = errors.New("invalid avatar file")
)

// Internal failures. Clients only see a generic message for these.
var (
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrSendingVerificationMail = errors.New("error sending verification email")
	ErrVersionIsNotSpecified   = errors.New("version is not specified")
)
