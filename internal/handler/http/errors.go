// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Errors raised by the transport layer itself. They are mapped to client
// responses together with the service errors in errors_mapper.go.
var (
	// errInvalidJSON is returned when the request body is not valid JSON.
	errInvalidJSON = errors.New("invalid JSON was passed")

	// errMissingAvatar is returned when a multipart upload has no "avatar" part.
	errMissingAvatar = errors.New("missing avatar file")

	// errTooManyRequests is returned when a client exceeds the resend limit.
	errTooManyRequests = errors.New("too many requests")

	// errVerificationAlreadyPassed is reported when a verification e-mail is
	// requested for an account that is verified already.
	errVerificationAlreadyPassed = errors.New("verification has already been passed")

	// errNoUserInContext means a protected handler was reached without the
	// auth middleware. It always results in 500.
	errNoUserInContext = errors.New("no authenticated user in request context")
)
