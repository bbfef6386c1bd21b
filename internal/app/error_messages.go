// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the client-facing message strings of the accounts API.
//
// Every Msg* constant is written into a {"message": "..."} response body.
// Keeping them in one place keeps the wording identical across handlers.
package app

const (
	// MsgEmailInUse answers a registration for an address that already exists.
	MsgEmailInUse = "Email in use"

	// MsgWrongCredentials answers a login with an unknown email, a wrong
	// password or an unverified account alike.
	MsgWrongCredentials = "Email or password is wrong"

	// MsgNotAuthorized answers every rejection of the bearer token gate.
	MsgNotAuthorized = "Not authorized"

	MsgUserNotFound = "User not found"

	// MsgEmptyBody answers a request whose JSON body carries no fields.
	MsgEmptyBody = "Body must have at least one field"

	MsgMissingEmail        = "missing required field email"
	MsgInvalidSubscription = "subscription must be one of: starter, pro, business"
	MsgInvalidAvatarFile   = "Invalid avatar file"
	MsgMissingAvatarFile   = "Missing required file avatar"
	MsgInvalidJSON         = "Invalid JSON was passed"

	MsgVerificationSuccessful    = "Verification successful"
	MsgVerificationEmailSent     = "Verification email sent"
	MsgVerificationAlreadyPassed = "Verification has already been passed"

	MsgTooManyRequests = "Too many requests"
	MsgRequestTimeout  = "Request timeout"
	MsgNotFound        = "Not found"

	// MsgInternalServerError hides details of unexpected failures; they are
	// only logged.
	MsgInternalServerError = "Internal server error"
)
