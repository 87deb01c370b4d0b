// Package login provides HTTP handlers and helpers for user authentication.
//
// This file defines exported error values used throughout the login flow.
package login

import "errors"

var (
	// ErrInvalidFormData is returned when the submitted login form cannot be parsed.
	ErrInvalidFormData = errors.New("invalid form data")

	// ErrInvalidCredentials is returned when the provided username and/or password
	// are not valid.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrCodeRequired is returned when the account needs a one time code and none was sent.
	ErrCodeRequired = errors.New("enter the code from your authenticator app")

	// ErrInvalidCode is returned when the one time code does not match.
	ErrInvalidCode = errors.New("invalid one time code")

	// ErrInactive is returned for a disabled account.
	ErrInactive = errors.New("user is inactive")

	// ErrInternalServerError is returned for unexpected failures during the login
	// process.
	ErrInternalServerError = errors.New("internal server error")
)
