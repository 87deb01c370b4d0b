package auth

import "errors"

var (
	// ErrUserAccountDisabled is returned when attempting to authenticate a disabled user account.
	ErrUserAccountDisabled = errors.New("user account is disabled")

	// ErrInvalidPassword is returned when the provided password is incorrect during authentication.
	ErrInvalidPassword = errors.New("invalid password")

	// ErrUserNotFound is returned when a user cannot be found in the database.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserNameExists is returned when attempting to create a user with a taken username.
	ErrUserNameExists = errors.New("user with username already exists")

	// ErrEmptyCredentials is returned when username or password are empty.
	ErrEmptyCredentials = errors.New("username and password can not be empty")

	// ErrTOTPRequired is returned when the account has a second factor but no code was given.
	ErrTOTPRequired = errors.New("one time code required")

	// ErrInvalidTOTP is returned when the one time code does not match.
	ErrInvalidTOTP = errors.New("invalid one time code")

	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)
