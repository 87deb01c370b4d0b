// Package auth authenticates the admin accounts of the portfolio.
//
// Accounts live in the users table with an Argon2id password hash. An
// account with a TOTP secret additionally needs the current one time code
// (RFC 6238) to log in.
//
//	provider := auth.NewLocalProvider(db)
//	user, err := provider.Authenticate(ctx, "admin", password, code)
package auth
