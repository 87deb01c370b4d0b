package models

import (
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/rs/zerolog/log"
)

// User is an admin account allowed to manage the portfolio content.
type User struct {
	// ID is the unique identifier for the user.
	ID uint64 `gorm:"primaryKey"`
	// Active indicates whether the account may log in.
	Active bool
	// Username is the unique login name.
	Username string `gorm:"unique;size:100;not null"`
	// Password is the Argon2id hash of the password.
	Password string `gorm:"size:255"   json:"-"`
	// TOTPSecret enables a second login factor when not empty.
	TOTPSecret string `gorm:"column:totp_secret;size:64" json:"-"`
	// CreatedAt is managed by GORM.
	CreatedAt time.Time
	// UpdatedAt is managed by GORM.
	UpdatedAt time.Time
}

// TableName overrides the table name used by GORM.
func (User) TableName() string {
	return "users"
}

// WhereUsernameIs is the query pattern to look up a user by login name.
const WhereUsernameIs = "username = ?"

// HashPassword hashes a plaintext password with Argon2id default parameters.
func HashPassword(password string) string {
	hashedPassword, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	if err != nil {
		log.Fatal().Msgf("failed to hash password: %v", err)
	}

	return hashedPassword
}

// VerifyPassword compares password with the stored hash in constant time.
func (u *User) VerifyPassword(password string) bool {
	match, err := argon2id.ComparePasswordAndHash(password, u.Password)
	if err != nil {
		log.Error().Msgf("failed to verify password: %v", err)
		return false
	}

	return match
}
