package auth

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/pquerna/otp/totp"
	"gorm.io/gorm"

	"github.com/portfolio-admin/portfolio-admin/internal/db/models"
)

// LocalProvider handles local database authentication.
type LocalProvider struct {
	db *gorm.DB
}

// NewLocalProvider creates a new local authentication provider.
func NewLocalProvider(db *gorm.DB) *LocalProvider {
	return &LocalProvider{
		db: db,
	}
}

// Authenticate checks username and password, and the one time code when the
// account has a TOTP secret.
func (p *LocalProvider) Authenticate(ctx context.Context, username, password, code string) (*models.User, error) {
	user, err := p.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if !user.Active {
		return nil, ErrUserAccountDisabled
	}

	if !user.VerifyPassword(password) {
		return nil, ErrInvalidPassword
	}

	if user.TOTPSecret != "" {
		code = strings.TrimSpace(code)
		if code == "" {
			return nil, ErrTOTPRequired
		}

		if !totp.Validate(code, user.TOTPSecret) {
			return nil, ErrInvalidTOTP
		}
	}

	return user, nil
}

// CreateUser creates a new active user.
func (p *LocalProvider) CreateUser(ctx context.Context, username, password string) (*models.User, error) {
	if p.db == nil {
		return nil, ErrDBNil
	}

	if username == "" || password == "" {
		return nil, ErrEmptyCredentials
	}

	if _, err := p.GetUserByUsername(ctx, username); err == nil {
		return nil, ErrUserNameExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	user := models.User{
		Active:   true,
		Username: username,
		Password: models.HashPassword(password),
	}

	if err := p.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	return &user, nil
}

// SetPassword replaces the password of username, creating the account if it does not exist.
func (p *LocalProvider) SetPassword(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, ErrEmptyCredentials
	}

	user, err := p.GetUserByUsername(ctx, username)
	if errors.Is(err, ErrUserNotFound) {
		return p.CreateUser(ctx, username, password)
	}

	if err != nil {
		return nil, err
	}

	user.Password = models.HashPassword(password)

	if err = p.db.WithContext(ctx).Model(user).Update("password", user.Password).Error; err != nil {
		return nil, errors.Wrap(err, "failed to update password")
	}

	return user, nil
}

// EnableTOTP generates a new TOTP secret for username and returns the
// otpauth:// URL to enroll it in an authenticator app.
func (p *LocalProvider) EnableTOTP(ctx context.Context, issuer, username string) (string, error) {
	user, err := p.GetUserByUsername(ctx, username)
	if err != nil {
		return "", err
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      issuer,
		AccountName: username,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to generate totp secret")
	}

	if err = p.db.WithContext(ctx).Model(user).Update("totp_secret", key.Secret()).Error; err != nil {
		return "", errors.Wrap(err, "failed to store totp secret")
	}

	return key.URL(), nil
}

// DisableTOTP removes the second factor of username.
func (p *LocalProvider) DisableTOTP(ctx context.Context, username string) error {
	user, err := p.GetUserByUsername(ctx, username)
	if err != nil {
		return err
	}

	return errors.Wrap(p.db.WithContext(ctx).Model(user).Update("totp_secret", "").Error, "failed to remove totp secret")
}

// GetUserByID retrieves a user by ID.
func (p *LocalProvider) GetUserByID(ctx context.Context, userID uint64) (*models.User, error) {
	return p.first(ctx, "id = ?", userID)
}

// GetUserByUsername retrieves a user by username.
func (p *LocalProvider) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return p.first(ctx, models.WhereUsernameIs, username)
}

// CountUsers returns the number of accounts.
func (p *LocalProvider) CountUsers(ctx context.Context) (int64, error) {
	if p.db == nil {
		return 0, ErrDBNil
	}

	var count int64

	err := p.db.WithContext(ctx).Model(&models.User{}).Count(&count).Error

	return count, errors.Wrap(err, "failed to count users")
}

func (p *LocalProvider) first(ctx context.Context, query string, arg any) (*models.User, error) {
	if p.db == nil {
		return nil, ErrDBNil
	}

	var user models.User

	err := p.db.WithContext(ctx).Where(query, arg).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}

	if err != nil {
		return nil, errors.Wrap(err, "failed to query user")
	}

	return &user, nil
}
