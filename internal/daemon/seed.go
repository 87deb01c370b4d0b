package daemon

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/portfolio-admin/portfolio-admin/internal/auth"
	"github.com/portfolio-admin/portfolio-admin/internal/config"
)

// seed creates the configured admin account if the user table is empty.
func seed(cfg *config.Config, db *gorm.DB) error {
	ctx := context.Background()
	users := auth.NewLocalProvider(db)

	count, err := users.CountUsers(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to count users")
	}

	if count > 0 {
		return nil
	}

	if cfg.Admin.Username == "" || cfg.Admin.Password == "" {
		log.Warn().Msg("no users and no admin account configured, the admin area is unreachable")
		return nil
	}

	if _, err = users.CreateUser(ctx, cfg.Admin.Username, cfg.Admin.Password); err != nil {
		return errors.Wrap(err, "failed to seed admin account")
	}

	log.Info().Str("username", cfg.Admin.Username).Msg("admin account created")

	return nil
}
