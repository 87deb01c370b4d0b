// Package daemon wires the database, the session storage and the web
// service together.
package daemon

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/portfolio-admin/portfolio-admin/internal/config"
	"github.com/portfolio-admin/portfolio-admin/internal/content"
	"github.com/portfolio-admin/portfolio-admin/internal/db/models"
	"github.com/portfolio-admin/portfolio-admin/internal/web"
	"github.com/portfolio-admin/portfolio-admin/internal/web/session"
)

// ErrConfigNil is returned by New without a config.
var ErrConfigNil = errors.New("config is nil")

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	db         *gorm.DB
	webService *web.Service
}

// Start serves until SIGINT or SIGTERM, then shuts down and closes the database.
func (d *Daemon) Start() error {
	done := make(chan error, 1)

	go func() {
		done <- d.webService.Start()
	}()

	go d.webService.WaitShutdown()

	err := <-done

	if sqlDB, errDB := d.db.DB(); errDB == nil {
		if errClose := sqlDB.Close(); errClose != nil {
			log.Error().Err(errClose).Msg("failed to close database")
		}
	}

	return err
}

// Models returns every model migrated on startup.
func Models() []any {
	return append(content.Models(), &models.User{}, &models.Setting{})
}

// New opens and migrates the configured database, seeds the admin account
// and builds the web service.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}

	db, err := OpenDB(cfg)
	if err != nil {
		return nil, err
	}

	if err = db.AutoMigrate(Models()...); err != nil {
		return nil, errors.Wrap(err, "failed to migrate database")
	}

	if err = seed(cfg, db); err != nil {
		return nil, err
	}

	session.Init(sessionStorage(cfg))

	webService, err := web.New(cfg, db)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create web service")
	}

	return &Daemon{
		cfg:        cfg,
		db:         db,
		webService: webService,
	}, nil
}
