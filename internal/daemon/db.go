package daemon

import (
	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/portfolio-admin/portfolio-admin/internal/config"
	"github.com/portfolio-admin/portfolio-admin/internal/db/dsn"
	gormlog "github.com/portfolio-admin/portfolio-admin/internal/logger/adapter/gorm"
)

// OpenDB opens the database of cfg.DB.GormEngine with SQL statements logged through zerolog.
func OpenDB(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector

	source := dsn.Create(cfg)

	switch cfg.DB.GormEngine {
	case config.EngineMySQL:
		dialector = mysql.Open(source)
	case config.EnginePostgres:
		dialector = postgres.Open(source)
	case config.EngineSQLite:
		dialector = sqlite.Open(source)
	default:
		return nil, errors.Wrapf(config.ErrUnknownGormEngine, "%q", cfg.DB.GormEngine)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlog.New(cfg.Log.SQL),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to connect %s database", cfg.DB.GormEngine)
	}

	if cfg.DB.GormEngine == config.EngineSQLite {
		// one writer at a time, also keeps :memory: on a single database
		sqlDB, errDB := db.DB()
		if errDB != nil {
			return nil, errors.Wrap(errDB, "failed to get sqlite pool")
		}

		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}
