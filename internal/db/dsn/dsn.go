// Package dsn builds data source names for the configured database engine.
package dsn

import (
	"fmt"
	"net/url"

	"github.com/portfolio-admin/portfolio-admin/internal/config"
)

// Create builds the DSN understood by the GORM driver of cfg.DB.GormEngine.
func Create(cfg *config.Config) string {
	db := cfg.DB

	switch db.GormEngine {
	case config.EnginePostgres:
		out := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s",
			db.Host, db.Port, db.User, db.Password, db.Name)
		if db.Extras != "" {
			out += " " + db.Extras
		}

		return out
	case config.EngineSQLite:
		if db.Extras == "" {
			return db.Name
		}

		return db.Name + "?" + db.Extras
	default:
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
			db.User, db.Password, db.Host, db.Port, db.Name, db.Extras)
	}
}

// SessionURI builds the connection URI used by the session storage of mysql and postgres.
func SessionURI(cfg *config.Config) string {
	db := cfg.DB

	if db.GormEngine == config.EnginePostgres {
		u := url.URL{
			Scheme: "postgres",
			User:   url.UserPassword(db.User, db.Password),
			Host:   fmt.Sprintf("%s:%d", db.Host, db.Port),
			Path:   db.Name,
		}

		return u.String()
	}

	return Create(cfg)
}
