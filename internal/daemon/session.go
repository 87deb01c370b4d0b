package daemon

import (
	"github.com/gofiber/fiber/v2"
	sessionmysql "github.com/gofiber/storage/mysql/v2"
	sessionpostgres "github.com/gofiber/storage/postgres/v3"

	"github.com/portfolio-admin/portfolio-admin/internal/config"
	"github.com/portfolio-admin/portfolio-admin/internal/db/dsn"
)

const sessionTable = "sessions"

// sessionStorage returns the storage shared by all instances of the service.
// SQLite deployments are single instance and keep sessions in memory.
func sessionStorage(cfg *config.Config) fiber.Storage {
	switch cfg.DB.GormEngine {
	case config.EngineMySQL:
		return sessionmysql.New(sessionmysql.Config{
			ConnectionURI: dsn.SessionURI(cfg),
			Table:         sessionTable,
		})
	case config.EnginePostgres:
		return sessionpostgres.New(sessionpostgres.Config{
			ConnectionURI: dsn.SessionURI(cfg),
			Table:         sessionTable,
		})
	default:
		return nil
	}
}
