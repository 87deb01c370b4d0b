package daemon

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portfolio-admin/portfolio-admin/internal/auth"
	"github.com/portfolio-admin/portfolio-admin/internal/config"
)

func sqliteConfig(t *testing.T) *config.Config {
	t.Helper()

	return &config.Config{
		Title: "Portfolio Admin",
		DB: config.DB{
			GormEngine: config.EngineSQLite,
			Name:       filepath.Join(t.TempDir(), "portfolio.db"),
		},
		Webserver: config.Webserver{
			Port:      8080,
			URL:       "http://localhost:8080",
			BodyLimit: 1 << 20,
		},
		Admin: config.Admin{Username: "admin", Password: "changeme"},
	}
}

func TestNewConfigNil(t *testing.T) {
	_, err := New(nil)
	require.ErrorIs(t, err, ErrConfigNil)
}

func TestOpenDBUnknownEngine(t *testing.T) {
	cfg := sqliteConfig(t)
	cfg.DB.GormEngine = "oracle"

	_, err := OpenDB(cfg)
	require.ErrorIs(t, err, config.ErrUnknownGormEngine)
}

func TestNewSeedsAdmin(t *testing.T) {
	cfg := sqliteConfig(t)

	d, err := New(cfg)
	require.NoError(t, err)
	require.NotNil(t, d.webService)

	users := auth.NewLocalProvider(d.db)

	_, err = users.Authenticate(context.Background(), "admin", "changeme", "")
	require.NoError(t, err)

	// a second seed leaves the existing account alone
	cfg.Admin.Password = "other"
	require.NoError(t, seed(cfg, d.db))

	count, err := users.CountUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	_, err = users.Authenticate(context.Background(), "admin", "changeme", "")
	require.NoError(t, err)
}

func TestSeedWithoutAdmin(t *testing.T) {
	cfg := sqliteConfig(t)
	cfg.Admin = config.Admin{}

	db, err := OpenDB(cfg)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(Models()...))

	require.NoError(t, seed(cfg, db))

	count, err := auth.NewLocalProvider(db).CountUsers(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestSessionStorageSQLite(t *testing.T) {
	assert.Nil(t, sessionStorage(sqliteConfig(t)))
}
