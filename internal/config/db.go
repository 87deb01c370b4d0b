package config

// Supported GORM engines.
const (
	EngineMySQL    = "mysql"
	EnginePostgres = "postgres"
	EngineSQLite   = "sqlite"
)

// DB holds the database configuration settings.
type DB struct {
	Extras     string `toml:"extras"     json:"extras"`
	Host       string `toml:"host"       json:"host"`
	Port       int    `toml:"port"       json:"port"`
	User       string `toml:"user"       json:"user"`
	Password   string `toml:"password"   json:"password"` //nolint:gosec
	Name       string `toml:"name"       json:"name"`     // database name, file path for sqlite
	GormEngine string `toml:"gormEngine" json:"gormEngine"`
}
