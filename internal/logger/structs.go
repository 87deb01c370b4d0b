package logger

import "time"

// Console implements a console based logger.
type Console struct {
	Enabled          bool `toml:"enabled"`
	UseConsoleWriter bool `toml:"useConsoleWriter"`
}

// RollingFile describes one lumberjack rotated log file.
type RollingFile struct {
	Name       string `toml:"name"`
	MaxSize    int    `toml:"maxSize"`    // megabytes
	MaxBackups int    `toml:"maxBackups"` // number of rotated files to keep
	MaxAge     int    `toml:"maxAge"`     // days
}

// LogFile implements a file based logger split by level.
type LogFile struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`

	Access RollingFile `toml:"access"`
	Error  RollingFile `toml:"error"`
	Info   RollingFile `toml:"info"`
	Trace  RollingFile `toml:"trace"`
	Warn   RollingFile `toml:"warn"`
}

// SQL configures how database statements are logged.
type SQL struct {
	// SlowThreshold marks statements taking longer as slow (logged at warn level). 0 disables it.
	SlowThreshold time.Duration `toml:"slowThreshold"`
	// IgnoreRecordNotFound drops "record not found" errors, absence is a normal result.
	IgnoreRecordNotFound bool `toml:"ignoreRecordNotFound"`
}

// Log implements the logger config.
type Log struct {
	LogLevel string `toml:"logLevel"` // trace, debug, info, warn, error.
	LogEnv   string `toml:"logEnv"`

	// EnableAccessLogToConsole if true the access log is also written to the console.
	// Does not overrule Console.Enabled.
	EnableAccessLogToConsole bool `toml:"enableAccessLogToConsole"`
	ReportCaller             bool `toml:"reportCaller"`
	DisableCheckAlive        bool `toml:"disableCheckAlive"` // do not log /checkalive calls

	AppName     string `toml:"appName"`
	ServiceName string `toml:"serviceName"`

	// Console used mainly for docker and dev.
	Console Console `toml:"console"`

	File LogFile `toml:"file"`

	SQL SQL `toml:"sql"`
}
