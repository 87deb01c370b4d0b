// Package config handles input from etc/*.toml files.
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes environment variables overriding single settings,
	// e.g. PORTFOLIO_ADMIN_EMAIL_SERVICEID.
	EnvPrefix = "PORTFOLIO_ADMIN"

	// EnvConfigJSON holds a JSON document merged over the whole config.
	EnvConfigJSON = EnvPrefix + "_CONFIG_JSON"

	fileName = "main.toml"

	defaultShutDownTime = 5
	defaultBodyLimit    = 16 << 20
	defaultMaxImageSize = 8 << 20
	defaultEmailTimeout = 10 * time.Second

	// DefaultEmailEndpoint is the EmailJS send endpoint.
	DefaultEmailEndpoint = "https://api.emailjs.com/api/v1.0/email/send"
)

// ReadConfig reads main.toml from path, applies environment overrides and validates the result.
func ReadConfig(path string) (Config, error) {
	var c Config

	if path == "" {
		path = "./etc/"
	}

	v := viper.New()
	v.SetConfigFile(filepath.Join(path, fileName))
	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	if err := v.Unmarshal(&c, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "toml"
	}); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode main config file")
	}

	if configAsJSON := os.Getenv(EnvConfigJSON); configAsJSON != "" {
		var err error

		if c, err = decodeAndMergeConfig(c, configAsJSON); err != nil {
			return c, err
		}
	}

	return c, validate(&c)
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	if err := json.Unmarshal([]byte(configAsJSON), &c); err != nil {
		return Config{}, errors.Wrapf(err, "failed to read %s", EnvConfigJSON)
	}

	return c, nil
}

// DumpConfig config as TOML String.
func DumpConfig(c Config) (string, error) {
	var buffer bytes.Buffer

	if err := toml.NewEncoder(&buffer).Encode(c); err != nil {
		return "", err //nolint:wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c Config) (string, error) {
	var buffer bytes.Buffer

	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint:wrapcheck
	}

	return buffer.String(), nil
}

// validate checks the settings the service can not start without and fills in defaults.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	if c.Webserver.Port == 0 {
		return errors.Wrap(ErrWebServerPortCanNotBeZero, invalidErrMessage)
	}

	if c.Webserver.URL == "" {
		return errors.Wrap(ErrEmptyURL, invalidErrMessage)
	}

	switch c.DB.GormEngine {
	case EngineMySQL, EnginePostgres, EngineSQLite:
	default:
		return errors.Wrapf(ErrUnknownGormEngine, "%s: %q", invalidErrMessage, c.DB.GormEngine)
	}

	if c.DB.Name == "" {
		return errors.Wrap(ErrEmptyDBName, invalidErrMessage)
	}

	if c.Webserver.ShutDownTime == 0 {
		c.Webserver.ShutDownTime = defaultShutDownTime
	}

	if c.Webserver.BodyLimit == 0 {
		c.Webserver.BodyLimit = defaultBodyLimit
	}

	if c.Webserver.MaxImageSize == 0 {
		c.Webserver.MaxImageSize = defaultMaxImageSize
	}

	if c.Webserver.Session.ExpiryTime == 0 {
		c.Webserver.Session.ExpiryTime = 24 * time.Hour
	}

	if c.Email.Endpoint == "" {
		c.Email.Endpoint = DefaultEmailEndpoint
	}

	if c.Email.Timeout == 0 {
		c.Email.Timeout = defaultEmailTimeout
	}

	return nil
}
