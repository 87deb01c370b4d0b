package config

import (
	"errors"
)

var (
	// ErrEmptyURL error if config webserver.url is empty.
	ErrEmptyURL = errors.New("toml config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("toml config webserver.port listening port can not be 0")

	// ErrUnknownGormEngine error if db.gormEngine is not mysql, postgres or sqlite.
	ErrUnknownGormEngine = errors.New("toml config db.gormEngine is not supported")

	// ErrEmptyDBName error if db.name is empty.
	ErrEmptyDBName = errors.New("toml config db.name can not be empty")
)
