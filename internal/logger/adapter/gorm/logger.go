// Package gorm routes GORM statement logs into zerolog.
package gorm

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	gormlogger "gorm.io/gorm/logger"

	"github.com/portfolio-admin/portfolio-admin/internal/logger"
)

// Logger implements gorm's logger.Interface on top of a zerolog logger.
// Statements are logged at trace level, slow ones at warn, failed ones at error.
type Logger struct {
	zl       *zerolog.Logger
	cfg      logger.SQL
	minLevel gormlogger.LogLevel
}

// New returns a Logger writing to the global zerolog logger.
func New(cfg logger.SQL) *Logger {
	return &Logger{cfg: cfg, minLevel: gormlogger.Info}
}

// NewWithLogger returns a Logger writing to zl.
func NewWithLogger(zl zerolog.Logger, cfg logger.SQL) *Logger {
	return &Logger{zl: &zl, cfg: cfg, minLevel: gormlogger.Info}
}

func (l *Logger) logger() *zerolog.Logger {
	if l.zl != nil {
		return l.zl
	}

	return &log.Logger
}

// LogMode implements logger.Interface.
func (l *Logger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.minLevel = level

	return &clone
}

// Info implements logger.Interface.
func (l *Logger) Info(_ context.Context, msg string, args ...any) {
	if l.minLevel >= gormlogger.Info {
		l.logger().Info().Msgf(msg, args...)
	}
}

// Warn implements logger.Interface.
func (l *Logger) Warn(_ context.Context, msg string, args ...any) {
	if l.minLevel >= gormlogger.Warn {
		l.logger().Warn().Msgf(msg, args...)
	}
}

// Error implements logger.Interface.
func (l *Logger) Error(_ context.Context, msg string, args ...any) {
	if l.minLevel >= gormlogger.Error {
		l.logger().Error().Msgf(msg, args...)
	}
}

// Trace implements logger.Interface.
func (l *Logger) Trace(_ context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.minLevel <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)

	var event *zerolog.Event

	switch {
	case err != nil && l.minLevel >= gormlogger.Error &&
		!(l.cfg.IgnoreRecordNotFound && errors.Is(err, gormlogger.ErrRecordNotFound)):
		event = l.logger().Error().Err(err)
	case l.cfg.SlowThreshold > 0 && elapsed > l.cfg.SlowThreshold && l.minLevel >= gormlogger.Warn:
		event = l.logger().Warn().Dur("slowThreshold", l.cfg.SlowThreshold)
	case l.minLevel >= gormlogger.Info:
		event = l.logger().Trace()
	default:
		return
	}

	sql, rows := fc()

	event.Str("sql", sql).Int64("rows", rows).Dur("elapsed", elapsed).Msg("sql statement")
}
