package models

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	gorm_logger "gorm.io/gorm/logger"
)

// gormLogger forwards gorm's log output to zerolog so that query logs end up
// in the same stream as the rest of the application.
type gormLogger struct {
	log zerolog.Logger
}

// LogMode is a no-op, the global zerolog level decides what gets emitted.
func (g gormLogger) LogMode(gorm_logger.LogLevel) gorm_logger.Interface {
	return g
}

func (g gormLogger) Info(_ context.Context, format string, args ...interface{}) {
	g.log.Info().Msgf(format, args...)
}

func (g gormLogger) Warn(_ context.Context, format string, args ...interface{}) {
	g.log.Warn().Msgf(format, args...)
}

func (g gormLogger) Error(_ context.Context, format string, args ...interface{}) {
	g.log.Error().Msgf(format, args...)
}

// Trace logs a finished query. Queries that found nothing are expected
// application flow and stay at debug level.
func (g gormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	sql, rows := fc()

	event := g.log.Debug()
	if err != nil && !errors.Is(err, ErrResourceNotFound) {
		event = g.log.Error().Err(err)
	}

	event.
		Str("sql", sql).
		Int64("rows", rows).
		Dur("duration", time.Since(begin)).
		Msg("query")
}
