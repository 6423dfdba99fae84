package models

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

// logger adapts zerolog to the gorm logger interface.
type logger struct {
	Logger zerolog.Logger
}

// LogMode is a no-op, filtering happens via the zerolog global level.
func (l *logger) LogMode(gorm_logger.LogLevel) gorm_logger.Interface {
	return l
}

func (l *logger) Info(_ context.Context, format string, args ...interface{}) {
	l.Logger.Info().Msgf(format, args...)
}

func (l *logger) Warn(_ context.Context, format string, args ...interface{}) {
	l.Logger.Warn().Msgf(format, args...)
}

func (l *logger) Error(_ context.Context, format string, args ...interface{}) {
	l.Logger.Error().Msgf(format, args...)
}

// Trace logs every statement at debug level. Failed statements are
// logged as errors, except for missing records: those are expected
// during normal operation and handled by the query callback.
func (l *logger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	sql, rows := fc()

	event := l.Logger.Debug()
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && !errors.Is(err, ErrResourceNotFound) {
		event = l.Logger.Error().Err(err)
	}

	event.
		Str("sql", sql).
		Int64("rows", rows).
		Dur("duration", time.Since(begin)).
		Msg("database statement")
}
