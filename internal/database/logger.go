package database

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/pocket-ledger/backend/internal/models"
	"github.com/rs/zerolog"
	gorm_logger "gorm.io/gorm/logger"
)

// Statements running longer than this are logged as warnings.
const slowThreshold = 200 * time.Millisecond

var tablePattern = regexp.MustCompile("(?i)\\b(?:FROM|INTO|UPDATE)\\s+[\"`]?(\\w+)")

// logger writes the statements gorm executes to zerolog.
//
// Statements are logged at debug level, slow statements as warnings and
// failed statements as errors. Missing records are not failures.
type logger struct {
	Logger        zerolog.Logger
	level         gorm_logger.LogLevel
	slowThreshold time.Duration
}

func newLogger(l zerolog.Logger) *logger {
	return &logger{
		Logger:        l,
		level:         gorm_logger.Info,
		slowThreshold: slowThreshold,
	}
}

// LogMode returns a copy of the logger that logs at the given level.
func (l *logger) LogMode(level gorm_logger.LogLevel) gorm_logger.Interface {
	c := *l
	c.level = level
	return &c
}

func (l *logger) Info(_ context.Context, s string, args ...any) {
	if l.level >= gorm_logger.Info {
		l.Logger.Info().Msgf(s, args...)
	}
}

func (l *logger) Warn(_ context.Context, s string, args ...any) {
	if l.level >= gorm_logger.Warn {
		l.Logger.Warn().Msgf(s, args...)
	}
}

func (l *logger) Error(_ context.Context, s string, args ...any) {
	if l.level >= gorm_logger.Error {
		l.Logger.Error().Msgf(s, args...)
	}
}

func (l *logger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gorm_logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	failed := err != nil && !errors.Is(err, models.ErrResourceNotFound) && !errors.Is(err, gorm_logger.ErrRecordNotFound)

	var event *zerolog.Event
	switch {
	case failed && l.level >= gorm_logger.Error:
		event = l.Logger.Error().Err(err)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= gorm_logger.Warn:
		event = l.Logger.Warn().Dur("threshold", l.slowThreshold)
	case l.level >= gorm_logger.Info:
		event = l.Logger.Debug()
	default:
		return
	}

	sql, rows := fc()
	event.
		Str("table", table(sql)).
		Str("sql", sql).
		Int64("rows", rows).
		Dur("duration", elapsed).
		Msg("[GORM] query")
}

// table returns the name of the first table the statement reads from or
// writes to.
func table(sql string) string {
	m := tablePattern.FindStringSubmatch(sql)
	if m == nil {
		return ""
	}
	return m[1]
}
