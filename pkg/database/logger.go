package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	pkglog "github.com/weiawesome/wes-io-social/pkg/log"
)

const slowQueryThreshold = 200 * time.Millisecond

// zerologLogger routes GORM output through the request-scoped zerolog logger
// so SQL lines carry the request_id of the request that issued them.
type zerologLogger struct {
	level logger.LogLevel
}

// NewLogger returns a GORM logger writing through pkg/log.
func NewLogger(level string) logger.Interface {
	return &zerologLogger{level: logLevel(level)}
}

func (z *zerologLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &zerologLogger{level: level}
}

func (z *zerologLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	if z.level < logger.Info {
		return
	}
	l := pkglog.Ctx(ctx)
	l.Info().Msg(fmt.Sprintf(msg, args...))
}

func (z *zerologLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if z.level < logger.Warn {
		return
	}
	l := pkglog.Ctx(ctx)
	l.Warn().Msg(fmt.Sprintf(msg, args...))
}

func (z *zerologLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	if z.level < logger.Error {
		return
	}
	l := pkglog.Ctx(ctx)
	l.Error().Msg(fmt.Sprintf(msg, args...))
}

func (z *zerologLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if z.level <= logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	l := pkglog.Ctx(ctx)

	switch {
	// Not-found and duplicate-key outcomes are expected results of existence
	// checks and uniqueness races, not failures.
	case err != nil && z.level >= logger.Error &&
		!errors.Is(err, gorm.ErrRecordNotFound) && !errors.Is(err, gorm.ErrDuplicatedKey):
		sql, rows := fc()
		l.Error().Err(err).
			Str(pkglog.FieldSQL, sql).
			Int64(pkglog.FieldRows, rows).
			Float64(pkglog.FieldLatency, float64(elapsed.Milliseconds())).
			Msg("sql error")
	case elapsed > slowQueryThreshold && z.level >= logger.Warn:
		sql, rows := fc()
		l.Warn().
			Str(pkglog.FieldSQL, sql).
			Int64(pkglog.FieldRows, rows).
			Float64(pkglog.FieldLatency, float64(elapsed.Milliseconds())).
			Msg("slow sql")
	case z.level >= logger.Info:
		sql, rows := fc()
		l.Debug().
			Str(pkglog.FieldSQL, sql).
			Int64(pkglog.FieldRows, rows).
			Float64(pkglog.FieldLatency, float64(elapsed.Milliseconds())).
			Msg("sql")
	}
}
