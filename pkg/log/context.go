package log

import (
	"context"

	"github.com/rs/zerolog"
)

// WithLogger returns ctx carrying logger for Ctx to find.
func WithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithStr returns a context whose logger carries an extra string field.
func WithStr(ctx context.Context, key, value string) context.Context {
	return WithLogger(ctx, Ctx(ctx).With().Str(key, value).Logger())
}

// Ctx returns the logger scoped to ctx, or the global logger when ctx has none.
func Ctx(ctx context.Context) zerolog.Logger {
	if ctx == nil {
		return L()
	}
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return *l
	}
	return L()
}
