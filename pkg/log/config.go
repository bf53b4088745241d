// Package log wraps zerolog with a process-wide logger, context scoping and
// a gin middleware that tags every request line with its id and actor.
package log

import (
	"io"
	stdlog "log"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logger configuration.
type Config struct {
	Level       string    `mapstructure:"level"`
	Pretty      bool      `mapstructure:"pretty"`
	ServiceName string    `mapstructure:"service_name"`
	Output      io.Writer `mapstructure:"-"`
}

var global atomic.Pointer[zerolog.Logger]

func init() {
	l := zerolog.New(os.Stdout).With().Timestamp().Logger()
	global.Store(&l)
}

// New builds a logger from cfg without touching the global one.
func New(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	if cfg.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly}
	}

	ctx := zerolog.New(out).Level(ParseLevel(cfg.Level)).With().Timestamp()
	if cfg.ServiceName != "" {
		ctx = ctx.Str(FieldService, cfg.ServiceName)
	}
	return ctx.Logger()
}

// Init replaces the global logger and routes the standard library logger
// through it, so stray log.Printf calls from dependencies stay structured.
func Init(cfg Config) {
	l := New(cfg)
	global.Store(&l)

	stdlog.SetFlags(0)
	stdlog.SetOutput(l.With().Str("source", "stdlog").Logger())
}

// L returns the global logger.
func L() zerolog.Logger {
	return *global.Load()
}

var levelAliases = map[string]zerolog.Level{
	"warning": zerolog.WarnLevel,
	"off":     zerolog.Disabled,
	"none":    zerolog.Disabled,
}

// ParseLevel maps a level name to zerolog, falling back to info for unknown
// or empty input.
func ParseLevel(s string) zerolog.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if lvl, ok := levelAliases[s]; ok {
		return lvl
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
