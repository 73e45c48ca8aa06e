// Package logx configures the process-wide zerolog logger used by the cart.
package logx

import (
	"fmt"
	"io"
	"os"

	"github.com/Wildhoney/Rustacart/core"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var DefaultLoggerOpts = &LoggerOpts{
	Environment: core.Development,
}

type LoggerOpts struct {
	Environment core.Environment
	// Level overrides the environment default when set, e.g. "warn".
	Level string
	// Writer replaces stderr. Outside production it is wrapped in a console writer.
	Writer io.Writer
}

func safe(opts ...LoggerOpts) *LoggerOpts {
	if len(opts) == 0 {
		return DefaultLoggerOpts
	}
	return &opts[0]
}

// Init replaces log.Logger according to opts. Production logs JSON at info level,
// every other environment logs through a console writer at debug level.
func Init(opts ...LoggerOpts) error {
	o := safe(opts...)

	var w io.Writer = os.Stderr
	if o.Writer != nil {
		w = o.Writer
	}

	level := zerolog.DebugLevel
	var logger zerolog.Logger
	if o.Environment.IsProduction() {
		level = zerolog.InfoLevel
		logger = zerolog.New(w).With().Timestamp().Logger()
	} else {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: o.Writer != nil}).
			With().Timestamp().Caller().Logger()
	}

	if o.Level != "" {
		parsed, err := zerolog.ParseLevel(o.Level)
		if err != nil {
			return fmt.Errorf("logx: invalid level %q: %w", o.Level, err)
		}
		level = parsed
	}

	log.Logger = logger.Level(level)
	return nil
}

// Logger returns a copy of the current global logger for injection into components.
func Logger() zerolog.Logger {
	return log.Logger
}

func Debug() *zerolog.Event {
	return log.Debug()
}

func Info() *zerolog.Event {
	return log.Info()
}

func Warn() *zerolog.Event {
	return log.Warn()
}

func Error() *zerolog.Event {
	return log.Error()
}

func Fatal() *zerolog.Event {
	return log.Fatal()
}
