// Package log builds the engine logger. Records go to the console, to a log
// file, or to both.
package log

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// ErrUnknownLevel is returned by ParseLevel for names it does not know.
var ErrUnknownLevel = eris.New("unknown log level")

// Config selects the sinks and the level of the logger.
type Config struct {
	// Level is one of trace, debug, info, warn, error, critical or off.
	Level string
	// File, when set, receives JSON records in append mode.
	File string
	// Console writes human readable records to Out.
	Console bool
	// Out is the console stream. It defaults to os.Stdout.
	Out io.Writer
}

// ParseLevel maps an engine level name onto a zerolog level. critical only
// acts as a threshold that lets fatal records through.
func ParseLevel(name string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace":
		return zerolog.TraceLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "", "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error", "err":
		return zerolog.ErrorLevel, nil
	case "critical":
		return zerolog.FatalLevel, nil
	case "off":
		return zerolog.Disabled, nil
	}
	return zerolog.NoLevel, eris.Wrapf(ErrUnknownLevel, "%q", name)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New creates a logger from cfg. The returned closer releases the log file
// and must be called once the logger is no longer used.
func New(cfg Config) (zerolog.Logger, io.Closer, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}

	var writers []io.Writer
	var closer io.Closer = nopCloser{}
	if cfg.Console || cfg.File == "" {
		out := cfg.Out
		if out == nil {
			out = os.Stdout
		}
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
			NoColor:    out != os.Stderr && out != os.Stdout,
		})
	}
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), nopCloser{}, eris.Wrapf(err, "open log file %s", cfg.File)
		}
		writers = append(writers, f)
		closer = f
	}

	var w io.Writer = writers[0]
	if len(writers) > 1 {
		w = zerolog.MultiLevelWriter(writers...)
	}
	logger := zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("logger", "engine").
		Logger()
	return logger, closer, nil
}
