// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging wraps a process-wide zerolog logger with key/value helpers.
// Output goes to stderr by default or to a lumberjack-rotated file.
package logging

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/pdiddy/docpdf/pkg/types"
)

var (
	mu     sync.RWMutex
	logger = zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.InfoLevel)
)

// Init configures the process logger from cfg. It returns the underlying
// writer so callers can close a rotated log file on exit.
func Init(cfg types.LogConfig) io.Writer {
	var w io.Writer
	switch {
	case cfg.File != "":
		w = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		}
	case cfg.Pretty:
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	default:
		w = os.Stderr
	}

	l := zerolog.New(w).With().Timestamp().Logger().Level(parseLevel(cfg.Level))

	mu.Lock()
	logger = l
	mu.Unlock()
	return w
}

// SetLogLevel changes the minimum level. Unknown names fall back to info.
func SetLogLevel(level string) {
	mu.Lock()
	logger = logger.Level(parseLevel(level))
	mu.Unlock()
}

// SetOutput redirects the logger, keeping its level. Tests use it to capture
// output.
func SetOutput(w io.Writer) {
	mu.Lock()
	logger = zerolog.New(w).With().Timestamp().Logger().Level(logger.GetLevel())
	mu.Unlock()
}

// Logger returns the current logger for callers that need zerolog directly,
// such as child loggers carrying a session ID.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func parseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		return zerolog.InfoLevel
	}
	return lvl
}

// Debug logs msg at debug level with alternating key/value pairs.
func Debug(msg string, kv ...any) { emit(zerolog.DebugLevel, msg, kv) }

// Info logs msg at info level with alternating key/value pairs.
func Info(msg string, kv ...any) { emit(zerolog.InfoLevel, msg, kv) }

// Warn logs msg at warn level with alternating key/value pairs.
func Warn(msg string, kv ...any) { emit(zerolog.WarnLevel, msg, kv) }

// Error logs msg at error level with alternating key/value pairs.
func Error(msg string, kv ...any) { emit(zerolog.ErrorLevel, msg, kv) }

func emit(level zerolog.Level, msg string, kv []any) {
	l := Logger()
	e := l.WithLevel(level)
	if e == nil {
		return
	}
	Fields(e, kv...).Msg(msg)
}

// Fields attaches alternating key/value pairs to e. A trailing key without a
// value is logged under "EXTRA".
func Fields(e *zerolog.Event, kv ...any) *zerolog.Event {
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			key = "EXTRA"
		}
		if i+1 >= len(kv) {
			e = e.Interface("EXTRA", kv[i])
			break
		}
		switch v := kv[i+1].(type) {
		case error:
			e = e.AnErr(key, v)
		default:
			e = e.Interface(key, v)
		}
	}
	return e
}
