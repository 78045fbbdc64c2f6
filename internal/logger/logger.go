// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The coffee-shop Authors

// Package logger provides a thin wrapper around zerolog.Logger with the
// constructors and context helpers used by the coffee-shop binaries.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Request-scoped loggers are obtained via FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a JSON *Logger writing to os.Stdout for the given role
// label (e.g. "server", "envgen").
//
// Every entry carries the "role" field, a timestamp and a "func" caller field
// holding the fully-qualified function name. The logger starts at Debug level;
// use [Logger.ForProfile] once the configuration is known.
func NewLogger(role string) *Logger {
	return newLogger(os.Stdout, role)
}

// NewStderrLogger is [NewLogger] writing to os.Stderr, for tools whose stdout
// carries their actual output.
func NewStderrLogger(role string) *Logger {
	return newLogger(os.Stderr, role)
}

func newLogger(w io.Writer, role string) *Logger {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(w).
		Level(zerolog.DebugLevel).
		With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// ForProfile returns a child logger tagged with the active profile. Production
// profiles log at Info level and above.
func (l *Logger) ForProfile(name string, production bool) *Logger {
	level := zerolog.DebugLevel
	if production {
		level = zerolog.InfoLevel
	}

	return &Logger{l.With().Str("profile", name).Logger().Level(level)}
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver and can be enriched without affecting it.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the logger attached to the request's context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx with zerolog's WithContext.
// When none is attached the result is a disabled logger that drops every
// entry. It is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
