// Package logger provides structured logging for the incrementor packages.
package logger

import (
	"go.uber.org/zap"
)

// Logger wraps zap.SugaredLogger.
type Logger struct {
	*zap.SugaredLogger
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{zap.NewNop().Sugar()}
}

// FromZap wraps an existing zap logger. A nil logger yields Nop.
func FromZap(l *zap.Logger) *Logger {
	if l == nil {
		return Nop()
	}
	return &Logger{l.Sugar()}
}

// With adds key-value pairs to logger.
func (l *Logger) With(keysAndValues ...any) *Logger {
	return &Logger{l.SugaredLogger.With(keysAndValues...)}
}

// WithComponent adds component name to logger.
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{l.SugaredLogger.With("component", name)}
}
