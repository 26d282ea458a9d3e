// Package logger exposes the zap logger used across gvt, with log levels.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// LevelDebug sets the log level to debug
	LevelDebug = "debug"

	// LevelInfo sets the log level to info
	LevelInfo = "info"

	// LevelError sets the log level to error
	LevelError = "error"

	// LevelNone disables logging entirely
	LevelNone = "none"
)

// New returns a zap logger with the specified level and format
// (console or json). All output goes to stderr so result messages on
// stdout stay clean.
func New(logLevel, format string) (*zap.Logger, error) {
	if logLevel == LevelNone {
		return zap.NewNop(), nil
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(logLevel)); err != nil {
		return nil, err
	}

	zapConfig := zap.NewProductionConfig()
	if format == "console" {
		zapConfig = zap.NewDevelopmentConfig()
	}
	zapConfig.Level = zap.NewAtomicLevelAt(lvl)
	zapConfig.OutputPaths = []string{"stderr"}
	zapConfig.ErrorOutputPaths = []string{"stderr"}
	return zapConfig.Build()
}

// MustNew returns a logger with the specified level and format or panics
func MustNew(logLevel, format string) *zap.Logger {
	l, err := New(logLevel, format)
	if err != nil {
		panic(err)
	}
	return l
}
