// Package logging builds the application's zap logger.
//
// The terminal belongs to the UI, so logs go to a file as JSON lines. With
// no file configured logging is disabled.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config selects the log level and destination.
type Config struct {
	// Level is one of debug, info, warn or error. Unknown values mean info.
	Level string

	// File is the path logs are appended to. Empty disables logging.
	File string
}

// ParseLevel parses a level name case-insensitively, defaulting to info.
func ParseLevel(s string) zapcore.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// New builds a logger for cfg.
func New(cfg Config) (*zap.Logger, error) {
	if cfg.File == "" {
		return zap.NewNop(), nil
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(ParseLevel(cfg.Level))
	zc.Sampling = nil
	zc.Encoding = "json"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.OutputPaths = []string{cfg.File}
	zc.ErrorOutputPaths = []string{cfg.File}

	log, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger for %s: %w", cfg.File, err)
	}
	return log, nil
}
