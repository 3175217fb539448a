package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the global SugaredLogger instance.
// It is a no-op logger until Initialize is called.
var Log *zap.SugaredLogger = zap.NewNop().Sugar()

// Supported output encodings.
const (
	EncodingJSON    = "json"
	EncodingConsole = "console"
)

// Initialize sets up the global logger with the given level and encoding.
// An empty encoding falls back to JSON.
func Initialize(level, encoding string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	var cfg zap.Config
	switch encoding {
	case "", EncodingJSON:
		cfg = zap.NewProductionConfig()
	case EncodingConsole:
		cfg = zap.NewDevelopmentConfig()
	default:
		return fmt.Errorf("unsupported log encoding %q", encoding)
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	l, err := cfg.Build()
	if err != nil {
		return err
	}

	Log = l.Sugar()
	return nil
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = Log.Sync()
}
