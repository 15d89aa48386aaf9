package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config selects the level and encoding of the game log.
type Config struct {
	Level       string
	Format      string // json or console
	Development bool
}

// DefaultConfig logs info and above as console text.
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: "console",
	}
}

// DebugConfig logs everything, including per-session events.
func DebugConfig() Config {
	return Config{
		Level:       "debug",
		Format:      "console",
		Development: true,
	}
}

// New builds a zap logger for the given configuration.
func New(c Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", c.Level, err)
	}

	zc := zap.NewProductionConfig()
	if c.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Encoding = c.Format
	zc.Sampling = nil
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger.With(zap.String("component", "pong")), nil
}

// Install makes logger the process-wide logger used by the game systems and
// returns a function restoring the previous one.
func Install(logger *zap.Logger) func() {
	return zap.ReplaceGlobals(logger)
}
