package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a JSON zap logger and returns the level handle so it can be
// changed at runtime. An empty level means info, or debug in development.
func New(level string, development bool) (*zap.Logger, zap.AtomicLevel, error) {
	atom, err := resolveLevel(level, development)
	if err != nil {
		return nil, zap.AtomicLevel{}, err
	}

	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}

	cfg.Encoding = "json"
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableStacktrace = true
	cfg.Level = atom

	built, err := cfg.Build()
	if err != nil {
		return nil, zap.AtomicLevel{}, fmt.Errorf("build logger: %w", err)
	}

	return built.Named("ledger"), atom, nil
}

func resolveLevel(level string, development bool) (zap.AtomicLevel, error) {
	if strings.TrimSpace(level) == "" {
		if development {
			return zap.NewAtomicLevelAt(zapcore.DebugLevel), nil
		}
		return zap.NewAtomicLevelAt(zapcore.InfoLevel), nil
	}

	var parsed zapcore.Level
	if err := parsed.Set(level); err != nil {
		return zap.AtomicLevel{}, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	return zap.NewAtomicLevelAt(parsed), nil
}
