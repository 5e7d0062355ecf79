package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/daehan-dev/fleetworks-go/internal/infrastructure/config"
)

// NewZapLogger builds the process logger from configuration
func NewZapLogger(cfg *config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	zapCfg := zap.NewProductionConfig()
	if cfg.Format == "text" {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

// RequestLogger adapts a zap logger to the context-carried Logger interface
// used by application handlers.
type RequestLogger struct {
	logger *zap.SugaredLogger
}

// NewRequestLogger wraps a zap logger for request-scoped use
func NewRequestLogger(logger *zap.Logger) *RequestLogger {
	return &RequestLogger{logger: logger.Sugar()}
}

// Log emits one structured entry at the given level
func (l *RequestLogger) Log(level, message string, fields map[string]interface{}) {
	args := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}

	switch level {
	case "DEBUG":
		l.logger.Debugw(message, args...)
	case "WARN":
		l.logger.Warnw(message, args...)
	case "ERROR":
		l.logger.Errorw(message, args...)
	default:
		l.logger.Infow(message, args...)
	}
}
