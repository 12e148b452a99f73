package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a zap logger. Production gets JSON output, everything
// else the human-readable development encoder.
func NewLogger(env, level string) (*zap.Logger, error) {
	var zapCfg zap.Config

	if env == "prod" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zapCfg.Level = zap.NewAtomicLevelAt(parsed)

	return zapCfg.Build()
}
