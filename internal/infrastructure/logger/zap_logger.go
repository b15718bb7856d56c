package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a JSON production logger. An unknown level falls back to info.
func NewLogger(level string) (*zap.Logger, error) {
	return build(zap.NewProductionConfig(), level)
}

// NewDevelopmentLogger builds a console logger for local runs.
func NewDevelopmentLogger(level string) (*zap.Logger, error) {
	return build(zap.NewDevelopmentConfig(), level)
}

func build(config zap.Config, level string) (*zap.Logger, error) {
	config.Level = zap.NewAtomicLevelAt(ParseLevel(level))
	config.EncoderConfig.TimeKey = "ts"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return config.Build()
}

func ParseLevel(level string) zapcore.Level {
	l, err := zapcore.ParseLevel(level)
	if err != nil {
		return zapcore.InfoLevel
	}
	return l
}
