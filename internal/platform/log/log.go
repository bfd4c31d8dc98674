package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the service logger.
// level: debug, info, warn, error (unknown values fall back to info).
// format: "json" for production output, "console" for local development.
func New(level string, format string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		lvl = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	var cfg zap.Config
	if format == "console" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "time"
		cfg.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
		cfg.EncoderConfig.EncodeDuration = zapcore.MillisDurationEncoder
	}
	cfg.Level = lvl
	cfg.OutputPaths = []string{"stdout"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	return cfg.Build(zap.AddStacktrace(zap.DPanicLevel))
}
