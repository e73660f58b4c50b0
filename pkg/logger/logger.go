package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the JSON logger used across the service. Production loggers
// log from Info and sample repeated entries; development loggers log from
// Debug with colored levels.
func New(serviceName string, isProd bool) *zap.Logger {
	return newLogger(serviceName, isProd, zapcore.AddSync(os.Stdout))
}

func newLogger(serviceName string, isProd bool, out zapcore.WriteSyncer) *zap.Logger {
	var config zapcore.EncoderConfig
	var level zapcore.Level

	if isProd {
		config = zap.NewProductionEncoderConfig()
		level = zapcore.InfoLevel
	} else {
		config = zap.NewDevelopmentEncoderConfig()
		config.EncodeLevel = zapcore.CapitalColorLevelEncoder
		level = zapcore.DebugLevel
	}
	config.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(config), out, level)
	if isProd {
		core = zapcore.NewSamplerWithOptions(core, 1, 100, 0)
	}
	return zap.New(core).With(zap.String("service", serviceName))
}
