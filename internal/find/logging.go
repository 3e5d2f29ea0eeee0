package find

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel defines the verbosity of operational logging.
type LogLevel int

const (
	LogLevelSilent LogLevel = iota
	LogLevelError
	LogLevelInfo
	LogLevelDebug
)

// NewLogger builds the zap logger for a run. The default is silent: stdout
// and stderr must carry only find's own output, so operational logging is
// strictly opt-in and goes to stderr when enabled.
func NewLogger(level LogLevel) *zap.Logger {
	var config zap.Config

	switch level {
	case LogLevelSilent:
		return zap.NewNop()
	case LogLevelError:
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	case LogLevelInfo:
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case LogLevelDebug:
		config = zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	default:
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	config.OutputPaths = []string{"stderr"}

	logger, err := config.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
