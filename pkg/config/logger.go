package config

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Console logging levels.
const (
	LevelNone   = "none"
	LevelNormal = "normal"
	LevelDebug  = "debug"
)

// LoggerConfig configures one log destination.
type LoggerConfig struct {
	Level string `yaml:"level"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Console LoggerConfig `yaml:"console"`
}

// Prepare returns the program logger. Info and warnings go to stdout,
// errors to stderr. verbose forces debug level.
func (conf *LoggingConfig) Prepare(verbose bool) (logger *zap.Logger) {
	level := conf.Console.Level
	if verbose {
		level = LevelDebug
	}

	var lowest zapcore.Level
	switch level {
	case LevelDebug:
		lowest = zapcore.DebugLevel
	case LevelNormal, "":
		lowest = zapcore.InfoLevel
	default:
		logger = zap.NewNop()
		return logger
	}

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.TimeKey = zapcore.OmitKey
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	encoder := zapcore.NewConsoleEncoder(ec)

	lowPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lowest <= lvl && lvl < zapcore.ErrorLevel
	})
	highPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= zapcore.ErrorLevel
	})

	core := zapcore.NewTee(
		zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), lowPriority),
		zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), highPriority),
	)

	logger = zap.New(core)
	return logger
}
