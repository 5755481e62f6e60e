package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "MULTIBOX_LOG_LEVEL"

// Initialize creates a new logger with the specified level writing to path.
// If level is empty, it checks MULTIBOX_LOG_LEVEL environment variable.
// If neither is set, logging is disabled (silent mode).
//
// The terminal belongs to the UI while the program runs, so output always
// goes to a file. An empty path falls back to stderr.
func Initialize(level, path string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		// Unknown level - use info as default when explicitly set to something
		zapLevel = zapcore.InfoLevel
	}

	output := "stderr"
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		output = path
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{"stderr"},
	}

	// Plain level names: files do not render ANSI colors
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// InitializeFromEnv initializes the logger from the MULTIBOX_LOG_LEVEL
// environment variable, writing to path.
func InitializeFromEnv(path string) error {
	return Initialize("", path)
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Fallback to silent logger if not initialized
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogTabSwitch logs a tab transition
func LogTabSwitch(from, to string) {
	Info("Tab activated",
		zap.String("from", from),
		zap.String("to", to),
	)
}

// LogControl logs a control lifecycle event ("created", "destroyed")
func LogControl(event, kind string, handle uint32) {
	Debug("Control "+event,
		zap.String("kind", kind),
		zap.Uint32("handle", handle),
	)
}

// LogStyleChange logs the style after a font size or color change
func LogStyleChange(fontSize int, r, g, b uint8) {
	Debug("Style changed",
		zap.Int("font_size", fontSize),
		zap.Uint8("red", r),
		zap.Uint8("green", g),
		zap.Uint8("blue", b),
	)
}

// LogListing logs a directory listing attempt
func LogListing(path string, count int, err error) {
	if err != nil {
		Warn("Directory listing failed",
			zap.String("path", path),
			zap.Error(err),
		)
		return
	}
	Info("Directory listed",
		zap.String("path", path),
		zap.Int("files", count),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
