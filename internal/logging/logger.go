package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "PADDYTERM_LOG_LEVEL"

// LogFileEnvVar names the file log output is appended to.
const LogFileEnvVar = "PADDYTERM_LOG_FILE"

// Initialize creates a new logger with the specified level writing to path.
// Empty arguments fall back to PADDYTERM_LOG_LEVEL and PADDYTERM_LOG_FILE.
// With no level at all, logging is disabled (silent mode). With no path,
// output goes to stderr.
//
// The terminal is owned by the interface while it runs, so interactive
// sessions should always log to a file.
func Initialize(level, path string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}
	if path == "" {
		path = os.Getenv(LogFileEnvVar)
	}

	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	zapLevel, err := ParseLevel(level)
	if err != nil {
		return err
	}

	output := "stderr"
	if path != "" {
		output = path
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{output},
	}

	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// ParseLevel converts a level name into a zap level.
func ParseLevel(level string) (zapcore.Level, error) {
	switch level {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q (want debug, info, warn or error)", level)
	}
}

// SetLogger replaces the global logger. Tests use it with zaptest observers.
func SetLogger(l *zap.Logger) {
	logger = l
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

// LogKey logs a keystroke and the pane it was routed to
func LogKey(key string, pane string) {
	Debug("Key event",
		zap.String("key", key),
		zap.String("pane", pane),
	)
}

// LogFocus logs a focus change
func LogFocus(from, to string) {
	Debug("Focus changed",
		zap.String("from", from),
		zap.String("to", to),
	)
}

// LogCommand logs a command dispatched on the bus
func LogCommand(name string, err error, fields ...zap.Field) {
	fields = append([]zap.Field{zap.String("command", name)}, fields...)
	if err != nil {
		Warn("Command failed", append(fields, zap.Error(err))...)
		return
	}
	Info("Command dispatched", fields...)
}

// LogResize logs a terminal resize and whether it was accepted
func LogResize(rows, cols int, err error) {
	fields := []zap.Field{
		zap.Int("rows", rows),
		zap.Int("cols", cols),
	}
	if err != nil {
		Warn("Resize rejected", append(fields, zap.Error(err))...)
		return
	}
	Info("Resize applied", fields...)
}

// LogFlush logs a completed frame
func LogFlush(kind string, blits int, flushes int) {
	Debug("Frame flushed",
		zap.String("kind", kind),
		zap.Int("blits", blits),
		zap.Int("flushes", flushes),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
