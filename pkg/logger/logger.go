// Package logger holds the process-wide structured logger.
package logger

import (
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config controls where and how much is logged.
type Config struct {
	Level      string `yaml:"level"`      // debug, info, warn, error
	File       string `yaml:"file"`       // log file; empty disables file output
	MaxSize    int    `yaml:"maxSize"`    // megabytes before rotation
	MaxBackups int    `yaml:"maxBackups"` // rotated files to keep
	MaxAge     int    `yaml:"maxAge"`     // days to keep rotated files
	Console    bool   `yaml:"console"`    // also log to stderr
}

var (
	mu      sync.Mutex
	global  = zap.NewNop()
	rotator *lumberjack.Logger
)

// Init replaces the global logger. Until Init is called nothing is logged.
func Init(cfg Config) error {
	mu.Lock()
	defer mu.Unlock()

	level := zap.NewAtomicLevel()
	if cfg.Level == "" {
		level.SetLevel(zap.InfoLevel)
	} else if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	var cores []zapcore.Core

	// Close previous log file if exists
	if rotator != nil {
		rotator.Close()
		rotator = nil
	}

	if cfg.File != "" {
		rotator = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
		}
		enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		cores = append(cores, zapcore.NewCore(enc, zapcore.AddSync(rotator), level))
	}

	if cfg.Console {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000000")
		enc := zapcore.NewConsoleEncoder(encCfg)
		cores = append(cores, zapcore.NewCore(enc, zapcore.Lock(os.Stderr), level))
	}

	if len(cores) == 0 {
		global = zap.NewNop()
		return nil
	}

	global = zap.New(zapcore.NewTee(cores...)).Named("appium")
	return nil
}

// Close flushes and closes the log file.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	_ = global.Sync()
	if rotator != nil {
		rotator.Close()
		rotator = nil
	}
	global = zap.NewNop()
}

// L returns the structured logger.
func L() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	return global
}

// Replace installs l as the global logger (used by tests and embedders).
func Replace(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	global = l
}

// Info logs an info message.
func Info(format string, v ...interface{}) {
	L().Sugar().Infof(format, v...)
}

// Debug logs a debug message.
func Debug(format string, v ...interface{}) {
	L().Sugar().Debugf(format, v...)
}

// Error logs an error message.
func Error(format string, v ...interface{}) {
	L().Sugar().Errorf(format, v...)
}

// Warn logs a warning message.
func Warn(format string, v ...interface{}) {
	L().Sugar().Warnf(format, v...)
}
