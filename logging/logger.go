// Package logging wraps zap with the sink/rotation configuration shape
// used across the rest of the Fulmen stack, trimmed to the two sinks
// spellguard actually needs: console and rotating file.
package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps a configured zap.Logger.
type Logger struct {
	zap         *zap.Logger
	atomicLevel zap.AtomicLevel
}

// FileSink configures rotation for the file sink (mirrors
// lumberjack.Logger's fields; MaxSize is in megabytes, MaxAge in days).
type FileSink struct {
	Path       string
	MaxSizeMB  int
	MaxAgeDays int
	MaxBackups int
	Compress   bool
}

// Config describes how to build a Logger (spec §6.6).
type Config struct {
	Level       string // DEBUG, INFO, WARN, ERROR; default INFO
	Service     string
	Environment string
	JSON        bool // JSON-encode console sink instead of human-readable
	File        *FileSink
}

// New builds a Logger from config. A nil File sink means console-only.
func New(cfg Config) (*Logger, error) {
	level := parseLevel(cfg.Level)
	atomicLevel := zap.NewAtomicLevelAt(level)

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "severity",
		NameKey:        "logger",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    severityEncoder,
		EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	var encoder zapcore.Encoder
	if cfg.JSON {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.AddSync(os.Stderr), atomicLevel),
	}

	if cfg.File != nil {
		if cfg.File.Path == "" {
			return nil, fmt.Errorf("logging: file sink requires a path")
		}
		lumber := &lumberjack.Logger{
			Filename:   cfg.File.Path,
			MaxSize:    cfg.File.MaxSizeMB,
			MaxAge:     cfg.File.MaxAgeDays,
			MaxBackups: cfg.File.MaxBackups,
			Compress:   cfg.File.Compress,
		}
		fileEncoder := zapcore.NewJSONEncoder(encoderConfig)
		cores = append(cores, zapcore.NewCore(fileEncoder, zapcore.AddSync(lumber), atomicLevel))
	}

	core := zapcore.NewTee(cores...)

	opts := []zap.Option{zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)}
	fields := []zap.Field{zap.String("service", cfg.Service)}
	if cfg.Environment != "" {
		fields = append(fields, zap.String("environment", cfg.Environment))
	}
	opts = append(opts, zap.Fields(fields...))

	return &Logger{zap: zap.New(core, opts...), atomicLevel: atomicLevel}, nil
}

// NewCLI builds a console-only logger for the spellguardctl CLI.
func NewCLI(service string) (*Logger, error) {
	return New(Config{Level: "INFO", Service: service, Environment: "cli"})
}

func parseLevel(s string) zapcore.Level {
	switch s {
	case "DEBUG":
		return zapcore.DebugLevel
	case "WARN":
		return zapcore.WarnLevel
	case "ERROR":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func severityEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	switch l {
	case zapcore.DebugLevel:
		enc.AppendString("DEBUG")
	case zapcore.WarnLevel:
		enc.AppendString("WARN")
	case zapcore.ErrorLevel:
		enc.AppendString("ERROR")
	case zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		enc.AppendString("FATAL")
	default:
		enc.AppendString("INFO")
	}
}

func (l *Logger) Debug(msg string, fields ...zap.Field) { l.zap.Debug(msg, fields...) }
func (l *Logger) Info(msg string, fields ...zap.Field)  { l.zap.Info(msg, fields...) }
func (l *Logger) Warn(msg string, fields ...zap.Field)  { l.zap.Warn(msg, fields...) }
func (l *Logger) Error(msg string, fields ...zap.Field) { l.zap.Error(msg, fields...) }

// WithComponent returns a child logger tagged with a component field.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{zap: l.zap.With(zap.String("component", component)), atomicLevel: l.atomicLevel}
}

// SetLevel dynamically changes the minimum log level.
func (l *Logger) SetLevel(level string) { l.atomicLevel.SetLevel(parseLevel(level)) }

// Sync flushes buffered log entries.
func (l *Logger) Sync() error { return l.zap.Sync() }
