// Package logger builds the zap logger used across the module.
package logger

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config describes how log lines are encoded and where they go.
type Config struct {
	Level       string // debug, info, warn or error; empty means info
	Format      string // json or console
	Output      string // stdout, stderr or a file path rotated by lumberjack
	Sampling    bool
	Service     string
	Version     string
	Environment string
}

// New returns a logger for cfg. Every line carries the service, version and
// environment fields that are set.
func New(cfg Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	core := zapcore.NewCore(newEncoder(cfg), openSink(cfg.Output), level)
	if cfg.Sampling {
		// first 100 entries of a message per second, then every 10th
		core = zapcore.NewSamplerWithOptions(core, time.Second, 100, 10)
	}

	var fields []zap.Field
	for key, value := range map[string]string{
		"service":     cfg.Service,
		"version":     cfg.Version,
		"environment": cfg.Environment,
	} {
		if value != "" {
			fields = append(fields, zap.String(key, value))
		}
	}

	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)).With(fields...), nil
}

func newEncoder(cfg Config) zapcore.Encoder {
	ec := zap.NewProductionEncoderConfig()
	ec.TimeKey = "timestamp"
	ec.MessageKey = "message"
	ec.EncodeTime = zapcore.ISO8601TimeEncoder

	if cfg.Format == "json" {
		return zapcore.NewJSONEncoder(ec)
	}
	if cfg.Environment != "production" {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	return zapcore.NewConsoleEncoder(ec)
}

func openSink(output string) zapcore.WriteSyncer {
	switch output {
	case "", "stdout":
		return zapcore.Lock(os.Stdout)
	case "stderr":
		return zapcore.Lock(os.Stderr)
	}
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   output,
		MaxSize:    10, // MB
		MaxBackups: 3,
		Compress:   true,
	})
}

// ContextKey is the type of the context keys read by WithContext
type ContextKey string

const (
	RequestIDKey ContextKey = "request_id"
	TraceIDKey   ContextKey = "trace_id"
)

// WithContext returns log with the request and trace IDs stored in ctx.
func WithContext(ctx context.Context, log *zap.Logger) *zap.Logger {
	var fields []zap.Field
	for _, key := range []ContextKey{RequestIDKey, TraceIDKey} {
		if id, ok := ctx.Value(key).(string); ok && id != "" {
			fields = append(fields, zap.String(string(key), id))
		}
	}
	if len(fields) == 0 {
		return log
	}
	return log.With(fields...)
}
