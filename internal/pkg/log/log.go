package log

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

type Logger interface {
	Debug(ctx context.Context, message string, args ...interface{})
	Info(ctx context.Context, message string, args ...interface{})
	Warn(ctx context.Context, message string, args ...interface{})
	Error(ctx context.Context, message string, args ...interface{})
}

type zapLogger struct {
	base *zap.Logger
}

var logger Logger

func SetupLogger() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.DisableStacktrace = true
	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(fmt.Sprintf("failed to build logger: %v", err))
	}
	return l
}

func Init(l *zap.Logger) {
	logger = &zapLogger{base: l}
}

func GetLogger() Logger {
	return logger
}

// Setup is a convenience for tests: builds, installs and returns a logger
// in one call.
func Setup() Logger {
	Init(SetupLogger())
	return GetLogger()
}

func (l *zapLogger) Debug(ctx context.Context, message string, args ...interface{}) {
	l.base.Debug(format(message, args))
}

func (l *zapLogger) Info(ctx context.Context, message string, args ...interface{}) {
	l.base.Info(format(message, args))
}

func (l *zapLogger) Warn(ctx context.Context, message string, args ...interface{}) {
	l.base.Warn(format(message, args))
}

func (l *zapLogger) Error(ctx context.Context, message string, args ...interface{}) {
	l.base.Error(format(message, args))
}

func format(message string, args []interface{}) string {
	if len(args) == 0 {
		return message
	}
	return fmt.Sprintf("%s: %v", message, fmt.Sprint(args...))
}
