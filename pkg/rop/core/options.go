package core

import (
	"context"
	"log/slog"
)

type OptionKey string

const (
	ProcessOptionKey OptionKey = "process_options"
	LoggerOptionKey  OptionKey = "logger_options"
)

type ProcessOptions struct {
	// ProcessRemaining makes First call every candidate, even after one
	// has produced a value.
	ProcessRemaining bool
}

type LoggerOptions struct {
	Logger *slog.Logger
}

var discardLogger = slog.New(slog.DiscardHandler)

func WithProcessOptions(ctx context.Context, processRemaining bool) context.Context {
	return context.WithValue(ctx, ProcessOptionKey, ProcessOptions{ProcessRemaining: processRemaining})
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, LoggerOptionKey, LoggerOptions{Logger: logger})
}

func IsProcessRemainingEnabled(ctx context.Context, defaultProcessRemaining bool) bool {
	options, ok := ctx.Value(ProcessOptionKey).(ProcessOptions)
	if ok {
		return options.ProcessRemaining
	}
	return defaultProcessRemaining
}

// GetLogger returns the logger set with WithLogger, or one that discards
// everything.
func GetLogger(ctx context.Context) *slog.Logger {
	options, ok := ctx.Value(LoggerOptionKey).(LoggerOptions)
	if ok && options.Logger != nil {
		return options.Logger
	}
	return discardLogger
}
