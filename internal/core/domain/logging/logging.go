package logging

import (
	"context"
	"errors"
)

type LogEntry struct {
	Key   string
	Value interface{}
}

func Entry(k string, v interface{}) LogEntry {
	return LogEntry{Key: k, Value: v}
}

type Logger interface {
	Debug(ctx context.Context, msg string, entries ...LogEntry)
	Info(ctx context.Context, msg string, entries ...LogEntry)
	Warning(ctx context.Context, msg string, entries ...LogEntry)
	Error(ctx context.Context, msg string, entries ...LogEntry)
}

// Error logs an unexpected error unless the request has been canceled.
func Error(ctx context.Context, log Logger, err error, entries ...LogEntry) {
	if errors.Is(err, context.Canceled) {
		return
	}
	entries = append(entries, Entry("err", err))
	log.Error(ctx, "Unexpected error occurred.", entries...)
}
