package logging

import (
	"context"
	"errors"

	e "github.com/d1d2-apps/ewallet-backend/internal/core/domain/errors"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/logging"

	"github.com/getsentry/sentry-go"
)

// SentryLogger reports error level records carrying an "err" entry to Sentry
// and passes every record on to the wrapped logger.
type SentryLogger struct {
	logging.Logger
	hub *sentry.Hub
}

func NewSentryLogger(inner logging.Logger, hub *sentry.Hub) *SentryLogger {
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	if hub == nil {
		panic(e.NewNilArgumentError("hub"))
	}
	return &SentryLogger{Logger: inner, hub: hub}
}

func (l *SentryLogger) Error(ctx context.Context, msg string, entries ...logging.LogEntry) {
	l.Logger.Error(ctx, msg, entries...)

	var err error
	extra := make(map[string]interface{}, len(entries))
	for _, entry := range entries {
		if entryErr, ok := entry.Value.(error); ok && entry.Key == "err" {
			err = entryErr
			continue
		}
		extra[entry.Key] = entry.Value
	}
	if err == nil {
		err = errors.New(msg)
	}

	l.hub.WithScope(func(scope *sentry.Scope) {
		scope.SetExtras(extra)
		scope.SetTag("message", msg)
		l.hub.CaptureException(err)
	})
}
