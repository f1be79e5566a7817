// Package notify defines the transient user-notification contract consumed
// by the collection service, plus a slog-backed implementation. Real
// deployments swap in a transport-level notifier (push, websocket); the
// service only ever sees the Notifier interface.
package notify

import (
	"context"
	"log/slog"
)

// Severity classifies a notice for rendering.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notice is one transient message shown to the user.
type Notice struct {
	Title       string
	Description string
	Severity    Severity
}

// Notifier presents transient notices to the user. Fire-and-forget: no
// delivery result is reported back to the caller.
type Notifier interface {
	Notify(ctx context.Context, n Notice)
}

// Log is a Notifier that writes notices to structured logs.
type Log struct {
	log *slog.Logger
}

// NewLog creates a log-backed notifier.
func NewLog(log *slog.Logger) *Log {
	return &Log{log: log.With("component", "notifier")}
}

// Notify implements Notifier.
func (l *Log) Notify(ctx context.Context, n Notice) {
	level := slog.LevelInfo
	if n.Severity == SeverityError {
		level = slog.LevelWarn
	}

	l.log.Log(ctx, level, n.Title,
		slog.String("description", n.Description),
		slog.String("severity", string(n.Severity)),
	)
}
