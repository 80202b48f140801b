package session

import (
	"context"

	"github.com/dmitrijs2005/esgportal/internal/logging"
)

// Level grades a transient notification.
type Level int

const (
	LevelInfo Level = iota
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// Notifier shows short-lived messages to the user. Implementations must not
// block.
type Notifier interface {
	Notify(ctx context.Context, level Level, msg string)
}

// LogNotifier writes notifications to a logger.
type LogNotifier struct {
	Logger logging.Logger
}

func (n LogNotifier) Notify(ctx context.Context, level Level, msg string) {
	switch level {
	case LevelError:
		n.Logger.Error(ctx, msg)
	case LevelWarning:
		n.Logger.Warn(ctx, msg)
	default:
		n.Logger.Info(ctx, msg)
	}
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, level Level, msg string)

func (f NotifierFunc) Notify(ctx context.Context, level Level, msg string) {
	f(ctx, level, msg)
}
