package history

import (
	"context"

	"github.com/gabapcia/snip20history/internal/pkg/logger"
)

// Level classifies a user-visible notification.
type Level string

const (
	LevelLoading Level = "loading"
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notification is a transient message meant for the user running the fetch.
type Notification struct {
	Level   Level
	Message string
}

// Notifier delivers notifications to the user.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(ctx context.Context, n Notification)

// Notify calls f(ctx, n).
func (f NotifierFunc) Notify(ctx context.Context, n Notification) {
	f(ctx, n)
}

// logNotifier is the default Notifier. It forwards notifications to the logger.
func logNotifier(ctx context.Context, n Notification) {
	if n.Level == LevelError {
		logger.Warn(ctx, n.Message, "notification.level", n.Level)
		return
	}

	logger.Info(ctx, n.Message, "notification.level", n.Level)
}
