package cli

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/gabapcia/snip20history/internal/history"
)

// notifier prints notifications as "[level] message" lines.
type notifier struct {
	mu sync.Mutex
	w  io.Writer
}

var _ history.Notifier = (*notifier)(nil)

// NewNotifier returns a history.Notifier writing to w, usually os.Stderr.
func NewNotifier(w io.Writer) *notifier {
	return &notifier{w: w}
}

func (n *notifier) Notify(_ context.Context, notification history.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()

	fmt.Fprintf(n.w, "[%s] %s\n", notification.Level, notification.Message)
}
