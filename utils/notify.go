package utils

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

// Notifier surfaces transient success/failure messages to the user. Failures of a
// single action pass through here; they are terminal for that action only and never
// tear down the owning screen.
type Notifier interface {
	Success(message string)
	Failure(message string)
}

// ConsoleNotifier writes notifications to Out (stdout when nil) and mirrors
// failures to the log.
type ConsoleNotifier struct {
	Out io.Writer
}

func (n ConsoleNotifier) Success(message string) {
	fmt.Fprintf(n.writer(), "✔ %s\n", message)
}

func (n ConsoleNotifier) Failure(message string) {
	GetLogger().Warn("action failed", zap.String("message", message))
	fmt.Fprintf(n.writer(), "✘ %s\n", message)
}

func (n ConsoleNotifier) writer() io.Writer {
	if n.Out != nil {
		return n.Out
	}
	return os.Stdout
}
