package notify

import (
	"context"
	"log/slog"

	"boxoffice/internal/usecase/commands"
)

// SlogNotifier is the default terminal-notice sink. A dashboard push channel
// would replace it behind the same port.
type SlogNotifier struct {
	logger *slog.Logger
}

func NewSlogNotifier(logger *slog.Logger) *SlogNotifier {
	return &SlogNotifier{logger: logger}
}

func (n *SlogNotifier) Notify(_ context.Context, terminalID string, notice commands.Notice) {
	n.logger.Info("terminal notice",
		"terminal_id", terminalID,
		"severity", string(notice.Severity),
		"message", notice.Message,
	)
}
