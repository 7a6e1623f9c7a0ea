package logmail

import (
	"context"
	"log/slog"
	"sync"

	"github.com/amirasaad/causehive/pkg/provider/mail"
)

// Mailer writes outgoing messages to the log instead of sending them.
// Sent messages are kept so tests can inspect them.
type Mailer struct {
	logger *slog.Logger
	mu     sync.Mutex
	sent   []mail.Message
}

// New returns a log-backed Mailer.
func New(logger *slog.Logger) *Mailer {
	return &Mailer{logger: logger.With("mailer", "log")}
}

func (m *Mailer) Send(_ context.Context, msg mail.Message) error {
	m.mu.Lock()
	m.sent = append(m.sent, msg)
	m.mu.Unlock()
	m.logger.Info("📧 email queued", "to", msg.To, "subject", msg.Subject, "body", msg.Body)
	return nil
}

// Sent returns the messages handed to the mailer so far.
func (m *Mailer) Sent() []mail.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]mail.Message(nil), m.sent...)
}

var _ mail.Mailer = (*Mailer)(nil)
