package notify

import (
	"context"
	"log"
)

type Message struct {
	To      string
	Subject string
	Body    string
}

// Notifier delivers customer-facing messages. Senders are best-effort:
// callers must not fail their own operation when Send errors.
type Notifier interface {
	Send(ctx context.Context, msg Message) error
}

type ConsoleNotifier struct {
	From string
}

func NewConsoleNotifier(from string) *ConsoleNotifier {
	return &ConsoleNotifier{From: from}
}

func (n *ConsoleNotifier) Send(_ context.Context, msg Message) error {
	log.Printf("[NOTIFICATION] from=%s to=%s subject=%q message=%q", n.From, msg.To, msg.Subject, msg.Body)
	return nil
}
