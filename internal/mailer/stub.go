package mailer

import (
	"context"

	"go.uber.org/zap"
)

// StubSender logs messages instead of sending them.
type StubSender struct {
	logger *zap.Logger
}

var _ Sender = (*StubSender)(nil)

func NewStubSender(logger *zap.Logger) *StubSender {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StubSender{logger: logger.Named("stub_mailer")}
}

func (s *StubSender) Send(ctx context.Context, msg Message) error {
	s.logger.Info("stub sender: would send email",
		zap.String("to", msg.To),
		zap.String("reply_to", msg.ReplyTo),
		zap.String("subject", msg.Subject),
	)
	return nil
}
