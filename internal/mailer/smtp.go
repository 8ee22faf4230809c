package mailer

import (
	"context"
	"net/smtp"
	"strings"
	"time"

	"github.com/jhillyerd/enmime"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/joshu-sajeev/contactrelay/internal/config"
)

// SMTPSender builds MIME messages with enmime and relays them through an
// authenticated SMTP account.
type SMTPSender struct {
	transport enmime.Sender
	logger    *zap.Logger
	now       func() time.Time
}

var _ Sender = (*SMTPSender)(nil)

func NewSMTPSender(cfg config.SMTPConfig, logger *zap.Logger) *SMTPSender {
	auth := smtp.PlainAuth("", cfg.Email, cfg.Password, cfg.Host)
	return NewSMTPSenderWithTransport(enmime.NewSMTP(cfg.Addr(), auth), logger)
}

func NewSMTPSenderWithTransport(transport enmime.Sender, logger *zap.Logger) *SMTPSender {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SMTPSender{
		transport: transport,
		logger:    logger.Named("smtp"),
		now:       time.Now,
	}
}

// Send builds the message and hands it to the SMTP transport. The underlying
// transport has no cancellation, so the context is only checked before dialing.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "mailer: send aborted")
	}

	builder, err := s.build(msg)
	if err != nil {
		return err
	}

	s.logger.Debug("sending email", zap.String("to", msg.To), zap.String("subject", msg.Subject))

	if err := builder.Send(s.transport); err != nil {
		s.logger.Error("smtp send failed", zap.String("to", msg.To), zap.Error(err))
		return errors.Wrap(err, "mailer: smtp send failed")
	}

	s.logger.Info("email sent", zap.String("to", msg.To), zap.String("subject", msg.Subject))
	return nil
}

func (s *SMTPSender) build(msg Message) (enmime.MailBuilder, error) {
	if msg.From == "" || msg.To == "" {
		return enmime.MailBuilder{}, errors.New("mailer: from and to addresses are required")
	}

	id, err := gonanoid.New()
	if err != nil {
		return enmime.MailBuilder{}, errors.Wrap(err, "mailer: message id")
	}
	domain := "localhost"
	if at := strings.LastIndex(msg.From, "@"); at >= 0 && at < len(msg.From)-1 {
		domain = msg.From[at+1:]
	}

	builder := enmime.Builder().
		From("", msg.From).
		To("", msg.To).
		Subject(msg.Subject).
		Date(s.now()).
		Header("Message-Id", "<"+id+"@"+domain+">").
		HTML([]byte(msg.HTML))

	if msg.ReplyTo != "" {
		builder = builder.ReplyTo("", msg.ReplyTo)
	}

	return builder, nil
}
