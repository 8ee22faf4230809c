package mailer

import "context"

// Sender delivers a fully prepared message. Implementations can be swapped
// (SMTP, stub) without changing callers.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Message is a single HTML email.
type Message struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	HTML    string
}
