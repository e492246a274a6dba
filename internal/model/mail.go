package model

import "context"

// Message is an outgoing email.
type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// Mailer delivers emails.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
