package email

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
)

// Sender delivers a message.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Message is one outbound email. ReplyTo and Tag are optional.
type Message struct {
	To       string `json:"to"`
	ReplyTo  string `json:"reply_to,omitempty"`
	Subject  string `json:"subject"`
	HTMLBody string `json:"-"`
	TextBody string `json:"-"`
	Tag      string `json:"tag,omitempty"`
}

// Validate checks addresses and that a subject and a body are present.
func (m Message) Validate() error {
	if err := validAddress(m.To); err != nil {
		return fmt.Errorf("%w: to: %v", ErrInvalidMessage, err)
	}
	if m.ReplyTo != "" {
		if err := validAddress(m.ReplyTo); err != nil {
			return fmt.Errorf("%w: reply_to: %v", ErrInvalidMessage, err)
		}
	}
	if strings.TrimSpace(m.Subject) == "" {
		return fmt.Errorf("%w: subject is required", ErrInvalidMessage)
	}
	if m.HTMLBody == "" && m.TextBody == "" {
		return fmt.Errorf("%w: body is required", ErrInvalidMessage)
	}
	return nil
}

func validAddress(s string) error {
	if s == "" {
		return fmt.Errorf("address is required")
	}
	_, err := mail.ParseAddress(s)
	return err
}
