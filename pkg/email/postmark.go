package email

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mrz1836/postmark"
)

// PostmarkSender sends through the Postmark transactional API.
type PostmarkSender struct {
	client *postmark.Client
	from   string
	log    *slog.Logger
}

var _ Sender = (*PostmarkSender)(nil)

func NewPostmarkSender(cfg Config, opts ...Option) (*PostmarkSender, error) {
	if cfg.PostmarkServerToken == "" {
		return nil, fmt.Errorf("%w: POSTMARK_SERVER_TOKEN is required", ErrInvalidConfig)
	}
	if err := validAddress(cfg.SenderEmail); err != nil {
		return nil, fmt.Errorf("%w: SENDER_EMAIL: %v", ErrInvalidConfig, err)
	}

	o := newOptions(opts)
	client := postmark.NewClient(cfg.PostmarkServerToken, cfg.PostmarkAccountToken)
	if o.baseURL != "" {
		client.BaseURL = o.baseURL
	}
	return &PostmarkSender{client: client, from: cfg.SenderEmail, log: o.logger}, nil
}

func (s *PostmarkSender) Send(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	resp, err := s.client.SendEmail(ctx, postmark.Email{
		From:       s.from,
		To:         msg.To,
		ReplyTo:    msg.ReplyTo,
		Subject:    msg.Subject,
		Tag:        msg.Tag,
		HTMLBody:   msg.HTMLBody,
		TextBody:   msg.TextBody,
		TrackOpens: false,
	})
	if err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	if resp.ErrorCode != 0 {
		return errors.Join(ErrFailedToSendEmail, fmt.Errorf("postmark error %d: %s", resp.ErrorCode, resp.Message))
	}

	s.log.InfoContext(ctx, "email sent",
		slog.String("message_id", resp.MessageID),
		slog.String("tag", msg.Tag),
	)
	return nil
}
