package email

import (
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/cardkit/pkg/logger"
)

// Config selects and configures the sender. Without a Postmark server token
// messages are written to DevDir.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL" envDefault:"no-reply@localhost"`
	DevDir               string `env:"EMAIL_DEV_DIR" envDefault:"./tmp/emails"`
}

type options struct {
	logger  *slog.Logger
	baseURL string
}

// Option configures a sender.
type Option func(*options)

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithBaseURL points PostmarkSender at another API host.
func WithBaseURL(url string) Option {
	return func(o *options) { o.baseURL = url }
}

func newOptions(opts []Option) options {
	o := options{logger: logger.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	o.logger = o.logger.With(logger.Component("email"))
	return o
}

// NewFromConfig returns a PostmarkSender when cfg has a server token and a
// DevSender otherwise.
func NewFromConfig(cfg Config, opts ...Option) (Sender, error) {
	if cfg.PostmarkServerToken == "" {
		if cfg.DevDir == "" {
			return nil, fmt.Errorf("%w: EMAIL_DEV_DIR is required without a Postmark token", ErrInvalidConfig)
		}
		return NewDevSender(cfg.DevDir, opts...), nil
	}
	return NewPostmarkSender(cfg, opts...)
}
