package captcha

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/dmitrymomot/cardkit/pkg/logger"
)

// Verifier checks a token produced by the frontend widget. remoteIP may be
// empty.
type Verifier interface {
	Verify(ctx context.Context, token, remoteIP string) (Result, error)
}

// Result of a verification. Token echoes the checked token.
type Result struct {
	Verified bool   `json:"verified"`
	Token    string `json:"token"`
}

type Config struct {
	SecretKey string        `env:"CAPTCHA_SECRET_KEY"`
	SiteKey   string        `env:"CAPTCHA_SITE_KEY"`
	VerifyURL string        `env:"CAPTCHA_VERIFY_URL" envDefault:"https://challenges.cloudflare.com/turnstile/v0/siteverify"`
	Timeout   time.Duration `env:"CAPTCHA_TIMEOUT" envDefault:"10s"`
}

// NewFromConfig returns a TurnstileVerifier when a secret key is set and a
// NoopVerifier otherwise.
func NewFromConfig(cfg Config, log *slog.Logger) Verifier {
	if log == nil {
		log = logger.Nop()
	}
	if cfg.SecretKey == "" {
		log.Warn("captcha secret key not set, tokens are not verified", logger.Component("captcha"))
		return NoopVerifier{}
	}
	return NewTurnstile(cfg.SecretKey,
		WithVerifyURL(cfg.VerifyURL),
		WithTimeout(cfg.Timeout),
		WithLogger(log),
	)
}

// NoopVerifier accepts any non-empty token.
type NoopVerifier struct{}

func (NoopVerifier) Verify(_ context.Context, token, _ string) (Result, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Result{}, ErrMissingToken
	}
	return Result{Verified: true, Token: token}, nil
}
