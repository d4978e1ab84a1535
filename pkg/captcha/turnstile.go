package captcha

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrymomot/cardkit/pkg/logger"
)

const DefaultVerifyURL = "https://challenges.cloudflare.com/turnstile/v0/siteverify"

// TurnstileVerifier calls the Turnstile siteverify API.
type TurnstileVerifier struct {
	secret    string
	verifyURL string
	http      *http.Client
	log       *slog.Logger
}

var _ Verifier = (*TurnstileVerifier)(nil)

type Option func(*TurnstileVerifier)

func WithVerifyURL(u string) Option {
	return func(v *TurnstileVerifier) {
		if u != "" {
			v.verifyURL = u
		}
	}
}

func WithTimeout(d time.Duration) Option {
	return func(v *TurnstileVerifier) {
		if d > 0 {
			v.http.Timeout = d
		}
	}
}

func WithHTTPClient(c *http.Client) Option {
	return func(v *TurnstileVerifier) {
		if c != nil {
			v.http = c
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(v *TurnstileVerifier) {
		if l != nil {
			v.log = l
		}
	}
}

func NewTurnstile(secret string, opts ...Option) *TurnstileVerifier {
	v := &TurnstileVerifier{
		secret:    secret,
		verifyURL: DefaultVerifyURL,
		http:      &http.Client{Timeout: 10 * time.Second},
		log:       logger.Nop(),
	}
	for _, opt := range opts {
		opt(v)
	}
	v.log = v.log.With(logger.Component("captcha"))
	return v
}

type siteverifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
	Hostname   string   `json:"hostname"`
	Action     string   `json:"action"`
}

// Verify posts the token to siteverify. A rejected token returns
// ErrVerificationFailed with the reported error codes; transport and
// non-2xx failures return ErrUnavailable.
func (v *TurnstileVerifier) Verify(ctx context.Context, token, remoteIP string) (Result, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Result{}, ErrMissingToken
	}
	res := Result{Token: token}

	form := url.Values{"secret": {v.secret}, "response": {token}}
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return res, errors.Join(ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.http.Do(req)
	if err != nil {
		return res, errors.Join(ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return res, fmt.Errorf("%w: siteverify status %d: %s", ErrUnavailable, resp.StatusCode, body)
	}

	var payload siteverifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return res, errors.Join(ErrUnavailable, err)
	}
	if !payload.Success {
		v.log.InfoContext(ctx, "captcha rejected", slog.Any("error_codes", payload.ErrorCodes))
		return res, fmt.Errorf("%w: %s", ErrVerificationFailed, strings.Join(payload.ErrorCodes, ", "))
	}

	res.Verified = true
	return res, nil
}
