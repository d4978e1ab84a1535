package checkout

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/dmitrymomot/cardkit/pkg/validator"
)

type Provider interface {
	CreateCheckoutLink(ctx context.Context, req Request) (*Link, error)
	ParseWebhook(r *http.Request) (*Event, error)
}

// Request describes one purchase. Email and Plan are optional; Plan is a
// display name stored with the transaction.
type Request struct {
	PriceID    string
	Email      string
	Plan       string
	SuccessURL string
}

// Validate checks required fields and, when allowed is not empty, that the
// price is one of them.
func (r Request) Validate(allowed []string) error {
	if err := validator.Apply(
		validator.Required("price_id", r.PriceID),
		validator.When(r.Email != "", validator.ValidEmail("email", r.Email)),
	); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	if len(allowed) > 0 && !slices.Contains(allowed, r.PriceID) {
		return fmt.Errorf("%w: %s", ErrPriceNotAllowed, r.PriceID)
	}
	return nil
}

// Link is a hosted checkout session.
type Link struct {
	URL       string    `json:"url"`
	SessionID string    `json:"session_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Event is a verified webhook notification.
type Event struct {
	ID            string
	Type          string
	TransactionID string
	Status        string
	Plan          string
	Raw           map[string]any
}

type Config struct {
	APIKey        string   `env:"PADDLE_API_KEY"`
	WebhookSecret string   `env:"PADDLE_WEBHOOK_SECRET"`
	Environment   string   `env:"PADDLE_ENVIRONMENT" envDefault:"sandbox"`
	SuccessURL    string   `env:"CHECKOUT_SUCCESS_URL"`
	AllowedPrices []string `env:"CHECKOUT_PRICE_IDS" envSeparator:","`
}

func (c Config) Enabled() bool { return c.APIKey != "" }

// Disabled rejects every call with ErrNotConfigured.
type Disabled struct{}

func (Disabled) CreateCheckoutLink(context.Context, Request) (*Link, error) {
	return nil, ErrNotConfigured
}

func (Disabled) ParseWebhook(*http.Request) (*Event, error) { return nil, ErrNotConfigured }
