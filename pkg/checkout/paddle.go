package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	paddle "github.com/PaddleHQ/paddle-go-sdk/v4"
)

// checkoutTTL is how long Paddle keeps a draft transaction's checkout open.
const checkoutTTL = 24 * time.Hour

type transactionCreator interface {
	CreateTransaction(ctx context.Context, req *paddle.CreateTransactionRequest) (*paddle.Transaction, error)
}

type webhookVerifier interface {
	Verify(req *http.Request) (bool, error)
}

// PaddleProvider creates Paddle transactions and returns their checkout URL.
type PaddleProvider struct {
	transactions transactionCreator
	verifier     webhookVerifier
	successURL   string
	allowed      []string
	now          func() time.Time
}

var _ Provider = (*PaddleProvider)(nil)

func NewPaddleProvider(cfg Config) (*PaddleProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: PADDLE_API_KEY is required", ErrNotConfigured)
	}

	var (
		sdk *paddle.SDK
		err error
	)
	switch strings.ToLower(cfg.Environment) {
	case "sandbox", "":
		sdk, err = paddle.NewSandbox(cfg.APIKey)
	case "production":
		sdk, err = paddle.New(cfg.APIKey)
	default:
		return nil, fmt.Errorf("%w: invalid paddle environment %q", ErrNotConfigured, cfg.Environment)
	}
	if err != nil {
		return nil, fmt.Errorf("create paddle client: %w", err)
	}

	p := &PaddleProvider{
		transactions: sdk.TransactionsClient,
		successURL:   cfg.SuccessURL,
		allowed:      cfg.AllowedPrices,
		now:          time.Now,
	}
	if cfg.WebhookSecret != "" {
		p.verifier = paddle.NewWebhookVerifier(cfg.WebhookSecret)
	}
	return p, nil
}

// CreateCheckoutLink creates a draft transaction for one unit of the price.
func (p *PaddleProvider) CreateCheckoutLink(ctx context.Context, req Request) (*Link, error) {
	if err := req.Validate(p.allowed); err != nil {
		return nil, err
	}

	item := paddle.NewCreateTransactionItemsTransactionItemFromCatalog(&paddle.TransactionItemFromCatalog{
		PriceID:  req.PriceID,
		Quantity: 1,
	})
	txReq := &paddle.CreateTransactionRequest{
		Items:      []paddle.CreateTransactionItems{*item},
		CustomData: paddle.CustomData{},
	}
	if req.Email != "" {
		txReq.CustomData["email"] = req.Email
	}
	if req.Plan != "" {
		txReq.CustomData["plan"] = req.Plan
	}
	successURL := req.SuccessURL
	if successURL == "" {
		successURL = p.successURL
	}
	if successURL != "" {
		txReq.Checkout = &paddle.TransactionCheckout{URL: paddle.PtrTo(successURL)}
	}

	tx, err := p.transactions.CreateTransaction(ctx, txReq)
	if err != nil {
		return nil, errors.Join(ErrProviderFailure, err)
	}
	if tx == nil || tx.Checkout == nil || tx.Checkout.URL == nil || *tx.Checkout.URL == "" {
		return nil, ErrNoCheckoutURL
	}

	return &Link{
		URL:       *tx.Checkout.URL,
		SessionID: tx.ID,
		ExpiresAt: p.now().Add(checkoutTTL),
	}, nil
}

// ParseWebhook verifies the Paddle-Signature header and decodes the event.
func (p *PaddleProvider) ParseWebhook(r *http.Request) (*Event, error) {
	if p.verifier == nil {
		return nil, fmt.Errorf("%w: PADDLE_WEBHOOK_SECRET is required", ErrNotConfigured)
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrInvalidWebhookFormat, err)
	}
	r.Body = io.NopCloser(bytes.NewReader(body))

	ok, err := p.verifier.Verify(r)
	if err != nil || !ok {
		return nil, errors.Join(ErrInvalidSignature, err)
	}

	var payload struct {
		EventID   string         `json:"event_id"`
		EventType string         `json:"event_type"`
		Data      map[string]any `json:"data"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWebhookFormat, err)
	}
	if payload.EventType == "" {
		return nil, fmt.Errorf("%w: missing event_type", ErrInvalidWebhookFormat)
	}

	ev := &Event{ID: payload.EventID, Type: payload.EventType, Raw: payload.Data}
	ev.TransactionID, _ = payload.Data["id"].(string)
	ev.Status, _ = payload.Data["status"].(string)
	if custom, ok := payload.Data["custom_data"].(map[string]any); ok {
		ev.Plan, _ = custom["plan"].(string)
	}
	return ev, nil
}
