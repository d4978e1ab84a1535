package checkout

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	paddle "github.com/PaddleHQ/paddle-go-sdk/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTransactions struct {
	got *paddle.CreateTransactionRequest
	tx  *paddle.Transaction
	err error
}

func (f *fakeTransactions) CreateTransaction(_ context.Context, req *paddle.CreateTransactionRequest) (*paddle.Transaction, error) {
	f.got = req
	return f.tx, f.err
}

func newTestProvider(tx *fakeTransactions) *PaddleProvider {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return &PaddleProvider{
		transactions: tx,
		verifier:     paddle.NewWebhookVerifier("whsec"),
		successURL:   "https://cards.example.com/welcome",
		allowed:      []string{"pri_team", "pri_solo"},
		now:          func() time.Time { return now },
	}
}

func TestCreateCheckoutLink(t *testing.T) {
	t.Parallel()

	t.Run("creates transaction", func(t *testing.T) {
		t.Parallel()

		fake := &fakeTransactions{tx: &paddle.Transaction{
			ID:       "txn_1",
			Checkout: &paddle.TransactionCheckout{URL: paddle.PtrTo("https://pay.paddle.io/txn_1")},
		}}
		p := newTestProvider(fake)

		link, err := p.CreateCheckoutLink(context.Background(), Request{PriceID: "pri_team", Email: "a@example.com", Plan: "team"})
		require.NoError(t, err)
		assert.Equal(t, "https://pay.paddle.io/txn_1", link.URL)
		assert.Equal(t, "txn_1", link.SessionID)
		assert.Equal(t, time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC), link.ExpiresAt)

		require.NotNil(t, fake.got)
		assert.Equal(t, "a@example.com", fake.got.CustomData["email"])
		assert.Equal(t, "team", fake.got.CustomData["plan"])
		require.NotNil(t, fake.got.Checkout)
		assert.Equal(t, "https://cards.example.com/welcome", *fake.got.Checkout.URL)
	})

	t.Run("validation", func(t *testing.T) {
		t.Parallel()

		p := newTestProvider(&fakeTransactions{})
		_, err := p.CreateCheckoutLink(context.Background(), Request{})
		assert.ErrorIs(t, err, ErrInvalidRequest)

		_, err = p.CreateCheckoutLink(context.Background(), Request{PriceID: "pri_team", Email: "nope"})
		assert.ErrorIs(t, err, ErrInvalidRequest)

		_, err = p.CreateCheckoutLink(context.Background(), Request{PriceID: "pri_enterprise"})
		assert.ErrorIs(t, err, ErrPriceNotAllowed)
	})

	t.Run("provider failure", func(t *testing.T) {
		t.Parallel()

		p := newTestProvider(&fakeTransactions{err: errors.New("401")})
		_, err := p.CreateCheckoutLink(context.Background(), Request{PriceID: "pri_solo"})
		assert.ErrorIs(t, err, ErrProviderFailure)
	})

	t.Run("no checkout url", func(t *testing.T) {
		t.Parallel()

		p := newTestProvider(&fakeTransactions{tx: &paddle.Transaction{ID: "txn_2"}})
		_, err := p.CreateCheckoutLink(context.Background(), Request{PriceID: "pri_solo"})
		assert.ErrorIs(t, err, ErrNoCheckoutURL)
	})
}

func signedRequest(secret, body string) *http.Request {
	ts := time.Now().Unix()
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d:%s", ts, body)

	r := httptest.NewRequest(http.MethodPost, "/billing/webhook", strings.NewReader(body))
	r.Header.Set("Paddle-Signature", fmt.Sprintf("ts=%d;h1=%s", ts, hex.EncodeToString(mac.Sum(nil))))
	return r
}

func TestParseWebhook(t *testing.T) {
	t.Parallel()

	p := newTestProvider(&fakeTransactions{})
	body := `{"event_id":"evt_1","event_type":"transaction.completed","data":{"id":"txn_1","status":"completed","custom_data":{"plan":"team"}}}`

	ev, err := p.ParseWebhook(signedRequest("whsec", body))
	require.NoError(t, err)
	assert.Equal(t, "evt_1", ev.ID)
	assert.Equal(t, "transaction.completed", ev.Type)
	assert.Equal(t, "txn_1", ev.TransactionID)
	assert.Equal(t, "completed", ev.Status)
	assert.Equal(t, "team", ev.Plan)

	_, err = p.ParseWebhook(signedRequest("other", body))
	assert.ErrorIs(t, err, ErrInvalidSignature)

	_, err = p.ParseWebhook(signedRequest("whsec", `{"data":{}}`))
	assert.ErrorIs(t, err, ErrInvalidWebhookFormat)
}

func TestDisabled(t *testing.T) {
	t.Parallel()

	_, err := Disabled{}.CreateCheckoutLink(context.Background(), Request{PriceID: "pri_team"})
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = NewPaddleProvider(Config{})
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = NewPaddleProvider(Config{APIKey: "k", Environment: "staging"})
	assert.ErrorIs(t, err, ErrNotConfigured)
}
