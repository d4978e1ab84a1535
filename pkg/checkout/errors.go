package checkout

import "errors"

var (
	ErrNotConfigured        = errors.New("checkout provider is not configured")
	ErrInvalidRequest       = errors.New("invalid checkout request")
	ErrPriceNotAllowed      = errors.New("price is not offered")
	ErrProviderFailure      = errors.New("checkout provider request failed")
	ErrNoCheckoutURL        = errors.New("provider returned no checkout url")
	ErrInvalidSignature     = errors.New("webhook signature verification failed")
	ErrInvalidWebhookFormat = errors.New("invalid webhook payload")
)
