package billing

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/cardkit/handler"
	"github.com/dmitrymomot/cardkit/pkg/binder"
	"github.com/dmitrymomot/cardkit/pkg/checkout"
	"github.com/dmitrymomot/cardkit/pkg/logger"
	"github.com/dmitrymomot/cardkit/pkg/validator"
	"github.com/dmitrymomot/cardkit/views"
)

var ErrInvalidSignature = handler.NewHTTPError(http.StatusUnauthorized, "invalid_signature")

// CheckoutRequest is posted by the pricing page.
type CheckoutRequest struct {
	PriceID string `json:"price_id" form:"price_id"`
	Email   string `json:"email" form:"email"`
	Plan    string `json:"plan" form:"plan"`
}

type Service struct {
	provider     checkout.Provider
	errorHandler handler.ErrorHandler[handler.Context]
	log          *slog.Logger
}

type Option func(*Service)

func WithErrorHandler(h handler.ErrorHandler[handler.Context]) Option {
	return func(s *Service) {
		if h != nil {
			s.errorHandler = h
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

func NewService(provider checkout.Provider, opts ...Option) *Service {
	s := &Service{provider: provider, log: logger.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	if s.errorHandler == nil {
		s.errorHandler = handler.NewErrorHandler(s.log, handler.ErrorHandlerConfig{
			ErrorPage:  views.ErrorPage,
			ErrorToast: views.ErrorToast,
		})
	}
	s.log = s.log.With(logger.Component("billing"))
	return s
}

// Handle returns the router to mount at /billing.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	r.Post("/checkout", handler.Wrap(s.checkout,
		handler.WithBinders[handler.Context, CheckoutRequest](binder.DataStar(), binder.JSON(), binder.Form()),
		handler.WithErrorHandler[handler.Context, CheckoutRequest](s.errorHandler),
	))
	r.Post("/webhook", handler.Wrap(s.webhook,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))
	return r
}

func (s *Service) checkout(ctx handler.Context, req CheckoutRequest) handler.Response {
	link, err := s.provider.CreateCheckoutLink(ctx, checkout.Request{
		PriceID: req.PriceID,
		Email:   req.Email,
		Plan:    req.Plan,
	})
	if err != nil {
		return handler.Error(s.classify(err))
	}

	s.log.InfoContext(ctx, "checkout created",
		slog.String("session_id", link.SessionID),
		slog.String("plan", req.Plan),
		logger.Event("checkout_created"),
	)

	if handler.WantsJSON(ctx.Request()) {
		return handler.JSON(link, handler.WithJSONStatus(http.StatusCreated))
	}
	return handler.Redirect(link.URL)
}

func (s *Service) classify(err error) error {
	switch {
	case errors.Is(err, checkout.ErrPriceNotAllowed):
		v := handler.NewValidationError()
		v.Add("price_id", "is not offered")
		return v
	case errors.Is(err, checkout.ErrInvalidRequest):
		if validator.Extract(err) != nil {
			return handler.FromValidator(err)
		}
		v := handler.NewValidationError()
		v.Add("checkout", err.Error())
		return v
	case errors.Is(err, checkout.ErrNotConfigured):
		return errors.Join(handler.ErrServiceUnavailable, err)
	default:
		return errors.Join(handler.ErrBadGateway, err)
	}
}

func (s *Service) webhook(ctx handler.Context, _ struct{}) handler.Response {
	ev, err := s.provider.ParseWebhook(ctx.Request())
	switch {
	case errors.Is(err, checkout.ErrNotConfigured):
		return handler.Error(errors.Join(handler.ErrServiceUnavailable, err))
	case errors.Is(err, checkout.ErrInvalidSignature):
		return handler.Error(errors.Join(ErrInvalidSignature, err))
	case err != nil:
		return handler.Error(errors.Join(handler.ErrBadRequest, err))
	}

	s.log.InfoContext(ctx, "payment event received",
		slog.String("event_id", ev.ID),
		slog.String("event_type", ev.Type),
		slog.String("transaction_id", ev.TransactionID),
		slog.String("status", ev.Status),
		slog.String("plan", ev.Plan),
	)
	return handler.JSON(map[string]bool{"received": true})
}
