package contact

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/cardkit/handler"
	"github.com/dmitrymomot/cardkit/pkg/binder"
	"github.com/dmitrymomot/cardkit/pkg/captcha"
	"github.com/dmitrymomot/cardkit/pkg/clientip"
	"github.com/dmitrymomot/cardkit/pkg/email"
	"github.com/dmitrymomot/cardkit/pkg/logger"
	"github.com/dmitrymomot/cardkit/pkg/ratelimiter"
	"github.com/dmitrymomot/cardkit/pkg/requestid"
	"github.com/dmitrymomot/cardkit/views"
)

var (
	ErrCaptchaFailed = handler.NewHTTPError(http.StatusForbidden, "captcha_failed")
	ErrDelivery      = handler.NewHTTPError(http.StatusBadGateway, "delivery_failed")
)

const successMessage = "Thanks! We will get back to you shortly."

type Config struct {
	// Inbox receives every submission.
	Inbox string
	// RedirectURL is where plain form posts land after success.
	RedirectURL string
}

type Service struct {
	cfg          Config
	sender       email.Sender
	verifier     captcha.Verifier
	limiter      ratelimiter.RateLimiter
	errorHandler handler.ErrorHandler[handler.Context]
	log          *slog.Logger
}

type Option func(*Service)

// WithRateLimiter limits submissions per client IP.
func WithRateLimiter(l ratelimiter.RateLimiter) Option {
	return func(s *Service) { s.limiter = l }
}

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

func NewService(cfg Config, sender email.Sender, verifier captcha.Verifier, opts ...Option) *Service {
	if cfg.RedirectURL == "" {
		cfg.RedirectURL = "/?contact=sent"
	}
	s := &Service{
		cfg:      cfg,
		sender:   sender,
		verifier: verifier,
		log:      logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.errorHandler == nil {
		s.errorHandler = handler.NewErrorHandler(s.log, handler.ErrorHandlerConfig{
			ErrorPage:  views.ErrorPage,
			ErrorToast: views.ErrorToast,
		})
	}
	s.log = s.log.With(logger.Component("contact"))
	return s
}

// Handle returns the router to mount at /contact.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	if s.limiter != nil {
		r.Use(ratelimiter.Middleware(s.limiter, ratelimiter.ByClientIP,
			ratelimiter.WithDeniedHandler(func(w http.ResponseWriter, r *http.Request, _ *ratelimiter.Result) {
				s.errorHandler(handler.NewContext(w, r), handler.ErrTooManyRequests)
			}),
			ratelimiter.WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
				s.errorHandler(handler.NewContext(w, r), errors.Join(handler.ErrServiceUnavailable, err))
			}),
		))
	}
	r.Post("/", handler.Wrap(s.submit,
		handler.WithBinders[handler.Context, Request](binder.DataStar(), binder.JSON(), binder.Form()),
		handler.WithErrorHandler[handler.Context, Request](s.errorHandler),
	))
	return r
}

func (s *Service) submit(ctx handler.Context, req Request) handler.Response {
	r := ctx.Request()
	if err := req.Validate(); err != nil {
		return handler.Error(err)
	}

	ip := clientip.FromContext(r.Context())
	if ip == "" {
		ip = clientip.GetIP(r)
	}
	res, err := s.verifier.Verify(ctx, req.CaptchaToken, ip)
	switch {
	case errors.Is(err, captcha.ErrUnavailable):
		return handler.Error(errors.Join(handler.ErrServiceUnavailable, err))
	case err != nil || !res.Verified:
		return handler.Error(errors.Join(ErrCaptchaFailed, err))
	}

	body, err := views.Render(ctx, views.ContactEmail(views.ContactEmailParams{
		Topic:     req.Topic,
		Name:      req.Name,
		Email:     req.Email,
		Company:   req.Company,
		Message:   req.Message,
		RequestID: requestid.FromContext(r.Context()),
	}))
	if err != nil {
		return handler.Error(err)
	}

	msg := email.Message{
		To:       s.cfg.Inbox,
		ReplyTo:  req.Email,
		Subject:  fmt.Sprintf("[%s] New request from %s", req.Topic, req.Name),
		HTMLBody: body,
		Tag:      "contact-" + req.Topic,
	}
	if err := s.sender.Send(ctx, msg); err != nil {
		return handler.Error(errors.Join(ErrDelivery, err))
	}

	s.log.InfoContext(ctx, "contact request forwarded",
		slog.String("topic", req.Topic),
		logger.Event("contact_submitted"),
	)
	return s.success(r)
}

func (s *Service) success(r *http.Request) handler.Response {
	switch {
	case handler.IsDataStar(r):
		return handler.TemplWithSignals(
			map[string]any{"name": "", "email": "", "company": "", "message": "", "sent": true},
			handler.Patch(views.Toast("success", successMessage),
				handler.WithTarget("#"+views.ToastContainerID),
				handler.WithPatchMode(handler.PatchPrepend),
			),
		)
	case handler.WantsJSON(r):
		return handler.JSON(map[string]any{"success": true, "message": successMessage})
	default:
		return handler.Redirect(s.cfg.RedirectURL)
	}
}
