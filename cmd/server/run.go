package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/cardkit/handler"
	"github.com/dmitrymomot/cardkit/modules/billing"
	"github.com/dmitrymomot/cardkit/modules/contact"
	"github.com/dmitrymomot/cardkit/pkg/captcha"
	"github.com/dmitrymomot/cardkit/pkg/checkout"
	"github.com/dmitrymomot/cardkit/pkg/clientip"
	"github.com/dmitrymomot/cardkit/pkg/email"
	"github.com/dmitrymomot/cardkit/pkg/environment"
	"github.com/dmitrymomot/cardkit/pkg/httpserver"
	"github.com/dmitrymomot/cardkit/pkg/logger"
	"github.com/dmitrymomot/cardkit/pkg/ratelimiter"
	"github.com/dmitrymomot/cardkit/pkg/redis"
	"github.com/dmitrymomot/cardkit/pkg/requestid"
	"github.com/dmitrymomot/cardkit/views"
)

func run(ctx context.Context) error {
	cfg, err := loadConfigs()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	env := environment.Parse(cfg.app.Env)

	log, err := logger.NewFromConfig(env, cfg.app.Name, cfg.log,
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
		),
	)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	logger.SetAsDefault(log)

	var checks []httpserver.Check
	var store ratelimiter.Store
	if cfg.redis.Enabled() {
		client, err := redis.Connect(ctx, cfg.redis)
		if err != nil {
			return err
		}
		defer client.Close()
		checks = append(checks, httpserver.Check{Name: "redis", Fn: redis.Healthcheck(client)})
		store = ratelimiter.NewRedisStore(client, "cardkit:ratelimit:")
	} else {
		mem := ratelimiter.NewMemoryStore()
		defer mem.Close()
		store = mem
	}
	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{
		Capacity:       cfg.limit.Burst,
		RefillRate:     1,
		RefillInterval: cfg.limit.Interval,
	})
	if err != nil {
		return fmt.Errorf("contact rate limit: %w", err)
	}

	sender, err := email.NewFromConfig(cfg.email, email.WithLogger(log))
	if err != nil {
		return err
	}

	var provider checkout.Provider = checkout.Disabled{}
	if cfg.checkout.Enabled() {
		p, err := checkout.NewPaddleProvider(cfg.checkout)
		if err != nil {
			return err
		}
		provider = p
	} else {
		log.Warn("PADDLE_API_KEY not set, checkout is disabled")
	}

	errorHandler := handler.NewErrorHandler(log, handler.ErrorHandlerConfig{
		ErrorPage:  views.ErrorPage,
		ErrorToast: views.ErrorToast,
	})

	router := newRouter(routerDeps{
		env:       env,
		log:       log,
		assetsDir: cfg.app.AssetsDir,
		readiness: checks,
		contact: contact.NewService(
			contact.Config{Inbox: cfg.app.SupportInbox, RedirectURL: cfg.app.ContactRedirect},
			sender,
			captcha.NewFromConfig(cfg.captcha, log),
			contact.WithRateLimiter(limiter),
			contact.WithErrorHandler(errorHandler),
			contact.WithLogger(log),
		),
		billing: billing.NewService(provider,
			billing.WithErrorHandler(errorHandler),
			billing.WithLogger(log),
		),
	})

	log.Info("starting",
		slog.String("env", env.String()),
		slog.Bool("redis", cfg.redis.Enabled()),
		slog.Bool("checkout", cfg.checkout.Enabled()),
	)
	srv := httpserver.NewFromConfig(cfg.http, httpserver.WithLogger(log))
	return srv.Run(ctx, router)
}
