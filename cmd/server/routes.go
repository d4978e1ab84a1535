package main

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/cardkit/modules/billing"
	"github.com/dmitrymomot/cardkit/modules/contact"
	"github.com/dmitrymomot/cardkit/pkg/clientip"
	"github.com/dmitrymomot/cardkit/pkg/environment"
	"github.com/dmitrymomot/cardkit/pkg/httpserver"
	"github.com/dmitrymomot/cardkit/pkg/logger"
	"github.com/dmitrymomot/cardkit/pkg/requestid"
)

// readinessTimeout bounds all readiness checks of one probe.
const readinessTimeout = 3 * time.Second

type routerDeps struct {
	env       environment.Environment
	log       *slog.Logger
	assetsDir string
	readiness []httpserver.Check
	contact   *contact.Service
	billing   *billing.Service
}

func newRouter(d routerDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		clientip.Middleware,
		environment.Middleware(d.env),
		accessLog(d.log),
		middleware.Recoverer,
	)

	r.Get("/health/live", httpserver.Liveness())
	r.Get("/health/ready", httpserver.Readiness(d.log, readinessTimeout, d.readiness...))

	if d.assetsDir != "" {
		r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.Dir(d.assetsDir))))
	}

	r.Mount("/contact", d.contact.Handle())
	r.Mount("/billing", d.billing.Handle())
	return r
}

// accessLog logs one line per request. Health probes are logged at debug.
func accessLog(log *slog.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = logger.Nop()
	}
	log = log.With(logger.Component("http"))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			level := slog.LevelInfo
			switch {
			case status >= http.StatusInternalServerError:
				level = slog.LevelError
			case strings.HasPrefix(r.URL.Path, "/health/"):
				level = slog.LevelDebug
			}
			log.LogAttrs(r.Context(), level, "request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", status),
				slog.Int("bytes", ww.BytesWritten()),
				logger.Duration(time.Since(start)),
			)
		})
	}
}
