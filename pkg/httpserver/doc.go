// Package httpserver runs an http.Handler with configured timeouts and
// graceful shutdown.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Run blocks until ctx is done, SIGINT or SIGTERM arrives, or Shutdown is
// called, then drains in-flight requests within the shutdown timeout.
// Startup failures wrap ErrStart; drain failures wrap ErrShutdown.
//
// Liveness and Readiness return probe handlers. Readiness runs each named
// Check with the request context and reports which ones failed.
package httpserver
