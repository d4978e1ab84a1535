// Package logger builds *slog.Logger values with functional options and
// injects request-scoped attributes from context at log time.
//
//	log, err := logger.NewFromConfig(env, "cardkit", cfg.Log,
//		logger.WithContextExtractors(
//			requestid.LoggerExtractor(),
//			clientip.LoggerExtractor(),
//		),
//	)
//
// WithEnvironment picks stage defaults (text at debug level in development,
// JSON at info level elsewhere); Config overrides level and format from
// LOG_LEVEL and LOG_FORMAT.
//
// Attribute helpers in attr.go keep key names consistent across packages.
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally. Nop returns a logger that discards everything and
// is the default for packages that accept an optional logger.
package logger
