// Package requestid tags every request with an identifier, echoes it in the
// X-Request-ID response header and exposes it to handlers and loggers.
//
// A valid incoming X-Request-ID (at most 128 characters of letters, digits,
// '-' and '_') is reused so IDs survive proxies; anything else is replaced
// with a fresh UUID.
package requestid
