// Package clientip resolves the originating client address of a request
// behind reverse proxies and stores it in the request context.
//
// Headers are consulted in order: CF-Connecting-IP, X-Forwarded-For (first
// valid entry), X-Real-IP, then RemoteAddr. Addresses are validated and
// normalized; an IPv4-mapped IPv6 address is reported as IPv4.
//
// The resolved address keys per-client rate limits, so deploy behind a proxy
// that overwrites these headers.
package clientip
