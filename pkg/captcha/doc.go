// Package captcha verifies human-verification tokens submitted with public
// forms.
//
// TurnstileVerifier checks tokens against Cloudflare Turnstile's siteverify
// endpoint. NoopVerifier accepts every non-empty token and is what
// NewFromConfig returns when no secret key is configured, so local
// development needs no Cloudflare account.
package captcha
