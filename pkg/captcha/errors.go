package captcha

import "errors"

var (
	ErrMissingToken       = errors.New("captcha token is missing")
	ErrVerificationFailed = errors.New("captcha verification failed")
	ErrUnavailable        = errors.New("captcha service unavailable")
)
