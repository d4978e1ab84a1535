package binder

import "errors"

var (
	// ErrNotApplicable means the request is not in the binder's encoding.
	ErrNotApplicable = errors.New("binder not applicable to request")

	ErrFailedToParseJSON    = errors.New("failed to parse JSON request body")
	ErrFailedToParseForm    = errors.New("failed to parse form data")
	ErrFailedToReadSignals  = errors.New("failed to read datastar signals")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
)
