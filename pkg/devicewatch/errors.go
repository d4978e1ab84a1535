package devicewatch

import "errors"

var (
	ErrAlreadyStarted = errors.New("devicewatch: already started")
	ErrClosed         = errors.New("devicewatch: watcher is closed")
)
