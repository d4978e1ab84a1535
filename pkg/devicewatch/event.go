package devicewatch

import "context"

// EventKind names an environment change that triggers re-detection.
type EventKind string

const (
	EventResize            EventKind = "resize"
	EventOrientationChange EventKind = "orientationchange"
)

// Valid reports whether k is a known event kind.
func (k EventKind) Valid() bool {
	return k == EventResize || k == EventOrientationChange
}

// Event is a single environment change notification.
type Event struct {
	Kind EventKind `json:"type" yaml:"type"`
}

// EventSource is implemented by environments that report their own changes.
// Listen attaches listeners and delivers events until ctx is done, then
// detaches them and closes the channel.
type EventSource interface {
	Listen(ctx context.Context) <-chan Event
}
