package devicewatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dmitrymomot/cardkit/pkg/broadcast"
	"github.com/dmitrymomot/cardkit/pkg/device"
	"github.com/dmitrymomot/cardkit/pkg/logger"
)

type lifecycle int

const (
	stateIdle lifecycle = iota
	stateStarted
	stateClosed
)

const (
	triggerInitial = "initial"
	triggerRefresh = "refresh"
)

// Watcher owns a live device snapshot. All methods are safe for concurrent use.
type Watcher struct {
	env  device.Environment
	cfg  config
	log  *slog.Logger
	subs *broadcast.MemoryBroadcaster[device.Info]

	snapshot atomic.Pointer[device.Info]

	mu          sync.Mutex
	state       lifecycle
	seq         uint64
	applied     uint64
	pending     map[uint64]struct{}
	ctx         context.Context
	cancel      context.CancelFunc
	resizeTimer *time.Timer
	settleTimer *time.Timer
	wg          sync.WaitGroup
}

// New creates a Watcher over env seeded with device.Fallback. env may be nil.
func New(env device.Environment, opts ...Option) *Watcher {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	w := &Watcher{
		env:     env,
		cfg:     cfg,
		log:     cfg.logger.With(logger.Component("devicewatch")),
		subs:    broadcast.NewMemoryBroadcaster[device.Info](cfg.bufferSize),
		pending: make(map[uint64]struct{}),
	}
	fallback := device.Fallback()
	w.snapshot.Store(&fallback)
	return w
}

// Start attaches event listeners and runs the initial detection in the
// background. The watcher stops when ctx is done or Close is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch w.state {
	case stateStarted:
		return ErrAlreadyStarted
	case stateClosed:
		return ErrClosed
	}

	w.ctx, w.cancel = context.WithCancel(ctx)
	w.state = stateStarted

	if src, ok := w.env.(EventSource); ok {
		events := src.Listen(w.ctx)
		w.wg.Add(1)
		go w.listen(w.ctx, events)
	}

	w.wg.Add(1)
	go func(ctx context.Context) {
		defer w.wg.Done()
		w.detect(ctx, triggerInitial)
	}(w.ctx)

	return nil
}

// Close detaches listeners, cancels pending timers, waits for in-flight
// detections and closes every subscription. It is idempotent.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.state == stateClosed {
		w.mu.Unlock()
		return nil
	}
	w.state = stateClosed
	if w.cancel != nil {
		w.cancel()
	}
	stopTimer(&w.resizeTimer)
	stopTimer(&w.settleTimer)
	w.mu.Unlock()

	w.wg.Wait()
	return w.subs.Close()
}

// Notify reports an environment change. Resize events are debounced and
// orientation changes wait for the settle delay. Events are ignored unless
// the watcher is started.
func (w *Watcher) Notify(ev Event) {
	switch ev.Kind {
	case EventResize:
		w.schedule(&w.resizeTimer, w.cfg.debounce, string(EventResize))
	case EventOrientationChange:
		w.schedule(&w.settleTimer, w.cfg.settleDelay, string(EventOrientationChange))
	default:
		w.log.Debug("ignoring unknown event", logger.Event(string(ev.Kind)))
	}
}

// Refresh runs detection immediately and returns the resulting snapshot. On
// failure the previous snapshot is kept and returned. After Close it returns
// the last snapshot without detecting.
func (w *Watcher) Refresh(ctx context.Context) device.Info {
	w.mu.Lock()
	if w.state == stateClosed {
		w.mu.Unlock()
		return w.Snapshot()
	}
	w.wg.Add(1)
	w.mu.Unlock()
	defer w.wg.Done()

	w.detect(ctx, triggerRefresh)
	return w.Snapshot()
}

// Snapshot returns the current snapshot.
func (w *Watcher) Snapshot() device.Info {
	return *w.snapshot.Load()
}

// State returns the current snapshot with its derived booleans.
func (w *Watcher) State() State {
	return Derive(w.Snapshot())
}

// BreakpointValue returns the minimum width of a breakpoint tier.
func (w *Watcher) BreakpointValue(tier device.Breakpoint) (int, bool) {
	return device.BreakpointValue(tier)
}

// Subscribe delivers every snapshot that differs from its predecessor. The
// subscription ends when ctx is done or the watcher is closed.
func (w *Watcher) Subscribe(ctx context.Context) broadcast.Subscriber[device.Info] {
	return w.subs.Subscribe(ctx)
}

func (w *Watcher) listen(ctx context.Context, events <-chan Event) {
	defer w.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			w.Notify(ev)
		}
	}
}

// schedule restarts the timer in slot so only the trailing call fires.
func (w *Watcher) schedule(slot **time.Timer, delay time.Duration, trigger string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != stateStarted {
		return
	}
	stopTimer(slot)
	*slot = time.AfterFunc(delay, func() { w.fire(trigger) })
}

func (w *Watcher) fire(trigger string) {
	w.mu.Lock()
	if w.state != stateStarted {
		w.mu.Unlock()
		return
	}
	ctx := w.ctx
	w.wg.Add(1)
	w.mu.Unlock()
	defer w.wg.Done()

	w.detect(ctx, trigger)
}

func (w *Watcher) detect(ctx context.Context, trigger string) {
	w.mu.Lock()
	w.seq++
	token := w.seq
	w.pending[token] = struct{}{}
	w.mu.Unlock()

	start := time.Now()
	info, err := w.run(ctx)
	if err != nil {
		w.mu.Lock()
		delete(w.pending, token)
		w.mu.Unlock()

		level := slog.LevelError
		if ctx.Err() != nil {
			level = slog.LevelDebug
		}
		w.log.Log(ctx, level, "device detection failed",
			logger.Trigger(trigger),
			logger.Sequence(token),
			logger.Error(err),
		)
		return
	}

	w.apply(ctx, token, info, trigger, time.Since(start))
}

// run calls the detector, turning a panic into an error.
func (w *Watcher) run(ctx context.Context) (info device.Info, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic: %v", device.ErrDetectionFailed, r)
		}
	}()
	info, err = w.cfg.detect(ctx, w.env)
	if err != nil && !errors.Is(err, device.ErrDetectionFailed) {
		err = errors.Join(device.ErrDetectionFailed, err)
	}
	return info, err
}

// apply stores info unless a newer detection has already been applied or is
// still running. Newer detections that failed do not block older results.
func (w *Watcher) apply(ctx context.Context, token uint64, info device.Info, trigger string, took time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()

	delete(w.pending, token)
	if w.stale(token) {
		w.log.DebugContext(ctx, "discarding stale detection",
			logger.Trigger(trigger),
			logger.Sequence(token),
			slog.Uint64("latest", w.seq),
		)
		return
	}
	w.applied = token

	prev := w.snapshot.Swap(&info)
	if prev.Equal(info) {
		return
	}

	w.log.DebugContext(ctx, "device snapshot updated",
		logger.Trigger(trigger),
		logger.Sequence(token),
		logger.Duration(took),
		slog.Any("device", info),
	)
	if err := w.subs.Broadcast(ctx, broadcast.Message[device.Info]{Data: info}); err != nil && !errors.Is(err, broadcast.ErrClosed) {
		w.log.WarnContext(ctx, "failed to publish device snapshot", logger.Error(err))
	}
}

func (w *Watcher) stale(token uint64) bool {
	if token < w.applied {
		return true
	}
	for t := range w.pending {
		if t > token {
			return true
		}
	}
	return false
}

func stopTimer(slot **time.Timer) {
	if *slot != nil {
		(*slot).Stop()
		*slot = nil
	}
}
