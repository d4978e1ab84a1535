package main

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/cardkit/pkg/device"
	"github.com/dmitrymomot/cardkit/pkg/devicewatch"
)

// script is a recorded sequence of environment changes.
//
//	initial:
//	  userAgent: "Mozilla/5.0 (iPhone; ...)"
//	  width: 390
//	  height: 844
//	steps:
//	  - after: 20ms
//	    type: orientationchange
//	    width: 844
//	    height: 390
type script struct {
	Initial device.Signals `yaml:"initial"`
	Steps   []step         `yaml:"steps"`
}

type step struct {
	After  time.Duration         `yaml:"after"`
	Type   devicewatch.EventKind `yaml:"type"`
	Width  int                   `yaml:"width"`
	Height int                   `yaml:"height"`
}

func loadScript(path string) (script, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return script{}, fmt.Errorf("read script: %w", err)
	}

	var s script
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return script{}, fmt.Errorf("decode script: %w", err)
	}
	for i, st := range s.Steps {
		if !st.Type.Valid() {
			return script{}, fmt.Errorf("step %d: unknown event type %q", i+1, st.Type)
		}
	}
	return s, nil
}

// scriptEnv is a mutable environment that reports its own changes.
// Connection and battery capabilities are not replayed.
type scriptEnv struct {
	mu      sync.RWMutex
	signals device.Signals
	events  chan devicewatch.Event
}

func newScriptEnv(initial device.Signals) *scriptEnv {
	return &scriptEnv{
		signals: initial,
		events:  make(chan devicewatch.Event, 1),
	}
}

func (e *scriptEnv) current() device.Signals {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.signals
}

func (e *scriptEnv) UserAgent() string             { return e.current().UserAgent }
func (e *scriptEnv) PixelRatio() float64           { return e.current().PixelRatio }
func (e *scriptEnv) Touch() device.Touch           { return e.current().Touch }
func (e *scriptEnv) Standalone() device.Standalone { return e.current().Standalone }

func (e *scriptEnv) Viewport() (int, int) {
	s := e.current()
	return s.Width, s.Height
}

// Listen forwards replayed events until ctx is done.
func (e *scriptEnv) Listen(ctx context.Context) <-chan devicewatch.Event {
	out := make(chan devicewatch.Event)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case ev := <-e.events:
				select {
				case out <- ev:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}

// apply resizes the viewport and emits the step's event.
func (e *scriptEnv) apply(ctx context.Context, st step) error {
	e.mu.Lock()
	e.signals.Width, e.signals.Height = st.Width, st.Height
	e.mu.Unlock()

	select {
	case e.events <- devicewatch.Event{Kind: st.Type}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// replay applies each step after its delay.
func (s script) replay(ctx context.Context, env *scriptEnv) error {
	for _, st := range s.Steps {
		timer := time.NewTimer(st.After)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		if err := env.apply(ctx, st); err != nil {
			return err
		}
	}
	return nil
}
