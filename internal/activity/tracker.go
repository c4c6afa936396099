package activity

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync/atomic"
	"time"
)

// Tracker holds the timestamp of the last detected user input. It is the one
// piece of state shared between the sensing side and the engine loop: the
// sensing producer advances it, the tick loop reads it. The register only
// moves forward, so a slow probe can never roll activity back in time.
type Tracker struct {
	last atomic.Int64 // unix nanoseconds
}

// NewTracker anchors the register at now.
func NewTracker(now time.Time) *Tracker {
	t := &Tracker{}
	t.last.Store(now.UnixNano())
	return t
}

// Touch advances the register to at, if newer than the current value.
func (t *Tracker) Touch(at time.Time) {
	ns := at.UnixNano()
	for {
		cur := t.last.Load()
		if ns <= cur {
			return
		}
		if t.last.CompareAndSwap(cur, ns) {
			return
		}
	}
}

// Last returns the most recent activity timestamp.
func (t *Tracker) Last() time.Time {
	return time.Unix(0, t.last.Load())
}

// Run polls the probe at the given interval and advances the register until
// ctx is cancelled. Sensing failures degrade silently: the register keeps its
// last value and the user reads as increasingly idle. An unsupported probe is
// reported once and the producer exits; the engine keeps running either way.
func (t *Tracker) Run(ctx context.Context, probe Probe, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			idle, err := probe.IdleDuration()
			if err != nil {
				if errors.Is(err, ErrUnsupported) {
					fmt.Fprintln(os.Stderr, "[pomotick] idle detection unavailable, timer will read as idle")
					return nil
				}
				continue
			}
			t.Touch(now.Add(-idle))
		}
	}
}
