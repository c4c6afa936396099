package activity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProbe struct {
	idle time.Duration
	err  error
}

func (p fakeProbe) IdleDuration() (time.Duration, error) {
	return p.idle, p.err
}

func TestTrackerAnchorsAtStart(t *testing.T) {
	now := time.Now()
	tr := NewTracker(now)
	assert.Equal(t, now.UnixNano(), tr.Last().UnixNano())
}

func TestTouchOnlyMovesForward(t *testing.T) {
	now := time.Now()
	tr := NewTracker(now)

	tr.Touch(now.Add(time.Second))
	assert.Equal(t, now.Add(time.Second).UnixNano(), tr.Last().UnixNano())

	tr.Touch(now.Add(-time.Hour))
	assert.Equal(t, now.Add(time.Second).UnixNano(), tr.Last().UnixNano())
}

func TestRunAdvancesRegister(t *testing.T) {
	start := time.Now().Add(-time.Hour)
	tr := NewTracker(start)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- tr.Run(ctx, fakeProbe{idle: 0}, 5*time.Millisecond)
	}()

	assert.Eventually(t, func() bool {
		return tr.Last().After(start)
	}, time.Second, 5*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestRunKeepsRegisterOnProbeFailure(t *testing.T) {
	start := time.Now()
	tr := NewTracker(start)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- tr.Run(ctx, fakeProbe{err: errors.New("probe broke")}, 5*time.Millisecond)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()
	require.NoError(t, <-done)
	assert.Equal(t, start.UnixNano(), tr.Last().UnixNano())
}

func TestRunStopsOnUnsupportedProbe(t *testing.T) {
	tr := NewTracker(time.Now())

	done := make(chan error, 1)
	go func() {
		done <- tr.Run(context.Background(), fakeProbe{err: ErrUnsupported}, time.Millisecond)
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("tracker did not stop on unsupported probe")
	}
}
