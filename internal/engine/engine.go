// Package engine implements the activity-adaptive work/break state machine.
//
// The engine owns the mode, the signed remaining-time counter and the daily
// work ledger, and advances them once per tick from a measured elapsed-time
// delta and the timestamp of the last detected user input. How time flows
// depends on the {mode, activity} pair: active work counts down and earns
// daily credit, idle work counts back up, active breaks count back up (staying
// active spends break credit slowly) and earn daily credit, idle breaks count
// down normally.
package engine

import (
	"errors"
	"time"
)

// DefaultIdleThreshold separates active from idle: input seen within this
// window classifies the user as active.
const DefaultIdleThreshold = 30 * time.Second

// Config fixes the engine parameters for the lifetime of a run.
type Config struct {
	WorkDuration  time.Duration
	BreakDuration time.Duration
	IdleThreshold time.Duration
}

// Validate reports whether the durations can drive the rate computations.
func (c Config) Validate() error {
	if c.WorkDuration <= 0 {
		return errors.New("work duration must be positive")
	}
	if c.BreakDuration <= 0 {
		return errors.New("break duration must be positive")
	}
	return nil
}

// Snapshot is the persisted subset of engine state. Derived fields (activity
// classification, seconds since last input) never appear here; they are
// recomputed on every tick.
type Snapshot struct {
	Mode            Mode               `json:"current_mode"`
	Remaining       float64            `json:"remaining_time"`
	DailyWorkTotals map[string]float64 `json:"daily_work_totals"`
}

// Status is the post-tick view handed to the reporter.
type Status struct {
	Mode          Mode
	Remaining     float64 // seconds, may be negative transiently inside a tick
	Active        bool
	SinceActivity float64 // seconds since last detected input
	WorkedToday   float64 // seconds credited to today's ledger entry
	Transitioned  bool    // mode flipped during this tick
}

// Engine is the timer state machine. It is not safe for concurrent use; the
// driver loop is its only caller.
type Engine struct {
	cfg Config

	// Rates for the count-up sub-states, fixed by the configured durations.
	workIdleRate    float64 // work idles back up at workDur/breakDur per second
	breakActiveRate float64 // active breaks refill at breakDur/workDur per second
	maxIdleCap      float64 // count-up ceiling: 2 x work duration, in seconds

	mode      Mode
	remaining float64 // seconds
	ledger    Ledger

	active        bool
	sinceActivity float64
}

// Overrides carries explicit start configuration applied on top of a restored
// snapshot. Zero values mean "not given".
type Overrides struct {
	Mode         Mode
	StartMinutes *float64
}

// Resume builds an engine from an optional restored snapshot and explicit
// start overrides. With no snapshot the engine starts fresh in the override
// mode (or work) with the full configured duration, unless StartMinutes gives
// an explicit remaining time. With a snapshot, an override mode that differs
// from the persisted one wins, and StartMinutes replaces the persisted
// remaining time. Derived activity fields always start as "active just now".
func Resume(cfg Config, snap *Snapshot, ov Overrides) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.IdleThreshold <= 0 {
		cfg.IdleThreshold = DefaultIdleThreshold
	}

	workSecs := cfg.WorkDuration.Seconds()
	breakSecs := cfg.BreakDuration.Seconds()

	e := &Engine{
		cfg:             cfg,
		workIdleRate:    workSecs / breakSecs,
		breakActiveRate: breakSecs / workSecs,
		maxIdleCap:      2 * workSecs,
		active:          true,
		ledger:          Ledger{},
	}

	if snap == nil {
		e.mode = ModeWork
		if ov.Mode != "" {
			e.mode = ov.Mode
		}
		e.remaining = workSecs
		if e.mode == ModeBreak {
			e.remaining = breakSecs
		}
		if ov.StartMinutes != nil {
			e.remaining = *ov.StartMinutes * 60
		}
		return e, nil
	}

	mode, err := ParseMode(string(snap.Mode))
	if err != nil {
		return nil, err
	}
	e.mode = mode
	if ov.Mode != "" && ov.Mode != mode {
		e.mode = ov.Mode
	}
	e.remaining = snap.Remaining
	if ov.StartMinutes != nil {
		e.remaining = *ov.StartMinutes * 60
	}
	e.ledger = Ledger(snap.DailyWorkTotals).Clone()
	return e, nil
}

// Tick advances the state machine by elapsed seconds of wall-clock time.
// elapsed must be non-negative; a non-monotonic clock reading is the caller's
// problem to clamp. elapsed may be arbitrarily large (system sleep): the
// mode/activity rule is applied to the whole delta and at most one mode
// transition is resolved, with the overshoot folded into the next period.
func (e *Engine) Tick(elapsed float64, now time.Time, lastActivity time.Time) Status {
	e.sinceActivity = now.Sub(lastActivity).Seconds()
	if e.sinceActivity < 0 {
		e.sinceActivity = 0
	}
	e.active = e.sinceActivity <= e.cfg.IdleThreshold.Seconds()

	credit := false
	switch {
	case e.mode == ModeWork && e.active:
		e.remaining -= elapsed
		credit = true
	case e.mode == ModeWork && !e.active:
		e.remaining += e.workIdleRate * elapsed
		e.clampRemaining()
	case e.mode == ModeBreak && e.active:
		e.remaining += e.breakActiveRate * elapsed
		e.clampRemaining()
		credit = true
	default: // idle break
		e.remaining -= elapsed
	}

	if credit && elapsed > 0 {
		e.ledger.Credit(DayKey(now), elapsed)
	}

	transitioned := false
	if e.remaining <= 0 {
		overshoot := -e.remaining
		if e.mode == ModeWork {
			// The overshoot would have idled back up at the work idle rate
			// had the tick granularity been finer.
			e.mode = ModeBreak
			e.remaining = e.cfg.BreakDuration.Seconds() + overshoot*e.workIdleRate
			e.clampRemaining()
		} else {
			e.mode = ModeWork
			e.remaining = e.cfg.WorkDuration.Seconds() - overshoot*e.breakActiveRate
		}
		transitioned = true
	}

	return Status{
		Mode:          e.mode,
		Remaining:     e.remaining,
		Active:        e.active,
		SinceActivity: e.sinceActivity,
		WorkedToday:   e.ledger.Today(now),
		Transitioned:  transitioned,
	}
}

func (e *Engine) clampRemaining() {
	if e.remaining > e.maxIdleCap {
		e.remaining = e.maxIdleCap
	}
}

// Snapshot projects the persistable subset of the current state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Mode:            e.mode,
		Remaining:       e.remaining,
		DailyWorkTotals: e.ledger.Clone(),
	}
}

// Mode returns the current period type.
func (e *Engine) Mode() Mode { return e.mode }

// Remaining returns the current signed remaining seconds.
func (e *Engine) Remaining() float64 { return e.remaining }

// Config returns the fixed engine configuration.
func (e *Engine) Config() Config { return e.cfg }

// Ledger exposes the daily work totals for reporting.
func (e *Engine) Ledger() Ledger { return e.ledger }
