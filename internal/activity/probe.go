// Package activity senses user input recency and publishes it as a single
// atomically updated last-activity timestamp.
package activity

import (
	"errors"
	"time"
)

// ErrUnsupported indicates idle detection is not available on this system.
var ErrUnsupported = errors.New("idle detection unsupported")

// Probe reports the duration since the last user input.
type Probe interface {
	IdleDuration() (time.Duration, error)
}

// NewProbe returns the platform idle probe.
func NewProbe() Probe {
	return newProbe()
}
