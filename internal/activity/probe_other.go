//go:build !darwin && !linux

package activity

import "time"

type unsupportedProbe struct{}

func newProbe() Probe {
	return unsupportedProbe{}
}

func (unsupportedProbe) IdleDuration() (time.Duration, error) {
	return 0, ErrUnsupported
}
