package activity

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

type xprintidleProbe struct {
	path string
}

type unsupportedProbe struct{}

func newProbe() Probe {
	path, err := exec.LookPath("xprintidle")
	if err != nil {
		return unsupportedProbe{}
	}
	return &xprintidleProbe{path: path}
}

func (p *xprintidleProbe) IdleDuration() (time.Duration, error) {
	out, err := exec.Command(p.path).Output()
	if err != nil {
		return 0, fmt.Errorf("xprintidle: %w", err)
	}
	millis, err := strconv.ParseInt(strings.TrimSpace(string(out)), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse idle milliseconds: %w", err)
	}
	if millis < 0 {
		millis = 0
	}
	return time.Duration(millis) * time.Millisecond, nil
}

func (unsupportedProbe) IdleDuration() (time.Duration, error) {
	return 0, ErrUnsupported
}
