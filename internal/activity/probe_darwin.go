package activity

import (
	"bufio"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// macOS idle time via `ioreg -c IOHIDSystem`, parsing HIDIdleTime
// (nanoseconds since last input).
var hidIdleRe = regexp.MustCompile(`HIDIdleTime"\s*=\s*([0-9]+)`)

type hidProbe struct{}

func newProbe() Probe {
	return hidProbe{}
}

func (hidProbe) IdleDuration() (time.Duration, error) {
	out, err := exec.Command("/usr/sbin/ioreg", "-c", "IOHIDSystem").Output()
	if err != nil {
		return 0, fmt.Errorf("ioreg: %w", err)
	}
	scanner := bufio.NewScanner(strings.NewReader(string(out)))
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.Contains(line, "HIDIdleTime") {
			continue
		}
		m := hidIdleRe.FindStringSubmatch(line)
		if len(m) == 2 {
			ns, err := strconv.ParseInt(m[1], 10, 64)
			if err != nil {
				return 0, fmt.Errorf("parse HIDIdleTime: %w", err)
			}
			return time.Duration(ns), nil
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, err
	}
	return 0, fmt.Errorf("HIDIdleTime not found")
}
