// Package report renders engine state: a per-tick console block and an
// interactive dashboard.
package report

import "fmt"

// Clock formats seconds as MM:SS, floored and never negative. Minutes do not
// wrap at one hour; the idle count-up cap can push remaining time past it.
func Clock(secs float64) string {
	s := int(secs)
	if s < 0 {
		s = 0
	}
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}

// HoursMinutes formats seconds as HH:MM, floored and never negative.
func HoursMinutes(secs float64) string {
	s := int(secs)
	if s < 0 {
		s = 0
	}
	return fmt.Sprintf("%02d:%02d", s/3600, s%3600/60)
}
