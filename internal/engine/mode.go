package engine

import "fmt"

// Mode is the current period type.
type Mode string

const (
	ModeWork  Mode = "work"
	ModeBreak Mode = "break"
)

// ParseMode validates a mode string as found in flags or snapshots.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeWork, ModeBreak:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown mode %q (want work or break)", s)
}

// Title returns the capitalized display name.
func (m Mode) Title() string {
	switch m {
	case ModeWork:
		return "Work"
	case ModeBreak:
		return "Break"
	}
	return "Unknown"
}
