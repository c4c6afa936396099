package engine

import (
	"sort"
	"time"
)

const dayKeyLayout = "2006-01-02"

// DayKey formats t as the local calendar date key used by the ledger.
func DayKey(t time.Time) string {
	return t.Format(dayKeyLayout)
}

// Ledger accumulates work-credited seconds per local calendar date.
// Entries are created lazily on first credit and never removed or decremented.
type Ledger map[string]float64

// Credit adds secs to the given day, creating the entry if absent.
func (l Ledger) Credit(day string, secs float64) {
	l[day] += secs
}

// Day returns the accumulated seconds for a date key, zero if absent.
func (l Ledger) Day(key string) float64 {
	return l[key]
}

// Today returns the accumulated seconds for now's local date, zero if absent.
func (l Ledger) Today(now time.Time) float64 {
	return l[DayKey(now)]
}

// Days returns the recorded date keys in ascending order.
func (l Ledger) Days() []string {
	keys := make([]string, 0, len(l))
	for k := range l {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns an independent copy, never nil.
func (l Ledger) Clone() Ledger {
	out := make(Ledger, len(l))
	for k, v := range l {
		out[k] = v
	}
	return out
}
