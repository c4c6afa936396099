package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLedgerCreditCreatesLazily(t *testing.T) {
	l := Ledger{}
	l.Credit("2026-01-15", 10)
	l.Credit("2026-01-15", 5)

	assert.Equal(t, 15.0, l.Day("2026-01-15"))
	assert.Len(t, l, 1)
}

func TestLedgerAbsentDayIsZero(t *testing.T) {
	l := Ledger{}
	assert.Zero(t, l.Day("2026-01-15"))
	assert.Zero(t, l.Today(time.Now()))
	assert.Len(t, l, 0, "reading must not create entries")
}

func TestLedgerDaysSorted(t *testing.T) {
	l := Ledger{"2026-01-20": 1, "2025-12-31": 2, "2026-01-03": 3}
	assert.Equal(t, []string{"2025-12-31", "2026-01-03", "2026-01-20"}, l.Days())
}

func TestLedgerCloneIsIndependent(t *testing.T) {
	l := Ledger{"2026-01-15": 10}
	c := l.Clone()
	c.Credit("2026-01-15", 5)

	assert.Equal(t, 10.0, l.Day("2026-01-15"))
	assert.Equal(t, 15.0, c.Day("2026-01-15"))

	var nilLedger Ledger
	assert.NotNil(t, nilLedger.Clone())
}

func TestDayKeyLocalDate(t *testing.T) {
	at := time.Date(2026, time.March, 7, 23, 59, 0, 0, time.Local)
	assert.Equal(t, "2026-03-07", DayKey(at))
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("work")
	assert.NoError(t, err)
	assert.Equal(t, ModeWork, m)

	m, err = ParseMode("break")
	assert.NoError(t, err)
	assert.Equal(t, ModeBreak, m)

	_, err = ParseMode("Work")
	assert.Error(t, err)
	_, err = ParseMode("")
	assert.Error(t, err)
}

func TestModeTitle(t *testing.T) {
	assert.Equal(t, "Work", ModeWork.Title())
	assert.Equal(t, "Break", ModeBreak.Title())
}
