package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-08-19 is a Wednesday.
var reportNow = time.Date(2026, time.August, 19, 14, 30, 0, 0, time.Local)

func TestRangeStartToday(t *testing.T) {
	from, _, err := rangeStart(reportNow, "today")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-19", from)
}

func TestRangeStartWeekBeginsMonday(t *testing.T) {
	from, _, err := rangeStart(reportNow, "week")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-17", from)

	// A Sunday belongs to the week that started the previous Monday.
	sunday := time.Date(2026, time.August, 23, 9, 0, 0, 0, time.Local)
	from, _, err = rangeStart(sunday, "week")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-17", from)
}

func TestRangeStartMonth(t *testing.T) {
	from, _, err := rangeStart(reportNow, "month")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-01", from)
}

func TestRangeStartAll(t *testing.T) {
	from, _, err := rangeStart(reportNow, "all")
	require.NoError(t, err)
	assert.Equal(t, "", from, "empty key sorts before every date")
}

func TestRangeStartUnknown(t *testing.T) {
	_, _, err := rangeStart(reportNow, "fortnight")
	assert.Error(t, err)
}
