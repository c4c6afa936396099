package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomotick/internal/engine"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)
	return s
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	s := newTestStore(t)
	snap, err := s.Load()
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)
	in := engine.Snapshot{
		Mode:      engine.ModeBreak,
		Remaining: 123.5,
		DailyWorkTotals: map[string]float64{
			"2026-01-14": 3600,
			"2026-01-15": 90,
		},
	}
	require.NoError(t, s.Save(in))

	out, err := s.Load()
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, in, *out)

	// The temp file from the atomic write must be gone.
	_, err = os.Stat(s.Path() + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestLoadMalformedFileFails(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte("{not json"), 0o644))

	_, err := s.Load()
	assert.Error(t, err)
}

func TestLoadUnknownModeFails(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(s.Path(),
		[]byte(`{"current_mode":"lunch","remaining_time":10}`), 0o644))

	_, err := s.Load()
	assert.Error(t, err)
}

func TestLoadIgnoresEphemeralKeys(t *testing.T) {
	s := newTestStore(t)
	raw := `{
		"current_mode": "work",
		"remaining_time": 42,
		"daily_work_totals": {"2026-01-15": 7},
		"is_active": true,
		"elapsed_since_last_activity": 12.5,
		"total_work_today_seconds": 999
	}`
	require.NoError(t, os.WriteFile(s.Path(), []byte(raw), 0o644))

	snap, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, engine.ModeWork, snap.Mode)
	assert.Equal(t, 42.0, snap.Remaining)
	assert.Equal(t, 7.0, snap.DailyWorkTotals["2026-01-15"])
}

func TestLoadInitializesMissingTotals(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(s.Path(),
		[]byte(`{"current_mode":"break","remaining_time":60}`), 0o644))

	snap, err := s.Load()
	require.NoError(t, err)
	assert.NotNil(t, snap.DailyWorkTotals)
	assert.Empty(t, snap.DailyWorkTotals)
}

func TestSavedFormHasNoEphemeralFields(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save(engine.Snapshot{
		Mode:            engine.ModeWork,
		Remaining:       10,
		DailyWorkTotals: map[string]float64{},
	}))

	raw, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Contains(t, string(raw), "current_mode")
	assert.Contains(t, string(raw), "remaining_time")
	assert.Contains(t, string(raw), "daily_work_totals")
	assert.NotContains(t, string(raw), "is_active")
	assert.NotContains(t, string(raw), "elapsed_since_last_activity")
}

func TestNewStoreCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "state.json")
	s, err := NewStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Save(engine.Snapshot{Mode: engine.ModeWork}))

	_, err = os.Stat(path)
	assert.NoError(t, err)
}
