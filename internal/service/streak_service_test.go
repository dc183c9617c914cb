package service

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func streakFixture(t *testing.T) *StreakService {
	t.Helper()
	return NewStreakService(filepath.Join(t.TempDir(), "streak.json"), nil)
}

func TestStreakFirstVisit(t *testing.T) {
	svc := streakFixture(t)
	now := time.Date(2025, 10, 10, 8, 0, 0, 0, time.UTC)

	state, err := svc.Touch(now)
	require.NoError(t, err)
	assert.Equal(t, 1, state.Count)
	assert.Equal(t, "2025-10-10", state.LastVisit)
}

func TestStreakSameDayIdempotent(t *testing.T) {
	svc := streakFixture(t)
	now := time.Date(2025, 10, 10, 8, 0, 0, 0, time.UTC)

	_, err := svc.Touch(now)
	require.NoError(t, err)

	state, err := svc.Touch(now.Add(6 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, state.Count, "second visit the same day changes nothing")
}

func TestStreakConsecutiveDays(t *testing.T) {
	svc := streakFixture(t)
	day1 := time.Date(2025, 10, 10, 8, 0, 0, 0, time.UTC)

	_, err := svc.Touch(day1)
	require.NoError(t, err)

	state, err := svc.Touch(day1.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, 2, state.Count)

	state, err = svc.Touch(day1.AddDate(0, 0, 2))
	require.NoError(t, err)
	assert.Equal(t, 3, state.Count)
}

func TestStreakGapResets(t *testing.T) {
	svc := streakFixture(t)
	day1 := time.Date(2025, 10, 10, 8, 0, 0, 0, time.UTC)

	_, err := svc.Touch(day1)
	require.NoError(t, err)
	_, err = svc.Touch(day1.AddDate(0, 0, 1))
	require.NoError(t, err)

	state, err := svc.Touch(day1.AddDate(0, 0, 4))
	require.NoError(t, err)
	assert.Equal(t, 1, state.Count, "a missed day starts over")
}

func TestStreakPersistsAcrossInstances(t *testing.T) {
	stateFile := filepath.Join(t.TempDir(), "streak.json")
	day1 := time.Date(2025, 10, 10, 8, 0, 0, 0, time.UTC)

	first := NewStreakService(stateFile, nil)
	_, err := first.Touch(day1)
	require.NoError(t, err)

	second := NewStreakService(stateFile, nil)
	state, err := second.Touch(day1.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, 2, state.Count)
}

func TestStreakCorruptStateResets(t *testing.T) {
	stateFile := filepath.Join(t.TempDir(), "streak.json")
	require.NoError(t, os.WriteFile(stateFile, []byte("{not json"), 0o644))

	svc := NewStreakService(stateFile, nil)
	state, err := svc.Current()
	require.NoError(t, err)
	assert.Zero(t, state.Count)
}
