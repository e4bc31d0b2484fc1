package game

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readRecords(t *testing.T, path string) []RunRecord {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var recs []RunRecord
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var r RunRecord
		require.NoError(t, json.Unmarshal(sc.Bytes(), &r))
		recs = append(recs, r)
	}
	require.NoError(t, sc.Err())
	return recs
}

func TestRunLogWritesGameOverLine(t *testing.T) {
	dir := t.TempDir()
	bus := NewEventBus()
	NewRunLog(dir).Attach(bus)

	bus.Emit(Event{Type: EventGameOver, Reason: ReasonObstacle, Score: 4, Length: 7, Speed: 6})

	recs := readRecords(t, filepath.Join(dir, "last_run.jsonl"))
	require.Len(t, recs, 1)
	assert.Equal(t, "game_over", recs[0].Event)
	assert.Equal(t, ReasonObstacle, recs[0].Reason)
	assert.Equal(t, 4, recs[0].Score)
	assert.Equal(t, 7, recs[0].Length)
	assert.Equal(t, 6, recs[0].Speed)
	assert.NotZero(t, recs[0].TS)
}

func TestRunLogAppendsAcrossSessions(t *testing.T) {
	dir := t.TempDir()
	bus := NewEventBus()
	NewRunLog(dir).Attach(bus)

	bus.Emit(Event{Type: EventGameOver, Reason: ReasonWall, Score: 1, Length: 4, Speed: 3})
	bus.Emit(Event{Type: EventWin, Score: 500, Length: 503, Speed: 24})

	recs := readRecords(t, filepath.Join(dir, "last_run.jsonl"))
	require.Len(t, recs, 2)
	assert.Equal(t, "game_over", recs[0].Event)
	assert.Equal(t, "win", recs[1].Event)
	assert.Empty(t, recs[1].Reason)
}

func TestRunLogCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "logs")
	bus := NewEventBus()
	NewRunLog(dir).Attach(bus)

	bus.Emit(Event{Type: EventWin, Score: 1, Length: 4, Speed: 2})

	_, err := os.Stat(filepath.Join(dir, "last_run.jsonl"))
	assert.NoError(t, err)
}

func TestRunLogReasonOmittedFromWinLine(t *testing.T) {
	dir := t.TempDir()
	bus := NewEventBus()
	NewRunLog(dir).Attach(bus)

	bus.Emit(Event{Type: EventWin, Score: 2, Length: 5, Speed: 3})

	raw, err := os.ReadFile(filepath.Join(dir, "last_run.jsonl"))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "\"reason\"")
}
