package game

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// RunRecord is one line of the session log.
type RunRecord struct {
	TS     int64  `json:"ts"`
	Event  string `json:"event"`
	Reason string `json:"reason,omitempty"`
	Score  int    `json:"score"`
	Length int    `json:"length"`
	Speed  int    `json:"speed"`
}

// RunLog appends end-of-session records to a JSONL file. Every write is
// best-effort: logging must never affect gameplay.
type RunLog struct {
	path string
}

func NewRunLog(dir string) *RunLog {
	return &RunLog{path: filepath.Join(dir, "last_run.jsonl")}
}

// Attach subscribes the log to terminal session events.
func (l *RunLog) Attach(bus *EventBus) {
	bus.Subscribe(EventGameOver, func(e Event) {
		l.write(RunRecord{
			TS: time.Now().Unix(), Event: "game_over", Reason: e.Reason,
			Score: e.Score, Length: e.Length, Speed: e.Speed,
		})
	})
	bus.Subscribe(EventWin, func(e Event) {
		l.write(RunRecord{
			TS: time.Now().Unix(), Event: "win",
			Score: e.Score, Length: e.Length, Speed: e.Speed,
		})
	})
}

func (l *RunLog) write(rec RunRecord) {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()
	line, err := json.Marshal(rec)
	if err != nil {
		return
	}
	f.Write(append(line, '\n'))
}
