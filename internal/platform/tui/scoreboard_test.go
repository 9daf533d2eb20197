package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/goomba-arcade/internal/storage"
)

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, "goomba", "Revenge of the Goomba", 100, 30)
	view := m.View()
	if !strings.Contains(view, "HIGH SCORES - Revenge of the Goomba") {
		t.Errorf("missing title in %q", view)
	}
	if !strings.Contains(view, "No runs recorded yet.") {
		t.Error("empty board should say so")
	}
}

func TestScoreboardListsRuns(t *testing.T) {
	store := openStore(t)
	runs := []storage.Run{
		{RunID: "1", GameID: "goomba", Score: 1200, Bosses: 1, DeathCause: "Killed by Enemy"},
		{RunID: "2", GameID: "goomba", Score: 45000, Bosses: 3, Result: storage.ResultVictory},
		{RunID: "3", GameID: "goomba", Score: 300, DeathCause: "Crushed by Piano"},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, "goomba", "Goomba", 100, 30)
	if len(m.runs) != 3 || m.runs[0].Score != 45000 {
		t.Fatalf("top runs = %+v", m.runs)
	}
	rows := m.table.Rows()
	if rows[0][1] != "45,000" || rows[0][3] != "victory" {
		t.Errorf("first row = %v", rows[0])
	}
	if rows[1][4] != "Killed by Enemy" {
		t.Errorf("cause column = %q", rows[1][4])
	}
	if !strings.Contains(m.summary(), "3 runs  1 wins  best 45,000") {
		t.Errorf("summary = %q", m.summary())
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.view != BoardRecent || m.runs[0].RunID != "3" {
		t.Errorf("recent view first run = %+v", m.runs[0])
	}
	if !strings.Contains(m.View(), "RECENT RUNS") {
		t.Error("title should follow the view")
	}
}

func TestScoreboardNarrowDropsCause(t *testing.T) {
	store := openStore(t)
	store.SaveRun(storage.Run{RunID: "1", GameID: "goomba", Score: 10, DeathCause: "Killed by Enemy"})

	m := NewScoreboardModel(store, "goomba", "Goomba", 60, 20)
	if len(m.table.Columns()) != 5 {
		t.Fatalf("columns = %d, expected 5", len(m.table.Columns()))
	}
	if row := m.table.Rows()[0]; len(row) != 5 {
		t.Errorf("row = %v", row)
	}
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(nil, "goomba", "Goomba", 80, 24)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	if cmd == nil || next.(ScoreboardModel).View() != "" {
		t.Error("esc should quit the scoreboard")
	}
}
