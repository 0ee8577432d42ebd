package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// menuIndex returns the position of the stub game in the menu.
func menuIndex(t *testing.T, m MenuModel) int {
	t.Helper()
	for i, item := range m.items {
		if item.GameID == "tui_stub" {
			return i
		}
	}
	t.Fatal("stub game not listed")
	return -1
}

func TestMenuSelect(t *testing.T) {
	store := testStore(t)
	if _, err := store.SaveResult(storage.Result{GameID: "tui_stub", Score: 12}); err != nil {
		t.Fatalf("SaveResult: %v", err)
	}

	m := NewMenuModel(store, core.DefaultConfig())
	idx := menuIndex(t, m)
	if m.items[idx].HighScore != 12 {
		t.Errorf("HighScore = %d, expected 12", m.items[idx].HighScore)
	}

	for i := 0; i < idx; i++ {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = next.(MenuModel)
	}
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)

	if m.Selected() == nil || m.Selected().GameID != "tui_stub" {
		t.Fatalf("Selected() = %v", m.Selected())
	}
	if !isQuit(cmd) {
		t.Error("selecting should end the standalone menu")
	}
}

func TestMenuCursorStaysInRange(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(MenuModel)
	if m.cursor != 0 {
		t.Errorf("cursor = %d after up at top", m.cursor)
	}

	for i := 0; i < len(m.items)+3; i++ {
		next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = next.(MenuModel)
	}
	if m.cursor != len(m.items)-1 {
		t.Errorf("cursor = %d, expected %d", m.cursor, len(m.items)-1)
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !next.(MenuModel).WantsScoreboard() {
		t.Error("Tab should request the scoreboard")
	}

	next, cmd := m.Update(runeKey("q"))
	if !next.(MenuModel).IsQuitting() || !isQuit(cmd) {
		t.Error("q should quit the menu")
	}
}

func TestMenuResizeUpdatesConfig(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 50})

	cfg := next.(MenuModel).Config()
	if cfg.ScreenW != 120 || cfg.ScreenH != 50 {
		t.Errorf("Config() = %dx%d", cfg.ScreenW, cfg.ScreenH)
	}
}

func TestDifficultySelector(t *testing.T) {
	tests := []struct {
		downs    int
		expected config.DifficultyPreset
	}{
		{0, ""},
		{1, config.DifficultyEasy},
		{3, config.DifficultyHard},
		{4, config.DifficultyFixed},
		{10, config.DifficultyFixed},
	}

	for _, tt := range tests {
		m := NewDifficultyModel("Stub", 80, 24)
		for i := 0; i < tt.downs; i++ {
			next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
			m = next.(DifficultyModel)
		}
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		m = next.(DifficultyModel)

		if m.Selected() == nil {
			t.Fatalf("%d downs: nothing selected", tt.downs)
		}
		if *m.Selected() != tt.expected {
			t.Errorf("%d downs: selected %q, expected %q", tt.downs, *m.Selected(), tt.expected)
		}
	}
}

func TestDifficultyOptionsFollowPresets(t *testing.T) {
	presets := config.Presets()
	if len(difficultyOptions) != len(presets)+1 {
		t.Fatalf("%d options for %d presets", len(difficultyOptions), len(presets))
	}
	if difficultyOptions[0].preset != "" {
		t.Errorf("first option = %q, expected the config file", difficultyOptions[0].preset)
	}
	for i, p := range presets {
		opt := difficultyOptions[i+1]
		if opt.preset != p || opt.label == "" || opt.hint == "" {
			t.Errorf("option %d = %+v, expected preset %q with label and hint", i+1, opt, p)
		}
	}
	if difficultyOptions[2].label != "Normal" {
		t.Errorf("label = %q, expected Normal", difficultyOptions[2].label)
	}
}

func TestDifficultySelectorBack(t *testing.T) {
	m := NewDifficultyModel("Stub", 80, 24)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(DifficultyModel)

	if !m.WantsBack() || m.Selected() != nil {
		t.Error("Esc should back out without a selection")
	}
	if !strings.Contains(NewDifficultyModel("Stub", 80, 24).View(), "STUB") {
		t.Error("View should show the game title")
	}
}

func TestScoreboardSwitchesGames(t *testing.T) {
	store := testStore(t)
	for _, score := range []int{5, 9} {
		if _, err := store.SaveResult(storage.Result{GameID: "tui_stub", Player: "bob", Score: score, Lines: score}); err != nil {
			t.Fatalf("SaveResult: %v", err)
		}
	}

	m := NewScoreboardModel(store, 100, 30)
	for i := 0; i < len(m.games) && m.games[m.gameCursor].ID != "tui_stub"; i++ {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = next.(ScoreboardModel)
	}
	if m.games[m.gameCursor].ID != "tui_stub" {
		t.Fatal("could not reach the stub game")
	}

	if len(m.scores) != 2 || m.scores[0].Score != 9 {
		t.Errorf("scores = %+v, expected best first", m.scores)
	}
	if m.stats == nil || m.stats.GamesCount != 2 {
		t.Errorf("stats = %+v", m.stats)
	}
	if !strings.Contains(m.View(), "bob") {
		t.Error("View should list the player")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() || !isQuit(cmd) {
		t.Error("Esc should go back")
	}
}

func TestSessionFlow(t *testing.T) {
	cfg := core.DefaultConfig()
	s := NewSessionModel(nil, cfg, "carol")

	send := func(msg tea.Msg) tea.Cmd {
		t.Helper()
		next, cmd := s.Update(msg)
		s = next.(SessionModel)
		return cmd
	}

	for s.menu.items[s.menu.cursor].GameID != "tui_stub" {
		send(tea.KeyMsg{Type: tea.KeyDown})
	}
	send(tea.KeyMsg{Type: tea.KeyEnter})
	if s.stage != stageDifficulty {
		t.Fatalf("stage = %v, expected difficulty", s.stage)
	}

	// Back returns to the menu without quitting the session.
	if cmd := send(tea.KeyMsg{Type: tea.KeyEsc}); isQuit(cmd) {
		t.Fatal("backing out of the selector should not end the session")
	}
	if s.stage != stageMenu {
		t.Fatalf("stage = %v, expected menu", s.stage)
	}

	for s.menu.items[s.menu.cursor].GameID != "tui_stub" {
		send(tea.KeyMsg{Type: tea.KeyDown})
	}
	send(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd := send(tea.KeyMsg{Type: tea.KeyEnter}); isQuit(cmd) {
		t.Fatal("starting a game should not end the session")
	}
	if s.stage != stageGame {
		t.Fatalf("stage = %v, expected game", s.stage)
	}
	if s.gameModel.player != "carol" {
		t.Errorf("player = %q", s.gameModel.player)
	}
	if !strings.Contains(s.View(), "STUB") {
		t.Error("session should render the game")
	}

	// Pause, then back to the menu.
	send(tea.KeyMsg{Type: tea.KeyEsc})
	send(TickMsg{Gen: s.gameModel.tickGen})
	send(tea.KeyMsg{Type: tea.KeyEsc})
	if s.stage != stageMenu {
		t.Fatalf("stage = %v, expected menu after leaving the game", s.stage)
	}

	send(tea.KeyMsg{Type: tea.KeyTab})
	if s.stage != stageScoreboard {
		t.Fatalf("stage = %v, expected scoreboard", s.stage)
	}

	if cmd := send(runeKey("q")); !isQuit(cmd) {
		t.Error("q should end the session")
	}
	if s.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestSessionSkipsSelectorWithPreset(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Difficulty = string(config.DifficultyHard)
	s := NewSessionModel(nil, cfg, "dave")

	for s.menu.items[s.menu.cursor].GameID != "tui_stub" {
		next, _ := s.Update(tea.KeyMsg{Type: tea.KeyDown})
		s = next.(SessionModel)
	}
	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)

	if s.stage != stageGame {
		t.Fatalf("stage = %v, expected game", s.stage)
	}
	if s.gameModel.config.Difficulty != "hard" {
		t.Errorf("difficulty = %q", s.gameModel.config.Difficulty)
	}
}
