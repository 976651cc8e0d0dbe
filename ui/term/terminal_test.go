package term

import (
	"testing"

	"gridsnake/game"
	"gridsnake/game/types"

	"github.com/gdamore/tcell/v2"
)

type mockScreen struct {
	w, h  int
	cells map[[2]int]rune
}

func newMockScreen(w, h int) *mockScreen {
	return &mockScreen{w: w, h: h, cells: make(map[[2]int]rune)}
}

func (m *mockScreen) SetContent(x, y int, primary rune, combining []rune, style tcell.Style) {
	m.cells[[2]int{x, y}] = primary
}

func (m *mockScreen) Size() (int, int) { return m.w, m.h }

func (m *mockScreen) at(x, y int) rune { return m.cells[[2]int{x, y}] }

func TestTerminalDrawsBodyAndFood(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.Size = 5
	cfg.Seed = 1
	e, err := game.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	e.Tick()
	s := e.Snapshot()

	screen := newMockScreen(40, 10)
	NewTerminal(screen).Draw(s, false)

	head := s.Head().Coord
	if r := screen.at(1+head.Col*2, 2+head.Row); r != '>' {
		t.Errorf("head glyph = %q, want '>'", r)
	}
	if r := screen.at(1+s.FoodCoord.Col*2, 2+s.FoodCoord.Row); r != '*' {
		t.Errorf("food glyph = %q, want '*'", r)
	}
	if r := screen.at(0, 0); r != 'S' {
		t.Errorf("status line starts with %q, want 'S'", r)
	}
}

func TestTerminalShowsGameOver(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.Size = 3
	cfg.Walls = true
	cfg.Seed = 1
	e, err := game.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	for e.State() == game.Running {
		e.Tick()
	}

	screen := newMockScreen(40, 10)
	NewTerminal(screen).Draw(e.Snapshot(), true)
	if r := screen.at(0, 3+3); r != 'G' {
		t.Errorf("game over line starts with %q, want 'G'", r)
	}
}

func TestKeyDirection(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want types.Direction
	}{
		{tcell.KeyUp, 0, types.UP},
		{tcell.KeyRight, 0, types.RIGHT},
		{tcell.KeyDown, 0, types.DOWN},
		{tcell.KeyLeft, 0, types.LEFT},
		{tcell.KeyRune, 'h', types.LEFT},
		{tcell.KeyRune, 'W', types.UP},
		{tcell.KeyRune, 'x', types.NONE},
		{tcell.KeyEnter, 0, types.NONE},
	}
	for _, tt := range tests {
		if got := KeyDirection(tt.key, tt.r); got != tt.want {
			t.Errorf("KeyDirection(%v, %q) = %v, want %v", tt.key, tt.r, got, tt.want)
		}
	}
}
