package term

import (
	"fmt"

	"gridsnake/game"
	"gridsnake/game/types"

	"github.com/gdamore/tcell/v2"
)

// Screen is the part of tcell.Screen the terminal renderer draws on.
type Screen interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	bodyStyle   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	headStyle   = tcell.StyleDefault.Foreground(tcell.ColorLightGreen).Bold(true)
	foodStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	alertStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

var headGlyph = map[types.Direction]rune{
	types.UP:    '^',
	types.RIGHT: '>',
	types.DOWN:  'v',
	types.LEFT:  '<',
}

// Terminal draws snapshots on a character screen. Each cell is two columns
// wide so the board looks square.
type Terminal struct {
	screen Screen
}

func NewTerminal(screen Screen) *Terminal {
	return &Terminal{screen: screen}
}

// Draw renders s. The caller clears and shows the screen.
func (t *Terminal) Draw(s game.Snapshot, autopilot bool) {
	width := s.Size*2 + 2
	height := s.Size + 2

	for x := 0; x < width; x++ {
		t.screen.SetContent(x, 1, '-', nil, borderStyle)
		t.screen.SetContent(x, height, '-', nil, borderStyle)
	}
	for y := 1; y <= height; y++ {
		t.screen.SetContent(0, y, '|', nil, borderStyle)
		t.screen.SetContent(width-1, y, '|', nil, borderStyle)
	}

	if s.HasFood() {
		t.cell(s.FoodCoord, '*', foodStyle)
	}
	for i, n := range s.Body {
		if i == len(s.Body)-1 {
			t.cell(n.Coord, headGlyph[s.Direction], headStyle)
			continue
		}
		t.cell(n.Coord, '#', bodyStyle)
	}

	status := fmt.Sprintf("Score %d  High %d  Speed %dms", s.Score, s.HighScore, s.Interval.Milliseconds())
	if autopilot {
		status += "  [autopilot]"
	}
	t.text(0, 0, status, textStyle)

	if s.State == game.GameOver {
		msg := fmt.Sprintf("Game over: %s. Enter to restart, q to quit", s.Cause)
		if s.Cause == game.CauseBoardFull {
			msg = "Board cleared! Enter to restart, q to quit"
		}
		t.text(0, height+1, msg, alertStyle)
	}
}

func (t *Terminal) cell(c types.Coordinate, r rune, style tcell.Style) {
	x, y := 1+c.Col*2, 2+c.Row
	t.screen.SetContent(x, y, r, nil, style)
	t.screen.SetContent(x+1, y, ' ', nil, style)
}

func (t *Terminal) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// KeyDirection maps a terminal key to a direction. Arrow keys and the
// letters ParseDirection knows are recognised; everything else is NONE.
func KeyDirection(key tcell.Key, r rune) types.Direction {
	switch key {
	case tcell.KeyUp:
		return types.UP
	case tcell.KeyRight:
		return types.RIGHT
	case tcell.KeyDown:
		return types.DOWN
	case tcell.KeyLeft:
		return types.LEFT
	case tcell.KeyRune:
		return types.ParseDirection(string(r))
	}
	return types.NONE
}
