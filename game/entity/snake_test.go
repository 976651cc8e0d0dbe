package entity

import (
	"testing"

	"gridsnake/game/types"
)

func newGrid(t *testing.T, size int) types.Grid {
	t.Helper()
	g, err := types.NewGrid(size)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func at(g types.Grid, row, col int) (types.Coordinate, types.Cell) {
	c := types.Coordinate{Row: row, Col: col}
	return c, g.CellAt(c)
}

func TestAdvanceKeepsLength(t *testing.T) {
	g := newGrid(t, 5)
	s := NewSnake(at(g, 2, 2))

	next, cell := at(g, 2, 3)
	removed, added := s.Advance(next, cell)

	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
	if removed != g.CellAt(types.Coordinate{Row: 2, Col: 2}) || added != cell {
		t.Fatalf("Advance returned (%d, %d), want (%d, %d)", removed, added, 13, cell)
	}
	if s.HeadCell() != cell || s.TailCell() != cell {
		t.Fatalf("head/tail = %d/%d, want both %d", s.HeadCell(), s.TailCell(), cell)
	}
}

func TestGrowPrependsTail(t *testing.T) {
	g := newGrid(t, 5)
	s := NewSnake(at(g, 2, 2))
	s.Grow(at(g, 2, 1))
	s.Grow(at(g, 2, 0))

	want := []types.Cell{11, 12, 13}
	got := s.Cells()
	if len(got) != len(want) {
		t.Fatalf("Cells() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Cells() = %v, want %v", got, want)
		}
	}
	if s.Tail().Cell != 11 || s.Head().Cell != 13 {
		t.Fatalf("tail/head = %d/%d, want 11/13", s.Tail().Cell, s.Head().Cell)
	}
}

func TestAdvanceReusesFreedSlots(t *testing.T) {
	g := newGrid(t, 10)
	s := NewSnake(at(g, 0, 0))
	s.Grow(at(g, 0, 9))
	s.Grow(at(g, 0, 8))

	c := types.Coordinate{Row: 0, Col: 0}
	for i := 0; i < 50; i++ {
		c = g.Step(c, types.DOWN)
		s.Advance(c, g.CellAt(c))
	}
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	if len(s.nodes) > 4 {
		t.Fatalf("arena grew to %d slots for a 3-segment snake", len(s.nodes))
	}
	if s.Head().Coord != c {
		t.Fatalf("head at %v, want %v", s.Head().Coord, c)
	}
}

func TestTailExitDirection(t *testing.T) {
	g := newGrid(t, 5)
	s := NewSnake(at(g, 2, 4))
	if d := s.TailExitDirection(g, types.DOWN); d != types.DOWN {
		t.Fatalf("single segment direction = %v, want current DOWN", d)
	}

	// Wrapped neighbour: tail at col 4, head at col 0.
	s.Advance(at(g, 2, 0))
	s.Grow(at(g, 2, 4))
	if d := s.TailExitDirection(g, types.UP); d != types.RIGHT {
		t.Fatalf("tail exit direction = %v, want RIGHT", d)
	}
}

func TestGrowthTarget(t *testing.T) {
	g := newGrid(t, 5)
	s := NewSnake(at(g, 2, 0))

	coord, ok := s.GrowthTarget(g, types.RIGHT, false)
	if !ok || coord != (types.Coordinate{Row: 2, Col: 4}) {
		t.Fatalf("wrapped growth target = %v, %v; want (2,4), true", coord, ok)
	}
	if _, ok := s.GrowthTarget(g, types.RIGHT, true); ok {
		t.Fatal("growth target off a walled board reported ok")
	}

	s.Grow(at(g, 3, 0)) // tail below head, exits UP
	coord, ok = s.GrowthTarget(g, types.RIGHT, true)
	if !ok || coord != (types.Coordinate{Row: 4, Col: 0}) {
		t.Fatalf("growth target = %v, %v; want (4,0), true", coord, ok)
	}
}
