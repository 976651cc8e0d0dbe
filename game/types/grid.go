package types

import "github.com/pkg/errors"

// Grid is an immutable Size×Size board. Cells are numbered row-major from 1.
type Grid struct {
	size int
}

// NewGrid builds a grid with the given side length.
func NewGrid(size int) (Grid, error) {
	if size < 1 {
		return Grid{}, errors.Wrapf(ErrInvalidConfig, "grid size %d, must be at least 1", size)
	}
	return Grid{size: size}, nil
}

// Size returns the side length of the board.
func (g Grid) Size() int { return g.size }

// MaxCell returns the highest cell identifier on the board.
func (g Grid) MaxCell() Cell { return Cell(g.size * g.size) }

// CellAt returns the cell for c. c must be in bounds.
func (g Grid) CellAt(c Coordinate) Cell {
	return Cell(c.Row*g.size + c.Col + 1)
}

// CoordinateOf is the inverse of CellAt.
func (g Grid) CoordinateOf(cell Cell) Coordinate {
	i := int(cell) - 1
	return Coordinate{Row: i / g.size, Col: i % g.size}
}

// Contains reports whether c lies on the board.
func (g Grid) Contains(c Coordinate) bool {
	return c.Row >= 0 && c.Row < g.size && c.Col >= 0 && c.Col < g.size
}

// Step moves one unit in d, wrapping past either edge to the opposite edge.
func (g Grid) Step(c Coordinate, d Direction) Coordinate {
	dr, dc := d.Delta()
	return Coordinate{
		Row: ((c.Row+dr)%g.size + g.size) % g.size,
		Col: ((c.Col+dc)%g.size + g.size) % g.size,
	}
}

// StepBounded moves one unit in d without wrapping. ok is false when the
// result is off the board.
func (g Grid) StepBounded(c Coordinate, d Direction) (next Coordinate, ok bool) {
	dr, dc := d.Delta()
	next = Coordinate{Row: c.Row + dr, Col: c.Col + dc}
	return next, g.Contains(next)
}

// DirectionBetween returns the direction of a single step from a to b,
// wrapping included, or NONE if b is not adjacent to a.
func (g Grid) DirectionBetween(a, b Coordinate) Direction {
	for d := UP; d <= LEFT; d++ {
		if g.Step(a, d) == b {
			return d
		}
	}
	return NONE
}
