package types

import "strings"

// Cell uniquely identifies one grid position. Valid cells are in [1, Size*Size].
type Cell int

// NoCell is the zero Cell; it never addresses a grid position.
const NoCell Cell = 0

// Coordinate is a (row, col) grid position, each in [0, Size-1].
type Coordinate struct {
	Row, Col int
}

// Direction represents a cardinal movement direction
type Direction int

const (
	NONE  Direction = iota // 0
	UP                     // 1
	RIGHT                  // 2
	DOWN                   // 3
	LEFT                   // 4
)

// Game constants
const (
	BaseInterval    = 150 // Initial tick interval, in time units
	StartFoodOffset = 5   // Initial food cell is this many cells after the start cell
)

// Valid reports whether d is one of the four movement directions.
func (d Direction) Valid() bool {
	return d >= UP && d <= LEFT
}

// Delta returns the (row, col) offset of one step in direction d.
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case UP:
		return -1, 0
	case RIGHT:
		return 0, 1
	case DOWN:
		return 1, 0
	case LEFT:
		return 0, -1
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction. NONE has no opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case UP:
		return DOWN
	case RIGHT:
		return LEFT
	case DOWN:
		return UP
	case LEFT:
		return RIGHT
	default:
		return NONE
	}
}

// TurnLeft returns the direction after a 90° counter-clockwise turn.
func (d Direction) TurnLeft() Direction {
	switch d {
	case UP:
		return LEFT
	case RIGHT:
		return UP
	case DOWN:
		return RIGHT
	case LEFT:
		return DOWN
	default:
		return d
	}
}

// TurnRight returns the direction after a 90° clockwise turn.
func (d Direction) TurnRight() Direction {
	switch d {
	case UP:
		return RIGHT
	case RIGHT:
		return DOWN
	case DOWN:
		return LEFT
	case LEFT:
		return UP
	default:
		return d
	}
}

func (d Direction) String() string {
	switch d {
	case UP:
		return "UP"
	case RIGHT:
		return "RIGHT"
	case DOWN:
		return "DOWN"
	case LEFT:
		return "LEFT"
	default:
		return "NONE"
	}
}

// ParseDirection translates a raw key identifier into a Direction.
// Unknown keys map to NONE.
func ParseDirection(key string) Direction {
	switch key {
	case "ArrowUp":
		return UP
	case "ArrowRight":
		return RIGHT
	case "ArrowDown":
		return DOWN
	case "ArrowLeft":
		return LEFT
	}

	switch strings.ToLower(key) {
	case "up", "w", "k":
		return UP
	case "right", "d", "l":
		return RIGHT
	case "down", "s", "j":
		return DOWN
	case "left", "a", "h":
		return LEFT
	}
	return NONE
}
