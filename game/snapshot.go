package game

import (
	"time"

	"gridsnake/game/entity"
	"gridsnake/game/types"
)

// Snapshot is the render view of an engine: a copy, safe to keep across ticks.
type Snapshot struct {
	SessionID string
	Size      int
	Body      []entity.Node // Tail first, head last
	Food      types.Cell    // NoCell when the board has no room for food
	FoodCoord types.Coordinate
	Direction types.Direction
	Score     int
	HighScore int
	Interval  time.Duration
	State     State
	Cause     Cause
	Ticks     int
}

func (s Snapshot) Head() entity.Node { return s.Body[len(s.Body)-1] }

func (s Snapshot) Tail() entity.Node { return s.Body[0] }

func (s Snapshot) HasFood() bool { return s.Food != types.NoCell }

// Occupied returns the body cells as a set.
func (s Snapshot) Occupied() map[types.Cell]bool {
	out := make(map[types.Cell]bool, len(s.Body))
	for _, n := range s.Body {
		out[n.Cell] = true
	}
	return out
}
