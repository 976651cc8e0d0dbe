package manager

import "gridsnake/game/types"

// OccupancySet mirrors the cells covered by the snake body. The engine keeps
// it in step with every advance and grow.
type OccupancySet struct {
	cells map[types.Cell]struct{}
}

func NewOccupancySet(cells ...types.Cell) *OccupancySet {
	o := &OccupancySet{cells: make(map[types.Cell]struct{}, len(cells))}
	for _, c := range cells {
		o.Add(c)
	}
	return o
}

func (o *OccupancySet) Contains(c types.Cell) bool {
	_, ok := o.cells[c]
	return ok
}

func (o *OccupancySet) Add(c types.Cell) {
	o.cells[c] = struct{}{}
}

func (o *OccupancySet) Remove(c types.Cell) {
	delete(o.cells, c)
}

func (o *OccupancySet) Len() int {
	return len(o.cells)
}

// Equal reports whether the set holds exactly the given cells.
func (o *OccupancySet) Equal(cells []types.Cell) bool {
	if len(cells) != len(o.cells) {
		return false
	}
	for _, c := range cells {
		if !o.Contains(c) {
			return false
		}
	}
	return true
}
