package entity

import "gridsnake/game/types"

// Node is one body segment.
type Node struct {
	Coord types.Coordinate
	Cell  types.Cell
}

type link struct {
	Node
	next int // neighbour toward the head, -1 at the head
}

// Snake is the ordered body from tail to head. Segments live in an arena
// and are linked tail→head, so advancing and growing touch only the ends.
// Slots freed at the tail are reused by the next head.
type Snake struct {
	nodes  []link
	free   []int
	head   int
	tail   int
	length int
}

func NewSnake(start types.Coordinate, cell types.Cell) *Snake {
	s := &Snake{}
	idx := s.alloc(Node{Coord: start, Cell: cell})
	s.head, s.tail, s.length = idx, idx, 1
	return s
}

func (s *Snake) alloc(n Node) int {
	l := link{Node: n, next: -1}
	if k := len(s.free); k > 0 {
		idx := s.free[k-1]
		s.free = s.free[:k-1]
		s.nodes[idx] = l
		return idx
	}
	s.nodes = append(s.nodes, l)
	return len(s.nodes) - 1
}

func (s *Snake) release(idx int) {
	s.nodes[idx] = link{next: -1}
	s.free = append(s.free, idx)
}

// Advance links a new head after the current one and drops the tail.
// The length is unchanged. It returns the cell that left the body and the
// cell that joined it.
func (s *Snake) Advance(coord types.Coordinate, cell types.Cell) (removed, added types.Cell) {
	idx := s.alloc(Node{Coord: coord, Cell: cell})
	s.nodes[s.head].next = idx
	s.head = idx

	old := s.tail
	removed = s.nodes[old].Cell
	s.tail = s.nodes[old].next
	s.release(old)
	return removed, cell
}

// Grow puts a new segment behind the current tail.
func (s *Snake) Grow(coord types.Coordinate, cell types.Cell) {
	idx := s.alloc(Node{Coord: coord, Cell: cell})
	s.nodes[idx].next = s.tail
	s.tail = idx
	s.length++
}

// TailExitDirection returns the direction from the tail to its head-ward
// neighbour. A single-segment snake has no tail direction, so current is
// returned.
func (s *Snake) TailExitDirection(g types.Grid, current types.Direction) types.Direction {
	if s.length == 1 {
		return current
	}
	t := s.nodes[s.tail]
	if d := g.DirectionBetween(t.Coord, s.nodes[t.next].Coord); d != types.NONE {
		return d
	}
	return current
}

// GrowthTarget computes where a new tail segment goes: one step behind the
// tail, against its exit direction. With walls the target may fall off the
// board, in which case ok is false and the snake should not grow.
func (s *Snake) GrowthTarget(g types.Grid, current types.Direction, walls bool) (coord types.Coordinate, ok bool) {
	back := s.TailExitDirection(g, current).Opposite()
	tail := s.nodes[s.tail].Coord
	if walls {
		return g.StepBounded(tail, back)
	}
	return g.Step(tail, back), true
}

func (s *Snake) Head() Node { return s.nodes[s.head].Node }

func (s *Snake) Tail() Node { return s.nodes[s.tail].Node }

func (s *Snake) HeadCell() types.Cell { return s.nodes[s.head].Cell }

func (s *Snake) TailCell() types.Cell { return s.nodes[s.tail].Cell }

func (s *Snake) Len() int { return s.length }

// Nodes returns the body from tail (first) to head (last).
func (s *Snake) Nodes() []Node {
	out := make([]Node, 0, s.length)
	for i := s.tail; i != -1; i = s.nodes[i].next {
		out = append(out, s.nodes[i].Node)
	}
	return out
}

// Cells returns the body cells from tail to head.
func (s *Snake) Cells() []types.Cell {
	out := make([]types.Cell, 0, s.length)
	for i := s.tail; i != -1; i = s.nodes[i].next {
		out = append(out, s.nodes[i].Cell)
	}
	return out
}
