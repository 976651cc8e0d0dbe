package ai

import (
	"math"

	"gridsnake/game/types"

	"golang.org/x/exp/rand"
)

// State is what the agent sees of the board around the head.
type State struct {
	FoodDir [2]int  // Sign of the (row, col) offset from head to food
	Dangers [4]bool // Blocked neighbour cells: up, right, down, left
	Heading types.Direction
}

// Action is a turn relative to the current heading. The agent never
// reverses, so a move is always accepted by the engine.
type Action int

const (
	TurnLeft Action = iota
	Straight
	TurnRight
	numActions
)

// Apply converts a relative action into an absolute direction.
func (a Action) Apply(heading types.Direction) types.Direction {
	switch a {
	case TurnLeft:
		return heading.TurnLeft()
	case TurnRight:
		return heading.TurnRight()
	default:
		return heading
	}
}

// QTable maps states to action values. It lives only in memory.
type QTable map[State]*[numActions]float64

type QLearning struct {
	QTable       QTable
	LearningRate float64
	Discount     float64
	Epsilon      float64
	TotalReward  float64
	GamesPlayed  int
	rng          *rand.Rand
}

func NewQLearning(seed uint64) *QLearning {
	return &QLearning{
		QTable:       make(QTable),
		LearningRate: 0.1,
		Discount:     0.9,
		Epsilon:      0.1,
		rng:          rand.New(rand.NewSource(seed)),
	}
}

func (q *QLearning) values(s State) *[numActions]float64 {
	v, ok := q.QTable[s]
	if !ok {
		v = new([numActions]float64)
		q.QTable[s] = v
	}
	return v
}

// GetAction picks an action epsilon-greedily.
func (q *QLearning) GetAction(s State) Action {
	// Exploration: random action
	if q.rng.Float64() < q.Epsilon {
		return Action(q.rng.Intn(int(numActions)))
	}
	return q.BestAction(s)
}

// BestAction returns the highest valued action, preferring straight on ties.
func (q *QLearning) BestAction(s State) Action {
	v := q.values(s)
	best := Straight
	for a := TurnLeft; a < numActions; a++ {
		if v[a] > v[best] {
			best = a
		}
	}
	return best
}

// Update applies the Q-learning rule for one transition. A terminal
// transition has no future value.
func (q *QLearning) Update(s State, a Action, reward float64, next State, done bool) {
	maxNext := 0.0
	if !done {
		maxNext = math.Inf(-1)
		for _, v := range q.values(next) {
			maxNext = math.Max(maxNext, v)
		}
	}

	v := q.values(s)
	v[a] += q.LearningRate * (reward + q.Discount*maxNext - v[a])
	q.TotalReward += reward
}
