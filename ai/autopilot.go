package ai

import (
	"sync"

	"gridsnake/game"
	"gridsnake/game/types"

	"github.com/golang/glog"
)

// Rewards for one transition
const (
	RewardFood    = 1.0
	RewardCloser  = 0.5
	RewardFarther = -0.3
	RewardDeath   = -1.0
)

// Autopilot steers an engine in place of a player and learns as it plays.
// Call Step once before every tick.
type Autopilot struct {
	engine *game.Engine
	agent  *QLearning

	mu         sync.Mutex
	hasLast    bool
	lastState  State
	lastAction Action
	lastDist   int
	lastScore  int
}

func NewAutopilot(engine *game.Engine, seed uint64) *Autopilot {
	a := &Autopilot{
		engine: engine,
		agent:  NewQLearning(seed),
	}
	engine.OnGameOver(a.gameOver)
	return a
}

func (a *Autopilot) Agent() *QLearning { return a.agent }

// Step learns from the previous move, then picks and applies the next
// direction. It returns NONE when the game is over.
func (a *Autopilot) Step() types.Direction {
	snap := a.engine.Snapshot()
	if snap.State != game.Running {
		return types.NONE
	}

	grid := a.engine.Grid()
	walls := a.engine.Config().Walls
	state := Observe(grid, walls, snap)
	dist := foodDistance(grid, walls, snap)

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.hasLast {
		a.agent.Update(a.lastState, a.lastAction, a.reward(snap.Score, dist), state, false)
	}

	action := a.agent.GetAction(state)
	dir := action.Apply(snap.Direction)
	a.engine.SetDirection(dir)

	a.hasLast = true
	a.lastState = state
	a.lastAction = action
	a.lastDist = dist
	a.lastScore = snap.Score
	return dir
}

func (a *Autopilot) reward(score, dist int) float64 {
	switch {
	case score > a.lastScore:
		return RewardFood
	case dist < a.lastDist:
		return RewardCloser
	case dist > a.lastDist:
		return RewardFarther
	}
	return 0
}

func (a *Autopilot) gameOver(ev game.GameOverEvent) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.hasLast {
		reward := RewardDeath
		if ev.Won() {
			reward = RewardFood
		}
		a.agent.Update(a.lastState, a.lastAction, reward, a.lastState, true)
	}
	a.hasLast = false
	a.agent.GamesPlayed++
	glog.V(1).Infof("autopilot finished game %d with score %d, %d states known", a.agent.GamesPlayed, ev.Score, len(a.agent.QTable))
}

// Observe builds the agent state from a snapshot.
func Observe(g types.Grid, walls bool, snap game.Snapshot) State {
	head := snap.Head().Coord
	occupied := snap.Occupied()

	s := State{Heading: snap.Direction}
	for d := types.UP; d <= types.LEFT; d++ {
		next, ok := neighbour(g, walls, head, d)
		s.Dangers[d-types.UP] = !ok || occupied[g.CellAt(next)]
	}
	if snap.HasFood() {
		dr, dc := offset(g, walls, head, snap.FoodCoord)
		s.FoodDir = [2]int{sign(dr), sign(dc)}
	}
	return s
}

func neighbour(g types.Grid, walls bool, c types.Coordinate, d types.Direction) (types.Coordinate, bool) {
	if walls {
		return g.StepBounded(c, d)
	}
	return g.Step(c, d), true
}

// offset returns the shortest (row, col) displacement from a to b, going
// across the edges when the board wraps.
func offset(g types.Grid, walls bool, a, b types.Coordinate) (dr, dc int) {
	dr, dc = b.Row-a.Row, b.Col-a.Col
	if walls {
		return dr, dc
	}
	n := g.Size()
	if abs(dr) > n/2 {
		dr -= sign(dr) * n
	}
	if abs(dc) > n/2 {
		dc -= sign(dc) * n
	}
	return dr, dc
}

// Distance is the Manhattan distance between a and b, wrap-aware unless the
// board has walls.
func Distance(g types.Grid, walls bool, a, b types.Coordinate) int {
	dr, dc := offset(g, walls, a, b)
	return abs(dr) + abs(dc)
}

func foodDistance(g types.Grid, walls bool, snap game.Snapshot) int {
	if !snap.HasFood() {
		return 0
	}
	return Distance(g, walls, snap.Head().Coord, snap.FoodCoord)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	if x > 0 {
		return 1
	} else if x < 0 {
		return -1
	}
	return 0
}
