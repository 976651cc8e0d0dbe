package game

import (
	"fmt"
	"math"
	"sync"
	"time"

	"gridsnake/game/entity"
	"gridsnake/game/manager"
	"gridsnake/game/types"

	"github.com/golang/glog"
	"github.com/google/uuid"
)

// State is the engine state machine position.
type State int

const (
	Running State = iota
	GameOver
)

func (s State) String() string {
	if s == GameOver {
		return "GameOver"
	}
	return "Running"
}

// Cause tells why a game ended.
type Cause int

const (
	CauseNone      Cause = iota
	CauseSelf            // Head ran into the body
	CauseWall            // Head left a walled board
	CauseBoardFull       // No room left for food, the game is won
)

func (c Cause) String() string {
	switch c {
	case CauseSelf:
		return "self collision"
	case CauseWall:
		return "wall collision"
	case CauseBoardFull:
		return "board full"
	default:
		return "none"
	}
}

// GameOverEvent is delivered to OnGameOver handlers when a game ends.
type GameOverEvent struct {
	SessionID string
	Score     int
	Length    int
	Ticks     int
	Cause     Cause
}

func (e GameOverEvent) Won() bool { return e.Cause == CauseBoardFull }

func (e GameOverEvent) String() string {
	return fmt.Sprintf("game %s over (%s): score %d, length %d, %d ticks", e.SessionID, e.Cause, e.Score, e.Length, e.Ticks)
}

// TickResult describes what a single Tick did.
type TickResult struct {
	Moved           bool
	Ate             bool
	GrowthSkipped   bool
	GameOver        bool
	IntervalChanged bool
	Interval        time.Duration // Interval to wait before the next tick
}

// Engine is the simulation of one game session. Ticks and input are
// serialized through one mutex; the engine never blocks otherwise.
type Engine struct {
	mu sync.Mutex

	cfg       Config
	grid      types.Grid
	snake     *entity.Snake
	occupancy *manager.OccupancySet
	placer    *manager.FoodPlacer
	scores    *manager.ScoreManager

	food      types.Cell
	direction types.Direction
	lastMoved types.Direction
	state     State
	cause     Cause
	ticks     int
	sessionID string

	handlers []func(GameOverEvent)
}

// New builds an engine in the Running state.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid, err := types.NewGrid(cfg.Size)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	e := &Engine{
		cfg:    cfg,
		grid:   grid,
		placer: manager.NewFoodPlacer(seed),
		scores: manager.NewScoreManager(),
	}
	e.reset()
	return e, nil
}

// StartPosition is where every game on g begins.
func StartPosition(g types.Grid) types.Coordinate {
	n := int(math.Round(float64(g.Size()) / 3))
	return types.Coordinate{Row: n, Col: n}
}

// initialFood puts the first food StartFoodOffset cells after the start,
// wrapped into range on boards too small for that.
func initialFood(g types.Grid, start types.Cell) types.Cell {
	maxCell := g.MaxCell()
	if maxCell == 1 {
		return types.NoCell
	}
	food := start + types.StartFoodOffset
	if food > maxCell {
		food = (food-1)%maxCell + 1
	}
	if food == start {
		food = food%maxCell + 1
	}
	return food
}

func (e *Engine) reset() {
	start := StartPosition(e.grid)
	cell := e.grid.CellAt(start)

	e.snake = entity.NewSnake(start, cell)
	e.occupancy = manager.NewOccupancySet(cell)
	e.food = initialFood(e.grid, cell)
	e.direction = types.RIGHT
	e.lastMoved = types.RIGHT
	e.scores.Reset()
	e.state = Running
	e.cause = CauseNone
	e.ticks = 0
	e.sessionID = uuid.New().String()
}

// Reset starts a new game on the same grid.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.reset()
	glog.V(1).Infof("game %s started on %dx%d board", e.sessionID, e.grid.Size(), e.grid.Size())
}

// OnGameOver registers a handler for the end of each game. Handlers run on
// the goroutine that called Tick, after the engine lock is released.
func (e *Engine) OnGameOver(h func(GameOverEvent)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.handlers = append(e.handlers, h)
}

// SetDirection applies player input. Invalid directions, input after game
// over, and reversals of a snake longer than one segment are ignored.
// With Config.Strict the reversal check also covers the last completed move.
// It reports whether the direction changed.
func (e *Engine) SetDirection(d types.Direction) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != Running || !d.Valid() {
		return false
	}
	if e.snake.Len() > 1 {
		if d == e.direction.Opposite() || (e.cfg.Strict && d == e.lastMoved.Opposite()) {
			return false
		}
	}
	if d == e.direction {
		return false
	}
	e.direction = d
	glog.V(2).Infof("direction %v", d)
	return true
}

// Tick advances the game by one step. It is a no-op after game over.
func (e *Engine) Tick() TickResult {
	e.mu.Lock()
	res, ev := e.tick()
	var handlers []func(GameOverEvent)
	if ev != nil {
		handlers = append(handlers, e.handlers...)
	}
	e.mu.Unlock()

	for _, h := range handlers {
		h(*ev)
	}
	return res
}

func (e *Engine) tick() (TickResult, *GameOverEvent) {
	if e.state != Running {
		return TickResult{Interval: e.interval()}, nil
	}
	e.ticks++

	head := e.snake.Head()
	var next types.Coordinate
	if e.cfg.Walls {
		var ok bool
		if next, ok = e.grid.StepBounded(head.Coord, e.direction); !ok {
			return e.gameOver(CauseWall, TickResult{})
		}
	} else {
		next = e.grid.Step(head.Coord, e.direction)
	}

	nextCell := e.grid.CellAt(next)
	if e.occupancy.Contains(nextCell) {
		return e.gameOver(CauseSelf, TickResult{})
	}

	removed, added := e.snake.Advance(next, nextCell)
	e.occupancy.Remove(removed)
	e.occupancy.Add(added)
	e.lastMoved = e.direction

	res := TickResult{Moved: true}
	if nextCell != e.food {
		res.Interval = e.interval()
		return res, nil
	}

	res.Ate = true
	res.GrowthSkipped = !e.grow()
	res.IntervalChanged = e.scores.Add()
	glog.V(2).Infof("ate food at %d, score %d", nextCell, e.scores.Score())

	food, err := e.placer.Place(e.occupancy, e.food, e.grid.MaxCell())
	if err != nil {
		e.food = types.NoCell
		glog.Warningf("game %s: %v", e.sessionID, err)
		return e.gameOver(CauseBoardFull, res)
	}
	e.food = food
	glog.V(2).Infof("new food at %d", food)

	res.Interval = e.interval()
	return res, nil
}

// grow extends the tail by one segment. Growth is skipped when the target
// is off a walled board or already covered by the body.
func (e *Engine) grow() bool {
	coord, ok := e.snake.GrowthTarget(e.grid, e.direction, e.cfg.Walls)
	if !ok {
		return false
	}
	cell := e.grid.CellAt(coord)
	if e.occupancy.Contains(cell) {
		return false
	}
	e.snake.Grow(coord, cell)
	e.occupancy.Add(cell)
	return true
}

func (e *Engine) gameOver(cause Cause, res TickResult) (TickResult, *GameOverEvent) {
	e.state = GameOver
	e.cause = cause
	e.scores.Record()

	ev := &GameOverEvent{
		SessionID: e.sessionID,
		Score:     e.scores.Score(),
		Length:    e.snake.Len(),
		Ticks:     e.ticks,
		Cause:     cause,
	}
	glog.V(1).Info(ev)

	res.GameOver = true
	res.Interval = e.interval()
	return res, ev
}

func (e *Engine) interval() time.Duration {
	return time.Duration(e.scores.Interval()) * e.cfg.TimeUnit
}

// Interval is the current delay between ticks. Timers must re-read it after
// every tick.
func (e *Engine) Interval() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.interval()
}

// Grid returns the board; it never changes during the engine's lifetime.
func (e *Engine) Grid() types.Grid { return e.grid }

func (e *Engine) Config() Config { return e.cfg }

func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

func (e *Engine) Direction() types.Direction {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.direction
}

func (e *Engine) Score() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.scores.Score()
}

func (e *Engine) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snake.Len()
}

func (e *Engine) SessionID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sessionID
}

// ScoreHistory returns the scores of finished games in this session.
func (e *Engine) ScoreHistory() []int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.scores.ScoreHistory()
}

// Snapshot copies the state a renderer needs.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := Snapshot{
		SessionID: e.sessionID,
		Size:      e.grid.Size(),
		Body:      e.snake.Nodes(),
		Food:      e.food,
		Direction: e.direction,
		Score:     e.scores.Score(),
		HighScore: e.scores.HighScore(),
		Interval:  e.interval(),
		State:     e.state,
		Cause:     e.cause,
		Ticks:     e.ticks,
	}
	if e.food != types.NoCell {
		s.FoodCoord = e.grid.CoordinateOf(e.food)
	}
	return s
}
