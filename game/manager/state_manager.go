package manager

import "gridsnake/game/types"

// SpeedStep sets the tick interval once the score exceeds Above.
type SpeedStep struct {
	Above    int
	Interval int
}

// SpeedTable is checked in order and the first step whose threshold the
// score exceeds wins. Duplicate thresholds are part of the observable pacing.
var SpeedTable = []SpeedStep{
	{Above: 5, Interval: 130},
	{Above: 8, Interval: 100},
	{Above: 12, Interval: 100},
	{Above: 16, Interval: 90},
	{Above: 18, Interval: 90},
	{Above: 22, Interval: 70},
	{Above: 26, Interval: 70},
	{Above: 30, Interval: 50},
}

// NextInterval returns the interval for score, or current when the score is
// below every threshold.
func NextInterval(score, current int) int {
	for _, step := range SpeedTable {
		if score > step.Above {
			return step.Interval
		}
	}
	return current
}

// ScoreManager tracks the score and tick interval of the running game, plus
// the session high score and the scores of finished games.
type ScoreManager struct {
	score        int
	interval     int
	highScore    int
	scoreHistory []int
}

func NewScoreManager() *ScoreManager {
	return &ScoreManager{
		interval:     types.BaseInterval,
		scoreHistory: make([]int, 0),
	}
}

// Add counts one consumed food and recomputes the interval. It reports
// whether the interval changed.
func (sm *ScoreManager) Add() bool {
	sm.score++
	if sm.score > sm.highScore {
		sm.highScore = sm.score
	}
	next := NextInterval(sm.score, sm.interval)
	changed := next != sm.interval
	sm.interval = next
	return changed
}

// Record appends the current score to the history of finished games.
func (sm *ScoreManager) Record() {
	sm.scoreHistory = append(sm.scoreHistory, sm.score)
}

// Reset starts a new game. High score and history are kept.
func (sm *ScoreManager) Reset() {
	sm.score = 0
	sm.interval = types.BaseInterval
}

func (sm *ScoreManager) Score() int { return sm.score }

func (sm *ScoreManager) Interval() int { return sm.interval }

func (sm *ScoreManager) HighScore() int { return sm.highScore }

func (sm *ScoreManager) ScoreHistory() []int {
	out := make([]int, len(sm.scoreHistory))
	copy(out, sm.scoreHistory)
	return out
}
