package game

import (
	"context"
	"sync"
	"time"

	"github.com/golang/glog"
)

// Runner drives an Engine from a timer on its own goroutine. The timer is
// re-armed with Engine.Interval after every tick. A finished game pauses the
// runner; Resume starts the next game.
type Runner struct {
	engine *Engine
	onTick func(TickResult)

	wake   chan struct{}
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mutex   sync.RWMutex
	running bool
	paused  bool
}

// NewRunner creates a runner. onTick, if non-nil, is called after every tick
// on the runner goroutine.
func NewRunner(engine *Engine, onTick func(TickResult)) *Runner {
	return &Runner{
		engine: engine,
		onTick: onTick,
		wake:   make(chan struct{}, 1),
	}
}

// Start launches the tick loop. It stops when ctx is done or Stop is called.
func (r *Runner) Start(ctx context.Context) {
	r.mutex.Lock()
	if r.running {
		r.mutex.Unlock()
		return
	}
	r.running = true
	ctx, r.cancel = context.WithCancel(ctx)
	r.mutex.Unlock()

	r.wg.Add(1)
	go r.loop(ctx)
}

// Stop ends the tick loop and waits for it to exit.
func (r *Runner) Stop() {
	r.mutex.Lock()
	if !r.running {
		r.mutex.Unlock()
		return
	}
	r.running = false
	r.cancel()
	r.mutex.Unlock()

	r.wg.Wait()
}

func (r *Runner) Pause() {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.paused = true
}

// Resume restarts ticking. A finished game is reset first.
func (r *Runner) Resume() {
	if r.engine.State() == GameOver {
		r.engine.Reset()
	}

	r.mutex.Lock()
	r.paused = false
	r.mutex.Unlock()

	select {
	case r.wake <- struct{}{}:
	default:
	}
}

func (r *Runner) Paused() bool {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return r.paused
}

func (r *Runner) loop(ctx context.Context) {
	defer r.wg.Done()

	timer := time.NewTimer(r.engine.Interval())
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-r.wake:
			timer.Reset(r.engine.Interval())
		case <-timer.C:
			if r.Paused() {
				continue
			}
			res := r.engine.Tick()
			if res.GameOver {
				glog.V(1).Infof("runner paused after game over")
				r.Pause()
			}
			if r.onTick != nil {
				r.onTick(res)
			}
			if !r.Paused() {
				timer.Reset(r.engine.Interval())
			}
		}
	}
}
