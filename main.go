package main

import (
	"flag"
	"time"

	"gridsnake/ai"
	"gridsnake/game"
	"gridsnake/game/types"
	"gridsnake/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/golang/glog"
)

// Checked in order, so the first pressed key wins within a frame.
var directionKeys = []struct {
	key int32
	dir types.Direction
}{
	{rl.KeyUp, types.UP},
	{rl.KeyW, types.UP},
	{rl.KeyRight, types.RIGHT},
	{rl.KeyD, types.RIGHT},
	{rl.KeyDown, types.DOWN},
	{rl.KeyS, types.DOWN},
	{rl.KeyLeft, types.LEFT},
	{rl.KeyA, types.LEFT},
}

func main() {
	cfg := game.DefaultConfig()
	cfg.Bind(flag.CommandLine)
	autoplay := flag.Bool("autoplay", false, "let the Q-learning autopilot steer")
	flag.Parse()
	defer glog.Flush()

	engine, err := game.New(cfg)
	if err != nil {
		glog.Exitf("snake: %v", err)
	}
	engine.OnGameOver(func(ev game.GameOverEvent) {
		glog.Info(ev)
	})

	var pilot *ai.Autopilot
	if *autoplay {
		seed := cfg.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		pilot = ai.NewAutopilot(engine, seed)
	}

	rl.InitWindow(1280, 800, "Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)

	renderer := ui.NewRenderer()
	lastUpdate := time.Now()

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}

		if rl.IsWindowResized() {
			renderer.UpdateDimensions()
		}

		// Input reaches the live engine state between ticks
		if pilot == nil {
			for _, k := range directionKeys {
				if rl.IsKeyPressed(k.key) {
					engine.SetDirection(k.dir)
					break
				}
			}
		}

		if engine.State() == game.GameOver && (pilot != nil || rl.IsKeyPressed(rl.KeyEnter)) {
			engine.Reset()
			lastUpdate = time.Now()
		}

		// The interval is re-read every frame since eating can change it
		if engine.State() == game.Running && time.Since(lastUpdate) >= engine.Interval() {
			if pilot != nil {
				pilot.Step()
			}
			engine.Tick()
			lastUpdate = time.Now()
		}

		renderer.Draw(engine.Snapshot(), engine.ScoreHistory(), pilot != nil)
	}
}
