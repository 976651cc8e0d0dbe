package main

import (
	"context"
	"flag"
	"time"

	"gridsnake/ai"
	"gridsnake/game"
	"gridsnake/ui/term"

	"github.com/gdamore/tcell/v2"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

func main() {
	cfg := game.DefaultConfig()
	cfg.Bind(flag.CommandLine)
	autoplay := flag.Bool("autoplay", false, "let the Q-learning autopilot steer")
	flag.Parse()
	defer glog.Flush()

	if err := run(cfg, *autoplay); err != nil {
		glog.Exitf("snake-tui: %v", err)
	}
}

func run(cfg game.Config, autoplay bool) error {
	engine, err := game.New(cfg)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	defer screen.Fini()

	view := term.NewTerminal(screen)

	var pilot *ai.Autopilot
	if autoplay {
		seed := cfg.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		pilot = ai.NewAutopilot(engine, seed)
	}

	draw := func() {
		screen.Clear()
		view.Draw(engine.Snapshot(), pilot != nil)
		screen.Show()
	}

	var runner *game.Runner
	runner = game.NewRunner(engine, func(res game.TickResult) {
		if res.GameOver {
			glog.Info("game over, score ", engine.Score())
		}
		if pilot != nil {
			if res.GameOver {
				runner.Resume()
			}
			pilot.Step()
		}
		draw()
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if pilot != nil {
		pilot.Step()
	}
	draw()
	runner.Start(ctx)
	defer runner.Stop()

	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			screen.Sync()
			draw()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
				return nil
			case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
				return nil
			case ev.Key() == tcell.KeyEnter:
				if engine.State() == game.GameOver {
					runner.Resume()
					draw()
				}
			case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
				if runner.Paused() {
					runner.Resume()
				} else {
					runner.Pause()
				}
			case pilot == nil:
				if engine.SetDirection(term.KeyDirection(ev.Key(), ev.Rune())) {
					draw()
				}
			}
		}
	}
}
