package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"chosenoffset.com/windowdemos/internal/render"
)

// Run drives game on a pull-style platform until a quit event arrives or ctx
// is cancelled. Everything acquired during setup is released before Run
// returns, including when a later setup step fails.
func Run(ctx context.Context, p render.Platform, game render.Game, opts Options) error {
	logger := opts.logger()

	if err := p.Init(); err != nil {
		return fmt.Errorf("%w: %w", ErrInitialization, err)
	}
	defer p.Quit()

	win, err := p.CreateWindow(opts.Window)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWindowCreation, err)
	}
	defer win.Destroy()

	renderer, err := CreateRenderer(p, win, opts.Drivers, logger)
	if err != nil {
		return err
	}
	defer renderer.Destroy()
	logger.Info("renderer created", "driver", renderer.Name())

	if opts.VSync {
		enableVSync(renderer, logger)
	}
	logger.Info("available render drivers", "drivers", p.RenderDrivers())

	return loop(ctx, p, renderer, game, opts)
}

func enableVSync(r render.Renderer, logger *log.Logger) {
	if err := r.SetVSync(true); err != nil {
		logger.Warn("could not enable vsync, frame rate is uncapped", "error", err)
		return
	}
	logger.Info("vsync enabled")
}

func loop(ctx context.Context, p render.Platform, r render.Renderer, game render.Game, opts Options) error {
	animated := game.Animated()
	if !animated {
		game.Draw(r)
		r.Present()
	}

	clock := newFrameClock(p)
	for {
		if quitRequested(p.PollEvents()) || ctx.Err() != nil {
			return nil
		}

		if !animated {
			p.Delay(opts.idleDelay())
			continue
		}

		dt := clock.Tick()
		if err := game.Update(dt, p.KeyboardState()); err != nil {
			if errors.Is(err, render.ErrTerminated) {
				return nil
			}
			return err
		}
		game.Draw(r)
		r.Present()
	}
}

func quitRequested(events []render.Event) bool {
	for _, ev := range events {
		if _, ok := ev.(render.QuitEvent); ok {
			return true
		}
	}
	return false
}
