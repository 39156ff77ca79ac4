package app

import (
	"context"
	"fmt"

	"chosenoffset.com/windowdemos/internal/render"
)

// RunEngine drives game on a push-style engine. The engine owns the window
// and the loop, so setup is a matter of configuring it before RunGame.
// Cancelling ctx ends the loop at the next update.
func RunEngine(ctx context.Context, e render.Engine, game render.Game, opts Options) error {
	logger := opts.logger()

	e.SetWindowOptions(opts.Window)

	driver, err := SelectEngineDriver(e, opts.Drivers, logger)
	if err != nil {
		return err
	}
	logger.Info("renderer selected", "driver", driver)
	logger.Info("available render drivers", "drivers", e.RenderDrivers())

	e.SetVsyncEnabled(opts.VSync)
	if opts.VSync {
		logger.Info("vsync enabled")
	}

	if err := e.RunGame(&cancellableGame{ctx: ctx, Game: game}); err != nil {
		return fmt.Errorf("%w: %w", ErrInitialization, err)
	}
	return nil
}

// cancellableGame ends an engine loop once its context is done.
type cancellableGame struct {
	ctx context.Context
	render.Game
}

func (g *cancellableGame) Update(dt float64, keys render.KeyboardState) error {
	if g.ctx.Err() != nil {
		return render.ErrTerminated
	}
	return g.Game.Update(dt, keys)
}
