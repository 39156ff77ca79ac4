package cli

import (
	"chosenoffset.com/windowdemos/internal/app"
	"chosenoffset.com/windowdemos/internal/config"
	"chosenoffset.com/windowdemos/internal/demo"
	"chosenoffset.com/windowdemos/internal/render"
)

// ColoredWindow opens a window cleared to a single color and waits for quit.
var ColoredWindow = Program{
	Name:  "coloredwindow",
	Short: "Open a window filled with a solid color",
	Long: `Open a window filled with a solid color and keep it on screen until it
is closed.

Settings come from the colored_window section of the config file.`,
	Build: func(cfg *config.Config) (render.Game, app.Options) {
		c := cfg.ColoredWindow
		return demo.NewColoredWindow(c.ClearColor), options(c.Window, c.Renderer)
	},
}

// MovingRect moves a square around the window with the arrow keys or WASD.
var MovingRect = Program{
	Name:  "movingrect",
	Short: "Move a square with the arrow keys or WASD",
	Long: `Move a square around the window with the arrow keys or WASD.
Diagonal movement is as fast as straight movement and the square never
leaves the window.

Settings come from the moving_rectangle section of the config file.`,
	Build: func(cfg *config.Config) (render.Game, app.Options) {
		c := cfg.MovingRect
		game := demo.NewMovingRect(c.Movement(), c.Square.Size, c.Background, c.Square.Color)
		return game, options(c.Window, c.Renderer)
	},
}

func options(w config.WindowConfig, r config.RendererConfig) app.Options {
	return app.Options{
		Window:  w.Options(),
		Drivers: r.Drivers,
		VSync:   r.VSync,
	}
}
