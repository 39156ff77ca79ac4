// Package config provides the settings for both demo programs.
// Values are loaded from YAML so window size, colors and driver choices can be
// changed without rebuilding.
package config

import (
	"fmt"

	"chosenoffset.com/windowdemos/internal/movement"
	"chosenoffset.com/windowdemos/internal/render"
)

// Backends selectable with the backend setting.
const (
	BackendEbiten = "ebiten"
	BackendSDL    = "sdl"
)

// Config holds all settings for both programs
type Config struct {
	// Backend is the windowing library: "ebiten" or "sdl".
	Backend string `yaml:"backend"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	ColoredWindow ColoredWindowConfig `yaml:"colored_window"`
	MovingRect    MovingRectConfig    `yaml:"moving_rectangle"`
}

// WindowConfig describes the native window
type WindowConfig struct {
	Title       string `yaml:"title"`
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	AlwaysOnTop bool   `yaml:"always_on_top"`
	Resizable   bool   `yaml:"resizable"`
}

// RendererConfig lists driver candidates in preference order and whether to
// request vsync
type RendererConfig struct {
	Drivers []string `yaml:"drivers"`
	VSync   bool     `yaml:"vsync"`
}

// ColoredWindowConfig configures the static window program
type ColoredWindowConfig struct {
	Window     WindowConfig   `yaml:"window"`
	Renderer   RendererConfig `yaml:"renderer"`
	ClearColor Color          `yaml:"clear_color"`
}

// MovingRectConfig configures the movement program
type MovingRectConfig struct {
	Window     WindowConfig   `yaml:"window"`
	Renderer   RendererConfig `yaml:"renderer"`
	Background Color          `yaml:"background"`
	Square     SquareConfig   `yaml:"square"`
}

// SquareConfig defines the player square
type SquareConfig struct {
	Size  float64 `yaml:"size"`  // Side length in pixels
	Speed float64 `yaml:"speed"` // Pixels per second
	Color Color   `yaml:"color"`
}

// Options converts the window settings for the render layer.
func (w WindowConfig) Options() render.WindowOptions {
	return render.WindowOptions{
		Title:       w.Title,
		Width:       w.Width,
		Height:      w.Height,
		AlwaysOnTop: w.AlwaysOnTop,
		Resizable:   w.Resizable,
	}
}

// Movement returns the integrator settings for this program.
func (m MovingRectConfig) Movement() movement.Config {
	return movement.Config{
		ScreenWidth:  float64(m.Window.Width),
		ScreenHeight: float64(m.Window.Height),
		Speed:        m.Square.Speed,
	}
}

// Validate reports the first setting that would make a program misbehave.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendEbiten, BackendSDL:
	default:
		return fmt.Errorf("unknown backend %q (want %q or %q)", c.Backend, BackendEbiten, BackendSDL)
	}

	if err := c.ColoredWindow.Window.validate("colored_window"); err != nil {
		return err
	}
	if err := c.MovingRect.Window.validate("moving_rectangle"); err != nil {
		return err
	}

	sq := c.MovingRect.Square
	if sq.Size <= 0 {
		return fmt.Errorf("moving_rectangle.square.size must be positive, got %v", sq.Size)
	}
	if sq.Size > float64(c.MovingRect.Window.Width) || sq.Size > float64(c.MovingRect.Window.Height) {
		return fmt.Errorf("moving_rectangle.square.size %v does not fit a %dx%d window",
			sq.Size, c.MovingRect.Window.Width, c.MovingRect.Window.Height)
	}
	if sq.Speed < 0 {
		return fmt.Errorf("moving_rectangle.square.speed must not be negative, got %v", sq.Speed)
	}
	return nil
}

func (w WindowConfig) validate(section string) error {
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf("%s.window size must be positive, got %dx%d", section, w.Width, w.Height)
	}
	return nil
}
