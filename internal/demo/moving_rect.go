package demo

import (
	"image/color"

	"chosenoffset.com/windowdemos/internal/movement"
	"chosenoffset.com/windowdemos/internal/render"
)

// MovingRect is a square steered by the arrow keys or WASD.
type MovingRect struct {
	Square     *movement.Entity
	Config     movement.Config
	Background color.Color
	Foreground color.Color
}

// NewMovingRect places a size x size square in the middle of the screen.
func NewMovingRect(cfg movement.Config, size float64, background, foreground color.Color) *MovingRect {
	return &MovingRect{
		Square:     movement.NewCentered(cfg, size, size),
		Config:     cfg,
		Background: background,
		Foreground: foreground,
	}
}

// Update advances the square by dt seconds.
func (m *MovingRect) Update(dt float64, keys render.KeyboardState) error {
	m.Square.Update(movement.KeysFrom(keys), dt, m.Config)
	return nil
}

// Draw clears to the background and fills the square.
func (m *MovingRect) Draw(c render.Canvas) {
	c.SetDrawColor(m.Background)
	c.Clear()

	c.SetDrawColor(m.Foreground)
	c.FillRect(m.Square.Rect())
}

// Animated reports true; the square is redrawn every frame.
func (m *MovingRect) Animated() bool {
	return true
}
