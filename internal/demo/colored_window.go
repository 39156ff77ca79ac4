// Package demo holds the two scenes shown by the demo programs.
package demo

import (
	"image/color"

	"chosenoffset.com/windowdemos/internal/render"
)

// ColoredWindow fills the window with a single color once and keeps it there.
type ColoredWindow struct {
	Clear color.Color
}

// NewColoredWindow creates the static scene.
func NewColoredWindow(clr color.Color) *ColoredWindow {
	return &ColoredWindow{Clear: clr}
}

// Update does nothing; the scene never changes.
func (w *ColoredWindow) Update(float64, render.KeyboardState) error {
	return nil
}

// Draw clears the canvas to the scene color.
func (w *ColoredWindow) Draw(c render.Canvas) {
	c.SetDrawColor(w.Clear)
	c.Clear()
}

// Animated reports false so the scene is drawn a single time.
func (w *ColoredWindow) Animated() bool {
	return false
}
