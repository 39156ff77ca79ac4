// Package movement turns held direction keys into frame-rate independent
// motion of a rectangle kept inside the screen.
package movement

import (
	"chosenoffset.com/windowdemos/internal/core/geom"
	"chosenoffset.com/windowdemos/internal/render"
)

// normalizeEpsilon is the smallest direction length that gets normalized.
const normalizeEpsilon = 1e-4

// Config holds the values the integrator needs. Speed is in pixels per second.
type Config struct {
	ScreenWidth  float64
	ScreenHeight float64
	Speed        float64
}

// Keys is a snapshot of the held movement directions.
type Keys struct {
	Up, Down, Left, Right bool
}

// KeysFrom folds the arrow keys and WASD into a single direction snapshot.
func KeysFrom(ks render.KeyboardState) Keys {
	return Keys{
		Up:    ks.IsPressed(render.ScancodeUp) || ks.IsPressed(render.ScancodeW),
		Down:  ks.IsPressed(render.ScancodeDown) || ks.IsPressed(render.ScancodeS),
		Left:  ks.IsPressed(render.ScancodeLeft) || ks.IsPressed(render.ScancodeA),
		Right: ks.IsPressed(render.ScancodeRight) || ks.IsPressed(render.ScancodeD),
	}
}

// Direction returns the unit (or zero) direction for the held keys.
//
// Keys are checked up, down, left, right and each one overwrites its axis, so
// down wins over up and right wins over left when both are held.
func Direction(k Keys) geom.Vec {
	var dir geom.Vec
	if k.Up {
		dir.Y = -1
	}
	if k.Down {
		dir.Y = 1
	}
	if k.Left {
		dir.X = -1
	}
	if k.Right {
		dir.X = 1
	}

	if dir.X != 0 && dir.Y != 0 {
		if length := dir.Length(); length > normalizeEpsilon {
			dir = dir.Div(length)
		}
	}
	return dir
}

// Entity is a movable rectangle. Pos is its top-left corner.
type Entity struct {
	Pos      geom.Vec
	Width    float64
	Height   float64
	Velocity geom.Vec
}

// NewCentered returns a width x height entity in the middle of the screen.
func NewCentered(cfg Config, width, height float64) *Entity {
	return &Entity{
		Pos: geom.Vec{
			X: (cfg.ScreenWidth - width) / 2,
			Y: (cfg.ScreenHeight - height) / 2,
		},
		Width:  width,
		Height: height,
	}
}

// Update moves the entity by dt seconds of travel in the direction of the
// held keys and clamps it to the screen. Negative dt is treated as zero.
func (e *Entity) Update(k Keys, dt float64, cfg Config) {
	if dt < 0 {
		dt = 0
	}

	e.Velocity = Direction(k)
	e.Pos = e.Pos.Add(e.Velocity.Scale(cfg.Speed * dt))
	e.clamp(cfg)
}

func (e *Entity) clamp(cfg Config) {
	e.Pos.X = geom.Clamp(e.Pos.X, 0, cfg.ScreenWidth-e.Width)
	e.Pos.Y = geom.Clamp(e.Pos.Y, 0, cfg.ScreenHeight-e.Height)
}

// Rect returns the entity bounds for drawing.
func (e *Entity) Rect() render.Rect {
	return render.Rect{
		X: float32(e.Pos.X),
		Y: float32(e.Pos.Y),
		W: float32(e.Width),
		H: float32(e.Height),
	}
}
