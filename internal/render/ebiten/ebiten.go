package ebiten

import (
	"errors"
	"fmt"
	"image/color"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chosenoffset.com/windowdemos/internal/render"
)

// graphicsLibraries maps driver names to the libraries ebiten can run on.
// The empty name lets ebiten choose.
var graphicsLibraries = map[string]ebiten.GraphicsLibrary{
	"":        ebiten.GraphicsLibraryAuto,
	"auto":    ebiten.GraphicsLibraryAuto,
	"opengl":  ebiten.GraphicsLibraryOpenGL,
	"directx": ebiten.GraphicsLibraryDirectX,
	"metal":   ebiten.GraphicsLibraryMetal,
}

// EbitenEngine implements the Engine interface using Ebiten.
type EbitenEngine struct {
	window  render.WindowOptions
	library ebiten.GraphicsLibrary
}

// NewEngine creates a new Ebiten-based game engine.
func NewEngine() render.Engine {
	return &EbitenEngine{library: ebiten.GraphicsLibraryAuto}
}

// SetWindowOptions records the window settings applied by RunGame.
func (e *EbitenEngine) SetWindowOptions(opts render.WindowOptions) {
	e.window = opts
}

// SetRenderDriver selects the graphics library by name.
func (e *EbitenEngine) SetRenderDriver(name string) error {
	lib, ok := graphicsLibraries[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("unsupported graphics library %q", name)
	}
	e.library = lib
	return nil
}

// RenderDrivers returns the accepted driver names, sorted.
func (e *EbitenEngine) RenderDrivers() []string {
	names := slices.Sorted(maps.Keys(graphicsLibraries))
	return slices.DeleteFunc(names, func(n string) bool { return n == "" })
}

// SetVsyncEnabled enables or disables vsync.
func (e *EbitenEngine) SetVsyncEnabled(enabled bool) {
	ebiten.SetVsyncEnabled(enabled)
}

// RunGame opens the window and runs the game loop with the provided game.
func (e *EbitenEngine) RunGame(game render.Game) error {
	ebiten.SetWindowSize(e.window.Width, e.window.Height)
	ebiten.SetWindowTitle(e.window.Title)
	ebiten.SetWindowFloating(e.window.AlwaysOnTop)
	if e.window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}

	// A static frame stays on screen only if ebiten stops clearing it.
	ebiten.SetScreenClearedEveryFrame(game.Animated())

	adapter := newGameAdapter(game, e.window.Width, e.window.Height)
	return ebiten.RunGameWithOptions(adapter, &ebiten.RunGameOptions{
		GraphicsLibrary: e.library,
	})
}

// gameAdapter adapts a render.Game to ebiten.Game interface.
type gameAdapter struct {
	game          render.Game
	width, height int
	keys          func() render.KeyboardState
	now           func() time.Time
	last          time.Time
	drawn         bool
}

func newGameAdapter(game render.Game, width, height int) *gameAdapter {
	return &gameAdapter{
		game:   game,
		width:  width,
		height: height,
		keys:   snapshotKeyboard,
		now:    time.Now,
	}
}

// Update implements ebiten.Game. The first tick reports a zero delta.
func (a *gameAdapter) Update() error {
	now := a.now()
	dt := 0.0
	if !a.last.IsZero() {
		dt = now.Sub(a.last).Seconds()
	}
	a.last = now

	if err := a.game.Update(dt, a.keys()); err != nil {
		if errors.Is(err, render.ErrTerminated) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

// Draw implements ebiten.Game. Static games are drawn once.
func (a *gameAdapter) Draw(screen *ebiten.Image) {
	if a.drawn && !a.game.Animated() {
		return
	}
	a.game.Draw(newCanvas(screen))
	a.drawn = true
}

// Layout implements ebiten.Game. The logical screen keeps the requested size
// and ebiten scales it to the window.
func (a *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

// canvas implements render.Canvas on an ebiten image.
type canvas struct {
	dst *ebiten.Image
	clr color.Color
}

func newCanvas(dst *ebiten.Image) *canvas {
	return &canvas{dst: dst, clr: color.Black}
}

// SetDrawColor sets the color used by Clear and FillRect.
func (c *canvas) SetDrawColor(clr color.Color) {
	c.clr = clr
}

// Clear fills the entire image with the draw color.
func (c *canvas) Clear() {
	c.dst.Fill(c.clr)
}

// FillRect draws a filled rectangle in the draw color.
func (c *canvas) FillRect(r render.Rect) {
	vector.DrawFilledRect(c.dst, r.X, r.Y, r.W, r.H, c.clr, false)
}

// snapshotKeyboard records which known keys are held right now.
func snapshotKeyboard() render.KeyboardState {
	keys := render.KeySet{}
	for _, sc := range render.Scancodes {
		if key, ok := keyToEbitenKey(sc); ok && ebiten.IsKeyPressed(key) {
			keys[sc] = true
		}
	}
	return keys
}

// keyToEbitenKey converts a render.Scancode to an ebiten.Key.
func keyToEbitenKey(key render.Scancode) (ebiten.Key, bool) {
	switch key {
	case render.ScancodeW:
		return ebiten.KeyW, true
	case render.ScancodeA:
		return ebiten.KeyA, true
	case render.ScancodeS:
		return ebiten.KeyS, true
	case render.ScancodeD:
		return ebiten.KeyD, true
	case render.ScancodeUp:
		return ebiten.KeyArrowUp, true
	case render.ScancodeDown:
		return ebiten.KeyArrowDown, true
	case render.ScancodeLeft:
		return ebiten.KeyArrowLeft, true
	case render.ScancodeRight:
		return ebiten.KeyArrowRight, true
	case render.ScancodeEscape:
		return ebiten.KeyEscape, true
	default:
		return 0, false
	}
}
