package render

import (
	"errors"
	"image/color"
	"time"
)

// ErrTerminated is returned from Game.Update to end a push-style game loop
// without reporting a failure.
var ErrTerminated = errors.New("render: game terminated")

// Rect is an axis-aligned rectangle in logical screen pixels.
type Rect struct {
	X, Y, W, H float32
}

// Canvas is the set of draw primitives a game needs. A draw color stays in
// effect until the next SetDrawColor call.
type Canvas interface {
	SetDrawColor(clr color.Color)
	Clear()
	FillRect(r Rect)
}

// Renderer is a Canvas bound to a window that can present finished frames.
type Renderer interface {
	Canvas

	// Present shows everything drawn since the previous Present.
	Present()

	// SetVSync requests that Present waits for the display refresh.
	// Backends that cannot honor the request return an error and keep
	// presenting uncapped.
	SetVSync(enabled bool) error

	// Name reports the driver actually in use.
	Name() string

	// Destroy releases the renderer.
	Destroy()
}

// Window is an open native window.
type Window interface {
	Destroy()
}

// WindowOptions describe the window a program asks for.
type WindowOptions struct {
	Title       string
	Width       int
	Height      int
	AlwaysOnTop bool
	Resizable   bool
}

// Event is a single entry drained from the platform event queue.
type Event interface {
	isEvent()
}

// QuitEvent is delivered when the user or the OS asks the program to close.
type QuitEvent struct{}

func (QuitEvent) isEvent() {}

// KeyEvent reports a key transition. Games read held keys through
// KeyboardState instead; KeyEvent exists for logging and diagnostics.
type KeyEvent struct {
	Key  Scancode
	Down bool
}

func (KeyEvent) isEvent() {}

// Platform is a pull-style windowing and rendering subsystem. The caller owns
// the frame loop and must release everything it acquires: Destroy for each
// renderer and window, then Quit after a successful Init.
type Platform interface {
	Init() error
	CreateWindow(opts WindowOptions) (Window, error)

	// CreateRenderer creates a renderer for win using the named driver. An
	// empty name lets the backend pick.
	CreateRenderer(win Window, driver string) (Renderer, error)

	// RenderDrivers lists the driver names this platform knows about.
	RenderDrivers() []string

	// PollEvents drains every pending event without blocking.
	PollEvents() []Event

	// KeyboardState returns a point-in-time snapshot of the keyboard.
	KeyboardState() KeyboardState

	PerformanceCounter() uint64
	PerformanceFrequency() uint64

	// Delay sleeps the calling thread.
	Delay(d time.Duration)

	Quit()
}

// Game represents the game interface that the engine will call.
// This is typically implemented by the scene struct of each program.
type Game interface {
	// Update advances the game by dt seconds using the given keyboard snapshot.
	Update(dt float64, keys KeyboardState) error

	// Draw draws the current frame.
	Draw(c Canvas)

	// Animated reports whether the game changes between frames. A game that
	// is not animated is drawn once and then only kept on screen.
	Animated() bool
}

// Engine represents a push-style game engine that owns the loop and window.
type Engine interface {
	// SetWindowOptions configures the window created by RunGame.
	SetWindowOptions(opts WindowOptions)

	// SetRenderDriver selects the graphics driver RunGame will use.
	SetRenderDriver(name string) error

	// RenderDrivers lists the driver names SetRenderDriver accepts.
	RenderDrivers() []string

	// SetVsyncEnabled requests presentation paced to the display refresh.
	SetVsyncEnabled(enabled bool)

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the window closes or Update
	// returns ErrTerminated.
	RunGame(game Game) error
}
