// Package sdl implements render.Platform on top of SDL2.
package sdl

import (
	"fmt"
	"image/color"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"chosenoffset.com/windowdemos/internal/render"
)

func init() {
	// SDL video and event calls must stay on the main thread.
	runtime.LockOSThread()
}

var scancodes = map[render.Scancode]sdl.Scancode{
	render.ScancodeW:      sdl.SCANCODE_W,
	render.ScancodeA:      sdl.SCANCODE_A,
	render.ScancodeS:      sdl.SCANCODE_S,
	render.ScancodeD:      sdl.SCANCODE_D,
	render.ScancodeUp:     sdl.SCANCODE_UP,
	render.ScancodeDown:   sdl.SCANCODE_DOWN,
	render.ScancodeLeft:   sdl.SCANCODE_LEFT,
	render.ScancodeRight:  sdl.SCANCODE_RIGHT,
	render.ScancodeEscape: sdl.SCANCODE_ESCAPE,
}

// fromScancode converts an SDL scancode to a render.Scancode.
func fromScancode(sc sdl.Scancode) render.Scancode {
	for key, code := range scancodes {
		if code == sc {
			return key
		}
	}
	return render.ScancodeUnknown
}

// SDLPlatform implements the Platform interface using SDL2.
type SDLPlatform struct{}

// NewPlatform creates a new SDL-based platform.
func NewPlatform() render.Platform {
	return &SDLPlatform{}
}

// Init initializes the video subsystem.
func (p *SDLPlatform) Init() error {
	return sdl.Init(sdl.INIT_VIDEO)
}

// Quit shuts down every initialized subsystem.
func (p *SDLPlatform) Quit() {
	sdl.Quit()
}

// CreateWindow opens a centered window.
func (p *SDLPlatform) CreateWindow(opts render.WindowOptions) (render.Window, error) {
	flags := uint32(sdl.WINDOW_SHOWN)
	if opts.AlwaysOnTop {
		flags |= uint32(sdl.WINDOW_ALWAYS_ON_TOP)
	}
	if opts.Resizable {
		flags |= uint32(sdl.WINDOW_RESIZABLE)
	}

	win, err := sdl.CreateWindow(opts.Title,
		int32(sdl.WINDOWPOS_CENTERED),
		int32(sdl.WINDOWPOS_CENTERED),
		int32(opts.Width), int32(opts.Height), flags)
	if err != nil {
		return nil, err
	}
	return &SDLWindow{win: win}, nil
}

// CreateRenderer creates an accelerated renderer for win. Driver names are
// matched case-insensitively against RenderDrivers.
func (p *SDLPlatform) CreateRenderer(win render.Window, driver string) (render.Renderer, error) {
	sw, ok := win.(*SDLWindow)
	if !ok {
		return nil, fmt.Errorf("window %T was not created by SDL", win)
	}

	index := -1
	if driver != "" {
		index = slices.IndexFunc(p.RenderDrivers(), func(name string) bool {
			return strings.EqualFold(name, driver)
		})
		if index < 0 {
			return nil, fmt.Errorf("render driver %q is not available", driver)
		}
	}

	r, err := sdl.CreateRenderer(sw.win, index, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, err
	}
	if err := r.SetDrawBlendMode(sdl.BLENDMODE_BLEND); err != nil {
		r.Destroy()
		return nil, err
	}

	name := driver
	if info, err := r.GetInfo(); err == nil {
		name = info.Name
	}
	return &SDLRenderer{r: r, name: name}, nil
}

// RenderDrivers lists the render drivers compiled into SDL in index order.
func (p *SDLPlatform) RenderDrivers() []string {
	n, err := sdl.GetNumRenderDrivers()
	if err != nil {
		return nil
	}

	names := make([]string, 0, n)
	for i := 0; i < n; i++ {
		var info sdl.RendererInfo
		if _, err := sdl.GetRenderDriverInfo(i, &info); err != nil {
			continue
		}
		names = append(names, info.Name)
	}
	return names
}

// PollEvents drains the SDL event queue. Key repeats are dropped.
func (p *SDLPlatform) PollEvents() []render.Event {
	var events []render.Event
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch e := ev.(type) {
		case *sdl.QuitEvent:
			events = append(events, render.QuitEvent{})
		case *sdl.KeyboardEvent:
			if e.Repeat != 0 {
				continue
			}
			events = append(events, render.KeyEvent{
				Key:  fromScancode(e.Keysym.Scancode),
				Down: e.State == sdl.PRESSED,
			})
		}
	}
	return events
}

// KeyboardState copies SDL's key array so later events do not change the
// returned snapshot.
func (p *SDLPlatform) KeyboardState() render.KeyboardState {
	return keyboardSnapshot(slices.Clone(sdl.GetKeyboardState()))
}

// PerformanceCounter returns the high resolution counter.
func (p *SDLPlatform) PerformanceCounter() uint64 {
	return sdl.GetPerformanceCounter()
}

// PerformanceFrequency returns counter ticks per second.
func (p *SDLPlatform) PerformanceFrequency() uint64 {
	return sdl.GetPerformanceFrequency()
}

// Delay sleeps for at least d, rounded down to whole milliseconds.
func (p *SDLPlatform) Delay(d time.Duration) {
	sdl.Delay(uint32(d.Milliseconds()))
}

// keyboardSnapshot is SDL's key array indexed by scancode.
type keyboardSnapshot []uint8

// IsPressed returns whether key was held when the snapshot was taken.
func (k keyboardSnapshot) IsPressed(key render.Scancode) bool {
	sc, ok := scancodes[key]
	if !ok || int(sc) >= len(k) {
		return false
	}
	return k[sc] != 0
}

// SDLWindow wraps an sdl.Window.
type SDLWindow struct {
	win *sdl.Window
}

// Destroy closes the window.
func (w *SDLWindow) Destroy() {
	w.win.Destroy()
}

// SDLRenderer wraps an sdl.Renderer to implement render.Renderer.
type SDLRenderer struct {
	r    *sdl.Renderer
	name string
}

// SetDrawColor sets the color used by Clear and FillRect.
func (r *SDLRenderer) SetDrawColor(clr color.Color) {
	c := color.NRGBAModel.Convert(clr).(color.NRGBA)
	r.r.SetDrawColor(c.R, c.G, c.B, c.A)
}

// Clear fills the whole target with the draw color.
func (r *SDLRenderer) Clear() {
	r.r.Clear()
}

// FillRect fills rect with the draw color.
func (r *SDLRenderer) FillRect(rect render.Rect) {
	r.r.FillRectF(&sdl.FRect{X: rect.X, Y: rect.Y, W: rect.W, H: rect.H})
}

// Present shows the frame.
func (r *SDLRenderer) Present() {
	r.r.Present()
}

// SetVSync toggles presentation synced to the display refresh.
func (r *SDLRenderer) SetVSync(enabled bool) error {
	return r.r.RenderSetVSync(enabled)
}

// Name returns the driver SDL picked.
func (r *SDLRenderer) Name() string {
	return r.name
}

// Destroy releases the renderer.
func (r *SDLRenderer) Destroy() {
	r.r.Destroy()
}
