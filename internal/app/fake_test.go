package app

import (
	"errors"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"chosenoffset.com/windowdemos/internal/render"
)

// fakePlatform records every call the loop makes.
type fakePlatform struct {
	initErr   error
	windowErr error
	// driverErrs maps driver name to the error CreateRenderer returns.
	driverErrs map[string]error
	vsyncErr   error

	// frames holds the events returned by successive PollEvents calls. Once
	// exhausted a QuitEvent is returned so loops always end.
	frames [][]render.Event
	keys   render.KeySet

	counter     uint64
	counterStep uint64
	freq        uint64

	calls        []string
	inits        int
	quits        int
	polls        int
	delays       int
	triedDrivers []string
	windows      []*fakeWindow
	renderers    []*fakeRenderer
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{
		driverErrs:  map[string]error{},
		keys:        render.NewKeySet(),
		counterStep: 500,
		freq:        1000,
	}
}

func (p *fakePlatform) Init() error {
	p.calls = append(p.calls, "init")
	if p.initErr != nil {
		return p.initErr
	}
	p.inits++
	return nil
}

func (p *fakePlatform) CreateWindow(opts render.WindowOptions) (render.Window, error) {
	p.calls = append(p.calls, "create_window")
	if p.windowErr != nil {
		return nil, p.windowErr
	}
	w := &fakeWindow{opts: opts, platform: p}
	p.windows = append(p.windows, w)
	return w, nil
}

func (p *fakePlatform) CreateRenderer(win render.Window, driver string) (render.Renderer, error) {
	p.calls = append(p.calls, "create_renderer")
	p.triedDrivers = append(p.triedDrivers, driver)
	if err := p.driverErrs[driver]; err != nil {
		return nil, err
	}
	r := &fakeRenderer{name: driver, platform: p, vsyncErr: p.vsyncErr}
	p.renderers = append(p.renderers, r)
	return r, nil
}

func (p *fakePlatform) RenderDrivers() []string {
	return []string{"vulkan", "opengl", "software"}
}

func (p *fakePlatform) PollEvents() []render.Event {
	p.polls++
	if len(p.frames) == 0 {
		return []render.Event{render.QuitEvent{}}
	}
	events := p.frames[0]
	p.frames = p.frames[1:]
	return events
}

func (p *fakePlatform) KeyboardState() render.KeyboardState {
	return p.keys
}

func (p *fakePlatform) PerformanceCounter() uint64 {
	p.counter += p.counterStep
	return p.counter
}

func (p *fakePlatform) PerformanceFrequency() uint64 {
	return p.freq
}

func (p *fakePlatform) Delay(time.Duration) {
	p.delays++
}

func (p *fakePlatform) Quit() {
	p.calls = append(p.calls, "quit")
	p.quits++
}

type fakeWindow struct {
	opts      render.WindowOptions
	platform  *fakePlatform
	destroyed int
}

func (w *fakeWindow) Destroy() {
	w.platform.calls = append(w.platform.calls, "destroy_window")
	w.destroyed++
}

type fakeRenderer struct {
	name      string
	platform  *fakePlatform
	vsyncErr  error
	vsync     bool
	clr       color.Color
	clears    []color.Color
	rects     []render.Rect
	presents  int
	destroyed int
}

func (r *fakeRenderer) SetDrawColor(clr color.Color) { r.clr = clr }
func (r *fakeRenderer) Clear()                       { r.clears = append(r.clears, r.clr) }
func (r *fakeRenderer) FillRect(rect render.Rect)    { r.rects = append(r.rects, rect) }
func (r *fakeRenderer) Present()                     { r.presents++ }
func (r *fakeRenderer) Name() string                 { return driverName(r.name) }

func (r *fakeRenderer) SetVSync(enabled bool) error {
	if r.vsyncErr != nil {
		return r.vsyncErr
	}
	r.vsync = enabled
	return nil
}

func (r *fakeRenderer) Destroy() {
	r.platform.calls = append(r.platform.calls, "destroy_renderer")
	r.destroyed++
}

// fakeGame counts updates and draws.
type fakeGame struct {
	animated  bool
	updates   int
	draws     int
	dts       []float64
	updateErr error
}

func (g *fakeGame) Update(dt float64, keys render.KeyboardState) error {
	g.updates++
	g.dts = append(g.dts, dt)
	return g.updateErr
}

func (g *fakeGame) Draw(c render.Canvas) {
	g.draws++
	c.SetDrawColor(color.White)
	c.Clear()
}

func (g *fakeGame) Animated() bool { return g.animated }

func quietOptions() Options {
	return Options{
		Window: render.WindowOptions{Title: "test", Width: 800, Height: 600},
		Logger: log.New(io.Discard),
	}
}

var errBoom = errors.New("boom")
