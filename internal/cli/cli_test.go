package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"chosenoffset.com/windowdemos/internal/app"
	"chosenoffset.com/windowdemos/internal/render"
)

var errBoom = errors.New("boom")

type recordingEngine struct {
	window render.WindowOptions
	driver string
	vsync  bool
	game   render.Game
	runs   int
}

func (e *recordingEngine) SetWindowOptions(opts render.WindowOptions) { e.window = opts }
func (e *recordingEngine) SetVsyncEnabled(enabled bool)               { e.vsync = enabled }
func (e *recordingEngine) RenderDrivers() []string                    { return []string{"opengl"} }

func (e *recordingEngine) SetRenderDriver(name string) error {
	if name != "" && name != "opengl" {
		return fmt.Errorf("unsupported graphics library %q", name)
	}
	e.driver = name
	return nil
}

func (e *recordingEngine) RunGame(game render.Game) error {
	e.game = game
	e.runs++
	return nil
}

// brokenPlatform fails to initialize; nothing else may be called.
type brokenPlatform struct {
	render.Platform
	inits int
}

func (p *brokenPlatform) Init() error {
	p.inits++
	return errBoom
}

// setup isolates config lookup and swaps in fake backends.
func setup(t *testing.T) (*recordingEngine, *brokenPlatform) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	chdir(t, t.TempDir())

	engine := &recordingEngine{}
	platform := &brokenPlatform{}
	oldEngine, oldPlatform := newEngine, newPlatform
	newEngine = func() render.Engine { return engine }
	newPlatform = func() render.Platform { return platform }
	t.Cleanup(func() {
		newEngine, newPlatform = oldEngine, oldPlatform
	})
	return engine, platform
}

func execute(p Program, args ...string) (string, error) {
	var out bytes.Buffer
	cmd := NewCommand(p)
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func TestMovingRectDefaultsUseEbiten(t *testing.T) {
	engine, platform := setup(t)

	logs, err := execute(MovingRect)
	if err != nil {
		t.Fatalf("Execute() returned error: %v\n%s", err, logs)
	}
	if engine.runs != 1 || platform.inits != 0 {
		t.Fatalf("Expected one ebiten run and no SDL init, got %d runs and %d inits", engine.runs, platform.inits)
	}
	if engine.window.Title != "Smooth Movement" || engine.window.Width != 800 || engine.window.Height != 600 {
		t.Errorf("Unexpected window options %+v", engine.window)
	}
	if engine.driver != "opengl" {
		t.Errorf("Expected fallback to opengl, got %q", engine.driver)
	}
	if !engine.vsync {
		t.Error("Expected vsync to be requested")
	}
	if !engine.game.Animated() {
		t.Error("Expected an animated game")
	}
	if !strings.Contains(logs, "movingrect") || !strings.Contains(logs, "vulkan") {
		t.Errorf("Expected logs to report the vulkan fallback:\n%s", logs)
	}
}

func TestColoredWindowDefaults(t *testing.T) {
	engine, _ := setup(t)

	if _, err := execute(ColoredWindow, "--log-level", "error"); err != nil {
		t.Fatalf("Execute() returned error: %v", err)
	}
	if engine.window.Title != "Colored Window" || !engine.window.AlwaysOnTop {
		t.Errorf("Unexpected window options %+v", engine.window)
	}
	if engine.vsync {
		t.Error("Expected vsync off")
	}
	if engine.game.Animated() {
		t.Error("Expected a static game")
	}
}

func TestBackendFlagSelectsSDL(t *testing.T) {
	engine, platform := setup(t)

	logs, err := execute(MovingRect, "--backend", "sdl")
	if !errors.Is(err, app.ErrInitialization) || !errors.Is(err, errBoom) {
		t.Fatalf("Expected initialization error, got %v", err)
	}
	var reported reportedError
	if !errors.As(err, &reported) {
		t.Error("Expected the failure to be marked as logged")
	}
	if platform.inits != 1 || engine.runs != 0 {
		t.Errorf("Expected one SDL init and no ebiten run, got %d inits and %d runs", platform.inits, engine.runs)
	}
	if !strings.Contains(logs, "program failed") {
		t.Errorf("Expected failure to be logged:\n%s", logs)
	}
}

func TestConfigFlag(t *testing.T) {
	engine, _ := setup(t)

	path := filepath.Join(t.TempDir(), "demo.yaml")
	yaml := "moving_rectangle:\n  window:\n    title: Custom\n  renderer:\n    drivers: [metal, \"\"]\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := execute(MovingRect, "--config", path, "--log-level", "error"); err != nil {
		t.Fatalf("Execute() returned error: %v", err)
	}
	if engine.window.Title != "Custom" {
		t.Errorf("Expected title from config file, got %q", engine.window.Title)
	}
	if engine.driver != "" {
		t.Errorf("Expected the default driver after metal failed, got %q", engine.driver)
	}
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"positional args", []string{"extra"}, "extra"},
		{"unknown backend", []string{"--backend", "glut"}, "unknown backend"},
		{"bad log level", []string{"--log-level", "chatty"}, "invalid log level"},
		{"missing config", []string{"--config", "does-not-exist.yaml"}, "failed to read config"},
		{"unknown flag", []string{"--fps", "60"}, "unknown flag"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			engine, _ := setup(t)
			_, err := execute(MovingRect, tc.args...)
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tc.wantErr, err)
			}
			if engine.runs != 0 {
				t.Error("Expected no window to open")
			}
		})
	}
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
