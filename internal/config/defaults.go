package config

import (
	_ "embed"
)

//go:embed defaults/config.yaml
var defaultConfigYAML []byte

// DefaultConfig returns the settings both programs ship with.
func DefaultConfig() *Config {
	return &Config{
		Backend:  BackendEbiten,
		LogLevel: "info",
		ColoredWindow: ColoredWindowConfig{
			Window: WindowConfig{
				Title:       "Colored Window",
				Width:       800,
				Height:      600,
				AlwaysOnTop: true,
			},
			Renderer: RendererConfig{
				Drivers: []string{""},
				VSync:   false,
			},
			ClearColor: RGB(56, 69, 90),
		},
		MovingRect: MovingRectConfig{
			Window: WindowConfig{
				Title:  "Smooth Movement",
				Width:  800,
				Height: 600,
			},
			Renderer: RendererConfig{
				Drivers: []string{"vulkan", "opengl"},
				VSync:   true,
			},
			Background: RGB(0, 200, 150),
			Square: SquareConfig{
				Size:  50,
				Speed: 300,
				Color: RGB(255, 0, 0),
			},
		},
	}
}
