// coloredwindow opens a window filled with a solid color and keeps it on
// screen until the window is closed.
//
// Usage:
//
//	coloredwindow [--config path] [--backend ebiten|sdl] [--log-level level]
package main

import "chosenoffset.com/windowdemos/internal/cli"

func main() {
	cli.Execute(cli.ColoredWindow)
}
