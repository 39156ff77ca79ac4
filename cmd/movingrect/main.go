// movingrect moves a square around a window with the arrow keys or WASD.
//
// Usage:
//
//	movingrect [--config path] [--backend ebiten|sdl] [--log-level level]
package main

import "chosenoffset.com/windowdemos/internal/cli"

func main() {
	cli.Execute(cli.MovingRect)
}
