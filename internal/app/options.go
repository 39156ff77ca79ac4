// Package app owns the program lifecycle shared by the demos: subsystem
// setup, renderer driver fallback, the frame loop and teardown.
package app

import (
	"time"

	"github.com/charmbracelet/log"

	"chosenoffset.com/windowdemos/internal/render"
)

// DefaultIdleDelay is how long a non-animated game sleeps between event polls.
const DefaultIdleDelay = 10 * time.Millisecond

// Options configure a single program run.
type Options struct {
	Window render.WindowOptions

	// Drivers are renderer driver candidates tried in order. An empty list
	// means a single attempt with the backend default.
	Drivers []string

	// VSync requests presentation paced to the display refresh. Failure to
	// enable it is logged and otherwise ignored.
	VSync bool

	// IdleDelay overrides DefaultIdleDelay when positive.
	IdleDelay time.Duration

	Logger *log.Logger
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.Default()
}

func (o Options) idleDelay() time.Duration {
	if o.IdleDelay > 0 {
		return o.IdleDelay
	}
	return DefaultIdleDelay
}
