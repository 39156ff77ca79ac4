package app

import (
	"fmt"

	"github.com/charmbracelet/log"

	"chosenoffset.com/windowdemos/internal/render"
)

// tryDrivers calls create with each candidate until one succeeds. Failures
// before the last candidate are logged as warnings. When every candidate
// fails the returned error wraps ErrRendererCreation and the last failure.
func tryDrivers[T any](drivers []string, logger *log.Logger, create func(driver string) (T, error)) (T, error) {
	if len(drivers) == 0 {
		drivers = []string{""}
	}

	var (
		zero    T
		lastErr error
	)
	for i, driver := range drivers {
		result, err := create(driver)
		if err == nil {
			return result, nil
		}
		lastErr = err
		if i < len(drivers)-1 {
			logger.Warn("renderer driver failed, falling back", "driver", driverName(driver), "next", driverName(drivers[i+1]), "error", err)
		}
	}
	return zero, fmt.Errorf("%w (tried %d drivers): %w", ErrRendererCreation, len(drivers), lastErr)
}

// CreateRenderer creates a renderer for win, trying each driver in order.
func CreateRenderer(p render.Platform, win render.Window, drivers []string, logger *log.Logger) (render.Renderer, error) {
	return tryDrivers(drivers, logger, func(driver string) (render.Renderer, error) {
		return p.CreateRenderer(win, driver)
	})
}

// SelectEngineDriver configures e with the first driver it accepts and
// returns that driver's name.
func SelectEngineDriver(e render.Engine, drivers []string, logger *log.Logger) (string, error) {
	return tryDrivers(drivers, logger, func(driver string) (string, error) {
		if err := e.SetRenderDriver(driver); err != nil {
			return "", err
		}
		return driverName(driver), nil
	})
}

func driverName(driver string) string {
	if driver == "" {
		return "default"
	}
	return driver
}
