package app

import "errors"

// Setup failures. All of them are fatal; callers match with errors.Is.
var (
	ErrInitialization   = errors.New("failed to initialize video subsystem")
	ErrWindowCreation   = errors.New("failed to create window")
	ErrRendererCreation = errors.New("failed to create renderer")
)
