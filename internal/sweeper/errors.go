package sweeper

import "errors"

var (
	// ErrInvalidConfiguration is returned by Init for a non-positive size or
	// a mine count outside [0, size*size).
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrOutOfBounds is returned by Reveal for a coordinate outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")

	// ErrSessionOver is returned by Reveal once the session is won or lost.
	ErrSessionOver = errors.New("session is over")

	// ErrNotInitialized is returned by Reveal before Init has succeeded.
	ErrNotInitialized = errors.New("session not initialized")
)
