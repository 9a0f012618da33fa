package renderer

import "errors"

var (
	ErrInvalidDimensions = errors.New("renderer: frame width and height must be positive")
	ErrInvalidSamples    = errors.New("renderer: samples per pixel must be positive")
	ErrInvalidDepth      = errors.New("renderer: max depth must be positive")
	ErrNoWorld           = errors.New("renderer: no world to render")
	ErrNoCamera          = errors.New("renderer: no camera")
	ErrWorkerPanic       = errors.New("renderer: worker panicked")
)
