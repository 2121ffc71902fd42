package domain

import "errors"

// Domain errors represent error conditions in spritegrid.
// They are wrapped with context on the way up and checked with errors.Is.
var (
	// ErrInputNotFound is returned when an input file or directory is missing.
	ErrInputNotFound = errors.New("spritegrid: input not found")

	// ErrFrameSizeMismatch is returned when frames or source files that must
	// share one geometry do not.
	ErrFrameSizeMismatch = errors.New("spritegrid: frame size mismatch")

	// ErrLayoutUnsatisfiable is returned when no split plan fits the maximum
	// canvas dimension.
	ErrLayoutUnsatisfiable = errors.New("spritegrid: layout unsatisfiable")

	// ErrFrameTooLarge is returned when a single frame already exceeds the
	// maximum canvas dimension on an axis.
	ErrFrameTooLarge = errors.New("spritegrid: frame too large")

	// ErrEmptySelection is returned when a reduction policy keeps no frames.
	ErrEmptySelection = errors.New("spritegrid: empty selection")

	// ErrGridInferenceFailure is returned when the frame grid of a sheet could
	// not be determined and no hint was supplied.
	ErrGridInferenceFailure = errors.New("spritegrid: cannot determine frame grid")

	// ErrInvalidSelection is returned when a selection policy is malformed,
	// e.g. a direction count that does not divide the frame count.
	ErrInvalidSelection = errors.New("spritegrid: invalid selection")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("spritegrid: invalid configuration")

	// ErrUnsupportedFormat is returned when an output extension has no encoder.
	ErrUnsupportedFormat = errors.New("spritegrid: unsupported image format")
)
