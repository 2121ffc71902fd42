package app

import (
	"fmt"

	"github.com/bft-labs/spritegrid/internal/domain"
)

// Config contains the settings shared by every operation.
type Config struct {
	// MaxDimension caps both edges of every written sheet.
	MaxDimension int

	Layout    domain.LayoutMode
	RowLength int

	// FailFast stops a batch at the first failing file. Otherwise each
	// failure is logged and the batch continues.
	FailFast bool

	// Recursive descends into sub-directories of directory inputs.
	Recursive  bool
	Extensions []string

	// DeleteSources removes regroup inputs once every output is written.
	DeleteSources bool

	// Overwrite writes single-file results back to the input path instead
	// of a suffixed sibling.
	Overwrite bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		MaxDimension: domain.DefaultMaxDimension,
		Layout:       domain.LayoutGrid,
		Extensions:   []string{".png"},
	}
}

// Validate checks the configuration for errors.
func (c Config) Validate() error {
	if c.MaxDimension <= 0 {
		return fmt.Errorf("%w: max dimension must be positive", domain.ErrInvalidConfig)
	}
	if c.RowLength < 0 {
		return fmt.Errorf("%w: row length must not be negative", domain.ErrInvalidConfig)
	}
	if c.Layout != domain.LayoutGrid && c.Layout != domain.LayoutSingleRow {
		return fmt.Errorf("%w: unknown layout mode %d", domain.ErrInvalidConfig, c.Layout)
	}
	return nil
}
