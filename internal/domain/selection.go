package domain

import (
	"fmt"
	"strings"
)

// SelectionMode names a frame reduction policy.
type SelectionMode int

const (
	// SelectLinear keeps every skip-th frame of the whole sequence.
	SelectLinear SelectionMode = iota
	// SelectPerRotation keeps every skip-th direction group wholesale.
	SelectPerRotation
	// SelectPerDirection reduces frames inside every direction group.
	SelectPerDirection
	// SelectExplicit keeps caller supplied indices.
	SelectExplicit
)

// String returns the flag spelling of the mode.
func (m SelectionMode) String() string {
	switch m {
	case SelectLinear:
		return "linear"
	case SelectPerRotation:
		return "per-rotation"
	case SelectPerDirection:
		return "per-direction"
	case SelectExplicit:
		return "explicit"
	default:
		return "unknown"
	}
}

// ParseSelectionMode parses a mode name. "direction-skip" is accepted as an
// alias of per-rotation.
func ParseSelectionMode(s string) (SelectionMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "linear":
		return SelectLinear, nil
	case "per-rotation", "direction-skip":
		return SelectPerRotation, nil
	case "per-direction":
		return SelectPerDirection, nil
	case "explicit":
		return SelectExplicit, nil
	}
	return 0, fmt.Errorf("%w: unknown selection mode %q", ErrInvalidSelection, s)
}

// GroupPreserving reports whether output rows must align with direction groups.
func (m SelectionMode) GroupPreserving() bool {
	return m == SelectPerRotation || m == SelectPerDirection
}

// Selection is a frame reduction policy, resolved once per operation into an
// ordered index subset.
type Selection struct {
	Mode      SelectionMode
	Skip      int
	Symmetric bool

	// DirectionCount and FramesPerDirection describe the group structure for
	// the group modes. Either one may be zero; the other is derived from the
	// frame count.
	DirectionCount     int
	FramesPerDirection int

	// Indices is used by SelectExplicit.
	Indices []int
}

// LayoutMode controls how the split planner lays out frames.
type LayoutMode int

const (
	// LayoutGrid lays frames out on a free grid.
	LayoutGrid LayoutMode = iota
	// LayoutSingleRow puts every frame of a file on one row.
	LayoutSingleRow
)

// String returns the config spelling of the mode.
func (m LayoutMode) String() string {
	if m == LayoutSingleRow {
		return "single-row"
	}
	return "grid"
}

// ParseLayoutMode parses a layout mode name.
func ParseLayoutMode(s string) (LayoutMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "grid":
		return LayoutGrid, nil
	case "single-row", "row":
		return LayoutSingleRow, nil
	}
	return 0, fmt.Errorf("%w: unknown layout mode %q", ErrInvalidConfig, s)
}
