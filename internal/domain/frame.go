package domain

import (
	"fmt"
	"image"
	"strconv"
	"strings"
)

// DefaultMaxDimension is the largest canvas edge, in pixels, written by default.
const DefaultMaxDimension = 8192

// FrameGeometry is the pixel size of a single frame.
// It is constant for one sheet and across all sheets merged by a regroup.
type FrameGeometry struct {
	Width  int
	Height int
}

// Valid reports whether both dimensions are positive.
func (g FrameGeometry) Valid() bool {
	return g.Width > 0 && g.Height > 0
}

// Rect returns the pixel rectangle of the given cell.
func (g FrameGeometry) Rect(col, row int) image.Rectangle {
	x, y := col*g.Width, row*g.Height
	return image.Rect(x, y, x+g.Width, y+g.Height)
}

func (g FrameGeometry) String() string {
	return fmt.Sprintf("%dx%d", g.Width, g.Height)
}

// ParseFrameGeometry parses a "WxH" size such as "64x48".
func ParseFrameGeometry(s string) (FrameGeometry, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return FrameGeometry{}, fmt.Errorf("%w: frame size %q is not WxH", ErrInvalidConfig, s)
	}
	width, err := strconv.Atoi(w)
	if err != nil {
		return FrameGeometry{}, fmt.Errorf("%w: frame width %q", ErrInvalidConfig, w)
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return FrameGeometry{}, fmt.Errorf("%w: frame height %q", ErrInvalidConfig, h)
	}
	g := FrameGeometry{Width: width, Height: height}
	if !g.Valid() {
		return FrameGeometry{}, fmt.Errorf("%w: frame size %q must be positive", ErrInvalidConfig, s)
	}
	return g, nil
}

// GridLayout is the column and row count of a sheet.
type GridLayout struct {
	Cols int
	Rows int
}

// Capacity returns the number of cells in the layout.
func (l GridLayout) Capacity() int {
	return l.Cols * l.Rows
}

// Canvas returns the pixel size of a sheet with this layout.
func (l GridLayout) Canvas(g FrameGeometry) image.Point {
	return image.Pt(l.Cols*g.Width, l.Rows*g.Height)
}

// Fits reports whether the canvas stays within maxDimension on both axes.
func (l GridLayout) Fits(g FrameGeometry, maxDimension int) bool {
	c := l.Canvas(g)
	return c.X <= maxDimension && c.Y <= maxDimension
}

// Cell returns the column and row of frame i.
func (l GridLayout) Cell(i int) (col, row int) {
	return i % l.Cols, i / l.Cols
}

func (l GridLayout) String() string {
	return fmt.Sprintf("%dx%d", l.Cols, l.Rows)
}

// Grid describes where the frames of one decoded sheet live.
type Grid struct {
	Layout     GridLayout
	Geometry   FrameGeometry
	FrameCount int

	// Guessed is set when the grid came from the fallback chain rather than
	// from a caller hint.
	Guessed bool
}

// Sheet is a composed output canvas.
type Sheet struct {
	Image      image.Image
	Layout     GridLayout
	FrameCount int
}

// SplitPlan describes the partition of a frame sequence into output files.
// FrameCount is always a multiple of FramesPerFile and every file shares Layout.
type SplitPlan struct {
	NumFiles      int
	FramesPerFile int
	Layout        GridLayout
}

// Split reports whether the plan needs more than one output file.
func (p SplitPlan) Split() bool {
	return p.NumFiles > 1
}
