package layout

import (
	"fmt"

	"github.com/bft-labs/spritegrid/internal/domain"
)

// DefaultGuessChain is the ordered list of frame counts tried when a sheet
// comes with no hint. Several counts can fit the same pixel size (a 512x512
// sheet fits 64, 16 and 4 frames alike); the first fit wins and nothing
// smarter is attempted.
var DefaultGuessChain = []int{64, 32, 24, 16, 12, 8, 4}

// Hint carries caller knowledge about a sheet. Zero fields are unknown.
type Hint struct {
	FrameCount int
	Geometry   domain.FrameGeometry
	RowLength  int
}

// Empty reports whether the hint carries no information.
func (h Hint) Empty() bool {
	return h.FrameCount <= 0 && !h.Geometry.Valid()
}

// Infer determines the frame grid of a width x height sheet.
//
// Priority: an explicit frame size, then an explicit frame count (laid out
// with Columns), then the first count of chain whose layout divides the
// sheet evenly. A nil chain means DefaultGuessChain.
func Infer(width, height int, hint Hint, chain []int) (domain.Grid, error) {
	if width < 1 || height < 1 {
		return domain.Grid{}, fmt.Errorf("%w: empty %dx%d sheet", domain.ErrGridInferenceFailure, width, height)
	}

	if g := hint.Geometry; g.Valid() {
		l := domain.GridLayout{Cols: width / g.Width, Rows: height / g.Height}
		if l.Cols < 1 || l.Rows < 1 {
			return domain.Grid{}, fmt.Errorf("%w: frame %s larger than %dx%d sheet",
				domain.ErrFrameSizeMismatch, g, width, height)
		}
		count := l.Capacity()
		if hint.FrameCount > 0 && hint.FrameCount < count {
			count = hint.FrameCount
		}
		return domain.Grid{Layout: l, Geometry: g, FrameCount: count}, nil
	}

	if hint.FrameCount > 0 {
		l := Natural(hint.FrameCount, hint.RowLength)
		g := domain.FrameGeometry{Width: width / l.Cols, Height: height / l.Rows}
		if !g.Valid() {
			return domain.Grid{}, fmt.Errorf("%w: %d frames do not fit %dx%d",
				domain.ErrFrameSizeMismatch, hint.FrameCount, width, height)
		}
		return domain.Grid{Layout: l, Geometry: g, FrameCount: hint.FrameCount}, nil
	}

	if chain == nil {
		chain = DefaultGuessChain
	}
	for _, count := range chain {
		if grid, ok := fitCount(width, height, count, hint.RowLength); ok {
			grid.Guessed = true
			return grid, nil
		}
	}
	return domain.Grid{}, fmt.Errorf("%w: %dx%d matches none of %v; pass a frame count or frame size",
		domain.ErrGridInferenceFailure, width, height, chain)
}

// Candidates returns every count of chain whose layout divides the sheet
// evenly, in chain order. More than one entry means Infer's guess is
// ambiguous.
func Candidates(width, height int, rowLength int, chain []int) []int {
	if chain == nil {
		chain = DefaultGuessChain
	}
	var out []int
	for _, count := range chain {
		if _, ok := fitCount(width, height, count, rowLength); ok {
			out = append(out, count)
		}
	}
	return out
}

func fitCount(width, height, count, rowLength int) (domain.Grid, bool) {
	l := Natural(count, rowLength)
	if width%l.Cols != 0 || height%l.Rows != 0 {
		return domain.Grid{}, false
	}
	g := domain.FrameGeometry{Width: width / l.Cols, Height: height / l.Rows}
	if !g.Valid() {
		return domain.Grid{}, false
	}
	return domain.Grid{Layout: l, Geometry: g, FrameCount: count}, true
}

// InferFromCount finds the grid of a sheet known to hold count frames
// without trusting the column table: every column count whose layout
// divides the sheet evenly is considered and the one giving the largest
// frame area wins. A full sheet gives the same area for every exact layout,
// so ties go to the squarest frame, then to the smallest column count.
func InferFromCount(width, height, count int) (domain.Grid, error) {
	if count < 1 {
		return domain.Grid{}, fmt.Errorf("%w: frame count %d", domain.ErrGridInferenceFailure, count)
	}
	var best domain.Grid
	found := false
	for cols := 1; cols <= count; cols++ {
		rows := Rows(count, cols)
		if width%cols != 0 || height%rows != 0 {
			continue
		}
		g := domain.FrameGeometry{Width: width / cols, Height: height / rows}
		if !g.Valid() {
			continue
		}
		if !found || better(g, best.Geometry) {
			best = domain.Grid{
				Layout:     domain.GridLayout{Cols: cols, Rows: rows},
				Geometry:   g,
				FrameCount: count,
			}
			found = true
		}
	}
	if !found {
		return domain.Grid{}, fmt.Errorf("%w: %dx%d with %d frames; pass a frame size",
			domain.ErrGridInferenceFailure, width, height, count)
	}
	return best, nil
}

// FromGeometry returns the grid of a sheet whose frame size is known,
// recovering the column count from the sheet's own width. The sheet must be
// an exact multiple of the frame size and hold at least count cells.
func FromGeometry(width, height, count int, g domain.FrameGeometry) (domain.Grid, error) {
	if !g.Valid() || width%g.Width != 0 || height%g.Height != 0 {
		return domain.Grid{}, fmt.Errorf("%w: %dx%d is not a grid of %s frames",
			domain.ErrFrameSizeMismatch, width, height, g)
	}
	l := domain.GridLayout{Cols: width / g.Width, Rows: height / g.Height}
	if count <= 0 {
		count = l.Capacity()
	}
	if count > l.Capacity() {
		return domain.Grid{}, fmt.Errorf("%w: %d frames exceed %s grid of %s frames",
			domain.ErrFrameSizeMismatch, count, l, g)
	}
	return domain.Grid{Layout: l, Geometry: g, FrameCount: count}, nil
}

func better(g, than domain.FrameGeometry) bool {
	a, b := g.Width*g.Height, than.Width*than.Height
	if a != b {
		return a > b
	}
	return skew(g) < skew(than)
}

func skew(g domain.FrameGeometry) int {
	if g.Width > g.Height {
		return g.Width - g.Height
	}
	return g.Height - g.Width
}
