package layout

import (
	"fmt"

	"github.com/bft-labs/spritegrid/internal/domain"
)

// PlanRequest describes the frames to partition.
type PlanRequest struct {
	FrameCount int
	Geometry   domain.FrameGeometry

	// MaxDimension caps both canvas edges. Zero means domain.DefaultMaxDimension.
	MaxDimension int

	Mode domain.LayoutMode

	// RowLength fixes the column count of every file when positive. It
	// takes precedence over Mode, so rows stay aligned with direction
	// groups even in single-row mode.
	RowLength int
}

// Plan decides whether FrameCount frames fit on one sheet and, if not, how
// to split them into equally laid out files.
//
// The search takes divisors of FrameCount largest first, so the plan uses
// the fewest files possible. It does not minimise wasted canvas area; among
// equal frames-per-file the smallest admissible column count wins.
func Plan(req PlanRequest) (domain.SplitPlan, error) {
	maxDim := req.MaxDimension
	if maxDim <= 0 {
		maxDim = domain.DefaultMaxDimension
	}
	g := req.Geometry
	if !g.Valid() {
		return domain.SplitPlan{}, fmt.Errorf("%w: frame size %s", domain.ErrFrameSizeMismatch, g)
	}
	if req.FrameCount < 1 {
		return domain.SplitPlan{}, fmt.Errorf("%w: no frames to lay out", domain.ErrEmptySelection)
	}

	maxCols := maxDim / g.Width
	maxRows := maxDim / g.Height
	if maxCols < 1 || maxRows < 1 {
		return domain.SplitPlan{}, fmt.Errorf("%w: frame %s exceeds %dpx", domain.ErrFrameTooLarge, g, maxDim)
	}

	natural := naturalLayout(req)
	if natural.Fits(g, maxDim) {
		return domain.SplitPlan{NumFiles: 1, FramesPerFile: req.FrameCount, Layout: natural}, nil
	}

	for _, perFile := range Divisors(req.FrameCount) {
		if perFile >= req.FrameCount {
			continue
		}
		l, ok := fileLayout(req, perFile, maxCols, maxRows)
		if !ok {
			continue
		}
		return domain.SplitPlan{
			NumFiles:      req.FrameCount / perFile,
			FramesPerFile: perFile,
			Layout:        l,
		}, nil
	}

	return domain.SplitPlan{}, fmt.Errorf("%w: %d frames of %s within %dpx (%s)",
		domain.ErrLayoutUnsatisfiable, req.FrameCount, g, maxDim, req.Mode)
}

func naturalLayout(req PlanRequest) domain.GridLayout {
	if req.Mode == domain.LayoutSingleRow && req.RowLength <= 0 {
		return domain.GridLayout{Cols: req.FrameCount, Rows: 1}
	}
	return Natural(req.FrameCount, req.RowLength)
}

// fileLayout returns the layout of one file holding perFile frames, if any
// layout fits.
func fileLayout(req PlanRequest, perFile, maxCols, maxRows int) (domain.GridLayout, bool) {
	switch {
	case req.RowLength > 0:
		cols := req.RowLength
		if cols > maxCols || perFile%cols != 0 {
			return domain.GridLayout{}, false
		}
		rows := perFile / cols
		if rows > maxRows {
			return domain.GridLayout{}, false
		}
		return domain.GridLayout{Cols: cols, Rows: rows}, true

	case req.Mode == domain.LayoutSingleRow:
		if perFile > maxCols {
			return domain.GridLayout{}, false
		}
		return domain.GridLayout{Cols: perFile, Rows: 1}, true
	}

	limit := min(perFile, maxCols)
	for cols := 1; cols <= limit; cols++ {
		if perFile%cols != 0 {
			continue
		}
		if rows := perFile / cols; rows <= maxRows {
			return domain.GridLayout{Cols: cols, Rows: rows}, true
		}
	}
	return domain.GridLayout{}, false
}
