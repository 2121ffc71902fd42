// Package regroup merges the frames of several split sheets and lays them
// out again as the smallest set of files the size limit allows.
package regroup

import (
	"fmt"
	"image"

	"github.com/bft-labs/spritegrid/internal/domain"
	"github.com/bft-labs/spritegrid/internal/frames"
	"github.com/bft-labs/spritegrid/internal/layout"
	"github.com/bft-labs/spritegrid/internal/ports"
)

// Source is one decoded input sheet.
type Source struct {
	Name  string
	Image image.Image

	// FrameCount is the number of frames in this file. Zero means every
	// cell of the sheet, which requires a known geometry.
	FrameCount int

	// Geometry, when set, is the frame size of this file alone.
	Geometry domain.FrameGeometry
}

// Options controls a regroup.
type Options struct {
	// Geometry is the frame size of every source. When zero it is inferred
	// per file from its frame count.
	Geometry domain.FrameGeometry

	MaxDimension int
	Mode         domain.LayoutMode
	RowLength    int

	// GroupSize, when positive, is used as the column count so that rows
	// stay aligned with direction groups.
	GroupSize int
}

// Result is the outcome of a regroup.
type Result struct {
	Sheets   []domain.Sheet
	Plan     domain.SplitPlan
	Geometry domain.FrameGeometry
	Frames   int
}

// Engine regroups sheets. It never touches the file system.
type Engine struct {
	codec  ports.ImageCodec
	logger ports.Logger
}

// NewEngine creates an engine.
func NewEngine(codec ports.ImageCodec, logger ports.Logger) *Engine {
	return &Engine{codec: codec, logger: logger}
}

// Regroup extracts every source in order, concatenates their frames and
// composes them under a fresh split plan. Nothing is produced unless all
// sources agree on the frame size.
func (e *Engine) Regroup(sources []Source, opts Options) (Result, error) {
	if len(sources) == 0 {
		return Result{}, fmt.Errorf("%w: no sources to regroup", domain.ErrInputNotFound)
	}

	var (
		all  frames.Sequence
		geom = opts.Geometry
	)
	for _, src := range sources {
		g := src.Geometry
		if !g.Valid() {
			g = opts.Geometry
		}
		grid, err := sourceGrid(src, g)
		if err != nil {
			return Result{}, fmt.Errorf("%s: %w", src.Name, err)
		}
		if !geom.Valid() {
			geom = grid.Geometry
		} else if grid.Geometry != geom {
			return Result{}, fmt.Errorf("%w: %s has %s frames, expected %s",
				domain.ErrFrameSizeMismatch, src.Name, grid.Geometry, geom)
		}

		seq, err := frames.Extract(e.codec, src.Image, grid)
		if err != nil {
			return Result{}, fmt.Errorf("%s: %w", src.Name, err)
		}
		e.logger.Debug("regroup source loaded",
			ports.String("file", src.Name),
			ports.Any("layout", grid.Layout),
			ports.Int("frames", grid.FrameCount),
		)
		all = append(all, seq...)
	}

	rowLength := opts.RowLength
	if opts.GroupSize > 0 {
		rowLength = opts.GroupSize
	}
	plan, err := layout.Plan(layout.PlanRequest{
		FrameCount:   len(all),
		Geometry:     geom,
		MaxDimension: opts.MaxDimension,
		Mode:         opts.Mode,
		RowLength:    rowLength,
	})
	if err != nil {
		return Result{}, err
	}

	sheets, err := frames.ComposePlan(e.codec, all, geom, plan)
	if err != nil {
		return Result{}, err
	}
	return Result{Sheets: sheets, Plan: plan, Geometry: geom, Frames: len(all)}, nil
}

// sourceGrid recovers the grid of one source from its own pixel width, so
// a file written with a non-table column count still extracts correctly.
func sourceGrid(src Source, geom domain.FrameGeometry) (domain.Grid, error) {
	b := src.Image.Bounds()
	if geom.Valid() {
		return layout.FromGeometry(b.Dx(), b.Dy(), src.FrameCount, geom)
	}
	if src.FrameCount <= 0 {
		return domain.Grid{}, fmt.Errorf("%w: frame count or frame size required",
			domain.ErrGridInferenceFailure)
	}
	return layout.InferFromCount(b.Dx(), b.Dy(), src.FrameCount)
}
