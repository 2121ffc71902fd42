package frames

import (
	"fmt"

	"github.com/bft-labs/spritegrid/internal/domain"
	"github.com/bft-labs/spritegrid/internal/layout"
	"github.com/bft-labs/spritegrid/internal/ports"
)

// Compose lays seq out on a fresh transparent canvas with cols columns.
// Every frame overwrites its cell; nothing is blended.
func Compose(codec ports.ImageCodec, seq Sequence, geom domain.FrameGeometry, cols int) (domain.Sheet, error) {
	if len(seq) == 0 {
		return domain.Sheet{}, domain.ErrEmptySelection
	}
	if cols < 1 {
		cols = layout.Columns(len(seq), 0)
	}
	l := domain.GridLayout{Cols: cols, Rows: layout.Rows(len(seq), cols)}
	return composeLayout(codec, seq, geom, l)
}

// ComposePlan lays seq out as plan.NumFiles sheets of plan.FramesPerFile
// consecutive frames, all sharing plan.Layout.
func ComposePlan(codec ports.ImageCodec, seq Sequence, geom domain.FrameGeometry, plan domain.SplitPlan) ([]domain.Sheet, error) {
	if plan.NumFiles < 1 || plan.FramesPerFile < 1 {
		return nil, fmt.Errorf("%w: plan of %d files x %d frames",
			domain.ErrLayoutUnsatisfiable, plan.NumFiles, plan.FramesPerFile)
	}
	if plan.NumFiles*plan.FramesPerFile != len(seq) {
		return nil, fmt.Errorf("%w: plan covers %d frames, sequence has %d",
			domain.ErrLayoutUnsatisfiable, plan.NumFiles*plan.FramesPerFile, len(seq))
	}
	if plan.Layout.Capacity() < plan.FramesPerFile {
		return nil, fmt.Errorf("%w: %s layout cannot hold %d frames",
			domain.ErrLayoutUnsatisfiable, plan.Layout, plan.FramesPerFile)
	}

	sheets := make([]domain.Sheet, 0, plan.NumFiles)
	for f := 0; f < plan.NumFiles; f++ {
		part := seq[f*plan.FramesPerFile : (f+1)*plan.FramesPerFile]
		sheet, err := composeLayout(codec, part, geom, plan.Layout)
		if err != nil {
			return nil, fmt.Errorf("file %d: %w", f+1, err)
		}
		sheets = append(sheets, sheet)
	}
	return sheets, nil
}

func composeLayout(codec ports.ImageCodec, seq Sequence, geom domain.FrameGeometry, l domain.GridLayout) (domain.Sheet, error) {
	if !geom.Valid() {
		return domain.Sheet{}, fmt.Errorf("%w: frame size %s", domain.ErrFrameSizeMismatch, geom)
	}
	size := l.Canvas(geom)
	canvas := codec.NewCanvas(size.X, size.Y)
	for i, f := range seq {
		b := f.Bounds()
		if b.Dx() != geom.Width || b.Dy() != geom.Height {
			return domain.Sheet{}, fmt.Errorf("%w: frame %d is %dx%d, expected %s",
				domain.ErrFrameSizeMismatch, i, b.Dx(), b.Dy(), geom)
		}
		col, row := l.Cell(i)
		codec.Paste(canvas, f, geom.Rect(col, row).Min)
	}
	return domain.Sheet{Image: canvas, Layout: l, FrameCount: len(seq)}, nil
}
