package frames

import (
	"fmt"
	"image"

	"github.com/bft-labs/spritegrid/internal/domain"
	"github.com/bft-labs/spritegrid/internal/ports"
)

// Sequence is an ordered list of equally sized frames.
type Sequence []image.Image

// Len returns the number of frames.
func (s Sequence) Len() int { return len(s) }

// Extract crops grid.FrameCount frames out of src in row-major order.
// Unused trailing cells are not read.
func Extract(codec ports.ImageCodec, src image.Image, grid domain.Grid) (Sequence, error) {
	g, l := grid.Geometry, grid.Layout
	if !g.Valid() || l.Cols < 1 || l.Rows < 1 {
		return nil, fmt.Errorf("%w: grid %s of %s frames", domain.ErrFrameSizeMismatch, l, g)
	}
	if grid.FrameCount < 1 {
		return nil, fmt.Errorf("%w: grid holds no frames", domain.ErrEmptySelection)
	}
	if grid.FrameCount > l.Capacity() {
		return nil, fmt.Errorf("%w: %d frames exceed %s grid", domain.ErrFrameSizeMismatch, grid.FrameCount, l)
	}

	b := src.Bounds()
	need := l.Canvas(g)
	if need.X > b.Dx() || need.Y > b.Dy() {
		return nil, fmt.Errorf("%w: %s grid of %s frames needs %dx%d, sheet is %dx%d",
			domain.ErrFrameSizeMismatch, l, g, need.X, need.Y, b.Dx(), b.Dy())
	}

	seq := make(Sequence, grid.FrameCount)
	for i := range seq {
		col, row := l.Cell(i)
		seq[i] = codec.Crop(src, g.Rect(col, row).Add(b.Min))
	}
	return seq, nil
}

// Geometry returns the frame size of the sequence, taken from its first
// frame, and checks that every frame agrees.
func (s Sequence) Geometry() (domain.FrameGeometry, error) {
	if len(s) == 0 {
		return domain.FrameGeometry{}, domain.ErrEmptySelection
	}
	b := s[0].Bounds()
	g := domain.FrameGeometry{Width: b.Dx(), Height: b.Dy()}
	for i, f := range s[1:] {
		fb := f.Bounds()
		if fb.Dx() != g.Width || fb.Dy() != g.Height {
			return domain.FrameGeometry{}, fmt.Errorf("%w: frame %d is %dx%d, expected %s",
				domain.ErrFrameSizeMismatch, i+1, fb.Dx(), fb.Dy(), g)
		}
	}
	return g, nil
}
