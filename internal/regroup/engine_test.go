package regroup

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/spritegrid/internal/adapters/imagefile"
	"github.com/bft-labs/spritegrid/internal/adapters/log"
	"github.com/bft-labs/spritegrid/internal/domain"
	"github.com/bft-labs/spritegrid/internal/layout"
)

// sheet draws count frames of size g on a cols-wide grid, frame i filled
// with a colour encoding first+i.
func sheet(g domain.FrameGeometry, cols, count, first int) *image.NRGBA {
	l := domain.GridLayout{Cols: cols, Rows: layout.Rows(count, cols)}
	size := l.Canvas(g)
	img := image.NewNRGBA(image.Rect(0, 0, size.X, size.Y))
	for i := 0; i < count; i++ {
		col, row := l.Cell(i)
		r := g.Rect(col, row)
		c := color.NRGBA{R: uint8(first + i), G: 10, B: 20, A: 255}
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				img.SetNRGBA(x, y, c)
			}
		}
	}
	return img
}

func newEngine() *Engine {
	return NewEngine(imagefile.New(), log.NewNoopLogger())
}

func TestRegroup_MatchesDirectPlan(t *testing.T) {
	g := domain.FrameGeometry{Width: 64, Height: 64}
	sources := []Source{
		{Name: "tank-1.png", Image: sheet(g, 8, 40, 0), FrameCount: 40},
		{Name: "tank-2.png", Image: sheet(g, 8, 40, 40), FrameCount: 40},
	}
	want, err := layout.Plan(layout.PlanRequest{FrameCount: 80, Geometry: g, MaxDimension: 8192})
	require.NoError(t, err)

	for _, opts := range []Options{
		{Geometry: g, MaxDimension: 8192},
		{MaxDimension: 8192},
	} {
		res, err := newEngine().Regroup(sources, opts)
		require.NoError(t, err)
		assert.Equal(t, want, res.Plan)
		assert.Equal(t, g, res.Geometry)
		assert.Equal(t, 80, res.Frames)
		require.Len(t, res.Sheets, want.NumFiles)
		assert.Equal(t, want.Layout, res.Sheets[0].Layout)
	}
}

func TestRegroup_PreservesOrderAcrossFiles(t *testing.T) {
	g := domain.FrameGeometry{Width: 4, Height: 4}
	// The parts were written 2 and 4 columns wide; neither matches the table.
	sources := []Source{
		{Name: "a-1.png", Image: sheet(g, 2, 6, 0), FrameCount: 6},
		{Name: "a-2.png", Image: sheet(g, 4, 6, 6), FrameCount: 6},
	}

	res, err := newEngine().Regroup(sources, Options{Geometry: g, MaxDimension: 8})
	require.NoError(t, err)
	require.True(t, res.Plan.Split())

	next := 0
	for _, s := range res.Sheets {
		assert.Equal(t, res.Plan.Layout, s.Layout)
		img := s.Image.(*image.NRGBA)
		for i := 0; i < s.FrameCount; i++ {
			col, row := s.Layout.Cell(i)
			assert.Equal(t, uint8(next), img.NRGBAAt(col*4+1, row*4+1).R, "frame %d", next)
			next++
		}
	}
	assert.Equal(t, 12, next)
}

func TestRegroup_GroupSizeSetsColumns(t *testing.T) {
	g := domain.FrameGeometry{Width: 8, Height: 8}
	sources := []Source{
		{Name: "walk-1.png", Image: sheet(g, 3, 9, 0), FrameCount: 9},
		{Name: "walk-2.png", Image: sheet(g, 3, 9, 9), FrameCount: 9},
	}
	res, err := newEngine().Regroup(sources, Options{Geometry: g, GroupSize: 3})
	require.NoError(t, err)
	require.Len(t, res.Sheets, 1)
	assert.Equal(t, domain.GridLayout{Cols: 3, Rows: 6}, res.Sheets[0].Layout)
}

func TestRegroup_FrameSizeMismatch(t *testing.T) {
	sources := []Source{
		{Name: "a.png", Image: sheet(domain.FrameGeometry{Width: 64, Height: 64}, 8, 40, 0), FrameCount: 40},
		{Name: "b.png", Image: sheet(domain.FrameGeometry{Width: 32, Height: 32}, 8, 40, 0), FrameCount: 40},
	}
	res, err := newEngine().Regroup(sources, Options{})
	assert.ErrorIs(t, err, domain.ErrFrameSizeMismatch)
	assert.Empty(t, res.Sheets)
}

func TestRegroup_Errors(t *testing.T) {
	_, err := newEngine().Regroup(nil, Options{})
	assert.ErrorIs(t, err, domain.ErrInputNotFound)

	img := sheet(domain.FrameGeometry{Width: 4, Height: 4}, 2, 4, 0)
	_, err = newEngine().Regroup([]Source{{Name: "x.png", Image: img}}, Options{})
	assert.ErrorIs(t, err, domain.ErrGridInferenceFailure)
}
