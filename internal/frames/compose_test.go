package frames

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/spritegrid/internal/adapters/imagefile"
	"github.com/bft-labs/spritegrid/internal/domain"
	"github.com/bft-labs/spritegrid/internal/layout"
)

// frameColor gives every frame index a distinct opaque colour.
func frameColor(i int) color.NRGBA {
	return color.NRGBA{R: uint8(i * 7), G: uint8(255 - i), B: uint8(i * 3), A: 255}
}

func solidSequence(n, w, h int) Sequence {
	seq := make(Sequence, n)
	for i := range seq {
		img := image.NewNRGBA(image.Rect(0, 0, w, h))
		c := frameColor(i)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				img.SetNRGBA(x, y, c)
			}
		}
		seq[i] = img
	}
	return seq
}

// sheetOf draws n solid frames onto an l layout.
func sheetOf(n int, g domain.FrameGeometry, l domain.GridLayout) *image.NRGBA {
	size := l.Canvas(g)
	img := image.NewNRGBA(image.Rect(0, 0, size.X, size.Y))
	for i := 0; i < n; i++ {
		col, row := l.Cell(i)
		r := g.Rect(col, row)
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				img.SetNRGBA(x, y, frameColor(i))
			}
		}
	}
	return img
}

func TestExtractComposeRoundTrip(t *testing.T) {
	codec := imagefile.New()
	g := domain.FrameGeometry{Width: 6, Height: 4}

	for _, n := range []int{1, 5, 8, 16, 24} {
		l := layout.Natural(n, 0)
		src := sheetOf(n, g, l)
		before := append([]uint8(nil), src.Pix...)

		seq, err := Extract(codec, src, domain.Grid{Layout: l, Geometry: g, FrameCount: n})
		require.NoError(t, err)
		require.Len(t, seq, n)

		res, err := Resolve(n, domain.Selection{Skip: 1})
		require.NoError(t, err)
		kept, err := Apply(seq, res.Indices)
		require.NoError(t, err)

		sheet, err := Compose(codec, kept, g, res.Columns(0))
		require.NoError(t, err)
		assert.Equal(t, l, sheet.Layout, "n=%d", n)
		assert.Equal(t, n, sheet.FrameCount)
		assert.Equal(t, before, sheet.Image.(*image.NRGBA).Pix, "n=%d", n)
		assert.Equal(t, before, src.Pix, "n=%d: source mutated", n)
	}
}

func TestExtract_DoesNotReadTrailingCells(t *testing.T) {
	codec := imagefile.New()
	g := domain.FrameGeometry{Width: 2, Height: 2}
	l := domain.GridLayout{Cols: 3, Rows: 2}
	src := sheetOf(6, g, l)
	before := append([]uint8(nil), src.Pix...)

	seq, err := Extract(codec, src, domain.Grid{Layout: l, Geometry: g, FrameCount: 5})
	require.NoError(t, err)
	require.Len(t, seq, 5)
	assert.Equal(t, frameColor(4), seq[4].(*image.NRGBA).NRGBAAt(1, 1))
	assert.Equal(t, before, src.Pix, "source mutated")
}

func TestExtract_Mismatch(t *testing.T) {
	codec := imagefile.New()
	src := image.NewNRGBA(image.Rect(0, 0, 10, 10))

	_, err := Extract(codec, src, domain.Grid{
		Layout:     domain.GridLayout{Cols: 3, Rows: 3},
		Geometry:   domain.FrameGeometry{Width: 4, Height: 4},
		FrameCount: 9,
	})
	assert.ErrorIs(t, err, domain.ErrFrameSizeMismatch)

	_, err = Extract(codec, src, domain.Grid{
		Layout:     domain.GridLayout{Cols: 2, Rows: 2},
		Geometry:   domain.FrameGeometry{Width: 5, Height: 5},
		FrameCount: 5,
	})
	assert.ErrorIs(t, err, domain.ErrFrameSizeMismatch)
}

func TestCompose_TransparentTrailingCells(t *testing.T) {
	codec := imagefile.New()
	g := domain.FrameGeometry{Width: 2, Height: 2}

	sheet, err := Compose(codec, solidSequence(5, 2, 2), g, 0)
	require.NoError(t, err)
	assert.Equal(t, domain.GridLayout{Cols: 3, Rows: 2}, sheet.Layout)
	img := sheet.Image.(*image.NRGBA)
	assert.Equal(t, image.Rect(0, 0, 6, 4), img.Bounds())
	assert.Equal(t, color.NRGBA{}, img.NRGBAAt(5, 3))
	assert.Equal(t, frameColor(4), img.NRGBAAt(3, 3))
}

func TestCompose_RejectsWrongFrameSize(t *testing.T) {
	codec := imagefile.New()
	seq := append(solidSequence(2, 2, 2), solidSequence(1, 3, 2)...)
	_, err := Compose(codec, seq, domain.FrameGeometry{Width: 2, Height: 2}, 3)
	assert.ErrorIs(t, err, domain.ErrFrameSizeMismatch)
}

func TestComposePlan(t *testing.T) {
	codec := imagefile.New()
	g := domain.FrameGeometry{Width: 4, Height: 4}
	seq := solidSequence(12, 4, 4)

	plan, err := layout.Plan(layout.PlanRequest{FrameCount: 12, Geometry: g, MaxDimension: 8})
	require.NoError(t, err)
	require.True(t, plan.Split())

	sheets, err := ComposePlan(codec, seq, g, plan)
	require.NoError(t, err)
	require.Len(t, sheets, plan.NumFiles)

	next := 0
	for _, s := range sheets {
		assert.Equal(t, plan.Layout, s.Layout)
		assert.LessOrEqual(t, s.Image.Bounds().Dx(), 8)
		assert.LessOrEqual(t, s.Image.Bounds().Dy(), 8)
		img := s.Image.(*image.NRGBA)
		for i := 0; i < s.FrameCount; i++ {
			col, row := s.Layout.Cell(i)
			assert.Equal(t, frameColor(next), img.NRGBAAt(col*4, row*4))
			next++
		}
	}
	assert.Equal(t, 12, next)

	_, err = ComposePlan(codec, seq[:10], g, plan)
	assert.ErrorIs(t, err, domain.ErrLayoutUnsatisfiable)
}
