package frames

import (
	"image"

	"github.com/bft-labs/spritegrid/internal/domain"
	"github.com/bft-labs/spritegrid/internal/ports"
)

// Reverse keeps frame 0 in place and reverses the order of the rest, which
// turns a clockwise rotation into a counter-clockwise one.
func Reverse(seq Sequence) Sequence {
	out := make(Sequence, len(seq))
	if len(seq) == 0 {
		return out
	}
	out[0] = seq[0]
	for i := 1; i < len(seq); i++ {
		out[i] = seq[len(seq)-i]
	}
	return out
}

// Shift rotates seq left by n frames. Negative n rotates right.
func Shift(seq Sequence, n int) Sequence {
	out := make(Sequence, len(seq))
	if len(seq) == 0 {
		return out
	}
	n %= len(seq)
	if n < 0 {
		n += len(seq)
	}
	copy(out, seq[n:])
	copy(out[len(seq)-n:], seq[:n])
	return out
}

// OpaqueBounds returns the smallest rectangle, in frame coordinates, that
// contains every pixel with non-zero alpha in any frame of seqs. It returns
// the empty rectangle when all frames are fully transparent.
func OpaqueBounds(seqs ...Sequence) image.Rectangle {
	var r image.Rectangle
	for _, seq := range seqs {
		for _, f := range seq {
			b := alphaBounds(f)
			if b.Empty() {
				continue
			}
			r = r.Union(b.Sub(f.Bounds().Min))
		}
	}
	return r
}

func alphaBounds(img image.Image) image.Rectangle {
	b := img.Bounds()
	minX, minY, maxX, maxY := b.Max.X, b.Max.Y, b.Min.X, b.Min.Y
	found := false
	mark := func(x, y int) {
		found = true
		minX, maxX = min(minX, x), max(maxX, x+1)
		minY, maxY = min(minY, y), max(maxY, y+1)
	}

	if n, ok := img.(*image.NRGBA); ok {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			row := n.Pix[n.PixOffset(b.Min.X, y):]
			for x := 0; x < b.Dx(); x++ {
				if row[x*4+3] != 0 {
					mark(b.Min.X+x, y)
				}
			}
		}
	} else {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				if _, _, _, a := img.At(x, y).RGBA(); a != 0 {
					mark(x, y)
				}
			}
		}
	}
	if !found {
		return image.Rectangle{}
	}
	return image.Rect(minX, minY, maxX, maxY)
}

// Crop cuts r, in frame coordinates, out of every frame of seq.
func Crop(codec ports.ImageCodec, seq Sequence, r image.Rectangle) Sequence {
	out := make(Sequence, len(seq))
	for i, f := range seq {
		out[i] = codec.Crop(f, r.Add(f.Bounds().Min))
	}
	return out
}

// CenterShift returns how far the centre of r lies from the centre of a
// frame of size g. Positive x is right, positive y is down.
func CenterShift(g domain.FrameGeometry, r image.Rectangle) (dx, dy float64) {
	dx = float64(r.Min.X) + float64(r.Dx())/2 - float64(g.Width)/2
	dy = float64(r.Min.Y) + float64(r.Dy())/2 - float64(g.Height)/2
	return dx, dy
}
