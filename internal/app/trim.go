package app

import (
	"context"
	"fmt"
	"image"

	"github.com/bft-labs/spritegrid/internal/domain"
	"github.com/bft-labs/spritegrid/internal/frames"
	"github.com/bft-labs/spritegrid/internal/layout"
	"github.com/bft-labs/spritegrid/internal/ports"
)

// TrimRequest names one sheet, or the split parts of one sheet, to trim.
type TrimRequest struct {
	Inputs []string
	Hint   layout.Hint
}

// TrimResult reports a trim.
type TrimResult struct {
	Files  []string
	Before domain.FrameGeometry
	After  domain.FrameGeometry

	// Bounds is the kept region in old frame coordinates.
	Bounds image.Rectangle

	// ShiftX and ShiftY are how far the frame centre moved, in pixels.
	ShiftX float64
	ShiftY float64

	// Changed is false when nothing could be trimmed.
	Changed bool
}

// Trim crops every frame of every input to the smallest box holding all
// non-transparent pixels of all frames, and rewrites the inputs in place.
// All inputs are decoded before the first write.
func (s *Service) Trim(ctx context.Context, req TrimRequest) (TrimResult, error) {
	items, err := s.expand(req.Inputs)
	if err != nil {
		return TrimResult{}, err
	}
	if len(items) == 0 {
		return TrimResult{}, fmt.Errorf("%w: no images to trim", domain.ErrInputNotFound)
	}

	var (
		sheets []sheetData
		geom   domain.FrameGeometry
	)
	for _, it := range items {
		if it.err != nil {
			return TrimResult{}, it.err
		}
		if err := ctx.Err(); err != nil {
			return TrimResult{}, err
		}
		sh, err := s.load(it.path, req.Hint)
		if err != nil {
			return TrimResult{}, err
		}
		if len(sheets) == 0 {
			geom = sh.grid.Geometry
		} else if sh.grid.Geometry != geom {
			return TrimResult{}, fmt.Errorf("%w: %s has %s frames, expected %s",
				domain.ErrFrameSizeMismatch, it.path, sh.grid.Geometry, geom)
		}
		sheets = append(sheets, sh)
	}

	res := TrimResult{Before: geom, After: geom}
	seqs := make([]frames.Sequence, len(sheets))
	for i, sh := range sheets {
		res.Files = append(res.Files, sh.path)
		seqs[i] = sh.seq
	}

	r := frames.OpaqueBounds(seqs...)
	switch {
	case r.Empty():
		s.logger.Info("all frames fully transparent, nothing to trim", ports.Strings("files", res.Files))
		return res, nil
	case r == image.Rect(0, 0, geom.Width, geom.Height):
		s.logger.Info("no transparent border, already minimal", ports.Strings("files", res.Files))
		res.Bounds = r
		return res, nil
	}

	res.Bounds = r
	res.After = domain.FrameGeometry{Width: r.Dx(), Height: r.Dy()}
	res.ShiftX, res.ShiftY = frames.CenterShift(geom, r)
	res.Changed = true

	trimmed := make([]domain.Sheet, len(sheets))
	for i, sh := range sheets {
		sheet, err := frames.Compose(s.codec, frames.Crop(s.codec, sh.seq, r), res.After, sh.grid.Layout.Cols)
		if err != nil {
			return TrimResult{}, fmt.Errorf("%s: %w", sh.path, err)
		}
		trimmed[i] = sheet
	}
	for i, sh := range sheets {
		if _, err := s.persist(trimmed[i:i+1], sh.path); err != nil {
			return res, err
		}
	}
	s.logger.Info("frames trimmed",
		ports.Any("from", res.Before),
		ports.Any("to", res.After),
		ports.Float64("shift_x", res.ShiftX),
		ports.Float64("shift_y", res.ShiftY),
	)
	return res, nil
}
