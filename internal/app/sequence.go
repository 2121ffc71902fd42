package app

import (
	"context"
	"fmt"

	"github.com/bft-labs/spritegrid/internal/domain"
	"github.com/bft-labs/spritegrid/internal/frames"
	"github.com/bft-labs/spritegrid/internal/layout"
)

// SequenceRequest names the sheets a reordering operation applies to.
type SequenceRequest struct {
	Inputs []string
	Output string
	Hint   layout.Hint
}

// Reverse flips the rotation direction of every input: frame 0 stays, the
// rest are reversed. The layout is unchanged.
func (s *Service) Reverse(ctx context.Context, req SequenceRequest) ([]Result, error) {
	return s.reorder(ctx, "reverse", req, func(seq frames.Sequence) (frames.Sequence, string) {
		return frames.Reverse(seq), "_reversed"
	})
}

// Shift rotates the frames of every input left by n. The layout is
// unchanged.
func (s *Service) Shift(ctx context.Context, req SequenceRequest, n int) ([]Result, error) {
	return s.reorder(ctx, "shift", req, func(seq frames.Sequence) (frames.Sequence, string) {
		k := n % len(seq)
		if k < 0 {
			k += len(seq)
		}
		return frames.Shift(seq, k), fmt.Sprintf("_shifted_%d", k)
	})
}

func (s *Service) reorder(ctx context.Context, op string, req SequenceRequest, fn func(frames.Sequence) (frames.Sequence, string)) ([]Result, error) {
	if err := checkOutput(req.Inputs, req.Output); err != nil {
		return nil, err
	}
	return s.runBatch(ctx, op, req.Inputs, func(it batchItem) (Result, error) {
		sh, err := s.load(it.path, req.Hint)
		if err != nil {
			return Result{}, err
		}
		seq, suffix := fn(sh.seq)
		sheet, err := frames.Compose(s.codec, seq, sh.grid.Geometry, sh.grid.Layout.Cols)
		if err != nil {
			return Result{}, err
		}
		paths, err := s.persist([]domain.Sheet{sheet}, s.outputFor(it, req.Output, suffix))
		if err != nil {
			return Result{}, err
		}
		return Result{Input: it.path, Outputs: paths, Frames: len(seq), Layout: sheet.Layout}, nil
	})
}
