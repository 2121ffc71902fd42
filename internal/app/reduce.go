package app

import (
	"context"
	"fmt"

	"github.com/bft-labs/spritegrid/internal/domain"
	"github.com/bft-labs/spritegrid/internal/frames"
	"github.com/bft-labs/spritegrid/internal/layout"
	"github.com/bft-labs/spritegrid/internal/ports"
)

// ReduceRequest selects a subset of frames from every input sheet.
type ReduceRequest struct {
	Inputs    []string
	Output    string
	Hint      layout.Hint
	Selection domain.Selection
}

// Reduce keeps the frames chosen by req.Selection and lays them out again.
// Group preserving selections keep one direction group per row, across
// files when the result has to be split. Output defaults to
// {base}_reduced_{n}{ext}.
func (s *Service) Reduce(ctx context.Context, req ReduceRequest) ([]Result, error) {
	if err := checkOutput(req.Inputs, req.Output); err != nil {
		return nil, err
	}
	return s.runBatch(ctx, "reduce", req.Inputs, func(it batchItem) (Result, error) {
		sh, err := s.load(it.path, req.Hint)
		if err != nil {
			return Result{}, err
		}

		res, err := frames.Resolve(len(sh.seq), req.Selection)
		if err != nil {
			return Result{}, err
		}
		for _, i := range res.Dropped {
			s.logger.Warn("index out of range, dropped",
				ports.String("file", it.path),
				ports.Int("index", i),
				ports.Int("frames", len(sh.seq)),
			)
		}
		kept, err := frames.Apply(sh.seq, res.Indices)
		if err != nil {
			return Result{}, err
		}

		sheets, plan, err := s.composeSplit(kept, sh.grid.Geometry, res.OutputColumns)
		if err != nil {
			return Result{}, err
		}
		s.logger.Info("frames reduced",
			ports.String("file", it.path),
			ports.String("mode", req.Selection.Mode.String()),
			ports.Int("from", len(sh.seq)),
			ports.Int("to", len(kept)),
		)

		out := s.outputFor(it, req.Output, fmt.Sprintf("_reduced_%d", len(kept)))
		paths, err := s.persist(sheets, out)
		if err != nil {
			return Result{}, err
		}
		return Result{Input: it.path, Outputs: paths, Frames: len(kept), Layout: plan.Layout}, nil
	})
}
