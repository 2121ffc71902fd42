package app

import (
	"context"

	"github.com/bft-labs/spritegrid/internal/layout"
	"github.com/bft-labs/spritegrid/internal/ports"
)

// SplitRequest names the sheets to re-partition under the size limit.
type SplitRequest struct {
	Inputs []string
	Output string
	Hint   layout.Hint
}

// Split writes every input that exceeds the maximum dimension as numbered
// parts {base}-{i}{ext}. Inputs that fit are left alone.
func (s *Service) Split(ctx context.Context, req SplitRequest) ([]Result, error) {
	if err := checkOutput(req.Inputs, req.Output); err != nil {
		return nil, err
	}
	return s.runBatch(ctx, "split", req.Inputs, func(it batchItem) (Result, error) {
		sh, err := s.load(it.path, req.Hint)
		if err != nil {
			return Result{}, err
		}
		sheets, plan, err := s.composeSplit(sh.seq, sh.grid.Geometry, 0)
		if err != nil {
			return Result{}, err
		}
		res := Result{Input: it.path, Frames: len(sh.seq), Layout: plan.Layout}
		if !plan.Split() {
			s.logger.Info("sheet fits, nothing to split",
				ports.String("file", it.path),
				ports.Any("layout", plan.Layout),
			)
			return res, nil
		}

		res.Outputs, err = s.persist(sheets, s.outputFor(it, req.Output, ""))
		return res, err
	})
}
