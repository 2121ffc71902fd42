package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/bft-labs/spritegrid/internal/domain"
	"github.com/bft-labs/spritegrid/internal/frames"
	"github.com/bft-labs/spritegrid/internal/ports"
)

// MergeRequest names a directory of single-frame images to assemble.
type MergeRequest struct {
	Dir string

	// Output defaults to the directory path with a .png extension.
	Output string
}

// MergeOutput returns the output path a merge of req writes to.
func MergeOutput(req MergeRequest) string {
	if req.Output == "" {
		return filepath.Clean(req.Dir) + ".png"
	}
	return withDefaultExt(filepath.Clean(req.Output))
}

// Merge assembles the images of req.Dir, ordered by the number in their
// names, into one sheet or into numbered parts when the size limit demands.
// Every image must have the same size. Earlier merge outputs found in the
// directory are skipped.
func (s *Service) Merge(ctx context.Context, req MergeRequest) (Result, error) {
	out := MergeOutput(req)
	files, err := s.lister.List(req.Dir, s.config.Recursive)
	if err != nil {
		return Result{}, err
	}

	var (
		seq   frames.Sequence
		geom  domain.FrameGeometry
		first string
	)
	for _, f := range files {
		if f == out || GroupName(f) == out {
			continue
		}
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		img, err := s.codec.Open(f)
		if err != nil {
			return Result{}, err
		}
		b := img.Bounds()
		g := domain.FrameGeometry{Width: b.Dx(), Height: b.Dy()}
		if len(seq) == 0 {
			geom, first = g, f
		} else if g != geom {
			return Result{}, fmt.Errorf("%w: %s is %s, %s is %s",
				domain.ErrFrameSizeMismatch, f, g, first, geom)
		}
		seq = append(seq, img)
	}
	if len(seq) == 0 {
		return Result{}, fmt.Errorf("%w: no images in %s", domain.ErrInputNotFound, req.Dir)
	}

	sheets, plan, err := s.composeSplit(seq, geom, 0)
	if err != nil {
		return Result{}, err
	}
	s.logger.Info("frames merged",
		ports.String("dir", req.Dir),
		ports.Int("frames", len(seq)),
		ports.Any("frame", geom),
		ports.Int("files", plan.NumFiles),
	)
	paths, err := s.persist(sheets, out)
	if err != nil {
		return Result{}, err
	}
	return Result{Input: req.Dir, Outputs: paths, Frames: len(seq), Layout: plan.Layout}, nil
}
