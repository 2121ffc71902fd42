package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bft-labs/spritegrid/internal/domain"
	"github.com/bft-labs/spritegrid/internal/layout"
	"github.com/bft-labs/spritegrid/internal/ports"
	"github.com/bft-labs/spritegrid/internal/regroup"
)

// RegroupRequest names the split parts of one logical sheet.
type RegroupRequest struct {
	Inputs []string

	// Output defaults to the first input with its part number removed.
	Output string

	// Hint describes every part: a frame size, or a per-file frame count.
	Hint layout.Hint

	// GroupSize keeps direction groups on their own rows when positive.
	GroupSize int
}

// Regroup merges the frames of every input, in order, and writes them as
// the fewest files the size limit allows. Any failure aborts before the
// first write, whatever the failure policy.
func (s *Service) Regroup(ctx context.Context, req RegroupRequest) (Result, error) {
	items, err := s.expand(req.Inputs)
	if err != nil {
		return Result{}, err
	}
	if len(items) == 0 {
		return Result{}, fmt.Errorf("%w: no images to regroup", domain.ErrInputNotFound)
	}

	sources := make([]regroup.Source, 0, len(items))
	for _, it := range items {
		if it.err != nil {
			return Result{}, it.err
		}
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		src, err := s.regroupSource(it.path, req.Hint)
		if err != nil {
			return Result{}, err
		}
		sources = append(sources, src)
	}

	res, err := s.regroup.Regroup(sources, regroup.Options{
		Geometry:     req.Hint.Geometry,
		MaxDimension: s.config.MaxDimension,
		Mode:         s.config.Layout,
		RowLength:    s.config.RowLength,
		GroupSize:    req.GroupSize,
	})
	if err != nil {
		return Result{}, err
	}

	out := req.Output
	if out == "" {
		out = GroupName(items[0].path)
	}
	paths, err := s.persist(res.Sheets, withDefaultExt(out))
	if err != nil {
		return Result{}, err
	}
	s.logger.Info("sheets regrouped",
		ports.Int("inputs", len(sources)),
		ports.Int("outputs", len(paths)),
		ports.Int("frames", res.Frames),
	)

	result := Result{Input: items[0].path, Outputs: paths, Frames: res.Frames, Layout: res.Plan.Layout}
	if s.config.DeleteSources {
		return result, s.deleteSources(items, paths)
	}
	return result, nil
}

// regroupSource decodes one part. Without a hint its grid is guessed and
// pinned on the source so the engine does not guess again.
func (s *Service) regroupSource(path string, hint layout.Hint) (regroup.Source, error) {
	img, err := s.codec.Open(path)
	if err != nil {
		return regroup.Source{}, err
	}
	src := regroup.Source{Name: path, Image: img, FrameCount: hint.FrameCount}
	if !hint.Empty() {
		return src, nil
	}

	b := img.Bounds()
	grid, err := layout.Infer(b.Dx(), b.Dy(), hint, nil)
	if err != nil {
		return regroup.Source{}, fmt.Errorf("%s: %w", path, err)
	}
	s.logger.Warn("frame count guessed",
		ports.String("file", path),
		ports.Int("frames", grid.FrameCount),
		ports.Ints("candidates", layout.Candidates(b.Dx(), b.Dy(), 0, nil)),
	)
	src.FrameCount = grid.FrameCount
	src.Geometry = grid.Geometry
	return src, nil
}

// deleteSources removes every input that was not overwritten by an output.
func (s *Service) deleteSources(items []batchItem, outputs []string) error {
	keep := make(map[string]bool, len(outputs))
	for _, p := range outputs {
		keep[filepath.Clean(p)] = true
	}

	var errs []error
	for _, it := range items {
		if keep[filepath.Clean(it.path)] {
			continue
		}
		if err := os.Remove(it.path); err != nil && !errors.Is(err, os.ErrNotExist) {
			s.logger.Error("delete source failed", ports.String("file", it.path), ports.Err(err))
			errs = append(errs, err)
			continue
		}
		s.logger.Info("source deleted", ports.String("file", it.path))
	}
	return errors.Join(errs...)
}
