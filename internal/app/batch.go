package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bft-labs/spritegrid/internal/domain"
	"github.com/bft-labs/spritegrid/internal/ports"
)

// batchItem is one file of a batch. root is the directory input it was
// found under, empty for file inputs.
type batchItem struct {
	path string
	root string
	err  error
}

// expand resolves file and directory inputs into the files to process.
func (s *Service) expand(inputs []string) ([]batchItem, error) {
	if len(inputs) == 0 {
		return nil, fmt.Errorf("%w: no inputs", domain.ErrInputNotFound)
	}
	var items []batchItem
	for _, in := range inputs {
		info, err := os.Stat(in)
		if err != nil {
			items = append(items, batchItem{path: in, err: fmt.Errorf("%w: %s", domain.ErrInputNotFound, in)})
			continue
		}
		if !info.IsDir() {
			items = append(items, batchItem{path: in})
			continue
		}
		files, err := s.lister.List(in, s.config.Recursive)
		if err != nil {
			items = append(items, batchItem{path: in, err: err})
			continue
		}
		if len(files) == 0 {
			s.logger.Warn("no images found", ports.String("dir", in))
		}
		for _, f := range files {
			items = append(items, batchItem{path: f, root: in})
		}
	}
	return items, nil
}

// runBatch processes every input file in order under the configured
// failure policy. Files finished before a failure stay written.
func (s *Service) runBatch(ctx context.Context, op string, inputs []string, fn func(batchItem) (Result, error)) ([]Result, error) {
	items, err := s.expand(inputs)
	if err != nil {
		return nil, err
	}

	var (
		results []Result
		errs    []error
	)
	for _, it := range items {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		err := it.err
		if err == nil {
			var res Result
			res, err = fn(it)
			if err == nil {
				results = append(results, res)
				continue
			}
		}
		if s.config.FailFast {
			return results, fmt.Errorf("%s %s: %w", op, it.path, err)
		}
		s.logger.Error(op+" failed", ports.String("file", it.path), ports.Err(err))
		errs = append(errs, fmt.Errorf("%s: %w", it.path, err))
	}
	return results, errors.Join(errs...)
}

// checkOutput rejects an empty input list, and a single output file for
// inputs that expand to several files.
func checkOutput(inputs []string, output string) error {
	if len(inputs) == 0 {
		return fmt.Errorf("%w: no inputs", domain.ErrInputNotFound)
	}
	if output == "" || filepath.Ext(output) == "" {
		return nil
	}
	if len(inputs) > 1 {
		return fmt.Errorf("%w: output %s is a file but there are %d inputs", domain.ErrInvalidConfig, output, len(inputs))
	}
	if info, err := os.Stat(inputs[0]); err == nil && info.IsDir() {
		return fmt.Errorf("%w: output %s is a file but %s is a directory", domain.ErrInvalidConfig, output, inputs[0])
	}
	return nil
}

// outputFor picks where the result for it goes. Without an explicit output
// the result lands next to the input with suffix appended to its stem, or
// on the input itself when overwriting. For directory inputs an explicit
// output is a directory mirroring the input tree.
func (s *Service) outputFor(it batchItem, output, suffix string) string {
	switch {
	case output == "" && s.config.Overwrite:
		return it.path
	case output == "":
		return WithSuffix(it.path, suffix)
	case it.root == "":
		return withDefaultExt(output)
	}
	rel, err := filepath.Rel(it.root, it.path)
	if err != nil {
		rel = filepath.Base(it.path)
	}
	return filepath.Join(output, rel)
}
