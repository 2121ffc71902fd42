package app

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/bft-labs/spritegrid/internal/watch"
)

// WatchMerge merges req.Dir once, then again every time its images settle
// after a change, until ctx is done. Failed merges are logged and the watch
// continues. Changes to the merge output itself are ignored.
func (s *Service) WatchMerge(ctx context.Context, req MergeRequest, debounce time.Duration) error {
	out := MergeOutput(req)
	ignore := func(path string) bool {
		path = filepath.Clean(path)
		return !s.imageExt(path) || path == out || GroupName(path) == out
	}
	w := watch.New(req.Dir, debounce, s.logger, ignore)
	return w.Run(ctx, func(ctx context.Context) error {
		_, err := s.Merge(ctx, req)
		return err
	})
}

func (s *Service) imageExt(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range s.config.Extensions {
		e = strings.ToLower(strings.TrimSpace(e))
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		if ext == e {
			return true
		}
	}
	return false
}
