package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/bft-labs/spritegrid/internal/domain"
	"github.com/bft-labs/spritegrid/internal/ports"
)

// Component is one render pass of an object, stored as a directory of
// frames and merged into its own sheet.
type Component struct {
	Name string
	Dir  string

	// Suffix is appended to the prefix to name the sheet.
	Suffix string
}

// DefaultComponents are the render passes merged when a request names none.
var DefaultComponents = []Component{
	{Name: "object", Dir: "Object", Suffix: ""},
	{Name: "shadow", Dir: "Shadow", Suffix: "-shadow"},
	{Name: "reflection", Dir: "WaterReflection", Suffix: "-water-reflection"},
	{Name: "glow", Dir: "Light A Reduced", Suffix: "-glow"},
}

// ComponentMergeRequest merges every component directory under Root into
// Dest/{Prefix}{Suffix}.png.
type ComponentMergeRequest struct {
	Root   string
	Prefix string

	// Dest defaults to Root.
	Dest string

	// Components defaults to DefaultComponents.
	Components []Component
}

// ComponentOutput returns the sheet path component c is merged into.
func ComponentOutput(req ComponentMergeRequest, c Component) string {
	dest := req.Dest
	if dest == "" {
		dest = req.Root
	}
	return filepath.Join(dest, req.Prefix+c.Suffix+".png")
}

// MergeComponents merges each component directory of req in order.
// Components whose directory is missing or holds no images are skipped with
// a warning. Other failures follow the configured failure policy.
func (s *Service) MergeComponents(ctx context.Context, req ComponentMergeRequest) ([]Result, error) {
	if req.Prefix == "" {
		return nil, fmt.Errorf("%w: component merge needs a prefix", domain.ErrInvalidConfig)
	}
	components := req.Components
	if len(components) == 0 {
		components = DefaultComponents
	}

	var (
		results []Result
		errs    []error
	)
	for _, c := range components {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		dir := filepath.Join(req.Root, c.Dir)
		res, err := s.Merge(ctx, MergeRequest{Dir: dir, Output: ComponentOutput(req, c)})
		switch {
		case err == nil:
			results = append(results, res)
			continue
		case errors.Is(err, domain.ErrInputNotFound):
			s.logger.Warn("component skipped", ports.String("component", c.Name), ports.String("dir", dir))
			continue
		case s.config.FailFast:
			return results, fmt.Errorf("component %s: %w", c.Name, err)
		}
		s.logger.Error("component merge failed", ports.String("component", c.Name), ports.Err(err))
		errs = append(errs, fmt.Errorf("component %s: %w", c.Name, err))
	}
	return results, errors.Join(errs...)
}
