package app

import (
	"fmt"

	"github.com/bft-labs/spritegrid/internal/domain"
	"github.com/bft-labs/spritegrid/internal/frames"
	"github.com/bft-labs/spritegrid/internal/layout"
	"github.com/bft-labs/spritegrid/internal/ports"
	"github.com/bft-labs/spritegrid/internal/regroup"
)

// Service runs sheet operations. Every operation decodes its inputs
// completely before composing, and composes completely before writing, so
// an input may safely be its own output.
type Service struct {
	config  Config
	codec   ports.ImageCodec
	lister  ports.FileLister
	logger  ports.Logger
	regroup *regroup.Engine
}

// NewService creates a new service with the given dependencies.
func NewService(config Config, codec ports.ImageCodec, lister ports.FileLister, logger ports.Logger) *Service {
	return &Service{
		config:  config,
		codec:   codec,
		lister:  lister,
		logger:  logger,
		regroup: regroup.NewEngine(codec, logger),
	}
}

// Config returns the service configuration.
func (s *Service) Config() Config {
	return s.config
}

// Result describes the files written for one input.
type Result struct {
	Input   string
	Outputs []string
	Frames  int
	Layout  domain.GridLayout
}

// sheetData is one decoded input sheet.
type sheetData struct {
	path string
	grid domain.Grid
	seq  frames.Sequence
}

// load decodes path and extracts its frames.
func (s *Service) load(path string, hint layout.Hint) (sheetData, error) {
	img, err := s.codec.Open(path)
	if err != nil {
		return sheetData{}, err
	}
	b := img.Bounds()
	grid, err := layout.Infer(b.Dx(), b.Dy(), hint, nil)
	if err != nil {
		return sheetData{}, fmt.Errorf("%s: %w", path, err)
	}
	if grid.Guessed {
		fields := []ports.Field{
			ports.String("file", path),
			ports.Int("frames", grid.FrameCount),
			ports.Any("layout", grid.Layout),
		}
		if c := layout.Candidates(b.Dx(), b.Dy(), hint.RowLength, nil); len(c) > 1 {
			s.logger.Warn("frame count guessed, other counts also fit", append(fields, ports.Ints("candidates", c))...)
		} else {
			s.logger.Info("frame count guessed", fields...)
		}
	}

	seq, err := frames.Extract(s.codec, img, grid)
	if err != nil {
		return sheetData{}, fmt.Errorf("%s: %w", path, err)
	}
	s.logger.Debug("sheet loaded",
		ports.String("file", path),
		ports.Any("layout", grid.Layout),
		ports.Any("frame", grid.Geometry),
		ports.Int("frames", grid.FrameCount),
	)
	return sheetData{path: path, grid: grid, seq: seq}, nil
}

// planFor runs the split planner under the service limits. A positive
// rowLength overrides the configured one.
func (s *Service) planFor(count int, geom domain.FrameGeometry, rowLength int) (domain.SplitPlan, error) {
	if rowLength <= 0 {
		rowLength = s.config.RowLength
	}
	return layout.Plan(layout.PlanRequest{
		FrameCount:   count,
		Geometry:     geom,
		MaxDimension: s.config.MaxDimension,
		Mode:         s.config.Layout,
		RowLength:    rowLength,
	})
}

// composeSplit plans and composes seq, splitting it across files when the
// size limit demands.
func (s *Service) composeSplit(seq frames.Sequence, geom domain.FrameGeometry, rowLength int) ([]domain.Sheet, domain.SplitPlan, error) {
	plan, err := s.planFor(len(seq), geom, rowLength)
	if err != nil {
		return nil, domain.SplitPlan{}, err
	}
	sheets, err := frames.ComposePlan(s.codec, seq, geom, plan)
	if err != nil {
		return nil, domain.SplitPlan{}, err
	}
	return sheets, plan, nil
}

// persist writes sheets under output, numbering them when there are
// several.
func (s *Service) persist(sheets []domain.Sheet, output string) ([]string, error) {
	paths := OutputPaths(output, len(sheets))
	for i, sheet := range sheets {
		if err := s.codec.Save(paths[i], sheet.Image); err != nil {
			return paths[:i], fmt.Errorf("save %s: %w", paths[i], err)
		}
		s.logger.Info("sheet written",
			ports.String("file", paths[i]),
			ports.Any("layout", sheet.Layout),
			ports.Int("frames", sheet.FrameCount),
		)
	}
	return paths, nil
}

// PlanOnly returns the split decision for count frames of geom without
// touching any file.
func (s *Service) PlanOnly(count int, geom domain.FrameGeometry) (domain.SplitPlan, error) {
	return s.planFor(count, geom, 0)
}
