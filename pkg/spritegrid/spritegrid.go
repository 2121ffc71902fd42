package spritegrid

import (
	"context"
	"time"

	"github.com/bft-labs/spritegrid/internal/adapters/fs"
	"github.com/bft-labs/spritegrid/internal/adapters/imagefile"
	logAdapter "github.com/bft-labs/spritegrid/internal/adapters/log"
	"github.com/bft-labs/spritegrid/internal/app"
	"github.com/bft-labs/spritegrid/internal/domain"
	"github.com/bft-labs/spritegrid/internal/layout"
)

// Re-exported request and result types.
type (
	Config                = app.Config
	Result                = app.Result
	MergeRequest          = app.MergeRequest
	Component             = app.Component
	ComponentMergeRequest = app.ComponentMergeRequest
	ReduceRequest         = app.ReduceRequest
	SplitRequest          = app.SplitRequest
	RegroupRequest        = app.RegroupRequest
	SequenceRequest       = app.SequenceRequest
	TrimRequest           = app.TrimRequest
	TrimResult            = app.TrimResult

	Hint          = layout.Hint
	Selection     = domain.Selection
	SelectionMode = domain.SelectionMode
	LayoutMode    = domain.LayoutMode
	FrameGeometry = domain.FrameGeometry
	GridLayout    = domain.GridLayout
	SplitPlan     = domain.SplitPlan
)

const (
	SelectLinear       = domain.SelectLinear
	SelectPerRotation  = domain.SelectPerRotation
	SelectPerDirection = domain.SelectPerDirection
	SelectExplicit     = domain.SelectExplicit

	LayoutGrid      = domain.LayoutGrid
	LayoutSingleRow = domain.LayoutSingleRow
)

// Errors returned by Spritegrid operations. Match them with errors.Is.
var (
	ErrInputNotFound        = domain.ErrInputNotFound
	ErrFrameSizeMismatch    = domain.ErrFrameSizeMismatch
	ErrLayoutUnsatisfiable  = domain.ErrLayoutUnsatisfiable
	ErrFrameTooLarge        = domain.ErrFrameTooLarge
	ErrEmptySelection       = domain.ErrEmptySelection
	ErrGridInferenceFailure = domain.ErrGridInferenceFailure
	ErrInvalidSelection     = domain.ErrInvalidSelection
	ErrInvalidConfig        = domain.ErrInvalidConfig
	ErrUnsupportedFormat    = domain.ErrUnsupportedFormat
)

// DefaultComponents are the render passes MergeComponents merges when a
// request names none.
var DefaultComponents = app.DefaultComponents

// DefaultGuessChain is the order in which frame counts are tried when a
// sheet is read without a hint.
var DefaultGuessChain = layout.DefaultGuessChain

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return app.DefaultConfig()
}

// Spritegrid runs sheet operations against the file system.
// It holds no mutable state and is safe for concurrent use on distinct files.
type Spritegrid struct {
	service *app.Service
}

// New creates a Spritegrid with the given configuration.
// Returns an error if configuration is invalid.
func New(cfg Config, opts ...Option) (*Spritegrid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logAdapter.NewNoopLogger()
	}
	if o.codec == nil {
		o.codec = imagefile.New()
	}
	if o.lister == nil {
		o.lister = fs.NewLister(cfg.Extensions...)
	}

	return &Spritegrid{service: app.NewService(cfg, o.codec, o.lister, o.logger)}, nil
}

// Config returns the configuration the instance was created with.
func (s *Spritegrid) Config() Config {
	return s.service.Config()
}

// Merge assembles a directory of single-frame images into a sheet.
func (s *Spritegrid) Merge(ctx context.Context, req MergeRequest) (Result, error) {
	return s.service.Merge(ctx, req)
}

// WatchMerge merges req.Dir and merges it again whenever its images change,
// until ctx is done.
func (s *Spritegrid) WatchMerge(ctx context.Context, req MergeRequest, debounce time.Duration) error {
	return s.service.WatchMerge(ctx, req, debounce)
}

// MergeComponents merges each component directory under req.Root into its
// own sheet named {Prefix}{Suffix}.png. Missing or empty component
// directories are skipped.
func (s *Spritegrid) MergeComponents(ctx context.Context, req ComponentMergeRequest) ([]Result, error) {
	return s.service.MergeComponents(ctx, req)
}

// Reduce keeps the frames chosen by req.Selection in every input sheet.
func (s *Spritegrid) Reduce(ctx context.Context, req ReduceRequest) ([]Result, error) {
	return s.service.Reduce(ctx, req)
}

// Split partitions every input sheet that exceeds the size limit.
func (s *Spritegrid) Split(ctx context.Context, req SplitRequest) ([]Result, error) {
	return s.service.Split(ctx, req)
}

// Regroup concatenates the frames of several sheets, in input order, and
// lays them out again under the size limit.
func (s *Spritegrid) Regroup(ctx context.Context, req RegroupRequest) (Result, error) {
	return s.service.Regroup(ctx, req)
}

// Reverse plays every input sheet backwards, keeping its first frame.
func (s *Spritegrid) Reverse(ctx context.Context, req SequenceRequest) ([]Result, error) {
	return s.service.Reverse(ctx, req)
}

// Shift rotates the frames of every input sheet left by n positions.
func (s *Spritegrid) Shift(ctx context.Context, req SequenceRequest, n int) ([]Result, error) {
	return s.service.Shift(ctx, req, n)
}

// Trim crops the transparent border shared by all frames of all inputs and
// rewrites the inputs in place.
func (s *Spritegrid) Trim(ctx context.Context, req TrimRequest) (TrimResult, error) {
	return s.service.Trim(ctx, req)
}

// Plan returns the split decision for count frames of the given size
// without touching any file.
func (s *Spritegrid) Plan(count int, geom FrameGeometry) (SplitPlan, error) {
	return s.service.PlanOnly(count, geom)
}

// ParseSelectionMode parses a selection mode name such as "per-direction".
func ParseSelectionMode(s string) (SelectionMode, error) {
	return domain.ParseSelectionMode(s)
}

// ParseFrameGeometry parses a "WxH" frame size.
func ParseFrameGeometry(s string) (FrameGeometry, error) {
	return domain.ParseFrameGeometry(s)
}
