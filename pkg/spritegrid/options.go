package spritegrid

import (
	"github.com/bft-labs/spritegrid/internal/ports"
)

// Logger is the interface for structured logging.
type Logger = ports.Logger

// LogField represents a structured log field.
type LogField = ports.Field

// ImageCodec reads, writes and manipulates sheet images.
type ImageCodec = ports.ImageCodec

// FileLister discovers the image files of a directory.
type FileLister = ports.FileLister

// Option configures optional behavior of Spritegrid.
type Option func(*options)

// options holds the optional configuration for a Spritegrid instance.
type options struct {
	logger ports.Logger
	codec  ports.ImageCodec
	lister ports.FileLister
}

// WithLogger sets a custom logger for structured logging.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithCodec replaces the file based image codec.
func WithCodec(codec ImageCodec) Option {
	return func(o *options) {
		o.codec = codec
	}
}

// WithLister replaces the directory lister. The default lister honours
// Config.Extensions.
func WithLister(lister FileLister) Option {
	return func(o *options) {
		o.lister = lister
	}
}
