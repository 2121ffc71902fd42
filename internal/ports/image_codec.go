package ports

import (
	"image"
	"image/draw"
)

// ImageCodec reads and writes sheet images and performs the two pixel
// operations the core needs.
type ImageCodec interface {
	// Open decodes the image at path. Images without an alpha channel are
	// converted to one. A missing file yields domain.ErrInputNotFound.
	Open(path string) (image.Image, error)

	// Save encodes img to path. The image is fully encoded before the
	// destination is replaced, so path may be the file img was read from.
	Save(path string, img image.Image) error

	// NewCanvas returns a fully transparent canvas of the given size.
	NewCanvas(width, height int) draw.Image

	// Crop returns a copy of the r region of img, rebased to the origin.
	Crop(img image.Image, r image.Rectangle) image.Image

	// Paste overwrites dst at offset at with src. No blending is done.
	Paste(dst draw.Image, src image.Image, at image.Point)
}
