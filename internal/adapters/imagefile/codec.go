// Package imagefile implements ports.ImageCodec on top of the standard image
// decoders, golang.org/x/image and gift.
package imagefile

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/gift"
	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/bft-labs/spritegrid/internal/domain"
)

// Codec reads any registered format and writes PNG, TIFF or BMP, always
// with an alpha channel.
type Codec struct {
	compression png.CompressionLevel
}

// New creates a codec using PNG best compression.
func New() *Codec {
	return &Codec{compression: png.BestCompression}
}

// NewWithCompression creates a codec with the given PNG compression level.
func NewWithCompression(level png.CompressionLevel) *Codec {
	return &Codec{compression: level}
}

// Open reads the whole file before decoding so the caller may later
// overwrite the same path.
func (c *Codec) Open(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrInputNotFound, path)
		}
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return toNRGBA(img), nil
}

// Save encodes img in memory, then writes it to a temp file next to path
// and renames it into place.
func (c *Codec) Save(path string, img image.Image) error {
	var buf bytes.Buffer
	if err := c.encode(&buf, filepath.Ext(path), img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}

func (c *Codec) encode(w io.Writer, ext string, img image.Image) error {
	switch strings.ToLower(ext) {
	case ".png", "":
		enc := png.Encoder{CompressionLevel: c.compression}
		return enc.Encode(w, img)
	case ".tif", ".tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case ".bmp":
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, ext)
	}
}

// NewCanvas returns a zeroed, fully transparent NRGBA image.
func (c *Codec) NewCanvas(width, height int) draw.Image {
	return image.NewNRGBA(image.Rect(0, 0, width, height))
}

// Crop copies the r region of img into a new image anchored at the origin.
func (c *Codec) Crop(img image.Image, r image.Rectangle) image.Image {
	g := gift.New(gift.Crop(r))
	dst := image.NewNRGBA(g.Bounds(img.Bounds()))
	g.Draw(dst, img)
	return dst
}

// Paste overwrites dst with src at offset at.
func (c *Codec) Paste(dst draw.Image, src image.Image, at image.Point) {
	xdraw.Copy(dst, at, src, src.Bounds(), xdraw.Src, nil)
}

// toNRGBA converts img to an origin-anchored *image.NRGBA.
func toNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	if n, ok := img.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(dst, dst.Bounds(), img, b.Min, xdraw.Src)
	return dst
}
