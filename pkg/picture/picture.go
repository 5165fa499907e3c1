// Package picture loads image files into CPU-side RGBA pixel buffers.
package picture

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	// Registered decoders.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"go.uber.org/zap"

	"github.com/Faultbox/donkey/internal/cstr"
	"github.com/Faultbox/donkey/internal/engine/texture"
	"github.com/Faultbox/donkey/internal/logger"
)

// ErrLoadFailed is matched by every *LoadError.
var ErrLoadFailed = errors.New("failed to load image file")

var errEmptyImage = errors.New("decoded image has no pixels")

// LoadError describes a file that could not be turned into pixels.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%v %q: %v", ErrLoadFailed, e.Path, e.Err)
}

// Unwrap exposes both ErrLoadFailed and the underlying cause.
func (e *LoadError) Unwrap() []error {
	return []error{ErrLoadFailed, e.Err}
}

// Image owns a decoded RGBA pixel buffer. It cannot be copied; share the
// pointer instead.
type Image struct {
	rgba   *image.RGBA
	format string
}

// Load reads and decodes the file at path. PNG, JPEG, GIF, BMP, TIFF and
// WebP are detected by content, TGA by its extension.
func Load(path string) (*Image, error) {
	if err := cstr.Check(path); err != nil {
		return nil, err
	}

	img, format, err := decodeFile(path)
	if err != nil {
		logger.Warn("image load failed", zap.String("path", path), zap.Error(err))
		return nil, &LoadError{Path: path, Err: err}
	}

	rgba := texture.ImageToRGBA(img)
	if len(rgba.Pix) == 0 {
		return nil, &LoadError{Path: path, Err: errEmptyImage}
	}

	logger.Debug("image loaded",
		zap.String("path", path),
		zap.String("format", format),
		zap.Int("width", rgba.Rect.Dx()),
		zap.Int("height", rgba.Rect.Dy()))

	return &Image{rgba: rgba, format: format}, nil
}

func decodeFile(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".tga") {
		img, err := texture.Decode(f)
		return img, "tga", err
	}

	return image.Decode(f)
}

// FromImage copies any image into a new Image.
func FromImage(img image.Image) *Image {
	src := texture.ImageToRGBA(img)
	rgba := &image.RGBA{
		Pix:    append([]byte(nil), src.Pix...),
		Stride: src.Stride,
		Rect:   src.Rect,
	}
	return &Image{rgba: rgba, format: "memory"}
}

// Close releases the pixel buffer. Further calls are no-ops.
func (i *Image) Close() {
	i.rgba = nil
}

// Closed reports whether Close has been called.
func (i *Image) Closed() bool {
	return i.rgba == nil
}

// Width returns the width in pixels, or 0 once closed.
func (i *Image) Width() int {
	if i.rgba == nil {
		return 0
	}
	return i.rgba.Rect.Dx()
}

// Height returns the height in pixels, or 0 once closed.
func (i *Image) Height() int {
	if i.rgba == nil {
		return 0
	}
	return i.rgba.Rect.Dy()
}

// Format returns the decoder name, e.g. "png" or "tga".
func (i *Image) Format() string {
	return i.format
}

// Pixels returns the tightly packed RGBA bytes, row by row from the top.
// The slice aliases the image; it is nil once closed.
func (i *Image) Pixels() []byte {
	if i.rgba == nil {
		return nil
	}
	return i.rgba.Pix
}

// RGBA returns the underlying image, or nil once closed.
func (i *Image) RGBA() *image.RGBA {
	return i.rgba
}
