// Package screenshot turns framebuffer read-backs into PNG files.
package screenshot

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// Writer saves screenshots under a directory with a file name prefix.
type Writer struct {
	dir    string
	prefix string
	now    func() time.Time
}

// NewWriter creates a screenshot writer. An empty prefix becomes "screenshot".
func NewWriter(dir, prefix string) *Writer {
	if prefix == "" {
		prefix = "screenshot"
	}
	return &Writer{dir: dir, prefix: prefix, now: time.Now}
}

// Path resolves the output path. An empty name generates a timestamped one,
// a relative name lands in the writer's directory, an absolute one is kept.
func (w *Writer) Path(name string) string {
	if name == "" {
		name = fmt.Sprintf("%s_%s.png", w.prefix, w.now().Format("2006-01-02_15-04-05"))
	}
	if filepath.IsAbs(name) || w.dir == "" {
		return name
	}
	return filepath.Join(w.dir, name)
}

// FlipPixels converts bottom-up RGBA rows, as returned by glReadPixels,
// into a top-down image.
func FlipPixels(pixels []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid screenshot size %dx%d", width, height)
	}
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * rowSize
		copy(img.Pix[y*img.Stride:y*img.Stride+rowSize], pixels[src:src+rowSize])
	}
	return img, nil
}

// SavePixels flips GL pixels and writes them as PNG. It returns the path written.
func (w *Writer) SavePixels(name string, pixels []byte, width, height int) (string, error) {
	img, err := FlipPixels(pixels, width, height)
	if err != nil {
		return "", err
	}
	return w.Save(name, img)
}

// Save writes img as PNG and returns the path written.
func (w *Writer) Save(name string, img image.Image) (string, error) {
	path := w.Path(name)

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}

	if err := png.Encode(file, img); err != nil {
		file.Close()
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", path, err)
	}
	return path, nil
}
