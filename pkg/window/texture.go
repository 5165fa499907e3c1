package window

import (
	"errors"

	"go.uber.org/zap"

	"github.com/Faultbox/donkey/pkg/colors"
	"github.com/Faultbox/donkey/pkg/picture"
)

var errImageClosed = errors.New("image is closed")

// Texture is an image uploaded to the GPU. It belongs to the Window that
// loaded it and must be closed before that Window.
type Texture struct {
	id     uint32
	width  int
	height int
	owner  *Window
}

// LoadTextureFromImage uploads img. The image may be closed afterwards.
func (w *Window) LoadTextureFromImage(img *picture.Image) (*Texture, error) {
	if img == nil || img.Closed() {
		return nil, errImageClosed
	}

	t := &Texture{
		id:     uploadTexture(img.Width(), img.Height(), img.Pixels()),
		width:  img.Width(),
		height: img.Height(),
		owner:  w,
	}
	w.log.Debug("texture loaded", zap.Uint32("id", t.id), zap.Int("width", t.width), zap.Int("height", t.height))
	return t, nil
}

// Width returns the texture width in pixels.
func (t *Texture) Width() int { return t.width }

// Height returns the texture height in pixels.
func (t *Texture) Height() int { return t.height }

// Close frees the GPU texture. Further calls are no-ops.
func (t *Texture) Close() {
	if t.id == 0 {
		return
	}
	t.owner.renderer.releaseTexture(t.id)
	t.id = 0
}

// DrawTexture draws tex at its native size with its top-left corner at (x, y).
func (w *Window) DrawTexture(tex *Texture, x, y int, tint colors.Color) {
	if err := w.scopes.Check2D(); err != nil {
		w.misuse("DrawTexture", err)
		return
	}
	if tex == nil || tex.id == 0 {
		w.misuse("DrawTexture", errors.New("texture is closed"))
		return
	}
	w.renderer.quad(tex.id, float32(x), float32(y), float32(tex.width), float32(tex.height), 0, 0, 1, 1, tint)
}
