package window

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/donkey/internal/cstr"
)

// TakeScreenshot saves the framebuffer as PNG. Inside a drawing scope it
// captures what has been drawn so far this frame; outside it captures the
// last presented frame. An empty filename gets a timestamped name, and
// relative names land in the configured screenshot directory.
func (w *Window) TakeScreenshot(filename string) error {
	if err := cstr.Check(filename); err != nil {
		return err
	}

	buffer := uint32(gl.FRONT)
	if w.scopes.Drawing() {
		if w.scopes.In3D() {
			w.renderer.flush3D(w.viewProj)
		}
		w.renderer.flush2D()
		buffer = gl.BACK
	}

	dw, dh := w.sdlWindow.GLGetDrawableSize()
	pixels := w.renderer.readPixels(buffer, int(dw), int(dh))

	path, err := w.shots.SavePixels(filename, pixels, int(dw), int(dh))
	if err != nil {
		return fmt.Errorf("taking screenshot: %w", err)
	}
	w.log.Info("screenshot taken", zap.String("path", path))
	return nil
}
