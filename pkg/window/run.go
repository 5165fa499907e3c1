package window

import (
	"github.com/Faultbox/donkey/pkg/camera"
	"github.com/Faultbox/donkey/pkg/colors"
	"github.com/Faultbox/donkey/pkg/math"
)

// Run opens a window, calls frame once per iteration until the window
// should close, and closes it.
func Run(width, height int, title string, frame func(*Window)) error {
	return RunWithConfig(Config{Title: title, Width: width, Height: height}, frame)
}

// RunWithConfig is Run with full window configuration.
func RunWithConfig(cfg Config, frame func(*Window)) error {
	w, err := InitWithConfig(cfg)
	if err != nil {
		return err
	}
	defer w.Close()

	for !w.ShouldClose() {
		frame(w)
	}
	return nil
}

// Draw brackets f with BeginDrawing and EndDrawing.
func (w *Window) Draw(f func(*Canvas)) {
	w.BeginDrawing()
	f(&Canvas{w: w})
	w.EndDrawing()
}

// Canvas is the drawing surface handed to Draw callbacks.
type Canvas struct {
	w *Window
}

// ClearBackground fills the frame with c.
func (c *Canvas) ClearBackground(color colors.Color) {
	c.w.ClearBackground(color)
}

// DrawRectangle fills a rectangle. Negative positions are allowed and clip.
func (c *Canvas) DrawRectangle(x, y, width, height int, color colors.Color) {
	c.w.DrawRectangle(x, y, width, height, color)
}

// DrawText draws text; see Window.DrawText.
func (c *Canvas) DrawText(text string, x, y, size int, color colors.Color) error {
	return c.w.DrawText(text, x, y, size, color)
}

// Mode3D brackets f with BeginMode3D and EndMode3D.
func (c *Canvas) Mode3D(cam camera.Camera, f func(*Scene)) {
	c.w.BeginMode3D(cam)
	f(&Scene{w: c.w})
	c.w.EndMode3D()
}

// Scene is the world-space drawing surface handed to Mode3D callbacks.
type Scene struct {
	w *Window
}

// DrawCube draws a box centered at center.
func (s *Scene) DrawCube(center math.Vec3, width, height, length float32, color colors.Color) {
	s.w.DrawCube(center, width, height, length, color)
}

// DrawSphere draws a sphere.
func (s *Scene) DrawSphere(center math.Vec3, radius float32, color colors.Color) {
	s.w.DrawSphere(center, radius, color)
}

// DrawCylinder draws a cylinder between two points.
func (s *Scene) DrawCylinder(start, end math.Vec3, radius float32, color colors.Color) {
	s.w.DrawCylinder(start, end, radius, color)
}
