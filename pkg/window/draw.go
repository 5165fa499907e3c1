package window

import (
	"errors"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/donkey/internal/cstr"
	"github.com/Faultbox/donkey/internal/engine/frame"
	"github.com/Faultbox/donkey/internal/engine/mesh"
	"github.com/Faultbox/donkey/pkg/camera"
	"github.com/Faultbox/donkey/pkg/colors"
	"github.com/Faultbox/donkey/pkg/math"
)

// BeginDrawing opens the frame. Every draw call must sit between
// BeginDrawing and EndDrawing.
func (w *Window) BeginDrawing() {
	if err := w.scopes.BeginDrawing(); err != nil {
		w.misuse("BeginDrawing", err)
	}
}

// EndDrawing flushes queued geometry, presents the frame and waits out the
// target frame time. An open 3D scope is closed first.
func (w *Window) EndDrawing() {
	if w.scopes.In3D() {
		w.renderer.flush3D(w.viewProj)
	}
	if err := w.scopes.EndDrawing(); err != nil {
		w.misuse("EndDrawing", err)
		if errors.Is(err, frame.ErrNotDrawing) {
			return
		}
	}

	w.renderer.flush2D()
	w.sdlWindow.GLSwap()
	w.timer.EndFrame()
}

// ClearBackground fills the frame with c and discards anything queued.
func (w *Window) ClearBackground(c colors.Color) {
	if err := w.scopes.Check2D(); err != nil {
		w.misuse("ClearBackground", err)
		return
	}
	w.renderer.clear(c)
}

// DrawRectangle fills a rectangle given in screen coordinates.
func (w *Window) DrawRectangle(x, y, width, height int, c colors.Color) {
	if err := w.scopes.Check2D(); err != nil {
		w.misuse("DrawRectangle", err)
		return
	}
	w.renderer.rect(float32(x), float32(y), float32(width), float32(height), c)
}

// DrawText draws text with the built-in font; size is the line height in pixels.
func (w *Window) DrawText(text string, x, y, size int, c colors.Color) error {
	if err := cstr.Check(text); err != nil {
		return err
	}
	if err := w.scopes.Check2D(); err != nil {
		w.misuse("DrawText", err)
		return nil
	}
	w.renderer.text(text, float32(x), float32(y), size, c)
	return nil
}

// MeasureText returns the width in pixels of text drawn at size.
func (w *Window) MeasureText(text string, size int) (int, error) {
	if err := cstr.Check(text); err != nil {
		return 0, err
	}
	width, _ := w.renderer.atlas.Measure(text, size)
	return width, nil
}

// BeginMode3D starts drawing in world space as seen by cam. 2D calls made
// so far are flushed first so they stay underneath.
func (w *Window) BeginMode3D(cam camera.Camera) {
	if err := w.scopes.BeginMode3D(); err != nil {
		w.misuse("BeginMode3D", err)
		return
	}
	w.renderer.flush2D()

	aspect := float32(w.width) / float32(w.height)
	w.viewProj = cam.ProjectionMatrix(aspect).Mul(cam.ViewMatrix())
	gl.Clear(gl.DEPTH_BUFFER_BIT)
}

// EndMode3D draws the queued 3D geometry and returns to screen space.
func (w *Window) EndMode3D() {
	if err := w.scopes.EndMode3D(); err != nil {
		w.misuse("EndMode3D", err)
		return
	}
	w.renderer.flush3D(w.viewProj)
}

// DrawCube draws a box centered at center.
func (w *Window) DrawCube(center math.Vec3, width, height, length float32, c colors.Color) {
	if err := w.scopes.Check3D(); err != nil {
		w.misuse("DrawCube", err)
		return
	}
	w.renderer.mesh(mesh.Cube(center, width, height, length), c)
}

// DrawSphere draws a sphere centered at center.
func (w *Window) DrawSphere(center math.Vec3, radius float32, c colors.Color) {
	if err := w.scopes.Check3D(); err != nil {
		w.misuse("DrawSphere", err)
		return
	}
	w.renderer.mesh(mesh.Sphere(center, radius, mesh.SphereRings, mesh.SphereSlices), c)
}

// DrawCylinder draws a capped cylinder between two points.
func (w *Window) DrawCylinder(start, end math.Vec3, radius float32, c colors.Color) {
	if err := w.scopes.Check3D(); err != nil {
		w.misuse("DrawCylinder", err)
		return
	}
	w.renderer.mesh(mesh.Cylinder(start, end, radius, mesh.CylinderSlices), c)
}
