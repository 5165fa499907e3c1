package window

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/donkey/pkg/camera"
	"github.com/Faultbox/donkey/pkg/input"
	"github.com/Faultbox/donkey/pkg/keys"
	"github.com/Faultbox/donkey/pkg/math"
)

// Input returns the per-frame input state filled by ShouldClose.
func (w *Window) Input() *input.State {
	return w.input
}

// KeyDown reports whether k is held.
func (w *Window) KeyDown(k keys.Key) bool {
	return w.input.KeyDown(k)
}

// KeyPressed reports whether k went down since the previous frame.
func (w *Window) KeyPressed(k keys.Key) bool {
	return w.input.KeyPressed(k)
}

// KeyReleased reports whether k went up since the previous frame.
func (w *Window) KeyReleased(k keys.Key) bool {
	return w.input.KeyReleased(k)
}

// MouseButtonDown reports whether b is held.
func (w *Window) MouseButtonDown(b input.MouseButton) bool {
	return w.input.MouseButtonDown(b)
}

// MousePosition returns the cursor position in screen coordinates.
func (w *Window) MousePosition() math.Vec2 {
	return w.input.MousePosition()
}

// MouseDelta returns the mouse motion of this frame.
func (w *Window) MouseDelta() math.Vec2 {
	return w.input.MouseDelta()
}

// MouseWheel returns the vertical wheel motion of this frame.
func (w *Window) MouseWheel() float32 {
	return w.input.MouseWheel()
}

// GamepadAvailable reports whether a gamepad is connected.
func (w *Window) GamepadAvailable() bool {
	return w.input.GamepadAvailable()
}

// GamepadAxis returns an axis value in [-1, 1].
func (w *Window) GamepadAxis(axis input.GamepadAxis) float32 {
	return w.input.GamepadAxis(axis)
}

// DisableCursor hides the cursor and reports unbounded relative motion,
// as first-person controls want.
func (w *Window) DisableCursor() {
	sdl.SetRelativeMouseMode(true)
}

// EnableCursor shows the cursor again.
func (w *Window) EnableCursor() {
	sdl.SetRelativeMouseMode(false)
}

// UpdateCamera moves cam for one frame according to mode and this frame's input.
func (w *Window) UpdateCamera(cam *camera.Camera, mode camera.Mode) {
	camera.Update(cam, mode, w.input.FrameInput(w.timer.FrameTime()))
}
