// Package input tracks per-frame keyboard, mouse and gamepad state and
// derives pressed/released edges from it.
package input

import (
	"github.com/Faultbox/donkey/pkg/camera"
	"github.com/Faultbox/donkey/pkg/keys"
	"github.com/Faultbox/donkey/pkg/math"
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
	mouseButtonCount
)

// GamepadAxis identifies an analog gamepad axis.
type GamepadAxis uint8

const (
	AxisLeftX GamepadAxis = iota
	AxisLeftY
	AxisRightX
	AxisRightY
	AxisLeftTrigger
	AxisRightTrigger
	axisCount
)

// maxKeys bounds the key code table; every code in package keys fits.
const maxKeys = 512

// State holds the input of the current frame. Pressed and released are
// latched on each transition, so a tap that starts and ends between two
// frames still reports both edges.
// The zero value is ready to use.
type State struct {
	keys     [maxKeys]bool
	pressed  [maxKeys]bool
	released [maxKeys]bool

	buttons        [mouseButtonCount]bool
	buttonsPressed [mouseButtonCount]bool

	mouseX, mouseY float32
	mouseDelta     math.Vec2
	wheel          float32

	gamepad bool
	axes    [axisCount]float32
}

// New creates an empty input state.
func New() *State {
	return &State{}
}

// BeginFrame clears edges and per-frame deltas. Call it once per frame
// before recording new input.
func (s *State) BeginFrame() {
	s.pressed = [maxKeys]bool{}
	s.released = [maxKeys]bool{}
	s.buttonsPressed = [mouseButtonCount]bool{}
	s.mouseDelta = math.Vec2{}
	s.wheel = 0
}

// SetKey records a key transition. Unknown codes are ignored.
func (s *State) SetKey(k keys.Key, down bool) {
	if k <= keys.Null || int(k) >= maxKeys {
		return
	}
	switch {
	case down && !s.keys[k]:
		s.pressed[k] = true
	case !down && s.keys[k]:
		s.released[k] = true
	}
	s.keys[k] = down
}

// ReleaseAll marks every key and button as up, e.g. when the window loses focus.
func (s *State) ReleaseAll() {
	for k, down := range s.keys {
		if down {
			s.released[k] = true
		}
	}
	s.keys = [maxKeys]bool{}
	s.buttons = [mouseButtonCount]bool{}
}

// SetMouseButton records a mouse button transition.
func (s *State) SetMouseButton(b MouseButton, down bool) {
	if b >= mouseButtonCount {
		return
	}
	if down && !s.buttons[b] {
		s.buttonsPressed[b] = true
	}
	s.buttons[b] = down
}

// SetMousePosition records the absolute cursor position.
func (s *State) SetMousePosition(x, y float32) {
	s.mouseX, s.mouseY = x, y
}

// AddMouseMotion accumulates relative mouse motion for this frame.
func (s *State) AddMouseMotion(dx, dy float32) {
	s.mouseDelta = s.mouseDelta.Add(math.Vec2{X: dx, Y: dy})
}

// AddWheel accumulates vertical wheel movement for this frame.
func (s *State) AddWheel(dy float32) {
	s.wheel += dy
}

// SetGamepad records whether a gamepad is connected. Disconnecting zeroes
// the axes.
func (s *State) SetGamepad(available bool) {
	s.gamepad = available
	if !available {
		s.axes = [axisCount]float32{}
	}
}

// SetAxis records an axis value in [-1, 1].
func (s *State) SetAxis(axis GamepadAxis, value float32) {
	if axis >= axisCount {
		return
	}
	if value > 1 {
		value = 1
	}
	if value < -1 {
		value = -1
	}
	s.axes[axis] = value
}

// KeyDown reports whether k is held.
func (s *State) KeyDown(k keys.Key) bool {
	return validKey(k) && s.keys[k]
}

// KeyPressed reports whether k went down this frame, even if it is up again.
func (s *State) KeyPressed(k keys.Key) bool {
	return validKey(k) && s.pressed[k]
}

// KeyReleased reports whether k went up this frame.
func (s *State) KeyReleased(k keys.Key) bool {
	return validKey(k) && s.released[k]
}

// MouseButtonDown reports whether b is held.
func (s *State) MouseButtonDown(b MouseButton) bool {
	return b < mouseButtonCount && s.buttons[b]
}

// MouseButtonPressed reports whether b went down this frame.
func (s *State) MouseButtonPressed(b MouseButton) bool {
	return b < mouseButtonCount && s.buttonsPressed[b]
}

// MousePosition returns the last recorded cursor position.
func (s *State) MousePosition() math.Vec2 {
	return math.Vec2{X: s.mouseX, Y: s.mouseY}
}

// MouseDelta returns the mouse motion accumulated this frame.
func (s *State) MouseDelta() math.Vec2 {
	return s.mouseDelta
}

// MouseWheel returns the wheel movement accumulated this frame.
func (s *State) MouseWheel() float32 {
	return s.wheel
}

// GamepadAvailable reports whether a gamepad is connected.
func (s *State) GamepadAvailable() bool {
	return s.gamepad
}

// GamepadAxis returns the value of axis, or 0 without a gamepad.
func (s *State) GamepadAxis(axis GamepadAxis) float32 {
	if !s.gamepad || axis >= axisCount {
		return 0
	}
	return s.axes[axis]
}

// FrameInput packages this frame's state for camera.Update.
func (s *State) FrameInput(frameTime float32) camera.FrameInput {
	return camera.FrameInput{
		FrameTime:        frameTime,
		MouseDelta:       s.mouseDelta,
		MouseWheel:       s.wheel,
		Keys:             s,
		MouseLeftDown:    s.buttons[MouseLeft],
		MouseMiddleDown:  s.buttons[MouseMiddle],
		GamepadAvailable: s.gamepad,
		LeftStick:        math.Vec2{X: s.GamepadAxis(AxisLeftX), Y: s.GamepadAxis(AxisLeftY)},
		RightStick:       math.Vec2{X: s.GamepadAxis(AxisRightX), Y: s.GamepadAxis(AxisRightY)},
	}
}

func validKey(k keys.Key) bool {
	return k > keys.Null && int(k) < maxKeys
}
