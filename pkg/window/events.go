package window

import (
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/donkey/pkg/input"
	"github.com/Faultbox/donkey/pkg/keys"
)

const axisMax = 32767

var mouseButtons = map[uint8]input.MouseButton{
	sdl.BUTTON_LEFT:   input.MouseLeft,
	sdl.BUTTON_RIGHT:  input.MouseRight,
	sdl.BUTTON_MIDDLE: input.MouseMiddle,
}

var gamepadAxes = map[sdl.GameControllerAxis]input.GamepadAxis{
	sdl.CONTROLLER_AXIS_LEFTX:        input.AxisLeftX,
	sdl.CONTROLLER_AXIS_LEFTY:        input.AxisLeftY,
	sdl.CONTROLLER_AXIS_RIGHTX:       input.AxisRightX,
	sdl.CONTROLLER_AXIS_RIGHTY:       input.AxisRightY,
	sdl.CONTROLLER_AXIS_TRIGGERLEFT:  input.AxisLeftTrigger,
	sdl.CONTROLLER_AXIS_TRIGGERRIGHT: input.AxisRightTrigger,
}

// pollEvents starts a new input frame and drains the SDL event queue into it.
func (w *Window) pollEvents() {
	w.input.BeginFrame()

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			w.shouldClose = true

		case *sdl.WindowEvent:
			switch e.Event {
			case sdl.WINDOWEVENT_RESIZED, sdl.WINDOWEVENT_SIZE_CHANGED:
				w.resize(int(e.Data1), int(e.Data2))
			case sdl.WINDOWEVENT_FOCUS_LOST:
				w.input.ReleaseAll()
			case sdl.WINDOWEVENT_CLOSE:
				w.shouldClose = true
			}

		case *sdl.KeyboardEvent:
			if e.Repeat != 0 {
				continue
			}
			k := keyFromScancode(e.Keysym.Scancode)
			down := e.Type == sdl.KEYDOWN
			w.input.SetKey(k, down)
			if down && k != keys.Null && k == w.exitKey {
				w.shouldClose = true
			}

		case *sdl.MouseMotionEvent:
			w.input.SetMousePosition(float32(e.X), float32(e.Y))
			w.input.AddMouseMotion(float32(e.XRel), float32(e.YRel))

		case *sdl.MouseButtonEvent:
			if b, ok := mouseButtons[e.Button]; ok {
				w.input.SetMouseButton(b, e.State == sdl.PRESSED)
			}

		case *sdl.MouseWheelEvent:
			w.input.AddWheel(float32(e.Y))

		case *sdl.ControllerDeviceEvent:
			switch e.Type {
			case sdl.CONTROLLERDEVICEADDED:
				w.openGamepad(int(e.Which))
			case sdl.CONTROLLERDEVICEREMOVED:
				w.closeGamepad(e.Which)
			}

		case *sdl.ControllerAxisEvent:
			if w.gamepad == nil || e.Which != w.gamepad.Joystick().InstanceID() {
				continue
			}
			if axis, ok := gamepadAxes[sdl.GameControllerAxis(e.Axis)]; ok {
				w.input.SetAxis(axis, float32(e.Value)/axisMax)
			}
		}
	}
}

// openGamepad opens the controller at a device index if none is open yet.
func (w *Window) openGamepad(index int) {
	if w.gamepad != nil || !sdl.IsGameController(index) {
		return
	}
	ctrl := sdl.GameControllerOpen(index)
	if ctrl == nil {
		w.log.Warn("failed to open gamepad", zap.Int("index", index), zap.Error(sdl.GetError()))
		return
	}
	w.gamepad = ctrl
	w.input.SetGamepad(true)
	w.log.Info("gamepad connected", zap.String("name", ctrl.Name()))
}

func (w *Window) closeGamepad(id sdl.JoystickID) {
	if w.gamepad == nil || w.gamepad.Joystick().InstanceID() != id {
		return
	}
	w.log.Info("gamepad disconnected", zap.String("name", w.gamepad.Name()))
	w.gamepad.Close()
	w.gamepad = nil
	w.input.SetGamepad(false)
}

var scancodes = buildScancodes()

func buildScancodes() map[sdl.Scancode]keys.Key {
	m := map[sdl.Scancode]keys.Key{
		sdl.SCANCODE_0:            keys.Zero,
		sdl.SCANCODE_SPACE:        keys.Space,
		sdl.SCANCODE_APOSTROPHE:   keys.Apostrophe,
		sdl.SCANCODE_COMMA:        keys.Comma,
		sdl.SCANCODE_MINUS:        keys.Minus,
		sdl.SCANCODE_PERIOD:       keys.Period,
		sdl.SCANCODE_SLASH:        keys.Slash,
		sdl.SCANCODE_SEMICOLON:    keys.Semicolon,
		sdl.SCANCODE_EQUALS:       keys.Equal,
		sdl.SCANCODE_LEFTBRACKET:  keys.LeftBracket,
		sdl.SCANCODE_BACKSLASH:    keys.Backslash,
		sdl.SCANCODE_RIGHTBRACKET: keys.RightBracket,
		sdl.SCANCODE_GRAVE:        keys.Grave,
		sdl.SCANCODE_ESCAPE:       keys.Escape,
		sdl.SCANCODE_RETURN:       keys.Enter,
		sdl.SCANCODE_TAB:          keys.Tab,
		sdl.SCANCODE_BACKSPACE:    keys.Backspace,
		sdl.SCANCODE_INSERT:       keys.Insert,
		sdl.SCANCODE_DELETE:       keys.Delete,
		sdl.SCANCODE_RIGHT:        keys.Right,
		sdl.SCANCODE_LEFT:         keys.Left,
		sdl.SCANCODE_DOWN:         keys.Down,
		sdl.SCANCODE_UP:           keys.Up,
		sdl.SCANCODE_PAGEUP:       keys.PageUp,
		sdl.SCANCODE_PAGEDOWN:     keys.PageDown,
		sdl.SCANCODE_HOME:         keys.Home,
		sdl.SCANCODE_END:          keys.End,
		sdl.SCANCODE_CAPSLOCK:     keys.CapsLock,
		sdl.SCANCODE_SCROLLLOCK:   keys.ScrollLock,
		sdl.SCANCODE_NUMLOCKCLEAR: keys.NumLock,
		sdl.SCANCODE_PRINTSCREEN:  keys.PrintScreen,
		sdl.SCANCODE_PAUSE:        keys.Pause,
		sdl.SCANCODE_LSHIFT:       keys.LeftShift,
		sdl.SCANCODE_LCTRL:        keys.LeftControl,
		sdl.SCANCODE_LALT:         keys.LeftAlt,
		sdl.SCANCODE_LGUI:         keys.LeftSuper,
		sdl.SCANCODE_RSHIFT:       keys.RightShift,
		sdl.SCANCODE_RCTRL:        keys.RightControl,
		sdl.SCANCODE_RALT:         keys.RightAlt,
		sdl.SCANCODE_RGUI:         keys.RightSuper,
		sdl.SCANCODE_KP_0:         keys.KP0,
		sdl.SCANCODE_KP_PERIOD:    keys.KPDecimal,
		sdl.SCANCODE_KP_DIVIDE:    keys.KPDivide,
		sdl.SCANCODE_KP_MULTIPLY:  keys.KPMultiply,
		sdl.SCANCODE_KP_MINUS:     keys.KPSubtract,
		sdl.SCANCODE_KP_PLUS:      keys.KPAdd,
		sdl.SCANCODE_KP_ENTER:     keys.KPEnter,
		sdl.SCANCODE_KP_EQUALS:    keys.KPEqual,
	}

	// SDL orders these ranges contiguously: A..Z, 1..9, F1..F12, KP_1..KP_9.
	for i := 0; i < 26; i++ {
		m[sdl.Scancode(sdl.SCANCODE_A)+sdl.Scancode(i)] = keys.A + keys.Key(i)
	}
	for i := 0; i < 9; i++ {
		m[sdl.Scancode(sdl.SCANCODE_1)+sdl.Scancode(i)] = keys.One + keys.Key(i)
		m[sdl.Scancode(sdl.SCANCODE_KP_1)+sdl.Scancode(i)] = keys.KP1 + keys.Key(i)
	}
	for i := 0; i < 12; i++ {
		m[sdl.Scancode(sdl.SCANCODE_F1)+sdl.Scancode(i)] = keys.F1 + keys.Key(i)
	}
	return m
}

func keyFromScancode(sc sdl.Scancode) keys.Key {
	return scancodes[sc]
}
