package camera

import (
	"github.com/Faultbox/donkey/pkg/keys"
	"github.com/Faultbox/donkey/pkg/math"
)

// Controller speeds. Only OrbitalSpeed is scaled by frame time; every other
// step is applied once per Update call.
const (
	OrbitalSpeed         float32 = 0.5   // radians per second
	RotationSpeed        float32 = 0.03  // radians per call
	PanSpeed             float32 = 0.2   // units per call
	MouseMoveSensitivity float32 = 0.003 // radians per pixel
	MoveSpeed            float32 = 0.09  // units per call
	GamepadDeadZone      float32 = 0.25
	ZoomStep             float32 = 2.0
)

// KeyState answers key queries for the current frame.
type KeyState interface {
	// KeyDown reports whether k is held this frame.
	KeyDown(k keys.Key) bool
	// KeyPressed reports whether k went down this frame.
	KeyPressed(k keys.Key) bool
}

// FrameInput is one frame's worth of input signals.
type FrameInput struct {
	FrameTime  float32 // seconds since the previous frame
	MouseDelta math.Vec2
	MouseWheel float32
	Keys       KeyState

	MouseLeftDown   bool
	MouseMiddleDown bool

	GamepadAvailable bool
	LeftStick        math.Vec2
	RightStick       math.Vec2
}

type noKeys struct{}

func (noKeys) KeyDown(keys.Key) bool    { return false }
func (noKeys) KeyPressed(keys.Key) bool { return false }

// Update moves cam for one frame according to mode and in. Call it at most
// once per frame per camera; extra calls compound the movement.
func Update(cam *Camera, mode Mode, in FrameInput) {
	kb := in.Keys
	if kb == nil {
		kb = noKeys{}
	}

	inWorldPlane := mode.moveInWorldPlane()
	aroundTarget := mode.rotateAroundTarget()
	lockView := mode.lockView()
	const rotateUp = false

	if mode == Orbital {
		rotation := math.Rotate(cam.UpVector(), OrbitalSpeed*in.FrameTime)
		view := cam.Position.Sub(cam.Target).Transform(rotation)
		cam.Position = cam.Target.Add(view)
	} else {
		if kb.KeyDown(keys.Down) {
			cam.Pitch(-RotationSpeed, lockView, aroundTarget, rotateUp)
		}
		if kb.KeyDown(keys.Up) {
			cam.Pitch(RotationSpeed, lockView, aroundTarget, rotateUp)
		}
		if kb.KeyDown(keys.Right) {
			cam.Yaw(-RotationSpeed, aroundTarget)
		}
		if kb.KeyDown(keys.Left) {
			cam.Yaw(RotationSpeed, aroundTarget)
		}
		if kb.KeyDown(keys.Q) {
			cam.Roll(-RotationSpeed)
		}
		if kb.KeyDown(keys.E) {
			cam.Roll(RotationSpeed)
		}

		if !in.GamepadAvailable {
			switch {
			case mode == Free && in.MouseMiddleDown:
				pan(cam, in.MouseDelta, inWorldPlane)
			case in.MouseLeftDown:
				cam.Yaw(-in.MouseDelta.X*MouseMoveSensitivity, aroundTarget)
				cam.Pitch(-in.MouseDelta.Y*MouseMoveSensitivity, lockView, aroundTarget, rotateUp)
			}

			if kb.KeyDown(keys.W) {
				cam.MoveForward(MoveSpeed, inWorldPlane)
			}
			if kb.KeyDown(keys.A) {
				cam.MoveRight(-MoveSpeed, inWorldPlane)
			}
			if kb.KeyDown(keys.S) {
				cam.MoveForward(-MoveSpeed, inWorldPlane)
			}
			if kb.KeyDown(keys.D) {
				cam.MoveRight(MoveSpeed, inWorldPlane)
			}
		} else {
			cam.Yaw(-(in.RightStick.X*2)*MouseMoveSensitivity, aroundTarget)
			cam.Pitch(-(in.RightStick.Y*2)*MouseMoveSensitivity, lockView, aroundTarget, rotateUp)

			if in.LeftStick.Y <= -GamepadDeadZone {
				cam.MoveForward(MoveSpeed, inWorldPlane)
			}
			if in.LeftStick.X <= -GamepadDeadZone {
				cam.MoveRight(-MoveSpeed, inWorldPlane)
			}
			if in.LeftStick.Y >= GamepadDeadZone {
				cam.MoveForward(-MoveSpeed, inWorldPlane)
			}
			if in.LeftStick.X >= GamepadDeadZone {
				cam.MoveRight(MoveSpeed, inWorldPlane)
			}
		}

		if mode == Free {
			if kb.KeyDown(keys.Space) {
				cam.MoveUp(MoveSpeed)
			}
			if kb.KeyDown(keys.LeftControl) {
				cam.MoveUp(-MoveSpeed)
			}
		}
	}

	if mode.zooms() {
		cam.MoveToTarget(-in.MouseWheel)
		if kb.KeyPressed(keys.KPSubtract) {
			cam.MoveToTarget(ZoomStep)
		}
		if kb.KeyPressed(keys.KPAdd) {
			cam.MoveToTarget(-ZoomStep)
		}
	}
}

// pan slides the camera by a fixed step per nonzero mouse delta component.
func pan(cam *Camera, delta math.Vec2, inWorldPlane bool) {
	if delta.X > 0 {
		cam.MoveRight(PanSpeed, inWorldPlane)
	}
	if delta.X < 0 {
		cam.MoveRight(-PanSpeed, inWorldPlane)
	}
	if delta.Y > 0 {
		cam.MoveUp(-PanSpeed)
	}
	if delta.Y < 0 {
		cam.MoveUp(PanSpeed)
	}
}
