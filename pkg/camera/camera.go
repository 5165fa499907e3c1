// Package camera provides a 3D camera and the per-frame controller that
// moves it from keyboard, mouse and gamepad input.
package camera

import (
	gomath "math"

	"github.com/Faultbox/donkey/pkg/math"
)

// Projection selects how the camera maps the view volume to the screen.
type Projection int32

const (
	// Perspective uses FovY as the vertical field of view in degrees.
	Perspective Projection = iota
	// Orthographic uses FovY as the height of the view volume in world units.
	Orthographic
)

// Clip distances used by ProjectionMatrix.
const (
	NearPlane float32 = 0.01
	FarPlane  float32 = 1000.0
)

// pitchLockMargin keeps a locked pitch just short of the up/down poles.
const pitchLockMargin = 0.001

// Camera is a look-at camera. It owns no resources.
type Camera struct {
	Position   math.Vec3
	Target     math.Vec3
	Up         math.Vec3
	FovY       float32
	Projection Projection
}

// New creates a camera with the given framing.
func New(position, target, up math.Vec3, fovy float32, projection Projection) Camera {
	return Camera{
		Position:   position,
		Target:     target,
		Up:         up,
		FovY:       fovy,
		Projection: projection,
	}
}

// Forward returns the normalized view direction.
func (c *Camera) Forward() math.Vec3 {
	return c.Target.Sub(c.Position).Normalize()
}

// UpVector returns the normalized up direction.
func (c *Camera) UpVector() math.Vec3 {
	return c.Up.Normalize()
}

// Right returns the normalized right direction (forward x up).
func (c *Camera) Right() math.Vec3 {
	return c.Forward().Cross(c.UpVector()).Normalize()
}

// MoveForward translates position and target along the view direction.
// With inWorldPlane the direction is flattened onto the XZ plane first.
func (c *Camera) MoveForward(distance float32, inWorldPlane bool) {
	forward := c.Forward()
	if inWorldPlane {
		forward.Y = 0
		forward = forward.Normalize()
	}
	c.translate(forward.Scale(distance))
}

// MoveUp translates position and target along the up vector.
func (c *Camera) MoveUp(distance float32) {
	c.translate(c.UpVector().Scale(distance))
}

// MoveRight translates position and target along the right vector.
// With inWorldPlane the direction is flattened onto the XZ plane first.
func (c *Camera) MoveRight(distance float32, inWorldPlane bool) {
	right := c.Right()
	if inWorldPlane {
		right.Y = 0
		right = right.Normalize()
	}
	c.translate(right.Scale(distance))
}

// MoveToTarget changes the distance to the target by delta, keeping the
// target fixed. The distance never drops below 0.001.
func (c *Camera) MoveToTarget(delta float32) {
	distance := c.Position.Distance(c.Target) + delta
	if distance <= 0 {
		distance = 0.001
	}
	forward := c.Forward()
	c.Position = c.Target.Add(forward.Scale(-distance))
}

// Yaw rotates the view around the up vector. With aroundTarget the camera
// swings around its target, otherwise the target swings around the camera.
func (c *Camera) Yaw(angle float32, aroundTarget bool) {
	up := c.UpVector()
	view := c.Target.Sub(c.Position).RotateByAxisAngle(up, angle)
	c.applyView(view, aroundTarget)
}

// Pitch rotates the view around the right vector. lockView clamps the
// rotation so the view never passes straight up or down. rotateUp also
// rotates the up vector.
func (c *Camera) Pitch(angle float32, lockView, aroundTarget, rotateUp bool) {
	up := c.UpVector()
	view := c.Target.Sub(c.Position)

	if lockView {
		maxAngleUp := up.Angle(view) - pitchLockMargin
		if angle > maxAngleUp {
			angle = maxAngleUp
		}

		maxAngleDown := -up.Negate().Angle(view) + pitchLockMargin
		if angle < maxAngleDown {
			angle = maxAngleDown
		}
	}

	right := c.Right()
	view = view.RotateByAxisAngle(right, angle)
	c.applyView(view, aroundTarget)

	if rotateUp {
		c.Up = c.Up.RotateByAxisAngle(right, angle)
	}
}

// Roll rotates the up vector around the view direction.
func (c *Camera) Roll(angle float32) {
	c.Up = c.Up.RotateByAxisAngle(c.Forward(), angle)
}

// ViewMatrix returns the world-to-view matrix.
func (c *Camera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Target, c.Up)
}

// ProjectionMatrix returns the projection for the given width/height ratio.
func (c *Camera) ProjectionMatrix(aspect float32) math.Mat4 {
	if c.Projection == Orthographic {
		top := c.FovY / 2
		right := top * aspect
		return math.Ortho(-right, right, -top, top, NearPlane, FarPlane)
	}
	fovy := c.FovY * float32(gomath.Pi/180)
	return math.Perspective(fovy, aspect, NearPlane, FarPlane)
}

func (c *Camera) translate(offset math.Vec3) {
	c.Position = c.Position.Add(offset)
	c.Target = c.Target.Add(offset)
}

func (c *Camera) applyView(view math.Vec3, aroundTarget bool) {
	if aroundTarget {
		c.Position = c.Target.Sub(view)
	} else {
		c.Target = c.Position.Add(view)
	}
}
