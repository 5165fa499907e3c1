package camera

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/donkey/pkg/math"
)

func newTestCamera() Camera {
	return New(
		math.Vec3{X: 0, Y: 2, Z: 10},
		math.Vec3{X: 0, Y: 2, Z: 0},
		math.Vec3{X: 0, Y: 1, Z: 0},
		45,
		Perspective,
	)
}

func TestDirections(t *testing.T) {
	c := newTestCamera()

	if got := c.Forward(); !near(got, math.Vec3{Z: -1}, 1e-6) {
		t.Errorf("Forward() = %v", got)
	}
	if got := c.Right(); !near(got, math.Vec3{X: 1}, 1e-6) {
		t.Errorf("Right() = %v", got)
	}
	c.Up = math.Vec3{Y: 3}
	if got := c.UpVector(); got != (math.Vec3{Y: 1}) {
		t.Errorf("UpVector() = %v", got)
	}
}

func TestMoveForwardInWorldPlane(t *testing.T) {
	c := New(math.Vec3{}, math.Vec3{X: 0, Y: -5, Z: -5}, math.Vec3{Y: 1}, 45, Perspective)

	c.MoveForward(1, true)
	if c.Position.Y != 0 {
		t.Errorf("world-plane move changed height: %v", c.Position)
	}
	if !near(c.Position, math.Vec3{Z: -1}, 1e-6) {
		t.Errorf("Position = %v, want (0, 0, -1)", c.Position)
	}

	c = New(math.Vec3{}, math.Vec3{X: 0, Y: -5, Z: -5}, math.Vec3{Y: 1}, 45, Perspective)
	c.MoveForward(1, false)
	if c.Position.Y >= 0 {
		t.Errorf("free move should descend along the view, got %v", c.Position)
	}
	if l := c.Position.Length(); gomath.Abs(float64(l-1)) > 1e-6 {
		t.Errorf("free move length = %v, want 1", l)
	}
}

func TestMoveKeepsTargetOffset(t *testing.T) {
	c := newTestCamera()
	offset := c.Target.Sub(c.Position)

	c.MoveRight(3, false)
	c.MoveUp(-2)
	c.MoveForward(0.5, true)

	if got := c.Target.Sub(c.Position); !near(got, offset, 1e-5) {
		t.Errorf("target offset changed: %v, want %v", got, offset)
	}
}

func TestMoveToTarget(t *testing.T) {
	c := newTestCamera()

	c.MoveToTarget(-4)
	if d := c.Position.Distance(c.Target); gomath.Abs(float64(d-6)) > 1e-5 {
		t.Errorf("distance after -4 = %v, want 6", d)
	}

	c.MoveToTarget(-100)
	if d := c.Position.Distance(c.Target); gomath.Abs(float64(d-0.001)) > 1e-6 {
		t.Errorf("distance clamps to %v, want 0.001", d)
	}
	if c.Target != (math.Vec3{Y: 2}) {
		t.Errorf("target moved: %v", c.Target)
	}
}

func TestYawAroundSelfAndTarget(t *testing.T) {
	c := newTestCamera()
	c.Yaw(float32(gomath.Pi/2), false)
	if c.Position != (math.Vec3{Y: 2, Z: 10}) {
		t.Errorf("yaw around self moved position: %v", c.Position)
	}
	if !near(c.Target, math.Vec3{X: -10, Y: 2, Z: 10}, 1e-4) {
		t.Errorf("Target = %v, want (-10, 2, 10)", c.Target)
	}

	c = newTestCamera()
	c.Yaw(float32(gomath.Pi/2), true)
	if c.Target != (math.Vec3{Y: 2}) {
		t.Errorf("yaw around target moved target: %v", c.Target)
	}
	if !near(c.Position, math.Vec3{X: 10, Y: 2}, 1e-4) {
		t.Errorf("Position = %v, want (10, 2, 0)", c.Position)
	}
}

func TestPitchLockNeverFlips(t *testing.T) {
	for _, angle := range []float32{10, -10, 3.2, -3.2} {
		c := newTestCamera()
		c.Pitch(angle, true, false, false)

		view := c.Target.Sub(c.Position)
		toUp := c.UpVector().Angle(view)
		if toUp <= 0 || toUp >= float32(gomath.Pi) {
			t.Errorf("Pitch(%v) reached a pole: angle to up %v", angle, toUp)
		}
		if view.Z >= 0 {
			t.Errorf("Pitch(%v) flipped the view: %v", angle, view)
		}
	}
}

func TestPitchUnlockedCanFlip(t *testing.T) {
	c := newTestCamera()
	c.Pitch(float32(gomath.Pi), false, false, false)
	if view := c.Target.Sub(c.Position); view.Z <= 0 {
		t.Errorf("unlocked half-turn pitch should reverse the view, got %v", view)
	}
}

func TestPitchRotateUp(t *testing.T) {
	c := newTestCamera()
	c.Pitch(0.5, false, false, true)
	if dot := c.UpVector().Dot(c.Forward()); gomath.Abs(float64(dot)) > 1e-5 {
		t.Errorf("rotated up should stay perpendicular to forward, dot = %v", dot)
	}
}

func TestRoll(t *testing.T) {
	c := newTestCamera()
	c.Roll(float32(gomath.Pi / 2))
	if c.Position != (math.Vec3{Y: 2, Z: 10}) || c.Target != (math.Vec3{Y: 2}) {
		t.Error("roll must not move position or target")
	}
	if !near(c.Up, math.Vec3{X: 1}, 1e-6) && !near(c.Up, math.Vec3{X: -1}, 1e-6) {
		t.Errorf("Up after quarter roll = %v, want +-X", c.Up)
	}
}

func TestProjectionMatrix(t *testing.T) {
	c := newTestCamera()
	p := c.ProjectionMatrix(16.0 / 9.0)
	if p[11] != -1 || p[15] != 0 {
		t.Errorf("perspective matrix = %v", p)
	}

	c.Projection = Orthographic
	c.FovY = 10
	o := c.ProjectionMatrix(2)
	if o[15] != 1 || gomath.Abs(float64(o[5]-0.2)) > 1e-6 || gomath.Abs(float64(o[0]-0.1)) > 1e-6 {
		t.Errorf("orthographic matrix = %v", o)
	}
}

func TestModeParse(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"custom", Custom},
		{"Free", Free},
		{" orbital ", Orbital},
		{"first-person", FirstPerson},
		{"third_person", ThirdPerson},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if err != nil {
			t.Fatalf("ParseMode(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
		if back, _ := ParseMode(got.String()); back != got {
			t.Errorf("round trip of %v gave %v", got, back)
		}
	}

	if _, err := ParseMode("cinematic"); err == nil {
		t.Error("expected error for unknown mode")
	}
	if got := Mode(42).String(); got != "Mode(42)" {
		t.Errorf("Mode(42).String() = %q", got)
	}
}

func TestParseProjection(t *testing.T) {
	if p, err := ParseProjection("ortho"); err != nil || p != Orthographic {
		t.Errorf("ParseProjection(ortho) = %v, %v", p, err)
	}
	if p, err := ParseProjection(""); err != nil || p != Perspective {
		t.Errorf("ParseProjection(\"\") = %v, %v", p, err)
	}
	if _, err := ParseProjection("fisheye"); err == nil {
		t.Error("expected error for unknown projection")
	}
}

func near(a, b math.Vec3, eps float64) bool {
	return gomath.Abs(float64(a.X-b.X)) <= eps &&
		gomath.Abs(float64(a.Y-b.Y)) <= eps &&
		gomath.Abs(float64(a.Z-b.Z)) <= eps
}
