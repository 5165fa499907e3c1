package mesh

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/donkey/pkg/math"
)

func near(a, b float32) bool {
	return gomath.Abs(float64(a-b)) < 1e-4
}

// checkOutward verifies every non-degenerate triangle faces away from center,
// which holds for convex shapes.
func checkOutward(t *testing.T, m Mesh, center math.Vec3) {
	t.Helper()
	for i := 0; i+2 < len(m.Vertices); i += 3 {
		a, b, c := m.Vertices[i].Position, m.Vertices[i+1].Position, m.Vertices[i+2].Position
		n := b.Sub(a).Cross(c.Sub(a))
		if n.Length() < 1e-6 {
			continue
		}
		centroid := a.Add(b).Add(c).Scale(1.0 / 3)
		if n.Dot(centroid.Sub(center)) <= 0 {
			t.Fatalf("triangle %d winds inward", i/3)
		}
	}
}

func TestCube(t *testing.T) {
	center := math.Vec3{X: 1, Y: 2, Z: 3}
	m := Cube(center, 2, 4, 6)

	if len(m.Vertices) != 36 {
		t.Fatalf("got %d vertices, want 36", len(m.Vertices))
	}

	min, max := m.Bounds()
	if min != (math.Vec3{X: 0, Y: 0, Z: 0}) || max != (math.Vec3{X: 2, Y: 4, Z: 6}) {
		t.Errorf("bounds = %v..%v", min, max)
	}

	for _, v := range m.Vertices {
		if v.Normal.Length() != 1 {
			t.Errorf("normal %v is not unit", v.Normal)
		}
	}
	checkOutward(t, m, center)
}

func TestCubeFaceBasis(t *testing.T) {
	for _, f := range cubeFaces {
		if f.u.Cross(f.v) != f.n {
			t.Errorf("u × v = %v, want %v", f.u.Cross(f.v), f.n)
		}
	}
}

func TestSphere(t *testing.T) {
	center := math.Vec3{X: -1, Y: 0.5}
	m := Sphere(center, 2, SphereRings, SphereSlices)

	if got, want := len(m.Vertices), SphereRings*SphereSlices*6; got != want {
		t.Fatalf("got %d vertices, want %d", got, want)
	}
	for _, v := range m.Vertices {
		if d := v.Position.Distance(center); !near(d, 2) {
			t.Fatalf("vertex %v at distance %v, want 2", v.Position, d)
		}
		if !near(v.Normal.Length(), 1) {
			t.Fatalf("normal %v is not unit", v.Normal)
		}
	}
	checkOutward(t, m, center)

	if len(Sphere(center, 1, 1, 16).Vertices) != 0 {
		t.Error("too few rings should produce an empty mesh")
	}
}

func TestCylinder(t *testing.T) {
	tests := []struct {
		name       string
		start, end math.Vec3
	}{
		{"vertical", math.Vec3{}, math.Vec3{Y: 3}},
		{"horizontal", math.Vec3{X: -1, Z: 2}, math.Vec3{X: 4, Z: 2}},
		{"diagonal", math.Vec3{X: 1, Y: 1, Z: 1}, math.Vec3{X: 3, Y: -2, Z: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Cylinder(tt.start, tt.end, 0.5, CylinderSlices)
			if len(m.Vertices) != CylinderSlices*12 {
				t.Fatalf("got %d vertices, want %d", len(m.Vertices), CylinderSlices*12)
			}

			axis := tt.end.Sub(tt.start)
			dir := axis.Normalize()
			for _, v := range m.Vertices {
				rel := v.Position.Sub(tt.start)
				along := rel.Dot(dir)
				if along < -1e-4 || along > axis.Length()+1e-4 {
					t.Fatalf("vertex %v lies outside the segment", v.Position)
				}
				radial := rel.Sub(dir.Scale(along)).Length()
				if radial > 0.5+1e-4 {
					t.Fatalf("vertex %v is %v from the axis", v.Position, radial)
				}
			}

			checkOutward(t, m, tt.start.Add(tt.end).Scale(0.5))
		})
	}

	if len(Cylinder(math.Vec3{X: 1}, math.Vec3{X: 1}, 1, 8).Vertices) != 0 {
		t.Error("zero-length cylinder should be empty")
	}
}

func TestAppendInterleaved(t *testing.T) {
	m := Cube(math.Vec3{}, 1, 1, 1)
	color := [4]float32{0.1, 0.2, 0.3, 1}

	buf := AppendInterleaved([]float32{42}, m, color)
	if len(buf) != 1+36*FloatsPerVertex {
		t.Fatalf("len = %d", len(buf))
	}
	if buf[0] != 42 {
		t.Error("existing contents should be kept")
	}

	first := buf[1 : 1+FloatsPerVertex]
	v := m.Vertices[0]
	if first[0] != v.Position.X || first[3] != v.Normal.X || first[6] != 0.1 || first[9] != 1 {
		t.Errorf("first vertex = %v", first)
	}
}

func TestTriangles(t *testing.T) {
	if got := Cube(math.Vec3{}, 1, 1, 1).Triangles(); got != 12 {
		t.Errorf("Triangles() = %d, want 12", got)
	}
	if min, max := (Mesh{}).Bounds(); min != (math.Vec3{}) || max != (math.Vec3{}) {
		t.Error("empty mesh bounds should be zero")
	}
}
