// Package mesh generates triangle lists for the 3D shapes the renderer can
// draw. All triangles wind counter-clockwise seen from outside.
package mesh

import (
	gomath "math"

	"github.com/Faultbox/donkey/pkg/math"
)

// Default tessellation, matching the native library's immediate-mode shapes.
const (
	SphereRings     = 16
	SphereSlices    = 16
	CylinderSlices  = 8
	FloatsPerVertex = 10 // position(3) + normal(3) + color(4)
)

// Vertex is a position with its surface normal.
type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
}

// Mesh is a non-indexed triangle list.
type Mesh struct {
	Vertices []Vertex
}

// Triangles returns the number of triangles.
func (m Mesh) Triangles() int {
	return len(m.Vertices) / 3
}

// Bounds returns the axis-aligned bounding box. An empty mesh returns zeros.
func (m Mesh) Bounds() (min, max math.Vec3) {
	if len(m.Vertices) == 0 {
		return
	}
	min, max = m.Vertices[0].Position, m.Vertices[0].Position
	for _, v := range m.Vertices[1:] {
		p := v.Position
		min = math.Vec3{X: min32(min.X, p.X), Y: min32(min.Y, p.Y), Z: min32(min.Z, p.Z)}
		max = math.Vec3{X: max32(max.X, p.X), Y: max32(max.Y, p.Y), Z: max32(max.Z, p.Z)}
	}
	return min, max
}

// AppendInterleaved appends m to dst as position, normal and color floats.
func AppendInterleaved(dst []float32, m Mesh, color [4]float32) []float32 {
	for _, v := range m.Vertices {
		dst = append(dst,
			v.Position.X, v.Position.Y, v.Position.Z,
			v.Normal.X, v.Normal.Y, v.Normal.Z,
			color[0], color[1], color[2], color[3],
		)
	}
	return dst
}

type cubeFace struct {
	n, u, v math.Vec3 // u × v = n
}

var cubeFaces = [6]cubeFace{
	{n: math.Vec3{X: 1}, u: math.Vec3{Z: -1}, v: math.Vec3{Y: 1}},
	{n: math.Vec3{X: -1}, u: math.Vec3{Z: 1}, v: math.Vec3{Y: 1}},
	{n: math.Vec3{Y: 1}, u: math.Vec3{X: 1}, v: math.Vec3{Z: -1}},
	{n: math.Vec3{Y: -1}, u: math.Vec3{X: 1}, v: math.Vec3{Z: 1}},
	{n: math.Vec3{Z: 1}, u: math.Vec3{X: 1}, v: math.Vec3{Y: 1}},
	{n: math.Vec3{Z: -1}, u: math.Vec3{X: -1}, v: math.Vec3{Y: 1}},
}

// Cube builds a box centered at center with the given extents.
func Cube(center math.Vec3, width, height, length float32) Mesh {
	half := math.Vec3{X: width / 2, Y: height / 2, Z: length / 2}
	verts := make([]Vertex, 0, 36)

	for _, f := range cubeFaces {
		c := center.Add(mul(f.n, half))
		u, v := mul(f.u, half), mul(f.v, half)

		corners := [4]math.Vec3{
			c.Sub(u).Sub(v),
			c.Add(u).Sub(v),
			c.Add(u).Add(v),
			c.Sub(u).Add(v),
		}
		for _, i := range [6]int{0, 1, 2, 0, 2, 3} {
			verts = append(verts, Vertex{Position: corners[i], Normal: f.n})
		}
	}
	return Mesh{Vertices: verts}
}

// Sphere builds a UV sphere. Pole quads degenerate into triangles.
func Sphere(center math.Vec3, radius float32, rings, slices int) Mesh {
	if rings < 2 || slices < 3 || radius <= 0 {
		return Mesh{}
	}
	verts := make([]Vertex, 0, rings*slices*6)

	point := func(ring, slice int) Vertex {
		theta := gomath.Pi * float64(ring) / float64(rings)
		phi := 2 * gomath.Pi * float64(slice) / float64(slices)
		n := math.Vec3{
			X: float32(gomath.Sin(theta) * gomath.Cos(phi)),
			Y: float32(gomath.Cos(theta)),
			Z: float32(gomath.Sin(theta) * gomath.Sin(phi)),
		}
		return Vertex{Position: center.Add(n.Scale(radius)), Normal: n}
	}

	for i := 0; i < rings; i++ {
		for j := 0; j < slices; j++ {
			p00, p01 := point(i, j), point(i, j+1)
			p10, p11 := point(i+1, j), point(i+1, j+1)
			verts = append(verts, p00, p01, p11, p00, p11, p10)
		}
	}
	return Mesh{Vertices: verts}
}

// Cylinder builds a capped cylinder from start to end. Coincident endpoints
// produce an empty mesh.
func Cylinder(start, end math.Vec3, radius float32, slices int) Mesh {
	axis := end.Sub(start)
	if axis.Length() == 0 || radius <= 0 || slices < 3 {
		return Mesh{}
	}
	n := axis.Normalize()

	ref := math.Vec3{Y: 1}
	if gomath.Abs(float64(n.Dot(ref))) > 0.99 {
		ref = math.Vec3{X: 1}
	}
	b1 := n.Cross(ref).Normalize()
	b2 := n.Cross(b1)

	ring := func(i int) math.Vec3 {
		a := 2 * gomath.Pi * float64(i) / float64(slices)
		return b1.Scale(float32(gomath.Cos(a))).Add(b2.Scale(float32(gomath.Sin(a))))
	}

	verts := make([]Vertex, 0, slices*12)
	down := n.Negate()
	for i := 0; i < slices; i++ {
		r0, r1 := ring(i), ring(i+1)
		s0, s1 := start.Add(r0.Scale(radius)), start.Add(r1.Scale(radius))
		e0, e1 := end.Add(r0.Scale(radius)), end.Add(r1.Scale(radius))

		verts = append(verts,
			Vertex{s0, r0}, Vertex{s1, r1}, Vertex{e1, r1},
			Vertex{s0, r0}, Vertex{e1, r1}, Vertex{e0, r0},
			Vertex{end, n}, Vertex{e0, n}, Vertex{e1, n},
			Vertex{start, down}, Vertex{s1, down}, Vertex{s0, down},
		)
	}
	return Mesh{Vertices: verts}
}

func mul(a, b math.Vec3) math.Vec3 {
	return math.Vec3{X: a.X * b.X, Y: a.Y * b.Y, Z: a.Z * b.Z}
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
