package heightmap

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// FaceNormals returns one unit normal per triangle, in emission order.
// Mesh triangles are clockwise seen from +Y, so the cross product is taken
// (c-a) x (b-a) to point normals up.
func FaceNormals(m *MeshBuffer) []mgl32.Vec3 {
	tris := m.TriangleCount()
	out := make([]mgl32.Vec3, tris)
	for t := 0; t < tris; t++ {
		a := mgl32.Vec3(m.Vertex(3 * t))
		b := mgl32.Vec3(m.Vertex(3*t + 1))
		c := mgl32.Vec3(m.Vertex(3*t + 2))
		n := c.Sub(a).Cross(b.Sub(a))
		if n.Len() == 0 {
			out[t] = mgl32.Vec3{0, 1, 0}
			continue
		}
		out[t] = n.Normalize()
	}
	return out
}

// Slope summarises face steepness in degrees from horizontal.
type Slope struct {
	Mean float32
	Max  float32
}

// SlopeStats measures the steepness of every triangle in the mesh.
func SlopeStats(m *MeshBuffer) Slope {
	normals := FaceNormals(m)
	if len(normals) == 0 {
		return Slope{}
	}
	var s Slope
	var sum float64
	for _, n := range normals {
		deg := mgl32.RadToDeg(math32.Acos(mgl32.Clamp(n.Y(), -1, 1)))
		sum += float64(deg)
		if deg > s.Max {
			s.Max = deg
		}
	}
	s.Mean = float32(sum / float64(len(normals)))
	return s
}
