package ribbon

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"iter"
	"math"
	"slices"

	"github.com/ungerik/go3d/float64/mat4"
)

// Topology defines how a mesh's indices form triangles.
type Topology int

const (
	// Every index after the second forms a triangle with the two indices
	// preceding it.
	TriangleStrip Topology = iota
	// Every three consecutive indices form a triangle.
	TriangleList
)

func (t Topology) String() string {
	switch t {
	case TriangleStrip:
		return "TriangleStrip"
	case TriangleList:
		return "TriangleList"
	default:
		return fmt.Sprintf("Topology(%d)", int(t))
	}
}

// Mesh is a renderable description of a ribbon. Meshes published by a
// [Builder] must not be modified.
type Mesh struct {
	Vertices    []Point3
	Indices     []uint32
	Topology    Topology
	Color       color.NRGBA
	DoubleSided bool
}

// Triangles returns the mesh's triangles as triples of vertex indices.
//
// Triangle strips are expanded with alternating order so that all triangles
// share the same winding. Degenerate triangles, those that reference a vertex
// more than once, are skipped.
func (m *Mesh) Triangles() iter.Seq[[3]uint32] {
	return func(yield func([3]uint32) bool) {
		switch m.Topology {
		case TriangleStrip:
			for i := 2; i < len(m.Indices); i++ {
				a, b, c := m.Indices[i-2], m.Indices[i-1], m.Indices[i]
				if a == b || b == c || a == c {
					continue
				}
				tri := [3]uint32{a, b, c}
				if i%2 == 1 {
					tri = [3]uint32{b, a, c}
				}
				if !yield(tri) {
					return
				}
			}
		case TriangleList:
			for i := 0; i+2 < len(m.Indices); i += 3 {
				a, b, c := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
				if a == b || b == c || a == c {
					continue
				}
				if !yield([3]uint32{a, b, c}) {
					return
				}
			}
		}
	}
}

// Bounds returns the smallest axis-aligned box containing all vertices. The
// box of an empty mesh is the zero point.
func (m *Mesh) Bounds() (min, max Point3) {
	if len(m.Vertices) == 0 {
		return Point3{}, Point3{}
	}
	min = Pt3(math.Inf(1), math.Inf(1), math.Inf(1))
	max = Pt3(math.Inf(-1), math.Inf(-1), math.Inf(-1))
	for _, v := range m.Vertices {
		min = Pt3(math.Min(min.X, v.X), math.Min(min.Y, v.Y), math.Min(min.Z, v.Z))
		max = Pt3(math.Max(max.X, v.X), math.Max(max.Y, v.Y), math.Max(max.Z, v.Z))
	}
	return min, max
}

// Transform returns a copy of the mesh with every vertex transformed by mat.
func (m *Mesh) Transform(mat *mat4.T) *Mesh {
	out := *m
	out.Vertices = make([]Point3, len(m.Vertices))
	for i, v := range m.Vertices {
		v3 := v.Vec3()
		out.Vertices[i] = FromVec3(mat.MulVec3(&v3))
	}
	out.Indices = slices.Clone(m.Indices)
	return &out
}

// WriteOBJ writes meshes as Wavefront OBJ objects named stroke1, stroke2, and
// so on. Vertices carry their mesh's color as the common "v x y z r g b"
// extension, faces are written as triangles, and double-sided meshes get a
// second, reversed face for every triangle.
//
// Objects are numbered by argument position. Nil meshes are skipped but keep
// their number, so the meshes of [Session.StrokeMeshes] are named after their
// strokes.
func WriteOBJ(w io.Writer, meshes ...*Mesh) error {
	bw := bufio.NewWriter(w)
	base := uint32(1)
	for i, m := range meshes {
		if m == nil {
			continue
		}
		fmt.Fprintf(bw, "o stroke%d\n", i+1)
		r, g, b := float64(m.Color.R)/0xFF, float64(m.Color.G)/0xFF, float64(m.Color.B)/0xFF
		for _, v := range m.Vertices {
			fmt.Fprintf(bw, "v %g %g %g %g %g %g\n", v.X, v.Y, v.Z, r, g, b)
		}
		for tri := range m.Triangles() {
			i0, i1, i2 := tri[0]+base, tri[1]+base, tri[2]+base
			fmt.Fprintf(bw, "f %d %d %d\n", i0, i1, i2)
			if m.DoubleSided {
				fmt.Fprintf(bw, "f %d %d %d\n", i0, i2, i1)
			}
		}
		base += uint32(len(m.Vertices))
	}
	return bw.Flush()
}
