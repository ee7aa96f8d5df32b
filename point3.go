package ribbon

import (
	"fmt"
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

// Point3 is a point, or vector, in 3D space.
type Point3 struct {
	X float64
	Y float64
	Z float64
}

// Pt3 returns the point (x, y, z).
func Pt3(x, y, z float64) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

// FromVec3 converts a go3d vector to a point.
func FromVec3(v vec3.T) Point3 {
	return Point3{X: v[0], Y: v[1], Z: v[2]}
}

// Vec3 converts the point to a go3d vector.
func (p Point3) Vec3() vec3.T {
	return vec3.T{p.X, p.Y, p.Z}
}

// Splat returns the point's x, y and z coordinates.
func (p Point3) Splat() (float64, float64, float64) {
	return p.X, p.Y, p.Z
}

func (p Point3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}

// Add adds two points component-wise.
func (p Point3) Add(o Point3) Point3 {
	return Point3{
		X: p.X + o.X,
		Y: p.Y + o.Y,
		Z: p.Z + o.Z,
	}
}

// Sub computes p−o.
func (p Point3) Sub(o Point3) Point3 {
	return Point3{
		X: p.X - o.X,
		Y: p.Y - o.Y,
		Z: p.Z - o.Z,
	}
}

// Mul multiplies every component by f.
func (p Point3) Mul(f float64) Point3 {
	return Point3{
		X: p.X * f,
		Y: p.Y * f,
		Z: p.Z * f,
	}
}

// Div divides every component by f. Dividing by zero produces infinities or
// NaNs.
func (p Point3) Div(f float64) Point3 {
	return Point3{
		X: p.X / f,
		Y: p.Y / f,
		Z: p.Z / f,
	}
}

// Length returns the euclidean norm of p.
func (p Point3) Length() float64 {
	v := p.Vec3()
	return v.Length()
}

// Distance returns the euclidean distance between two points.
func (p Point3) Distance(o Point3) float64 {
	a, b := p.Vec3(), o.Vec3()
	return vec3.Distance(&a, &b)
}

// Lerp linearly interpolates between two points.
func (p Point3) Lerp(o Point3, t float64) Point3 {
	// p + t * (o-p)
	return p.Add(o.Sub(p).Mul(t))
}

// IsZero reports whether p is the zero vector.
func (p Point3) IsZero() bool {
	return p == Point3{}
}

// IsInf reports whether at least one of x, y and z is infinite.
func (p Point3) IsInf() bool {
	return math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) || math.IsInf(p.Z, 0)
}

// IsNaN reports whether at least one of x, y and z is NaN.
func (p Point3) IsNaN() bool {
	return math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsNaN(p.Z)
}
