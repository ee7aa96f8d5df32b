// Package canvas stands in for the camera and rasterizer of an AR host. It
// maps screen positions to world samples and draws ribbon meshes back onto
// the screen.
package canvas

import (
	"github.com/ungerik/go3d/float64/mat4"
	"github.com/ungerik/go3d/float64/vec3"

	"honnef.co/go/ribbon"
)

// Camera is an axis-aligned camera looking down the negative z axis. Screen
// coordinates are in pixels with y growing downwards.
type Camera struct {
	Position vec3.T
	// Screen size in pixels.
	Width, Height int
	// Pixels per world unit.
	Scale float64
	// Distance of the drawing plane in front of the camera.
	Depth float64
}

// Pose returns the camera's transform from camera space to world space.
func (c *Camera) Pose() mat4.T {
	m := mat4.Ident
	m.SetTranslation(&c.Position)
	return m
}

// Unproject returns the world position on the drawing plane that is seen at
// the screen position (sx, sy).
func (c *Camera) Unproject(sx, sy float64) ribbon.Point3 {
	local := vec3.T{
		(sx - float64(c.Width)/2) / c.Scale,
		-(sy - float64(c.Height)/2) / c.Scale,
		-c.Depth,
	}
	pose := c.Pose()
	return ribbon.FromVec3(pose.MulVec3(&local))
}

// Center returns the world position seen at the center of the screen.
func (c *Camera) Center() ribbon.Point3 {
	return c.Unproject(float64(c.Width)/2, float64(c.Height)/2)
}

// Project returns the screen position of p, using an orthographic
// projection.
func (c *Camera) Project(p ribbon.Point3) (sx, sy float64) {
	d := p.Sub(ribbon.FromVec3(c.Position))
	return d.X*c.Scale + float64(c.Width)/2, -d.Y*c.Scale + float64(c.Height)/2
}

// Move translates the camera by d world units.
func (c *Camera) Move(d vec3.T) {
	c.Position.Add(&d)
}
