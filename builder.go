package ribbon

import (
	"fmt"
	"slices"
	"sync/atomic"
)

// groupSize is the number of raw samples averaged into one smoothed point.
const groupSize = 3

// minMeshVertices is the smallest number of vertices that forms a triangle
// strip.
const minMeshVertices = 3

// Builder incrementally builds the ribbon mesh of a single stroke.
//
// Raw samples are buffered in groups of three. Every group is averaged into a
// smoothed point, which is extruded into two vertices, one at -Width and one at
// +Width along the y axis. The vertices form a triangle strip whose index
// buffer grows by the indices of the two new vertices.
//
// A Builder must be used by a single goroutine at a time. The one exception is
// [Builder.Mesh], which may be called concurrently with mutation. The mesh it
// returns is immutable; each rebuild replaces it wholesale.
type Builder struct {
	style Style
	opts  BuilderOpts

	pool     [groupSize]Point3
	pending  int
	vertices []Point3
	indices  []uint32

	mesh atomic.Pointer[Mesh]
}

// New returns a builder for ribbons of the given style. It returns an error
// wrapping [ErrInvalidParameter] if the style's width isn't a positive, finite
// number.
func New(style Style, opts BuilderOpts) (*Builder, error) {
	if err := style.Validate(); err != nil {
		return nil, fmt.Errorf("creating ribbon builder: %w", err)
	}
	return &Builder{style: style, opts: opts}, nil
}

// Style returns the style the builder was created with.
func (b *Builder) Style() Style { return b.style }

// Opts returns the options the builder was created with.
func (b *Builder) Opts() BuilderOpts { return b.opts }

// AddPoint adds a raw sample to the ribbon. The zero vector is treated as
// "no sample" and dropped. Use [Builder.AddSample] to add a sample at the
// origin.
func (b *Builder) AddPoint(p Point3) {
	b.AddSample(SampleOf(p))
}

// AddSample adds a possibly absent raw sample to the ribbon. Absent samples
// never count towards a smoothing group.
//
// With [FlushOnThird], the sample that completes a group of three emits the
// group's smoothed point. With [FlushOnNext], a complete group is emitted by
// the following call instead, and that call's sample is discarded, whether
// present or not.
func (b *Builder) AddSample(s Sample) {
	switch b.opts.Flush {
	case FlushOnNext:
		if b.pending < groupSize {
			if s.OK {
				b.push(s.Point)
			}
			return
		}
		b.flush()
	default:
		if !s.OK {
			return
		}
		b.push(s.Point)
		if b.pending == groupSize {
			b.flush()
		}
	}
}

func (b *Builder) push(p Point3) {
	b.pool[b.pending] = p
	b.pending++
}

// flush averages the pending group, extrudes it and rebuilds the mesh.
func (b *Builder) flush() {
	if b.pending != groupSize {
		panic(fmt.Sprintf("flushing smoothing group with %d samples", b.pending))
	}
	var sum Point3
	for _, p := range b.pool {
		sum = sum.Add(p)
	}
	smoothed := sum.Div(float64(b.pending))
	b.pending = 0
	b.pool = [groupSize]Point3{}

	w := b.style.Width
	b.vertices = append(b.vertices,
		Pt3(smoothed.X, smoothed.Y-w, smoothed.Z),
		Pt3(smoothed.X, smoothed.Y+w, smoothed.Z),
	)
	n := uint32(len(b.vertices))
	b.indices = append(b.indices, n-2, n-1)

	b.rebuild()
}

// rebuild publishes a new mesh if there are enough vertices for a triangle
// strip.
func (b *Builder) rebuild() {
	if len(b.vertices) < minMeshVertices {
		return
	}
	b.mesh.Store(&Mesh{
		Vertices:    slices.Clone(b.vertices),
		Indices:     slices.Clone(b.indices),
		Topology:    TriangleStrip,
		Color:       b.style.Color,
		DoubleSided: true,
	})
}

// Mesh returns the most recently built mesh, or nil if the ribbon doesn't
// have enough vertices yet.
func (b *Builder) Mesh() *Mesh {
	return b.mesh.Load()
}

// Vertices returns a copy of the vertex buffer.
func (b *Builder) Vertices() []Point3 {
	return slices.Clone(b.vertices)
}

// Indices returns a copy of the index buffer.
func (b *Builder) Indices() []uint32 {
	return slices.Clone(b.indices)
}

// Pending returns the number of buffered raw samples that haven't been
// smoothed yet.
func (b *Builder) Pending() int {
	return b.pending
}

// Reset discards all samples and geometry, returning the builder to the state
// it had after [New]. Resetting an empty builder does nothing.
func (b *Builder) Reset() {
	b.pool = [groupSize]Point3{}
	b.pending = 0
	b.vertices = nil
	b.indices = nil
	b.mesh.Store(nil)
}
