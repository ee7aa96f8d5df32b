package ribbon

import (
	"errors"
	"image/color"
	"math"
	"testing"
)

func newBuilder(t *testing.T, width float64, flush FlushMode) *Builder {
	t.Helper()
	b, err := New(DefaultStyle.WithWidth(width), BuilderOpts{Flush: flush})
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestNewInvalidWidth(t *testing.T) {
	for _, w := range []float64{0, -0.004, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := New(DefaultStyle.WithWidth(w), BuilderOpts{})
		if !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("width %v: got error %v, want ErrInvalidParameter", w, err)
		}
		var perr *InvalidParameterError
		if !errors.As(err, &perr) || perr.Name != "width" {
			t.Errorf("width %v: got error %v, want *InvalidParameterError for width", w, err)
		}
	}
}

func TestBuilderExample(t *testing.T) {
	b := newBuilder(t, 0.004, FlushOnThird)
	for range 3 {
		b.AddPoint(Pt3(0, 0, 1))
	}
	diff(t, []Point3{{0, -0.004, 1}, {0, 0.004, 1}}, b.Vertices())
	diff(t, []uint32{0, 1}, b.Indices())
	if m := b.Mesh(); m != nil {
		t.Errorf("got mesh %v with 2 vertices, want none", m)
	}

	for range 3 {
		b.AddPoint(Pt3(0, 0, 1))
	}
	diff(t, []Point3{{0, -0.004, 1}, {0, 0.004, 1}, {0, -0.004, 1}, {0, 0.004, 1}}, b.Vertices())
	diff(t, []uint32{0, 1, 2, 3}, b.Indices())
	m := b.Mesh()
	if m == nil {
		t.Fatal("got no mesh with 4 vertices")
	}
	want := &Mesh{
		Vertices:    []Point3{{0, -0.004, 1}, {0, 0.004, 1}, {0, -0.004, 1}, {0, 0.004, 1}},
		Indices:     []uint32{0, 1, 2, 3},
		Topology:    TriangleStrip,
		Color:       color.NRGBA{A: 0xFF},
		DoubleSided: true,
	}
	diff(t, want, m)
}

func TestBuilderSmoothing(t *testing.T) {
	b := newBuilder(t, 0.5, FlushOnThird)
	p1, p2, p3 := Pt3(1, 2, 3), Pt3(-2, 0.5, 7), Pt3(4, -1, 2)
	b.AddPoint(p1)
	b.AddPoint(p2)
	if n := len(b.Vertices()); n != 0 {
		t.Fatalf("got %d vertices after 2 samples, want 0", n)
	}
	b.AddPoint(p3)
	mean := p1.Add(p2).Add(p3).Div(3)
	diff(t, []Point3{
		{mean.X, mean.Y - 0.5, mean.Z},
		{mean.X, mean.Y + 0.5, mean.Z},
	}, b.Vertices(), approx)
	if n := b.Pending(); n != 0 {
		t.Errorf("got %d pending samples after a flush, want 0", n)
	}
}

func TestBuilderDropsZero(t *testing.T) {
	b := newBuilder(t, 0.004, FlushOnThird)
	b.AddPoint(Point3{})
	b.AddPoint(Pt3(1, 1, 1))
	b.AddPoint(Point3{})
	b.AddPoint(Pt3(2, 2, 2))
	b.AddPoint(Point3{})
	if n := b.Pending(); n != 2 {
		t.Fatalf("got %d pending samples, want 2", n)
	}
	if n := len(b.Vertices()); n != 0 {
		t.Fatalf("got %d vertices, want 0", n)
	}
	b.AddPoint(Pt3(3, 3, 3))
	diff(t, []Point3{{2, 1.996, 2}, {2, 2.004, 2}}, b.Vertices(), approx)
}

func TestBuilderSampleAtOrigin(t *testing.T) {
	b := newBuilder(t, 1, FlushOnThird)
	b.AddSample(SampleAt(Point3{}))
	b.AddSample(NoSample)
	b.AddSample(SampleAt(Pt3(3, 0, 0)))
	b.AddSample(SampleAt(Point3{}))
	diff(t, []Point3{{1, -1, 0}, {1, 1, 0}}, b.Vertices())
}

func TestBuilderIndices(t *testing.T) {
	b := newBuilder(t, 0.01, FlushOnThird)
	for i := range 30 {
		b.AddPoint(Pt3(float64(i+1), 0, 0))
		v, idx := b.Vertices(), b.Indices()
		if len(v)%2 != 0 {
			t.Fatalf("odd vertex count %d", len(v))
		}
		if len(v) != len(idx) {
			t.Fatalf("got %d indices for %d vertices", len(idx), len(v))
		}
		for j, x := range idx {
			if x != uint32(j) {
				t.Fatalf("index %d is %d", j, x)
			}
		}
		if got, want := b.Mesh() != nil, len(v) >= 3; got != want {
			t.Fatalf("after %d samples with %d vertices: mesh published = %t", i+1, len(v), got)
		}
	}
	if n := len(b.Vertices()); n != 20 {
		t.Errorf("got %d vertices after 30 samples, want 20", n)
	}
}

func TestBuilderFlushOnNext(t *testing.T) {
	b := newBuilder(t, 0.004, FlushOnNext)
	for range 3 {
		b.AddPoint(Pt3(0, 0, 1))
	}
	if n := len(b.Vertices()); n != 0 {
		t.Fatalf("got %d vertices after 3 samples, want 0", n)
	}
	if n := b.Pending(); n != 3 {
		t.Fatalf("got %d pending samples, want 3", n)
	}
	// The flushing sample is discarded, even when it's absent.
	b.AddPoint(Point3{})
	diff(t, []Point3{{0, -0.004, 1}, {0, 0.004, 1}}, b.Vertices())
	if n := b.Pending(); n != 0 {
		t.Fatalf("got %d pending samples after a flush, want 0", n)
	}

	b.AddPoint(Pt3(9, 9, 9))
	if n := b.Pending(); n != 1 {
		t.Fatalf("got %d pending samples, want 1", n)
	}
}

func TestBuilderReset(t *testing.T) {
	fresh := newBuilder(t, 0.1, FlushOnThird)
	b := newBuilder(t, 0.1, FlushOnThird)
	for i := range 10 {
		b.AddPoint(Pt3(1, float64(i), 2))
	}
	if b.Mesh() == nil {
		t.Fatal("got no mesh")
	}
	b.Reset()
	if b.Mesh() != nil {
		t.Error("mesh survived reset")
	}
	if n := b.Pending(); n != 0 {
		t.Errorf("got %d pending samples after reset", n)
	}
	b.Reset()
	b.Reset()

	for i := range 7 {
		p := Pt3(float64(i), 1, -1)
		b.AddPoint(p)
		fresh.AddPoint(p)
	}
	diff(t, fresh.Vertices(), b.Vertices())
	diff(t, fresh.Indices(), b.Indices())
	diff(t, fresh.Mesh(), b.Mesh())
	diff(t, fresh.Pending(), b.Pending())
}

func TestBuilderMeshIsSnapshot(t *testing.T) {
	b := newBuilder(t, 1, FlushOnThird)
	for range 6 {
		b.AddPoint(Pt3(1, 1, 1))
	}
	m := b.Mesh()
	for range 3 {
		b.AddPoint(Pt3(2, 2, 2))
	}
	if len(m.Vertices) != 4 || len(m.Indices) != 4 {
		t.Errorf("published mesh changed to %d vertices and %d indices", len(m.Vertices), len(m.Indices))
	}
	if n := len(b.Mesh().Vertices); n != 6 {
		t.Errorf("got %d vertices in new mesh, want 6", n)
	}
	b.Vertices()[0] = Pt3(100, 100, 100)
	if b.Vertices()[0] == Pt3(100, 100, 100) {
		t.Error("Vertices returned the builder's buffer")
	}
}

func TestBuilderFlushInvariant(t *testing.T) {
	b := newBuilder(t, 1, FlushOnThird)
	b.AddPoint(Pt3(1, 1, 1))
	defer func() {
		if recover() == nil {
			t.Error("flushing an incomplete group didn't panic")
		}
	}()
	b.flush()
}

func BenchmarkBuilder(b *testing.B) {
	rb, err := New(DefaultStyle, BuilderOpts{})
	if err != nil {
		b.Fatal(err)
	}
	for i := range b.N {
		if i%3000 == 0 {
			rb.Reset()
		}
		rb.AddPoint(Pt3(float64(i), 1, 1))
	}
}
