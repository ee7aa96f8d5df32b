package canvas

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/ungerik/go3d/float64/vec3"

	"honnef.co/go/ribbon"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func TestCameraUnproject(t *testing.T) {
	cam := Camera{Position: vec3.T{1, 2, 3}, Width: 100, Height: 50, Scale: 10, Depth: 0.99}
	diff(t, ribbon.Pt3(1, 2, 2.01), cam.Center(), cmpopts.EquateApprox(0, 1e-12))
	diff(t, ribbon.Pt3(-4, 4.5, 2.01), cam.Unproject(0, 0), cmpopts.EquateApprox(0, 1e-12))

	sx, sy := cam.Project(ribbon.Pt3(-4, 4.5, 2.01))
	diff(t, [2]float64{0, 0}, [2]float64{sx, sy}, cmpopts.EquateApprox(0, 1e-12))
}

func TestCameraMove(t *testing.T) {
	cam := Camera{Width: 10, Height: 10, Scale: 1, Depth: 1}
	before := cam.Center()
	cam.Move(vec3.T{0.5, -1, 0})
	diff(t, before.Add(ribbon.Pt3(0.5, -1, 0)), cam.Center())
}

func TestBrailleSet(t *testing.T) {
	b := NewBraille(2, 1)
	b.Set(0, 0)
	b.Set(3, 3)
	b.Set(-1, 0)
	b.Set(4, 0)
	b.Set(0, 4)
	diff(t, []string{"⠁⢀"}, b.Lines())
}

func TestBrailleLine(t *testing.T) {
	b := NewBraille(2, 1)
	b.Line(0, 0, 3, 0)
	diff(t, []string{"⠉⠉"}, b.Lines())
}

func TestDrawMesh(t *testing.T) {
	bld, err := ribbon.New(ribbon.DefaultStyle.WithWidth(1), ribbon.BuilderOpts{})
	if err != nil {
		t.Fatal(err)
	}
	for _, x := range []float64{-2, 2} {
		for range 3 {
			bld.AddPoint(ribbon.Pt3(x, 0, -1))
		}
	}
	b := NewBraille(4, 2)
	w, h := b.Size()
	cam := Camera{Width: w, Height: h, Scale: 1, Depth: 1}
	DrawMesh(b, &cam, bld.Mesh())
	// The ribbon covers pixels x ∈ [2, 6] and y ∈ [3, 5].
	want := []string{
		" ⣀⣀⡀",
		" ⠛⠛⠃",
	}
	diff(t, want, b.Lines())
}
