// ribbondraw is a desktop stand-in for an AR drawing app. Hold the left mouse
// button to draw a ribbon under the cursor, press C to clear.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"honnef.co/go/ribbon"
	"honnef.co/go/ribbon/internal/canvas"
)

const (
	screenWidth  = 960
	screenHeight = 640
	// Frames of limited tracking before drawing becomes possible, like an AR
	// session that's still initializing.
	warmupFrames = 30
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

type game struct {
	session  *ribbon.Session
	cam      canvas.Camera
	frames   int
	touching bool
	status   string
	verts    []ebiten.Vertex
	indices  []uint16
}

func (g *game) Update() error {
	g.frames++
	if g.frames == warmupFrames {
		g.session.SetTracking(ribbon.TrackingNormal)
		g.status = "Touch the screen to draw."
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.session.Clear()
		g.touching = false
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if _, err := g.session.Begin(); err != nil {
			g.status = "Wait. " + err.Error()
		} else {
			g.touching = true
			g.status = "Move your mouse!"
		}
	}
	if g.touching && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.session.End()
		g.touching = false
		g.status = "Touch the screen to draw."
	}

	if g.touching {
		x, y := ebiten.CursorPosition()
		if err := g.session.Sample(ribbon.SampleAt(g.cam.Unproject(float64(x), float64(y)))); err != nil {
			g.session.Abort()
			g.touching = false
			g.status = err.Error()
		}
	}
	return nil
}

// flush draws the batched triangles.
func (g *game) flush(screen *ebiten.Image) {
	if len(g.indices) == 0 {
		return
	}
	screen.DrawTriangles(g.verts, g.indices, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
	g.verts = g.verts[:0]
	g.indices = g.indices[:0]
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.NRGBA{0xF4, 0xF1, 0xEA, 0xFF})
	for _, m := range g.session.Meshes() {
		r, gg, b, a := float32(m.Color.R)/0xFF, float32(m.Color.G)/0xFF, float32(m.Color.B)/0xFF, float32(m.Color.A)/0xFF
		for tri := range m.Triangles() {
			if len(g.verts)+3 > 0xFFFF {
				g.flush(screen)
			}
			for _, idx := range tri {
				sx, sy := g.cam.Project(m.Vertices[idx])
				g.indices = append(g.indices, uint16(len(g.verts)))
				g.verts = append(g.verts, ebiten.Vertex{
					DstX:   float32(sx),
					DstY:   float32(sy),
					SrcX:   1,
					SrcY:   1,
					ColorR: r,
					ColorG: gg,
					ColorB: b,
					ColorA: a,
				})
			}
		}
	}
	g.flush(screen)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s\nstrokes: %d  tracking: %s", g.status, len(g.session.Strokes()), g.session.Tracking()))
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.cam.Width, g.cam.Height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func main() {
	var (
		width float64
		scale float64
		next  bool
	)
	flag.Float64Var(&width, "width", 0.004, "Half height of the ribbon in world units.")
	flag.Float64Var(&scale, "scale", 2000, "Screen pixels per world unit.")
	flag.BoolVar(&next, "flush-next", false, "Emit full smoothing groups on the following frame.")
	flag.Parse()

	var opts ribbon.BuilderOpts
	if next {
		opts.Flush = ribbon.FlushOnNext
	}
	s, err := ribbon.NewSession(ribbon.DefaultStyle.WithWidth(width), opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	s.SetTracking(ribbon.TrackingLimited)

	g := &game{
		session: s,
		cam:     canvas.Camera{Width: screenWidth, Height: screenHeight, Scale: scale, Depth: 0.99},
		status:  "Initializing.",
	}
	ebiten.SetWindowTitle("ribbondraw")
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
