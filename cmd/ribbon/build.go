package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	"honnef.co/go/ribbon"
	"honnef.co/go/ribbon/internal/samples"
)

func newBuildCmd() *cobra.Command {
	var (
		style   styleFlags
		format  string
		output  string
		verbose bool
	)
	cmd := &cobra.Command{
		Use:   "build [samples.csv]",
		Short: "Replay recorded samples and write the resulting meshes",
		Long: `build reads recorded samples from a CSV file, or standard input if no file
is given, replays every stroke through a drawing session and writes the
resulting meshes as Wavefront OBJ or JSON.

The CSV header must name x, y and z columns and may name a stroke column.
Rows with empty coordinates record frames without a sample.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var write func(io.Writer, []*ribbon.Mesh) error
			switch format {
			case "obj":
				write = func(w io.Writer, meshes []*ribbon.Mesh) error { return ribbon.WriteOBJ(w, meshes...) }
			case "json":
				write = writeJSON
			default:
				return fmt.Errorf("invalid --format %q, want obj or json", format)
			}
			log := newLogger(cmd.ErrOrStderr(), verbose)

			var strokes []samples.Stroke
			var err error
			if len(args) == 1 {
				strokes, err = samples.Load(args[0])
			} else {
				strokes, err = samples.Read(cmd.InOrStdin())
			}
			if err != nil {
				return fmt.Errorf("reading samples: %w", err)
			}

			s, err := style.session()
			if err != nil {
				return err
			}
			meshes, err := replay(log, s, strokes)
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				if err := write(cmd.OutOrStdout(), meshes); err != nil {
					return fmt.Errorf("writing meshes: %w", err)
				}
			} else {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				if err := write(f, meshes); err != nil {
					f.Close()
					return fmt.Errorf("writing meshes: %w", err)
				}
				if err := f.Close(); err != nil {
					return fmt.Errorf("writing meshes: %w", err)
				}
			}
			log.Debug("wrote meshes", "strokes", len(strokes), "meshes", len(meshes), "format", format)
			return nil
		},
	}
	style.register(cmd, ribbon.DefaultStyle.Width, "#000000")
	cmd.Flags().StringVar(&format, "format", "obj", "output format: obj or json")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default standard output)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log replay progress")
	return cmd
}

// replay feeds every stroke through s and returns one entry per stroke, nil
// for strokes too short to form a mesh.
func replay(log *slog.Logger, s *ribbon.Session, strokes []samples.Stroke) ([]*ribbon.Mesh, error) {
	s.SetTracking(ribbon.TrackingNormal)
	meshes := make([]*ribbon.Mesh, 0, len(strokes))
	for _, st := range strokes {
		b, err := s.Begin()
		if err != nil {
			return nil, fmt.Errorf("stroke %q: %w", st.ID, err)
		}
		for _, sample := range st.Samples {
			if err := s.Sample(sample); err != nil {
				s.Abort()
				return nil, fmt.Errorf("stroke %q: %w", st.ID, err)
			}
		}
		s.End()
		m := b.Mesh()
		if m == nil {
			log.Warn("stroke too short for a mesh", "stroke", st.ID, "samples", len(st.Samples), "pending", b.Pending())
		} else {
			log.Debug("built stroke", "stroke", st.ID, "samples", len(st.Samples), "vertices", len(m.Vertices))
		}
		meshes = append(meshes, m)
	}
	return meshes, nil
}

type jsonMesh struct {
	Vertices    [][3]float64 `json:"vertices"`
	Indices     []uint32     `json:"indices"`
	Topology    string       `json:"topology"`
	Color       string       `json:"color"`
	DoubleSided bool         `json:"double_sided"`
}

func writeJSON(w io.Writer, meshes []*ribbon.Mesh) error {
	out := make([]*jsonMesh, len(meshes))
	for i, m := range meshes {
		if m == nil {
			continue
		}
		jm := &jsonMesh{
			Vertices:    make([][3]float64, len(m.Vertices)),
			Indices:     m.Indices,
			Topology:    m.Topology.String(),
			DoubleSided: m.DoubleSided,
		}
		for j, v := range m.Vertices {
			jm.Vertices[j] = [3]float64{v.X, v.Y, v.Z}
		}
		c, _ := colorful.MakeColor(m.Color)
		jm.Color = c.Hex()
		out[i] = jm
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Strokes []*jsonMesh `json:"strokes"`
	}{out})
}
