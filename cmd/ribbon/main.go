// ribbon replays recorded drawing strokes into ribbon meshes and provides a
// terminal host for drawing them interactively.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	"honnef.co/go/ribbon"
)

var version = "dev"

// styleFlags are the ribbon flags shared by all subcommands.
type styleFlags struct {
	width float64
	color string
	flush string
}

func (f *styleFlags) register(cmd *cobra.Command, width float64, color string) {
	cmd.Flags().Float64Var(&f.width, "width", width, "half height of the ribbon in world units")
	cmd.Flags().StringVar(&f.color, "color", color, "ribbon color as a hex triplet")
	cmd.Flags().StringVar(&f.flush, "flush", ribbon.FlushOnThird.String(), "when a smoothing group is emitted: third or next")
}

func (f *styleFlags) session() (*ribbon.Session, error) {
	c, err := colorful.Hex(f.color)
	if err != nil {
		return nil, fmt.Errorf("parsing --color: %w", err)
	}
	var opts ribbon.BuilderOpts
	switch f.flush {
	case ribbon.FlushOnThird.String():
		opts.Flush = ribbon.FlushOnThird
	case ribbon.FlushOnNext.String():
		opts.Flush = ribbon.FlushOnNext
	default:
		return nil, fmt.Errorf("invalid --flush %q, want %s or %s", f.flush, ribbon.FlushOnThird, ribbon.FlushOnNext)
	}
	return ribbon.NewSession(ribbon.DefaultStyle.WithWidth(f.width).WithColor(c), opts)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ribbon",
		Short: "Smoothed ribbon meshes from 3D drawing strokes",
		Long: `ribbon turns streams of 3D samples into smoothed triangle-strip ribbons,
the way AR drawing apps extrude a line that follows the device.`,
		Version:      version,
		SilenceUsage: true,
	}
	root.AddCommand(newBuildCmd(), newDrawCmd())
	return root
}

func main() {
	if err := fang.Execute(context.Background(), newRootCmd()); err != nil {
		os.Exit(1)
	}
}
