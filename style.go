package ribbon

import (
	"fmt"
	"image/color"
	"math"
)

// Style describes the visual style of a ribbon.
type Style struct {
	// Half the ribbon's height. Each smoothed point is extruded by -Width and
	// +Width along the y axis.
	Width float64
	// Flat diffuse color of the ribbon.
	Color color.NRGBA
}

// FlushMode defines when a full smoothing group is turned into geometry.
type FlushMode int

const (
	// The call that buffers the third sample of a group emits it.
	FlushOnThird FlushMode = iota
	// A full group is emitted by the following call, whose own sample is
	// discarded. This reproduces the cadence of the original AR drawing app.
	FlushOnNext
)

func (m FlushMode) String() string {
	switch m {
	case FlushOnThird:
		return "third"
	case FlushOnNext:
		return "next"
	default:
		return fmt.Sprintf("FlushMode(%d)", int(m))
	}
}

// BuilderOpts describes options for ribbon building that don't affect the
// ribbon's appearance.
type BuilderOpts struct {
	Flush FlushMode
}

// DefaultStyle is a thin, opaque black ribbon.
var DefaultStyle = Style{
	Width: 0.004,
	Color: color.NRGBA{A: 0xFF},
}

// WithWidth returns a copy of the style with Width set to width.
func (s Style) WithWidth(width float64) Style { s.Width = width; return s }

// WithColor returns a copy of the style with Color set to c, converted to
// non-premultiplied RGBA.
func (s Style) WithColor(c color.Color) Style {
	s.Color = color.NRGBAModel.Convert(c).(color.NRGBA)
	return s
}

// Validate reports whether the style can produce a ribbon. The returned error,
// if any, is an [*InvalidParameterError].
func (s Style) Validate() error {
	if !(s.Width > 0) || math.IsInf(s.Width, 0) {
		return &InvalidParameterError{Name: "width", Value: s.Width}
	}
	return nil
}
