// Package ribbon builds smoothed ribbon meshes from streams of 3D samples, as
// used for drawing in augmented reality. It was designed to sit between a
// host's per-frame sampler and its renderer, but it doesn't depend on any
// particular AR framework or 3D engine.
//
// # Ribbons
//
// A [Builder] consumes raw samples one at a time, for example the world
// position under the screen's center on every frame while the user touches
// the screen. Samples are averaged in groups of three, and every smoothed
// point is extruded by ±[Style.Width] along the y axis into a pair of
// vertices. The pairs form a triangle strip that the builder republishes as
// an immutable [Mesh] every time it grows, once it has at least three
// vertices.
//
// The builder never touches host resources. Hosts read the current mesh with
// [Builder.Mesh] and attach it to their scene graph however they see fit. The
// mesh carries a flat color and a double-sidedness flag; everything else
// about shading is up to the host.
//
// # Absent samples
//
// Samplers frequently have nothing to report for a frame. [Builder.AddSample]
// accepts an explicit [Sample], which may be [NoSample]. [Builder.AddPoint]
// exists for hosts that can only report points and treats the zero vector as
// the absence of a sample, which means that it cannot add a sample at the
// origin.
//
// # Flushing
//
// By default, the sample that completes a group of three emits its smoothed
// point ([FlushOnThird]). [FlushOnNext] instead emits a complete group on the
// following call and discards that call's sample, which matches the cadence
// of the ARKit drawing demo this package's algorithm originates from.
//
// # Strokes
//
// A [Session] is the stroke controller of a drawing. It owns one builder per
// stroke, gates the start of strokes on the host's [TrackingState] and only
// accepts samples between [Session.Begin] and [Session.End].
package ribbon
