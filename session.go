package ribbon

import (
	"fmt"
	"slices"
	"sync"
)

// TrackingState is the quality of the host's camera tracking.
type TrackingState int

const (
	// The host has no usable camera pose.
	TrackingNotAvailable TrackingState = iota
	// The pose is available but of questionable quality.
	TrackingLimited
	// The pose is reliable. Strokes can only begin in this state.
	TrackingNormal
)

func (s TrackingState) String() string {
	switch s {
	case TrackingNotAvailable:
		return "not available"
	case TrackingLimited:
		return "limited"
	case TrackingNormal:
		return "normal"
	default:
		return fmt.Sprintf("TrackingState(%d)", int(s))
	}
}

// Phase is the state of a [Session]'s stroke state machine.
type Phase int

const (
	// No stroke is receiving samples.
	Idle Phase = iota
	// The most recent stroke is receiving samples.
	Drawing
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Drawing:
		return "drawing"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Session owns the strokes of a drawing and routes samples to the active one.
//
// A session moves from [Idle] to [Drawing] on [Session.Begin] and back on
// [Session.End], [Session.Abort] or [Session.Clear]. Samples are only accepted
// while drawing. The session's methods are safe for concurrent use, so a host
// may feed samples from its render loop while handling input elsewhere. The
// builders it hands out are not: of their methods, only [Builder.Mesh] may be
// called while the session is sampling. Use [Session.Stroke] to inspect a
// stroke's buffers concurrently.
type Session struct {
	style Style
	opts  BuilderOpts

	mu       sync.Mutex
	phase    Phase
	tracking TrackingState
	strokes  []*Builder
}

// NewSession returns an idle session whose strokes use the given style. The
// session starts out with [TrackingNotAvailable].
func NewSession(style Style, opts BuilderOpts) (*Session, error) {
	if err := style.Validate(); err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}
	return &Session{style: style, opts: opts}, nil
}

// SetTracking records the host's current tracking state. A change in tracking
// doesn't interrupt a stroke in progress.
func (s *Session) SetTracking(state TrackingState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tracking = state
}

// Tracking returns the most recently recorded tracking state.
func (s *Session) Tracking() TrackingState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracking
}

// Phase returns the session's current phase.
func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Begin starts a new stroke and makes it the target of subsequent samples.
// It returns [ErrNotTracking] if tracking isn't [TrackingNormal]. Beginning
// while already drawing ends the current stroke and starts a new one.
func (s *Session) Begin() (*Builder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tracking != TrackingNormal {
		return nil, fmt.Errorf("beginning stroke with tracking %s: %w", s.tracking, ErrNotTracking)
	}
	b, err := New(s.style, s.opts)
	if err != nil {
		return nil, err
	}
	s.strokes = append(s.strokes, b)
	s.phase = Drawing
	return b, nil
}

// Sample feeds one frame's sample to the active stroke. It returns
// [ErrNotDrawing] if no stroke is active.
func (s *Session) Sample(sample Sample) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != Drawing {
		return ErrNotDrawing
	}
	s.strokes[len(s.strokes)-1].AddSample(sample)
	return nil
}

// End ends the active stroke. The stroke's geometry is kept. Ending an idle
// session does nothing.
func (s *Session) End() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = Idle
}

// Abort discards the active stroke, including its geometry, and returns to
// [Idle]. Aborting an idle session does nothing.
func (s *Session) Abort() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != Drawing {
		return
	}
	last := s.strokes[len(s.strokes)-1]
	last.Reset()
	s.strokes = s.strokes[:len(s.strokes)-1]
	s.phase = Idle
}

// Clear discards all strokes and returns to [Idle].
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.strokes {
		b.Reset()
	}
	s.strokes = nil
	s.phase = Idle
}

// Strokes returns the session's strokes in the order they were begun. The
// builders are owned by the session and must not be mutated by the caller.
// While the session may be sampling, only their Mesh method is safe to call.
func (s *Session) Strokes() []*Builder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.strokes)
}

// StrokeState is a copy of a stroke's buffers at one point in time.
type StrokeState struct {
	Vertices []Point3
	Indices  []uint32
	// Number of buffered samples not yet turned into vertices.
	Pending int
	// Nil if the stroke doesn't have a mesh yet.
	Mesh *Mesh
}

// Stroke returns a snapshot of the i-th stroke. Unlike reading the builder
// returned by [Session.Strokes], it may be called while another goroutine
// feeds samples. It panics if i is out of range.
func (s *Session) Stroke(i int) StrokeState {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := s.strokes[i]
	return StrokeState{
		Vertices: b.Vertices(),
		Indices:  b.Indices(),
		Pending:  b.Pending(),
		Mesh:     b.Mesh(),
	}
}

// StrokeMeshes returns one entry per stroke, in the order they were begun,
// with nil for strokes that don't have a mesh yet. Passed to [WriteOBJ], the
// object names match the stroke numbers.
func (s *Session) StrokeMeshes() []*Mesh {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Mesh, len(s.strokes))
	for i, b := range s.strokes {
		out[i] = b.Mesh()
	}
	return out
}

// Meshes returns the published meshes of all strokes, skipping strokes that
// don't have a mesh yet. Positions in the result therefore don't correspond
// to stroke numbers once a short stroke precedes a longer one; see
// [Session.StrokeMeshes].
func (s *Session) Meshes() []*Mesh {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Mesh, 0, len(s.strokes))
	for _, b := range s.strokes {
		if m := b.Mesh(); m != nil {
			out = append(out, m)
		}
	}
	return out
}
