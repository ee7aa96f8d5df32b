package ribbon

// Sample is a possibly absent position reported by a host sampler for one
// frame. Unlike a bare Point3, a Sample can carry a legitimate position at the
// origin.
type Sample struct {
	Point Point3
	OK    bool
}

// NoSample reports that the sampler had no position this frame.
var NoSample = Sample{}

// SampleAt returns a present sample at p, including at the origin.
func SampleAt(p Point3) Sample {
	return Sample{Point: p, OK: true}
}

// SampleOf interprets p the way hosts that cannot express absence do: the zero
// vector means "no sample", any other point is present.
func SampleOf(p Point3) Sample {
	if p.IsZero() {
		return NoSample
	}
	return SampleAt(p)
}

func (s Sample) String() string {
	if !s.OK {
		return "<none>"
	}
	return s.Point.String()
}
