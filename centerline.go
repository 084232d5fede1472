package ribbon

import (
	"math"
	"slices"
	"sort"
)

const (
	// CenterlineExportStep is the maximum distance between stations of a
	// centerline densified for export.
	CenterlineExportStep = 2
	// OutlineExportStep is the maximum edge length of an outline densified
	// for export.
	OutlineExportStep = 4
)

// Centerline is the flattened, arc-length indexed form of a multi-segment
// curve.
//
// Samples are sorted by S, the first has S == 0 and the last has
// S == Length. A centerline without samples represents "no curve".
type Centerline struct {
	Segments []Segment
	Samples  []Sample
	Length   float64
}

// Empty reports whether the centerline has no samples.
func (cl Centerline) Empty() bool {
	return len(cl.Samples) == 0
}

// Points returns the positions of all samples.
func (cl Centerline) Points() []Point {
	pts := make([]Point, len(cl.Samples))
	for i, smp := range cl.Samples {
		pts[i] = smp.Pt
	}
	return pts
}

// BoundingBox returns a rectangle containing the centerline's segments,
// including their control points. It reports false for an empty
// centerline.
func (cl Centerline) BoundingBox() (Rect, bool) {
	r, ok := boundingRect(cl.Points())
	if !ok {
		return Rect{}, false
	}
	for _, seg := range cl.Segments {
		r = r.Union(seg.Cubic().BoundingBox())
	}
	return r, true
}

// At returns the station at arc length s, clamped to [0, Length].
//
// The bracketing samples are found with a binary search. Within the
// bracket the station is placed on the segment's cubic, at the parameter
// whose chord distance from the lower sample corresponds to s, so that
// queries agree with the flattened samples instead of interpolating
// between them linearly. A bracket that spans the join of two adjacent
// segments is split at the join. Any other bracket that spans segments, or
// that has no length, snaps to the nearer sample's parameter.
//
// Tangent and normal follow the same fallback and sign rules as
// [FlattenOpt], continuing the nearer sample's normal. At reports false only
// if the centerline has no samples.
func (cl Centerline) At(s float64) (Sample, bool) {
	n := len(cl.Samples)
	if n == 0 {
		return Sample{}, false
	}
	if math.IsNaN(s) {
		s = 0
	}
	s = min(max(s, 0), cl.Length)

	hi := sort.Search(n, func(i int) bool { return cl.Samples[i].S >= s })
	if hi == n {
		hi = n - 1
	}
	lo := max(hi-1, 0)
	lower, upper := cl.Samples[lo], cl.Samples[hi]
	nearer := lower
	if math.Abs(s-lower.S) > math.Abs(upper.S-s) {
		nearer = upper
	}

	seg, t := cl.locate(lower, upper, nearer, s)
	if seg < 0 || seg >= len(cl.Segments) {
		// Samples without segments; only the sample itself is known.
		return nearer.at(s), true
	}
	c := cl.Segments[seg].Cubic()
	pt := c.Eval(t)
	if !pt.IsFinite() {
		return nearer.at(s), true
	}
	tan, ok := tangentAt(c, t, lower.Pt, upper.Pt)
	tan, norm, _ := frame{some(nearer.Normal)}.orient(tan, ok)
	return Sample{S: s, T: t, Seg: seg, Pt: pt, Tangent: tan, Normal: norm}, true
}

// at returns a copy of the sample moved to arc length s.
func (smp Sample) at(s float64) Sample {
	smp.S = s
	return smp
}

// locate returns the segment and parameter of arc length s inside the
// bracket [lower, upper].
func (cl Centerline) locate(lower, upper, nearer Sample, s float64) (int, float64) {
	span := upper.S - lower.S
	if !(span > minTangentLen) || lower.Seg < 0 || upper.Seg >= len(cl.Segments) {
		return nearer.Seg, nearer.T
	}
	ratio := (s - lower.S) / span
	switch {
	case lower.Seg == upper.Seg && upper.T >= lower.T:
		c := cl.Segments[lower.Seg].Cubic()
		chord := upper.Pt.Distance(lower.Pt)
		return lower.Seg, solveChord(c, lower.T, upper.T, ratio*chord)
	case lower.Seg+1 == upper.Seg:
		c0 := cl.Segments[lower.Seg].Cubic()
		c1 := cl.Segments[upper.Seg].Cubic()
		join := c0.P3
		d0 := join.Distance(lower.Pt)
		d1 := upper.Pt.Distance(join)
		d := ratio * (d0 + d1)
		if d <= d0 {
			return lower.Seg, solveChord(c0, lower.T, 1, d)
		}
		return upper.Seg, solveChord(c1, 0, upper.T, d-d0)
	default:
		return nearer.Seg, nearer.T
	}
}

// Densify re-samples the centerline at ceil(Length/maxSegLen) uniform arc
// length steps using [Centerline.At]. Stations keep the arc length they were
// queried at, so the result is indexed exactly like the receiver. Stations
// that coincide with the previous one are skipped.
//
// The receiver is not modified. If maxSegLen isn't positive, or the
// centerline is too short to re-sample, a copy of it is returned.
func (cl Centerline) Densify(maxSegLen float64) Centerline {
	out := Centerline{
		Segments: slices.Clone(cl.Segments),
		Length:   cl.Length,
	}
	if !(maxSegLen > 0) || len(cl.Samples) < 2 || !(cl.Length > minTangentLen) {
		out.Samples = slices.Clone(cl.Samples)
		return out
	}

	n := max(1, int(math.Ceil(cl.Length/maxSegLen)))
	samples := make([]Sample, 0, n+1)
	var fr frame
	for i := 0; i <= n; i++ {
		d := min(cl.Length, float64(i)/float64(n)*cl.Length)
		st, ok := cl.At(d)
		if !ok {
			continue
		}
		if len(samples) > 0 && st.Pt.Distance(samples[len(samples)-1].Pt) <= minTangentLen {
			if i == n {
				samples[len(samples)-1].S = st.S
			}
			continue
		}
		st.Tangent, st.Normal, fr = fr.orient(st.Tangent, true)
		samples = append(samples, st)
	}
	if len(samples) < 2 {
		out.Samples = slices.Clone(cl.Samples)
		return out
	}
	out.Samples = samples
	return out
}

// PolylineCenterline builds a centerline from a raw point sequence, each
// edge becoming a straight segment. Tangents are chords between the
// neighboring points. Non-finite points are dropped; fewer than two points
// produce an empty centerline.
func PolylineCenterline(pts []Point) Centerline {
	pts = slices.DeleteFunc(slices.Clone(pts), func(pt Point) bool { return !pt.IsFinite() })
	if len(pts) < 2 {
		return Centerline{}
	}

	cl := Centerline{
		Segments: make([]Segment, 0, len(pts)-1),
		Samples:  make([]Sample, 0, len(pts)),
	}
	for i := 1; i < len(pts); i++ {
		c := Line{pts[i-1], pts[i]}.Cubic()
		cl.Segments = append(cl.Segments, Segment{Index: i - 1, P0: c.P0, CP1: c.P1, CP2: c.P2, P3: c.P3})
	}

	var (
		fr frame
		s  float64
	)
	for i, pt := range pts {
		prev, next := pt, pt
		if i > 0 {
			prev = pts[i-1]
			s += pt.Distance(prev)
		}
		if i+1 < len(pts) {
			next = pts[i+1]
		}
		tan, ok := next.Sub(prev).Unit()
		var n Vec2
		tan, n, fr = fr.orient(tan, ok)

		seg, t := 0, 0.0
		if i > 0 {
			seg, t = i-1, 1
		}
		cl.Samples = append(cl.Samples, Sample{S: s, T: t, Seg: seg, Pt: pt, Tangent: tan, Normal: n})
	}
	cl.Length = s
	return cl
}
