package ribbon

import (
	"slices"
)

const (
	// DefaultFlatness is the flatness tolerance used by [Flatten]: the
	// largest distance of a sub-curve's control points from its chord that
	// is accepted without further subdivision.
	DefaultFlatness = 1.25
	// DefaultMaxDepth bounds the recursion of [Flatten]. Each segment
	// produces at most 2**DefaultMaxDepth+1 samples.
	DefaultMaxDepth = 10
)

// FlattenOpts specifies optional settings for [FlattenOpt]. Zero values
// select the defaults.
type FlattenOpts struct {
	Tolerance float64
	MaxDepth  int
}

// Sample is a station on a flattened centerline.
type Sample struct {
	// S is the arc length from the start of the centerline.
	S float64
	// T is the parameter within the segment the sample lies on.
	T float64
	// Seg is the index into [Centerline.Segments] of that segment.
	Seg int
	// Pt is the sample's position.
	Pt Point
	// Tangent and Normal are unit vectors, Normal is perpendicular to
	// Tangent and sign-continuous with the previous sample's normal.
	Tangent Vec2
	Normal  Vec2
}

// NewCenterline builds the segments for anchors and flattens them with the
// default options.
func NewCenterline(anchors []Anchor) Centerline {
	return Flatten(BuildSegments(anchors))
}

// Flatten flattens segs into a centerline using [DefaultFlatness] and
// [DefaultMaxDepth].
func Flatten(segs []Segment) Centerline {
	return FlattenOpt(segs, FlattenOpts{})
}

// FlattenOpt flattens segs into a centerline.
//
// Each segment is recursively halved with de Casteljau's algorithm until its
// flatness is within opts.Tolerance or opts.MaxDepth is reached. The
// resulting parameters are evaluated with the cubic formula; the join
// between two segments is emitted once, as the end of the earlier one.
// Arc length accumulates the straight-line distance between consecutive
// samples, and samples with non-finite positions are dropped.
//
// An empty segment list produces a centerline without samples.
func FlattenOpt(segs []Segment, opts FlattenOpts) Centerline {
	tol := opts.Tolerance
	if !(tol > 0) {
		tol = DefaultFlatness
	}
	depth := opts.MaxDepth
	if depth <= 0 {
		depth = DefaultMaxDepth
	}

	cl := Centerline{Segments: slices.Clone(segs)}
	var (
		fr   frame
		prev option[Sample]
		s    float64
	)
	for si, seg := range segs {
		c := seg.Cubic()
		ts := subdivParams(c, tol, depth)
		for i, t := range ts {
			pt := c.Eval(t)
			if !pt.IsFinite() {
				Logger().Debug("dropping non-finite sample", "segment", si, "t", t)
				continue
			}
			last, hasLast := prev.get()
			if i == 0 && hasLast && pt.DistanceSquared(last.Pt) <= minPointDistSq {
				// Join with the previous segment.
				continue
			}

			a, b := pt, pt
			if hasLast {
				s += pt.Distance(last.Pt)
				a = last.Pt
			}
			if i+1 < len(ts) {
				b = c.Eval(ts[i+1])
			}
			tan, ok := tangentAt(c, t, a, b)
			var n Vec2
			tan, n, fr = fr.orient(tan, ok)

			smp := Sample{S: s, T: t, Seg: si, Pt: pt, Tangent: tan, Normal: n}
			cl.Samples = append(cl.Samples, smp)
			prev.set(smp)
		}
	}
	cl.Length = s
	return cl
}

// subdivParams returns the sorted, distinct parameters at which c is
// sampled, always including 0 and 1.
func subdivParams(c CubicBez, tol float64, maxDepth int) []float64 {
	ts := []float64{0, 1}
	if c.IsNaN() || c.IsInf() {
		return ts
	}
	var subdivide func(c CubicBez, t0, t1 float64, depth int)
	subdivide = func(c CubicBez, t0, t1 float64, depth int) {
		if depth >= maxDepth || c.Flatness() <= tol {
			return
		}
		tm := 0.5 * (t0 + t1)
		ts = append(ts, tm)
		l, r := c.Subdivide()
		subdivide(l, t0, tm, depth+1)
		subdivide(r, tm, t1, depth+1)
	}
	subdivide(c, 0, 1, 0)
	slices.Sort(ts)
	return slices.Compact(ts)
}
