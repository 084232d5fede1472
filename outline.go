package ribbon

import (
	"math"
	"slices"
)

const (
	// Centerlines no longer than this have no outline.
	minOutlineLength = 1e-6
	// Heads shorter than this are omitted.
	minHeadLength = 1e-6
	// Slack when comparing arc lengths against the neck.
	neckSlack = 1e-9
	// Distance beyond which the last shaft sample is not the neck.
	neckTolerance = 1e-6
)

// ShapeParams describes the arrow drawn along a centerline. All values are
// in the centerline's units.
//
// The shaft tapers linearly from RearWidth at the start of the curve to
// NeckWidth at the neck, where a head of HeadWidth and HeadLength begins.
// A uniform shaft is RearWidth == NeckWidth.
type ShapeParams struct {
	RearWidth  float64
	NeckWidth  float64
	HeadWidth  float64
	HeadLength float64
}

// clamp returns p with negative or NaN values replaced by zero and
// HeadLength limited to length.
func (p ShapeParams) clamp(length float64) ShapeParams {
	nonNeg := func(v float64) float64 {
		if !(v > 0) {
			return 0
		}
		return v
	}
	return ShapeParams{
		RearWidth:  nonNeg(p.RearWidth),
		NeckWidth:  nonNeg(p.NeckWidth),
		HeadWidth:  nonNeg(p.HeadWidth),
		HeadLength: min(nonNeg(p.HeadLength), length),
	}
}

// Scale returns p with every value multiplied by f.
func (p ShapeParams) Scale(f float64) ShapeParams {
	return ShapeParams{
		RearWidth:  p.RearWidth * f,
		NeckWidth:  p.NeckWidth * f,
		HeadWidth:  p.HeadWidth * f,
		HeadLength: p.HeadLength * f,
	}
}

// Outline is a closed polygon ring: its first point is repeated as its
// last. It winds along the left side of the shaft from the rear to the
// neck, around the head through the tip, and back along the right side.
type Outline []Point

// OutlineFromCenterline computes the arrow outline for a centerline.
//
// The shaft is built from every sample up to the neck, which lies
// HeadLength before the end of the curve. Each sample is offset along its
// normal by half the width interpolated between RearWidth and NeckWidth;
// the last pair is pinned to the neck so the shaft meets the head exactly.
// The head is the triangle from the neck corners, HeadWidth apart, to the
// tip. Consecutive duplicate points are dropped.
//
// OutlineFromCenterline reports false if the centerline is shorter than
// 1e-6 or the ring ends up with fewer than four points. Zero widths are not
// an error; they produce a ring without area.
func OutlineFromCenterline(cl Centerline, p ShapeParams) (Outline, bool) {
	if len(cl.Samples) < 2 || !(cl.Length > minOutlineLength) {
		Logger().Debug("no outline: curve too short", "samples", len(cl.Samples), "length", cl.Length)
		return nil, false
	}
	p = p.clamp(cl.Length)

	tip, _ := cl.At(cl.Length)
	neckS := max(0, cl.Length-p.HeadLength)
	neck, _ := cl.At(neckS)
	headLeft := neck.Pt.Translate(neck.Normal.Mul(p.HeadWidth / 2))
	headRight := neck.Pt.Translate(neck.Normal.Mul(-p.HeadWidth / 2))

	shaft := make([]Sample, 0, len(cl.Samples)+1)
	for _, smp := range cl.Samples {
		if smp.S > neckS+neckSlack {
			break
		}
		shaft = append(shaft, smp)
	}
	if len(shaft) == 0 || math.Abs(shaft[len(shaft)-1].S-neckS) > neckTolerance {
		shaft = append(shaft, neck)
	}

	left := make([]Point, len(shaft))
	right := make([]Point, len(shaft))
	for i, smp := range shaft {
		f := 1.0
		if neckS > neckTolerance {
			f = min(1, max(0, smp.S/neckS))
		}
		half := (p.RearWidth + (p.NeckWidth-p.RearWidth)*f) / 2
		left[i] = smp.Pt.Translate(smp.Normal.Mul(half))
		right[i] = smp.Pt.Translate(smp.Normal.Mul(-half))
	}
	last := len(shaft) - 1
	left[last] = neck.Pt.Translate(neck.Normal.Mul(p.NeckWidth / 2))
	right[last] = neck.Pt.Translate(neck.Normal.Mul(-p.NeckWidth / 2))

	var ring ringBuilder
	ring.add(left...)
	if p.HeadLength > minHeadLength {
		ring.add(headLeft, tip.Pt, headRight)
	}
	for i := last; i >= 0; i-- {
		ring.add(right[i])
	}
	ring.close()

	if len(ring.pts) < 4 {
		Logger().Debug("no outline: degenerate ring", "points", len(ring.pts))
		return nil, false
	}
	return Outline(ring.pts), true
}

// OutlineFromPolyline computes the arrow outline along a raw point
// sequence. See [PolylineCenterline] and [OutlineFromCenterline].
func OutlineFromPolyline(pts []Point, p ShapeParams) (Outline, bool) {
	return OutlineFromCenterline(PolylineCenterline(pts), p)
}

// ringBuilder accumulates ring points, skipping non-finite points and
// points that coincide with the previous one.
type ringBuilder struct {
	pts []Point
}

func (rb *ringBuilder) add(pts ...Point) {
	for _, pt := range pts {
		if !pt.IsFinite() {
			continue
		}
		if n := len(rb.pts); n > 0 && pt.DistanceSquared(rb.pts[n-1]) <= minPointDistSq {
			continue
		}
		rb.pts = append(rb.pts, pt)
	}
}

// close repeats the first point at the end, unless the ring already ends
// on it, in which case the last point is snapped to it exactly.
func (rb *ringBuilder) close() {
	n := len(rb.pts)
	if n < 2 {
		return
	}
	if rb.pts[n-1].DistanceSquared(rb.pts[0]) <= minPointDistSq {
		rb.pts[n-1] = rb.pts[0]
		return
	}
	rb.pts = append(rb.pts, rb.pts[0])
}

// Closed reports whether the outline's first and last points coincide.
func (o Outline) Closed() bool {
	return len(o) >= 2 && o[0] == o[len(o)-1]
}

// Edges returns the outline's edges in ring order.
func (o Outline) Edges() []Line {
	if len(o) < 2 {
		return nil
	}
	edges := make([]Line, 0, len(o)-1)
	for i := 1; i < len(o); i++ {
		edges = append(edges, Line{o[i-1], o[i]})
	}
	return edges
}

// Area returns the signed area enclosed by the ring (shoelace formula).
// The sign depends on the winding and on the orientation of the y axis.
func (o Outline) Area() float64 {
	var a float64
	for _, e := range o.Edges() {
		a += Vec2(e.P0).Cross(Vec2(e.P1))
	}
	return 0.5 * a
}

// BoundingBox returns the smallest rectangle containing the outline. It
// reports false for an empty outline.
func (o Outline) BoundingBox() (Rect, bool) {
	return boundingRect(o)
}

// SelfIntersects reports whether two non-adjacent edges of the ring cross.
// Edges without length are ignored.
func (o Outline) SelfIntersects() bool {
	edges := o.Edges()
	n := len(edges)
	for i := 0; i < n; i++ {
		if edges[i].Length() <= minTangentLen {
			continue
		}
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 && o.Closed() {
				// Adjacent through the closing point.
				continue
			}
			if edges[j].Length() <= minTangentLen {
				continue
			}
			if _, ok := edges[i].IntersectLine(edges[j]); ok {
				return true
			}
		}
	}
	return false
}

// Densify splits every edge into ceil(length/maxSegLen) equal parts. The
// receiver is not modified; if maxSegLen isn't positive a copy is returned.
func (o Outline) Densify(maxSegLen float64) Outline {
	if !(maxSegLen > 0) || len(o) < 2 {
		return slices.Clone(o)
	}
	out := Outline{o[0]}
	for _, e := range o.Edges() {
		n := max(1, int(math.Ceil(e.Length()/maxSegLen)))
		for step := 1; step <= n; step++ {
			out = append(out, e.Eval(float64(step)/float64(n)))
		}
	}
	// Keep the ring exactly closed.
	if o.Closed() {
		out[len(out)-1] = out[0]
	}
	return out
}
