package ribbon

import (
	"math"
)

// Line represents a line segment.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// LineIntersection describes where two line segments cross.
type LineIntersection struct {
	// The 'time' that the intersection occurs on the probe line, in the
	// range 0..1.
	LineT float64
	// The 'time' that the intersection occurs on the receiver, nominally in
	// the range 0..1 but possibly exceeding it by a small epsilon.
	SegmentT float64
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Cubic returns the line as a cubic Bézier whose parameter moves at
// constant speed, so that Eval(t) of both agree.
func (l Line) Cubic() CubicBez {
	return CubicBez{
		P0: l.P0,
		P1: l.P0.Lerp(l.P1, 1.0/3.0),
		P2: l.P0.Lerp(l.P1, 2.0/3.0),
		P3: l.P1,
	}
}

// IntersectLine computes the intersection of l with the probe line o. It
// reports false for parallel or coincident lines and for lines that don't
// cross within both segments.
func (l Line) IntersectLine(o Line) (LineIntersection, bool) {
	const epsilon = 1e-9
	p0 := o.P0
	p1 := o.P1
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y

	det := dx*(l.P1.Y-l.P0.Y) - dy*(l.P1.X-l.P0.X)
	if math.Abs(det) < epsilon {
		// Lines are coincident (or nearly so).
		return LineIntersection{}, false
	}
	t := dx*(p0.Y-l.P0.Y) - dy*(p0.X-l.P0.X)
	// t = position on self
	t /= det
	if t >= -epsilon && t <= 1+epsilon {
		// u = position on probe line
		u :=
			(l.P0.X-p0.X)*(l.P1.Y-l.P0.Y) - (l.P0.Y-p0.Y)*(l.P1.X-l.P0.X)
		u /= det
		if u >= 0.0 && u <= 1.0 {
			return LineIntersection{u, t}, true
		}
	}
	return LineIntersection{}, false
}
