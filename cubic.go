package ribbon

import "math"

// CubicBez is a cubic Bézier curve. Every segment of a centerline is one.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

func (cb CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(cb.P0).Mul(mt * mt * mt)
	b := Vec2(cb.P1).Mul(mt * mt * 3.0)
	c := Vec2(cb.P2).Mul(mt * 3.0)
	d := Vec2(cb.P3)
	v := a.Add(b.Add(c.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Deriv evaluates the first derivative of the curve at t.
func (c CubicBez) Deriv(t float64) Vec2 {
	return Vec2(c.Differentiate().Eval(t))
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := c.Eval(0.5)
	return CubicBez{
			c.P0,
			c.P0.Midpoint(c.P1),
			Point(Vec2(c.P0).Add(Vec2(c.P1).Mul(2.0)).Add(Vec2(c.P2)).Mul(0.25)),
			pm,
		},
		CubicBez{
			pm,
			Point(Vec2(c.P1).Add(Vec2(c.P2).Mul(2.0)).Add(Vec2(c.P3)).Mul(0.25)),
			c.P2.Midpoint(c.P3),
			c.P3,
		}
}

// Differentiate returns the hodograph of the cubic, a quadratic Bézier
// whose evaluation at t is the cubic's derivative at t.
func (c CubicBez) Differentiate() QuadBez {
	return QuadBez{
		Point(c.P1.Sub(c.P0).Mul(3)),
		Point(c.P2.Sub(c.P1).Mul(3)),
		Point(c.P3.Sub(c.P2).Mul(3)),
	}
}

// Flatness returns the larger of the two perpendicular distances of the
// control points from the chord P0–P3.
//
// A degenerate chord is treated as having length 1e-9, so the result
// grows with the control points' distance from P0 instead of becoming
// NaN.
func (c CubicBez) Flatness() float64 {
	chord := c.P3.Sub(c.P0)
	chordLen := max(chord.Hypot(), 1e-9)
	dist := func(pt Point) float64 {
		return math.Abs(pt.Sub(c.P0).Cross(chord)) / chordLen
	}
	return max(dist(c.P1), dist(c.P2))
}

// BoundingBox returns the bounding box of the control polygon, which
// contains the curve.
func (c CubicBez) BoundingBox() Rect {
	return NewRectFromPoints(c.P0, c.P3).UnionPoint(c.P1).UnionPoint(c.P2)
}
