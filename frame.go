package ribbon

const (
	// Derivatives and chords shorter than this have no usable direction.
	minTangentLen = 1e-9
	// Parameter step of the finite-difference tangent fallback.
	finiteDiffStep = 1e-3
	// Parameter accuracy of chord-distance solves.
	paramEpsilon = 1e-12
	// Points closer than this (squared) are the same point.
	minPointDistSq = 1e-12
)

var (
	axisTangent = Vec2{1, 0}
	axisNormal  = Vec2{0, 1}
)

// frame carries the last accepted normal through a sampling pass, so that
// consecutive normals keep a consistent sign. The zero value has no
// history.
type frame struct {
	normal option[Vec2]
}

// orient turns a unit tangent into a (tangent, normal) pair and returns the
// frame to use for the next station. The normal is tangent.Perp(), flipped
// if it disagrees with the previous normal.
//
// If ok is false there is no usable tangent: the previous normal is kept
// and the tangent derived from it. Without a previous normal the fixed axis
// ⟨1, 0⟩ / ⟨0, 1⟩ is used.
func (f frame) orient(tangent Vec2, ok bool) (Vec2, Vec2, frame) {
	prev, hasPrev := f.normal.get()
	if !ok {
		if !hasPrev {
			return axisTangent, axisNormal, frame{some(axisNormal)}
		}
		// The tangent whose Perp is prev.
		return Vec2{prev.Y, -prev.X}, prev, f
	}
	n := tangent.Perp()
	if hasPrev && n.Dot(prev) < 0 {
		n = n.Negate()
	}
	return tangent, n, frame{some(n)}
}

// tangentAt returns the unit tangent of c at t.
//
// When the derivative vanishes (cusps, control points coinciding with
// their anchors) it falls back to a finite difference around t, and then to
// the chord from a to b. It reports false when none of these has a usable
// length.
func tangentAt(c CubicBez, t float64, a, b Point) (Vec2, bool) {
	if v, ok := c.Deriv(t).Unit(); ok {
		return v, true
	}
	t0 := max(0, t-finiteDiffStep)
	t1 := min(1, t+finiteDiffStep)
	if t1 > t0 {
		if v, ok := c.Eval(t1).Sub(c.Eval(t0)).Unit(); ok {
			return v, true
		}
	}
	return b.Sub(a).Unit()
}
