package ribbon

import "math"

// SolveITP finds a root of f in [a, b] using the [ITP method].
//
// The values of ya and yb are f(a) and f(b); they are passed in because
// callers usually know them already. It is assumed that ya < 0.0 and
// yb > 0.0, otherwise unexpected results may occur.
//
// The value of epsilon must be larger than 2**-63 * (b - a), otherwise
// integer overflow may occur.
//
// k2 is hardwired to 2. n0 controls the relative impact of bisection and the
// secant step: 0 never needs more iterations than bisection, 1 lets the
// secant method engage more on smooth functions. For k1, 0.2 / (b - a) is a
// good default.
//
// When the function is monotonic, the returned result is guaranteed to be
// within epsilon of the zero crossing.
//
// [ITP method]: https://en.wikipedia.org/wiki/ITP_Method
func SolveITP(
	f func(float64) float64,
	a float64,
	b float64,
	epsilon float64,
	n0 int,
	k1 float64,
	ya float64,
	yb float64,
) float64 {
	n1_2 := int(max(math.Ceil(math.Log2((b-a)/epsilon))-1.0, 0.0))
	nmax := n0 + n1_2
	scaledEpsilon := epsilon * float64(uint64(1)<<nmax)
	for b-a > 2.0*epsilon {
		x1_2 := 0.5 * (a + b)
		r := scaledEpsilon - 0.5*(b-a)
		xf := (yb*a - ya*b) / (yb - ya)
		sigma := x1_2 - xf
		// This has k2 = 2 hardwired for efficiency.
		delta := k1 * ((b - a) * (b - a))
		var xt float64
		if delta <= math.Abs(x1_2-xf) {
			xt = xf + math.Copysign(delta, sigma)
		} else {
			xt = x1_2
		}
		var xitp float64
		if math.Abs(xt-x1_2) <= r {
			xitp = xt
		} else {
			xitp = x1_2 - math.Copysign(r, sigma)
		}
		yitp := f(xitp)
		if yitp > 0.0 {
			b = xitp
			yb = yitp
		} else if yitp < 0.0 {
			a = xitp
			ya = yitp
		} else {
			return xitp
		}
		scaledEpsilon *= 0.5
	}
	return 0.5 * (a + b)
}

// solveChord returns the parameter in [t0, t1] at which c is at chord
// distance d from c.Eval(t0).
func solveChord(c CubicBez, t0, t1, d float64) float64 {
	if !(d > 0) || !(t1 > t0) {
		return t0
	}
	p0 := c.Eval(t0)
	span := c.Eval(t1).Distance(p0)
	if !(d < span) {
		return t1
	}
	f := func(t float64) float64 {
		return c.Eval(t).Distance(p0) - d
	}
	return SolveITP(f, t0, t1, paramEpsilon, 1, 0.2/(t1-t0), -d, span-d)
}
