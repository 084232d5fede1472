package ribbon

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestIntersectLine(t *testing.T) {
	hLine := Line{Pt(0.0, 0.0), Pt(100.0, 0.0)}
	vLine := Line{Pt(10.0, -10.0), Pt(10.0, 10.0)}
	x, ok := hLine.IntersectLine(vLine)
	if !ok {
		t.Fatal("expected an intersection")
	}
	diff(t, LineIntersection{0.5, 0.1}, x, cmpopts.EquateApprox(0, 1e-7))

	vLine = Line{Pt(-10.0, -10.0), Pt(-10.0, 10.0)}
	if x, ok := hLine.IntersectLine(vLine); ok {
		t.Errorf("expected no intersections, got %v", x)
	}

	vLine = Line{Pt(10.0, 10.0), Pt(10.0, 20.0)}
	if x, ok := hLine.IntersectLine(vLine); ok {
		t.Errorf("expected no intersections, got %v", x)
	}

	if x, ok := hLine.IntersectLine(Line{Pt(0, 5), Pt(100, 5)}); ok {
		t.Errorf("parallel lines intersect at %v", x)
	}
}

func TestLineCubic(t *testing.T) {
	l := Line{Pt(0, 0), Pt(30, 60)}
	c := l.Cubic()
	for i := 0; i < 11; i++ {
		ts := float64(i) / 10
		assertNear(t, c.Eval(ts), l.Eval(ts), 1e-9)
	}
	if f := c.Flatness(); f > 1e-9 {
		t.Errorf("got flatness %v for a straight cubic", f)
	}
}
