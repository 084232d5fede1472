package ribbon

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestAffineBasic(t *testing.T) {
	const epsilon = 1e-9
	p := Pt(3, 4)

	assertNear(t, p.Transform(Identity), p, epsilon)
	assertNear(t, p.Transform(Scale(2, 2)), Pt(6, 8), epsilon)
	assertNear(t, p.Transform(Translate(Vec(5, 6))), Pt(8, 10), epsilon)
}

func TestAffineMul(t *testing.T) {
	const epsilon = 1e-9
	a1 := Affine{1, 2, 3, 4, 5, 6}
	a2 := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}

	px := Pt(1, 0)
	py := Pt(0, 1)
	pxy := Pt(1, 1)

	assertNear(t, px.Transform(a2).Transform(a1), px.Transform(a1.Mul(a2)), epsilon)
	assertNear(t, py.Transform(a2).Transform(a1), py.Transform(a1.Mul(a2)), epsilon)
	assertNear(t, pxy.Transform(a2).Transform(a1), pxy.Transform(a1.Mul(a2)), epsilon)
}

func TestAffineScaling(t *testing.T) {
	if s := Scale(3, 3).Mul(Translate(Vec(10, -4))).Scaling(); s != 3 {
		t.Errorf("got scaling %v, want 3", s)
	}
	if s := Scale(-2, 2).Scaling(); s != 2 {
		t.Errorf("got scaling %v, want 2", s)
	}
}

func TestAffineTransformPoints(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(1, 2)}
	got := Translate(Vec(1, 1)).TransformPoints(pts)
	diff(t, []Point{Pt(1, 1), Pt(2, 3)}, got)
	diff(t, []Point{Pt(0, 0), Pt(1, 2)}, pts)
}

func TestRectFitAffine(t *testing.T) {
	src := Rect{0, 0, 100, 50}
	dst := Rect{0, 0, 400, 400}
	aff := src.FitAffine(dst)

	want := []Point{Pt(0, 100), Pt(400, 300), Pt(200, 200)}
	got := aff.TransformPoints([]Point{Pt(0, 0), Pt(100, 50), Pt(50, 25)})
	diff(t, want, got, cmpopts.EquateApprox(0, 1e-9))

	// A single point lands in the middle.
	p := Rect{5, 5, 5, 5}.FitAffine(dst)
	assertNear(t, Pt(5, 5).Transform(p), Pt(200, 200), 1e-9)
}
