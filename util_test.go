package ribbon

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

func straightAnchors() []Anchor {
	return []Anchor{{Pos: Pt(0, 0)}, {Pos: Pt(100, 0)}}
}

func bentAnchors() []Anchor {
	return []Anchor{{Pos: Pt(0, 0)}, {Pos: Pt(100, 0)}, {Pos: Pt(100, 100)}}
}

func curvedAnchors() []Anchor {
	h1, h2 := Pt(40, -30), Pt(60, -30)
	return []Anchor{
		{Pos: Pt(0, 0), Handle2: &h1},
		{Pos: Pt(100, 0), Handle1: &h2},
	}
}
