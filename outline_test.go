package ribbon

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestOutlineStraightArrow(t *testing.T) {
	cl := NewCenterline(straightAnchors())
	got, ok := OutlineFromCenterline(cl, ShapeParams{RearWidth: 10, NeckWidth: 10, HeadWidth: 20, HeadLength: 20})
	if !ok {
		t.Fatal("no outline")
	}
	want := Outline{
		Pt(0, 5),
		Pt(80, 5),
		Pt(80, 10),
		Pt(100, 0),
		Pt(80, -10),
		Pt(80, -5),
		Pt(0, -5),
		Pt(0, 5),
	}
	diff(t, want, got, cmpopts.EquateApprox(0, 1e-6))
	if !got.Closed() {
		t.Error("outline isn't closed")
	}
	if got.SelfIntersects() {
		t.Error("outline intersects itself")
	}
	if a := math.Abs(got.Area()); math.Abs(a-1000) > 1e-6 {
		t.Errorf("got area %v, want 1000", a)
	}
}

func TestOutlineWithoutHead(t *testing.T) {
	cl := NewCenterline(straightAnchors())
	got, ok := OutlineFromCenterline(cl, ShapeParams{RearWidth: 10, NeckWidth: 10, HeadWidth: 20})
	if !ok {
		t.Fatal("no outline")
	}
	want := Outline{Pt(0, 5), Pt(100, 5), Pt(100, -5), Pt(0, -5), Pt(0, 5)}
	diff(t, want, got, cmpopts.EquateApprox(0, 1e-6))
}

func TestOutlineTaper(t *testing.T) {
	cl := NewCenterline(straightAnchors())
	got, ok := OutlineFromCenterline(cl, ShapeParams{RearWidth: 20, NeckWidth: 4, HeadWidth: 12, HeadLength: 20})
	if !ok {
		t.Fatal("no outline")
	}
	want := Outline{
		Pt(0, 10),
		Pt(80, 2),
		Pt(80, 6),
		Pt(100, 0),
		Pt(80, -6),
		Pt(80, -2),
		Pt(0, -10),
		Pt(0, 10),
	}
	diff(t, want, got, cmpopts.EquateApprox(0, 1e-6))
}

func TestOutlineZeroLength(t *testing.T) {
	cl := NewCenterline([]Anchor{{Pos: Pt(5, 5)}, {Pos: Pt(5, 5)}})
	if o, ok := OutlineFromCenterline(cl, ShapeParams{RearWidth: 10, NeckWidth: 10, HeadWidth: 20, HeadLength: 20}); ok {
		t.Errorf("got outline %v for a zero-length curve", o)
	}
	if o, ok := OutlineFromCenterline(Centerline{}, ShapeParams{RearWidth: 10}); ok {
		t.Errorf("got outline %v for an empty centerline", o)
	}
}

func TestOutlineBend(t *testing.T) {
	cl := NewCenterline(bentAnchors())
	got, ok := OutlineFromCenterline(cl, ShapeParams{RearWidth: 4, NeckWidth: 4, HeadWidth: 8, HeadLength: 10})
	if !ok {
		t.Fatal("no outline")
	}
	if got.SelfIntersects() {
		t.Errorf("outline intersects itself: %v", got)
	}
	if !got.Closed() {
		t.Error("outline isn't closed")
	}
	// The tip is the last anchor.
	found := false
	for _, pt := range got {
		if pt.Distance(Pt(100, 100)) < 1e-9 {
			found = true
		}
	}
	if !found {
		t.Error("outline doesn't contain the tip")
	}
}

func TestOutlineHeadLongerThanCurve(t *testing.T) {
	cl := NewCenterline(straightAnchors())
	got, ok := OutlineFromCenterline(cl, ShapeParams{RearWidth: 10, NeckWidth: 10, HeadWidth: 20, HeadLength: 500})
	if !ok {
		t.Fatal("no outline")
	}
	want := Outline{Pt(0, 5), Pt(0, 10), Pt(100, 0), Pt(0, -10), Pt(0, -5), Pt(0, 5)}
	diff(t, want, got, cmpopts.EquateApprox(0, 1e-6))
}

func TestOutlineZeroWidth(t *testing.T) {
	cl := NewCenterline(straightAnchors())
	got, ok := OutlineFromCenterline(cl, ShapeParams{HeadWidth: 20, HeadLength: 20})
	if !ok {
		t.Fatal("no outline")
	}
	want := Outline{Pt(0, 0), Pt(80, 0), Pt(80, 10), Pt(100, 0), Pt(80, -10), Pt(80, 0), Pt(0, 0)}
	diff(t, want, got, cmpopts.EquateApprox(0, 1e-6))

	if o, ok := OutlineFromCenterline(cl, ShapeParams{}); ok {
		t.Errorf("got outline %v without any width", o)
	}
}

func TestOutlineDeterministic(t *testing.T) {
	p := ShapeParams{RearWidth: 6, NeckWidth: 4, HeadWidth: 16, HeadLength: 20}
	o1, _ := OutlineFromCenterline(NewCenterline(curvedAnchors()), p)
	o2, _ := OutlineFromCenterline(NewCenterline(curvedAnchors()), p)
	diff(t, o1, o2)
}

func TestOutlineFromPolyline(t *testing.T) {
	p := ShapeParams{RearWidth: 10, NeckWidth: 10, HeadWidth: 20, HeadLength: 20}
	got, ok := OutlineFromPolyline([]Point{Pt(0, 0), Pt(100, 0)}, p)
	if !ok {
		t.Fatal("no outline")
	}
	want, _ := OutlineFromCenterline(NewCenterline(straightAnchors()), p)
	diff(t, want, got, cmpopts.EquateApprox(0, 1e-6))

	// Interior points add collinear vertices but don't change the shape.
	got, ok = OutlineFromPolyline([]Point{Pt(0, 0), Pt(50, 0), Pt(100, 0)}, p)
	if !ok {
		t.Fatal("no outline")
	}
	if a := math.Abs(got.Area()); math.Abs(a-1000) > 1e-6 {
		t.Errorf("got area %v, want 1000", a)
	}
	gotBox, _ := got.BoundingBox()
	wantBox, _ := want.BoundingBox()
	diff(t, wantBox, gotBox, cmpopts.EquateApprox(0, 1e-6))
}

func TestOutlineSelfIntersects(t *testing.T) {
	bowtie := Outline{Pt(0, 0), Pt(10, 10), Pt(10, 0), Pt(0, 10), Pt(0, 0)}
	if !bowtie.SelfIntersects() {
		t.Error("bow tie doesn't intersect itself")
	}
	square := Outline{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10), Pt(0, 0)}
	if square.SelfIntersects() {
		t.Error("square intersects itself")
	}
}

func TestOutlineBoundingBox(t *testing.T) {
	o, _ := OutlineFromCenterline(NewCenterline(straightAnchors()), ShapeParams{RearWidth: 10, NeckWidth: 10, HeadWidth: 20, HeadLength: 20})
	r, ok := o.BoundingBox()
	if !ok {
		t.Fatal("no bounding box")
	}
	diff(t, Rect{0, -10, 100, 10}, r, cmpopts.EquateApprox(0, 1e-6))
	if _, ok := Outline(nil).BoundingBox(); ok {
		t.Error("got a bounding box for an empty outline")
	}
}
