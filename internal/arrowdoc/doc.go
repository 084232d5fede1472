// Package arrowdoc reads arrow documents, the persisted form of a drawn
// arrow: a name, anchors in geographic coordinates and the parameters that
// size the arrow. It turns documents into engine input by projecting them
// into Web Mercator pixel space, and exports the result as GeoJSON.
package arrowdoc

import (
	"errors"
	"fmt"
	"math"

	"github.com/arrowkit/ribbon"
)

var (
	// ErrTooFewAnchors is returned when a document has fewer than two
	// anchors.
	ErrTooFewAnchors = errors.New("arrowdoc: at least two anchors are required")
	// ErrNoOutline is returned when the curve is too short or too
	// degenerate to produce an outline.
	ErrNoOutline = errors.New("arrowdoc: curve has no outline")
	// ErrUnknownFormat is returned for file extensions without a decoder.
	ErrUnknownFormat = errors.New("arrowdoc: unknown document format")
)

// LatLng is a geographic position in degrees.
type LatLng struct {
	Lat float64 `json:"lat" yaml:"lat" toml:"lat"`
	Lng float64 `json:"lng" yaml:"lng" toml:"lng"`
}

func (ll LatLng) valid() bool {
	return !math.IsNaN(ll.Lat) && !math.IsInf(ll.Lat, 0) &&
		!math.IsNaN(ll.Lng) && !math.IsInf(ll.Lng, 0)
}

// Anchor is a point the arrow passes through, with optional handles.
// Handle1 shapes the curve arriving at the anchor, Handle2 the curve
// leaving it.
type Anchor struct {
	ID      string  `json:"id,omitempty" yaml:"id,omitempty" toml:"id,omitempty"`
	LatLng  LatLng  `json:"latlng" yaml:"latlng" toml:"latlng"`
	Handle1 *LatLng `json:"handle1" yaml:"handle1" toml:"handle1,omitempty"`
	Handle2 *LatLng `json:"handle2" yaml:"handle2" toml:"handle2,omitempty"`
}

// Document is a persisted arrow.
type Document struct {
	Name string `json:"name" yaml:"name" toml:"name"`
	// Zoom is the map zoom the arrow is viewed at. Unset means BaseZoom, or
	// 0 if that is unset too.
	Zoom       *float64   `json:"zoom,omitempty" yaml:"zoom,omitempty" toml:"zoom,omitempty"`
	Anchors    []Anchor   `json:"anchors" yaml:"anchors" toml:"anchors"`
	Parameters Parameters `json:"parameters" yaml:"parameters" toml:"parameters"`
}

// Validate checks that all coordinates are finite and assigns ids to
// anchors that have none.
func (d *Document) Validate() error {
	for i := range d.Anchors {
		a := &d.Anchors[i]
		if a.ID == "" {
			a.ID = fmt.Sprintf("a%d", i)
		}
		if !a.LatLng.valid() {
			return fmt.Errorf("anchor %s: invalid position %v", a.ID, a.LatLng)
		}
		if a.Handle1 != nil && !a.Handle1.valid() {
			return fmt.Errorf("anchor %s: invalid handle1 %v", a.ID, *a.Handle1)
		}
		if a.Handle2 != nil && !a.Handle2.valid() {
			return fmt.Errorf("anchor %s: invalid handle2 %v", a.ID, *a.Handle2)
		}
	}
	return nil
}

// ViewZoom returns the zoom the document is viewed at.
func (d *Document) ViewZoom() float64 {
	switch {
	case d.Zoom != nil:
		return *d.Zoom
	case d.Parameters.BaseZoom != nil:
		return *d.Parameters.BaseZoom
	default:
		return 0
	}
}

// ProjectedAnchors returns the document's anchors in pixel space at zoom.
func (d *Document) ProjectedAnchors(zoom float64) []ribbon.Anchor {
	out := make([]ribbon.Anchor, len(d.Anchors))
	for i, a := range d.Anchors {
		out[i] = ribbon.Anchor{ID: a.ID, Pos: Project(a.LatLng, zoom)}
		if a.Handle1 != nil {
			pt := Project(*a.Handle1, zoom)
			out[i].Handle1 = &pt
		}
		if a.Handle2 != nil {
			pt := Project(*a.Handle2, zoom)
			out[i].Handle2 = &pt
		}
	}
	return out
}

// Arrow is a document evaluated at a zoom level.
type Arrow struct {
	Zoom       float64
	Anchors    []ribbon.Anchor
	Centerline ribbon.Centerline
	Shape      ribbon.ShapeParams
	Outline    ribbon.Outline
}

// Evaluate projects the document at zoom and computes its centerline and
// outline.
func (d *Document) Evaluate(zoom float64) (*Arrow, error) {
	if len(d.Anchors) < 2 {
		return nil, ErrTooFewAnchors
	}
	anchors := d.ProjectedAnchors(zoom)
	cl := ribbon.NewCenterline(anchors)
	shape := d.Parameters.Resolve(cl.Length, zoom)
	outline, ok := ribbon.OutlineFromCenterline(cl, shape)
	if !ok {
		return nil, fmt.Errorf("%q at zoom %g: %w", d.Name, zoom, ErrNoOutline)
	}
	ribbon.Logger().Debug("evaluated arrow",
		"name", d.Name,
		"zoom", zoom,
		"length", cl.Length,
		"samples", len(cl.Samples),
		"outline", len(outline))
	return &Arrow{
		Zoom:       zoom,
		Anchors:    anchors,
		Centerline: cl,
		Shape:      shape,
		Outline:    outline,
	}, nil
}
