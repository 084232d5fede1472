package arrowdoc

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/arrowkit/ribbon"
)

// Position is a GeoJSON position, longitude first.
type Position [2]float64

// Geometry is a GeoJSON Polygon geometry.
type Geometry struct {
	Type        string       `json:"type"`
	Coordinates [][]Position `json:"coordinates"`
}

// Feature is a GeoJSON Feature.
type Feature struct {
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties"`
	Geometry   Geometry       `json:"geometry"`
}

// Feature exports the arrow as a GeoJSON Polygon feature.
//
// The outline is recomputed from the centerline densified to
// [ribbon.CenterlineExportStep] and then densified to
// [ribbon.OutlineExportStep], so that the polygon follows the curve
// closely once unprojected. The ring is closed explicitly.
func (a *Arrow) Feature(name string) (*Feature, error) {
	dense := a.Centerline.Densify(ribbon.CenterlineExportStep)
	outline, ok := ribbon.OutlineFromCenterline(dense, a.Shape)
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrNoOutline)
	}
	outline = outline.Densify(ribbon.OutlineExportStep)

	ring := make([]Position, 0, len(outline)+1)
	for _, pt := range outline {
		ll := Unproject(pt, a.Zoom)
		ring = append(ring, Position{ll.Lng, ll.Lat})
	}
	if len(ring) > 0 && ring[0] != ring[len(ring)-1] {
		ring = append(ring, ring[0])
	}
	if len(ring) < 4 {
		return nil, fmt.Errorf("%q: polygon has %d positions: %w", name, len(ring), ErrNoOutline)
	}
	return &Feature{
		Type:       "Feature",
		Properties: map[string]any{"name": name},
		Geometry: Geometry{
			Type:        "Polygon",
			Coordinates: [][]Position{ring},
		},
	}, nil
}

// WriteGeoJSON writes the arrow's feature to w.
func (a *Arrow) WriteGeoJSON(w io.Writer, name string) error {
	f, err := a.Feature(name)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(f)
}

// WriteGeoJSON evaluates d at its view zoom and writes the resulting
// feature to w.
func (d *Document) WriteGeoJSON(w io.Writer) error {
	a, err := d.Evaluate(d.ViewZoom())
	if err != nil {
		return err
	}
	return a.WriteGeoJSON(w, d.Name)
}
