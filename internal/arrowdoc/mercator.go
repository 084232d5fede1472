package arrowdoc

import (
	"math"

	"github.com/arrowkit/ribbon"
)

const (
	// TileSize is the width of the world in pixels at zoom 0.
	TileSize = 256
	// MaxLatitude is the latitude at which Web Mercator becomes square.
	MaxLatitude = 85.0511287798
)

// WorldSize returns the width and height of the world in pixels at zoom.
func WorldSize(zoom float64) float64 {
	return TileSize * math.Exp2(zoom)
}

// Project maps ll to spherical Web Mercator pixel coordinates at zoom, with
// the origin at the north-west corner and y pointing south. Latitudes are
// clamped to ±MaxLatitude.
func Project(ll LatLng, zoom float64) ribbon.Point {
	ws := WorldSize(zoom)
	lat := min(max(ll.Lat, -MaxLatitude), MaxLatitude) * math.Pi / 180
	x := 0.5 + ll.Lng/360
	y := 0.5 - math.Log(math.Tan(math.Pi/4+lat/2))/(2*math.Pi)
	return ribbon.Pt(x*ws, y*ws)
}

// Unproject is the inverse of [Project]. Longitudes are wrapped to
// [-180, 180).
func Unproject(pt ribbon.Point, zoom float64) LatLng {
	ws := WorldSize(zoom)
	lng := (pt.X/ws - 0.5) * 360
	lat := 2*math.Atan(math.Exp((0.5-pt.Y/ws)*2*math.Pi)) - math.Pi/2
	return LatLng{Lat: lat * 180 / math.Pi, Lng: wrapLongitude(lng)}
}

func wrapLongitude(lng float64) float64 {
	if lng >= -180 && lng < 180 {
		return lng
	}
	lng = math.Mod(lng+180, 360)
	if lng < 0 {
		lng += 360
	}
	return lng - 180
}
