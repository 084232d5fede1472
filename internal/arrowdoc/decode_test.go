package arrowdoc

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jsonDoc = `{
  "name": "Rhine crossing",
  "zoom": 8,
  "anchors": [
    {"id": "start", "latlng": {"lat": 50.0, "lng": 7.0}, "handle1": null, "handle2": {"lat": 50.2, "lng": 7.3}},
    {"latlng": {"lat": 50.5, "lng": 8.0}, "handle1": {"lat": 50.6, "lng": 7.6}, "handle2": null}
  ],
  "parameters": {
    "rearWidthPx": 12,
    "neckWidthPx": 10,
    "headWidthPx": 30,
    "headLengthPx": 40,
    "baseZoom": 6
  }
}`

const yamlDoc = `
name: Rhine crossing
zoom: 8
anchors:
  - id: start
    latlng: {lat: 50.0, lng: 7.0}
    handle1: null
    handle2: {lat: 50.2, lng: 7.3}
  - latlng: {lat: 50.5, lng: 8.0}
    handle1: {lat: 50.6, lng: 7.6}
parameters:
  rearWidthPx: 12
  neckWidthPx: 10
  headWidthPx: 30
  headLengthPx: 40
  baseZoom: 6
`

const tomlDoc = `
name = "Rhine crossing"
zoom = 8.0

[parameters]
rearWidthPx = 12.0
neckWidthPx = 10.0
headWidthPx = 30.0
headLengthPx = 40.0
baseZoom = 6.0

[[anchors]]
id = "start"
latlng = { lat = 50.0, lng = 7.0 }
handle2 = { lat = 50.2, lng = 7.3 }

[[anchors]]
latlng = { lat = 50.5, lng = 8.0 }
handle1 = { lat = 50.6, lng = 7.6 }
`

func wantDoc() *Document {
	return &Document{
		Name: "Rhine crossing",
		Zoom: Float(8),
		Anchors: []Anchor{
			{ID: "start", LatLng: LatLng{50, 7}, Handle2: &LatLng{50.2, 7.3}},
			{ID: "a1", LatLng: LatLng{50.5, 8}, Handle1: &LatLng{50.6, 7.6}},
		},
		Parameters: Parameters{
			RearWidthPx:  Float(12),
			NeckWidthPx:  Float(10),
			HeadWidthPx:  Float(30),
			HeadLengthPx: Float(40),
			BaseZoom:     Float(6),
		},
	}
}

func TestReadFormats(t *testing.T) {
	tests := []struct {
		ext  string
		data string
	}{
		{".json", jsonDoc},
		{".yaml", yamlDoc},
		{".yml", yamlDoc},
		{".toml", tomlDoc},
	}
	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			f, err := DecoderFor("arrow" + tt.ext)
			require.NoError(t, err)
			d, err := ReadBytes([]byte(tt.data), f)
			require.NoError(t, err)
			assert.Equal(t, wantDoc(), d)
		})
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "arrow.YAML")
	require.NoError(t, os.WriteFile(filename, []byte(yamlDoc), 0o644))

	d, err := Open(filename)
	require.NoError(t, err)
	assert.Equal(t, wantDoc(), d)

	_, err = Open(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestUnknownFormat(t *testing.T) {
	_, err := DecoderFor("arrow.xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = Open("arrow")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestReadInvalid(t *testing.T) {
	f := Decoders[".json"]

	_, err := ReadBytes([]byte(`{"anchors": [`), f)
	assert.Error(t, err)

	_, err = ReadBytes([]byte(`{"anchors": [{"latlng": {"lat": 1, "lng": 2}}, {"latlng": {"lat": 1, "lng": 2}, "handle2": {"lat": 1e999, "lng": 0}}]}`), f)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	nan := LatLng{Lat: 0, Lng: math.NaN()}

	d := &Document{Anchors: []Anchor{{LatLng: LatLng{1, 2}}, {LatLng: nan}}}
	assert.Error(t, d.Validate())
	assert.Equal(t, "a0", d.Anchors[0].ID)

	d = &Document{Anchors: []Anchor{{LatLng: LatLng{1, 2}}, {LatLng: LatLng{3, 4}, Handle1: &nan}}}
	assert.ErrorContains(t, d.Validate(), "handle1")
}
