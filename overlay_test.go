package staticmap

import (
	"encoding/json"
	"testing"

	"github.com/matryer/is"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

func TestMarkerToken(t *testing.T) {
	is := is.New(t)
	for _, tc := range []struct {
		m   Marker
		exp string
	}{
		{Marker{Longitude: 1, Latitude: 2}, "pin-l-circle(1,2)"},
		{Marker{Longitude: 1, Latitude: 2, Size: "s", Symbol: "a", Color: "f00"}, "pin-s-a+f00(1,2)"},
		{Marker{Longitude: -73.99, Latitude: 40.73, Symbol: "42", Color: "3BB2D0"}, "pin-l-42+3BB2D0(-73.99,40.73)"},
		{Marker{Longitude: 0.5, Latitude: -0.25, Symbol: "rail-metro"}, "pin-l-rail-metro(0.5,-0.25)"},
	} {
		tok, err := tc.m.token()
		is.NoErr(err)
		is.Equal(tok, tc.exp)
	}

	for _, m := range []Marker{
		{Longitude: 200, Latitude: 2},
		{Longitude: 1, Latitude: 86},
		{Longitude: 1, Latitude: 2, Size: "m"},
		{Longitude: 1, Latitude: 2, Symbol: "Bad Symbol"},
		{Longitude: 1, Latitude: 2, Color: "#f00"},
		{Longitude: 1, Latitude: 2, Color: "ff00"},
	} {
		_, err := m.token()
		is.True(IsValidation(err))
	}
}

func TestMultipleMarkers(t *testing.T) {
	is := is.New(t)
	ov := Overlays{Markers: []Marker{
		{Longitude: 1, Latitude: 2},
		{Longitude: 3, Latitude: 4, Size: "s"},
	}}
	s, err := ov.encode()
	is.NoErr(err)
	is.Equal(s, "pin-l-circle(1,2),pin-s-circle(3,4)")

	empty := Overlays{}
	s, err = empty.encode()
	is.NoErr(err)
	is.Equal(s, "")
}

func TestGeoJSONToken(t *testing.T) {
	is := is.New(t)
	for _, tc := range []struct {
		name string
		val  interface{}
		exp  string
	}{
		{
			"orb geometry",
			geojson.NewGeometry(orb.Point{0, 0}),
			"geojson(%7B%22type%22:%22Point%22,%22coordinates%22:[0,0]%7D)",
		},
		{
			"raw json gets compacted",
			json.RawMessage(`{ "type": "Point",
				"coordinates": [0, 0] }`),
			"geojson(%7B%22type%22:%22Point%22,%22coordinates%22:[0,0]%7D)",
		},
		{
			"map",
			map[string]interface{}{"type": "Point", "coordinates": []float64{1.5, -2}},
			"geojson(%7B%22coordinates%22:[1.5,-2],%22type%22:%22Point%22%7D)",
		},
		{
			"reserved characters in values",
			json.RawMessage(`{"properties":{"title":"a?b","href":"x/y"}}`),
			"geojson(%7B%22properties%22:%7B%22title%22:%22a%3Fb%22,%22href%22:%22x%2Fy%22%7D%7D)",
		},
		{
			"hash and spaces",
			json.RawMessage(`{"properties":{"marker-color":"#f00","title":"a b"}}`),
			"geojson(%7B%22properties%22:%7B%22marker-color%22:%22%23f00%22,%22title%22:%22a%20b%22%7D%7D)",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			is := is.New(t)
			ov := Overlays{GeoJSON: tc.val}
			s, err := ov.encode()
			is.NoErr(err)
			is.Equal(s, tc.exp)
		})
	}

	for _, bad := range []interface{}{
		[]int{1, 2},
		"Point",
		json.RawMessage(`{"type":`),
		make(chan int),
	} {
		ov := Overlays{GeoJSON: bad}
		_, err := ov.encode()
		is.True(IsValidation(err))
	}
}

func TestPathToken(t *testing.T) {
	is := is.New(t)
	line := orb.LineString{{0, 0}, {1, 1}}
	for _, tc := range []struct {
		path Path
		exp  string
	}{
		{Path{Geometry: line}, "path(??_ibE_ibE)"},
		{Path{Geometry: orb.Ring(line)}, "path(??_ibE_ibE)"},
		{Path{Geometry: orb.Polygon{orb.Ring(line), orb.Ring{{5, 5}, {6, 6}}}}, "path(??_ibE_ibE)"},
		{
			Path{Geometry: orb.LineString{{-120.2, 38.5}, {-120.95, 40.7}, {-126.453, 43.252}}},
			"path(_p~iF~ps|U_ulLnnqC_mqNvxq`@)",
		},
		{
			Path{Geometry: line, StrokeWidth: 5, StrokeColor: "f44", StrokeOpacity: Float(0.5)},
			"path-5+f44-0.5(??_ibE_ibE)",
		},
		{
			Path{Geometry: line, StrokeColor: "000", FillColor: "00ff00", FillOpacity: Float(0)},
			"path+000+00ff00-0(??_ibE_ibE)",
		},
	} {
		s, err := tc.path.token()
		is.NoErr(err)
		is.Equal(s, tc.exp)
	}

	for _, bad := range []Path{
		{},
		{Geometry: orb.Point{1, 1}},
		{Geometry: orb.Polygon{}},
		{Geometry: orb.LineString{{0, 0}}},
		{Geometry: orb.LineString{{0, 0}, {0, 91}}},
		{Geometry: line, StrokeWidth: -1},
		{Geometry: line, StrokeColor: "red"},
		{Geometry: line, FillOpacity: Float(1.5)},
	} {
		_, err := bad.token()
		is.True(IsValidation(err))
	}
}

func TestEscapeOverlay(t *testing.T) {
	is := is.New(t)
	is.Equal(escapeOverlay(`{"a":[1,2]}`), "%7B%22a%22:[1,2]%7D")
	is.Equal(escapeOverlay("a b\t|\\^`<>%#"), "a%20b%09%7C%5C%5E%60%3C%3E%25%23")
	is.Equal(escapeOverlay("é"), "%C3%A9")
	is.Equal(escapeOverlay("?/&=+;@$"), "%3F%2F%26%3D%2B%3B%40%24")
	is.Equal(escapeOverlay("-_.~!*'():,[]"), "-_.~!*'():,[]")
}

func TestOverlayKindString(t *testing.T) {
	is := is.New(t)
	is.Equal(MarkerOverlay.String(), "markers")
	is.Equal(GeoJSONOverlay.String(), "geojson")
	is.Equal(PathOverlay.String(), "path")
	is.Equal(OverlayKind(9).String(), "OverlayKind(9)")
}
