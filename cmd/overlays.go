package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/spf13/pflag"

	staticmap "github.com/harrybrwn/go-staticmap"
)

// overlayFlags are the flags shared by every url command.
type overlayFlags struct {
	retina      bool
	markers     []string
	geojson     string
	path        string
	strokeWidth float64
	strokeColor string
}

func (f *overlayFlags) register(fs *pflag.FlagSet) {
	fs.BoolVar(&f.retina, "retina", false, "request a @2x image")
	fs.StringArrayVarP(&f.markers, "marker", "m", nil, "add a marker as lon,lat[,size[,symbol[,color]]] (repeatable)")
	fs.StringVar(&f.geojson, "geojson", "", "geojson file to draw on the map")
	fs.StringVar(&f.path, "path", "", "geojson file with a LineString or Polygon to draw as a path")
	fs.Float64Var(&f.strokeWidth, "stroke-width", 0, "path stroke width")
	fs.StringVar(&f.strokeColor, "stroke-color", "", "path stroke color as hex")
}

func (f *overlayFlags) overlays() (staticmap.Overlays, error) {
	var (
		ov  staticmap.Overlays
		err error
	)
	for _, m := range f.markers {
		marker, err := parseMarker(m)
		if err != nil {
			return ov, err
		}
		ov.Markers = append(ov.Markers, marker)
	}
	if f.geojson != "" {
		raw, err := os.ReadFile(f.geojson)
		if err != nil {
			return ov, err
		}
		ov.GeoJSON = json.RawMessage(raw)
	}
	if f.path == "" && (f.strokeWidth != 0 || f.strokeColor != "") {
		return ov, errors.New("--stroke-width and --stroke-color need a --path")
	}
	if f.path != "" {
		ov.Path = &staticmap.Path{
			StrokeWidth: f.strokeWidth,
			StrokeColor: f.strokeColor,
		}
		if ov.Path.Geometry, err = readGeometry(f.path); err != nil {
			return ov, err
		}
	}
	return ov, nil
}

// parseMarker reads lon,lat[,size[,symbol[,color]]].
func parseMarker(s string) (staticmap.Marker, error) {
	var m staticmap.Marker
	parts := strings.Split(s, ",")
	if len(parts) < 2 || len(parts) > 5 {
		return m, fmt.Errorf("bad marker %q: want lon,lat[,size[,symbol[,color]]]", s)
	}
	var err error
	if m.Longitude, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64); err != nil {
		return m, fmt.Errorf("bad marker longitude: %w", err)
	}
	if m.Latitude, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64); err != nil {
		return m, fmt.Errorf("bad marker latitude: %w", err)
	}
	opt := func(i int) string {
		if i < len(parts) {
			return strings.TrimSpace(parts[i])
		}
		return ""
	}
	m.Size, m.Symbol, m.Color = opt(2), opt(3), opt(4)
	return m, nil
}

// readGeometry reads a geojson geometry or a feature wrapping one.
func readGeometry(file string) (orb.Geometry, error) {
	raw, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	var head struct {
		Type string `json:"type"`
	}
	if err = json.Unmarshal(raw, &head); err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	switch head.Type {
	case "Feature":
		f, err := geojson.UnmarshalFeature(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		return f.Geometry, nil
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		if len(fc.Features) == 0 {
			return nil, fmt.Errorf("%s: feature collection is empty", file)
		}
		return fc.Features[0].Geometry, nil
	}
	g, err := geojson.UnmarshalGeometry(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return g.Geometry(), nil
}
