package staticmap

import (
	"math"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

// Center decides what part of the map ends up in the image. It is
// one of Position, Auto, or BoundingBox.
type Center interface {
	segment() string
	validate() error
}

// Auto lets mapbox frame the image around the overlays.
const Auto auto = "auto"

type auto string

func (a auto) segment() string { return string(a) }

func (auto) validate() error { return nil }

// Position is a camera position. Bearing and Pitch are
// left out of the url when they are zero.
type Position struct {
	Longitude float64
	Latitude  float64
	Zoom      float64
	Bearing   float64
	Pitch     float64
}

// Lat/lon bounds the api accepts for a center point.
const (
	maxLatitude = 85.0511
	maxZoom     = 22
	maxPitch    = 60
)

func (p Position) segment() string {
	parts := []string{
		formatFloat(p.Longitude),
		formatFloat(p.Latitude),
		formatFloat(p.Zoom),
	}
	// pitch needs a bearing in front of it even when the bearing is 0
	if p.Bearing != 0 || p.Pitch != 0 {
		parts = append(parts, formatFloat(p.Bearing))
	}
	if p.Pitch != 0 {
		parts = append(parts, formatFloat(p.Pitch))
	}
	return strings.Join(parts, ",")
}

func (p Position) validate() error {
	for _, c := range []struct {
		field    string
		val      float64
		min, max float64
	}{
		{"longitude", p.Longitude, -180, 180},
		{"latitude", p.Latitude, -maxLatitude, maxLatitude},
		{"zoom", p.Zoom, 0, maxZoom},
		{"bearing", p.Bearing, 0, 360},
		{"pitch", p.Pitch, 0, maxPitch},
	} {
		if err := inRange(c.field, c.val, c.min, c.max); err != nil {
			return err
		}
	}
	return nil
}

// BoundingBox frames the image around a geographic extent.
type BoundingBox orb.Bound

// NewBoundingBox creates a BoundingBox from its corners.
func NewBoundingBox(minLon, minLat, maxLon, maxLat float64) BoundingBox {
	return BoundingBox{
		Min: orb.Point{minLon, minLat},
		Max: orb.Point{maxLon, maxLat},
	}
}

func (bb BoundingBox) segment() string {
	return "[" + strings.Join([]string{
		formatFloat(bb.Min.Lon()),
		formatFloat(bb.Min.Lat()),
		formatFloat(bb.Max.Lon()),
		formatFloat(bb.Max.Lat()),
	}, ",") + "]"
}

func (bb BoundingBox) validate() error {
	for _, p := range []orb.Point{bb.Min, bb.Max} {
		if err := inRange("bbox", p.Lon(), -180, 180); err != nil {
			return err
		}
		if err := inRange("bbox", p.Lat(), -maxLatitude, maxLatitude); err != nil {
			return err
		}
	}
	if bb.Min.Lon() > bb.Max.Lon() || bb.Min.Lat() > bb.Max.Lat() {
		return invalid("bbox", "min corner is above or right of max corner")
	}
	return nil
}

func inRange(field string, v, min, max float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return invalidf(field, "%v is not a number", v)
	}
	if v < min || v > max {
		return invalidf(field, "%s is not between %s and %s",
			formatFloat(v), formatFloat(min), formatFloat(max))
	}
	return nil
}

// ParseCenter reads a Center from one of the forms used in urls:
//
//	auto
//	lon,lat,zoom[,bearing[,pitch]]
//	[minlon,minlat,maxlon,maxlat]
func ParseCenter(s string) (Center, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return nil, invalid("center", "missing")
	case s == string(Auto):
		return Auto, nil
	case strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]"):
		nums, err := parseFloats(s[1 : len(s)-1])
		if err != nil {
			return nil, err
		}
		if len(nums) != 4 {
			return nil, invalidf("bbox", "need 4 numbers, got %d", len(nums))
		}
		return NewBoundingBox(nums[0], nums[1], nums[2], nums[3]), nil
	}
	nums, err := parseFloats(s)
	if err != nil {
		return nil, err
	}
	if len(nums) < 3 || len(nums) > 5 {
		return nil, invalidf("center", "need 3 to 5 numbers, got %d", len(nums))
	}
	p := Position{Longitude: nums[0], Latitude: nums[1], Zoom: nums[2]}
	if len(nums) > 3 {
		p.Bearing = nums[3]
	}
	if len(nums) > 4 {
		p.Pitch = nums[4]
	}
	return p, nil
}

func parseFloats(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	nums := make([]float64, len(parts))
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, invalidf("center", "%q is not a number", p)
		}
		nums[i] = f
	}
	return nums, nil
}

var (
	_ Center = Auto
	_ Center = Position{}
	_ Center = BoundingBox{}
)
