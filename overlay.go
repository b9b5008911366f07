package staticmap

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/paulmach/orb"
	"github.com/twpayne/go-polyline"
)

// OverlayKind names one type of overlay.
type OverlayKind int

// Overlay kinds.
const (
	MarkerOverlay OverlayKind = iota
	GeoJSONOverlay
	PathOverlay
)

func (k OverlayKind) String() string {
	switch k {
	case MarkerOverlay:
		return "markers"
	case GeoJSONOverlay:
		return "geojson"
	case PathOverlay:
		return "path"
	}
	return fmt.Sprintf("OverlayKind(%d)", int(k))
}

// DefaultOverlayOrder is the order overlays are written in when
// Overlays.Order is empty.
var DefaultOverlayOrder = []OverlayKind{MarkerOverlay, GeoJSONOverlay, PathOverlay}

// each encoder returns "" when its overlay is not set
var overlayEncoders = map[OverlayKind]func(*Overlays) (string, error){
	MarkerOverlay:  (*Overlays).markers,
	GeoJSONOverlay: (*Overlays).geojson,
	PathOverlay:    (*Overlays).path,
}

// encode validates every overlay and joins the ones that are
// present into a single path segment.
func (o *Overlays) encode() (string, error) {
	order := o.Order
	if len(order) == 0 {
		order = DefaultOverlayOrder
	}
	seen := make(map[OverlayKind]bool, len(order))
	tokens := make([]string, 0, len(order))
	for _, kind := range order {
		enc, ok := overlayEncoders[kind]
		if !ok {
			return "", invalidf("overlay order", "unknown overlay %v", kind)
		}
		if seen[kind] {
			return "", invalidf("overlay order", "%v listed twice", kind)
		}
		seen[kind] = true
		tok, err := enc(o)
		if err != nil {
			return "", err
		}
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	// an overlay left out of a custom order would be silently dropped
	for _, kind := range DefaultOverlayOrder {
		if !seen[kind] && o.has(kind) {
			return "", invalidf("overlay order", "%v is set but not in the order", kind)
		}
	}
	return strings.Join(tokens, ","), nil
}

func (o *Overlays) has(kind OverlayKind) bool {
	switch kind {
	case MarkerOverlay:
		return len(o.Markers) > 0
	case GeoJSONOverlay:
		return o.GeoJSON != nil
	case PathOverlay:
		return o.Path != nil
	}
	return false
}

// Marker is a pin placed on the map.
type Marker struct {
	Longitude float64
	Latitude  float64

	// Size is "s" or "l", defaults to "l".
	Size string
	// Symbol is a letter, a number from 0 to 99, or a maki icon
	// name. Defaults to "circle".
	Symbol string
	// Color is a 3 or 6 digit hex color without the '#'.
	Color string
}

var (
	symbolPattern = regexp.MustCompile(`^[a-z0-9-]+$`)
	colorPattern  = regexp.MustCompile(`^([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
)

func (m *Marker) token() (string, error) {
	if err := inRange("marker longitude", m.Longitude, -180, 180); err != nil {
		return "", err
	}
	if err := inRange("marker latitude", m.Latitude, -maxLatitude, maxLatitude); err != nil {
		return "", err
	}
	size := m.Size
	switch size {
	case "":
		size = "l"
	case "s", "l":
	default:
		return "", invalidf("marker size", "%q is not \"s\" or \"l\"", m.Size)
	}
	symbol := m.Symbol
	if symbol == "" {
		symbol = "circle"
	} else if !symbolPattern.MatchString(symbol) {
		return "", invalidf("marker symbol", "%q", m.Symbol)
	}

	var b strings.Builder
	b.WriteString("pin-")
	b.WriteString(size)
	b.WriteByte('-')
	b.WriteString(symbol)
	if m.Color != "" {
		if !colorPattern.MatchString(m.Color) {
			return "", invalidf("marker color", "%q is not a hex color", m.Color)
		}
		b.WriteByte('+')
		b.WriteString(m.Color)
	}
	fmt.Fprintf(&b, "(%s,%s)", formatFloat(m.Longitude), formatFloat(m.Latitude))
	return b.String(), nil
}

func (o *Overlays) markers() (string, error) {
	toks := make([]string, len(o.Markers))
	for i := range o.Markers {
		t, err := o.Markers[i].token()
		if err != nil {
			return "", err
		}
		toks[i] = t
	}
	return strings.Join(toks, ","), nil
}

func (o *Overlays) geojson() (string, error) {
	if o.GeoJSON == nil {
		return "", nil
	}
	// json.Marshal also compacts the output of custom marshalers
	raw, err := json.Marshal(o.GeoJSON)
	if err != nil {
		return "", invalidf("geojson", "could not encode: %v", err)
	}
	if len(raw) == 0 || raw[0] != '{' {
		return "", invalid("geojson", "not a json object")
	}
	return "geojson(" + escapeOverlay(string(raw)) + ")", nil
}

// Path is a line or polygon drawn on the map.
type Path struct {
	// Geometry must be an orb.LineString, orb.Ring, or orb.Polygon.
	// Only the outer ring of a polygon is drawn.
	Geometry orb.Geometry

	StrokeWidth   float64
	StrokeColor   string
	StrokeOpacity *float64
	FillColor     string
	FillOpacity   *float64
}

func (o *Overlays) path() (string, error) {
	if o.Path == nil {
		return "", nil
	}
	return o.Path.token()
}

func (p *Path) token() (string, error) {
	var pts []orb.Point
	switch g := p.Geometry.(type) {
	case orb.LineString:
		pts = g
	case orb.Ring:
		pts = g
	case orb.Polygon:
		if len(g) == 0 {
			return "", invalid("path", "polygon has no rings")
		}
		pts = g[0]
	case nil:
		return "", invalid("path", "missing geometry")
	default:
		return "", invalidf("path", "cannot draw a %s", g.GeoJSONType())
	}
	if len(pts) < 2 {
		return "", invalidf("path", "need at least 2 points, got %d", len(pts))
	}

	coords := make([][]float64, len(pts))
	for i, pt := range pts {
		if err := inRange("path longitude", pt.Lon(), -180, 180); err != nil {
			return "", err
		}
		if err := inRange("path latitude", pt.Lat(), -90, 90); err != nil {
			return "", err
		}
		coords[i] = []float64{pt.Lat(), pt.Lon()}
	}

	style, err := p.style()
	if err != nil {
		return "", err
	}
	return "path" + style + "(" + string(polyline.EncodeCoords(coords)) + ")", nil
}

func (p *Path) style() (string, error) {
	var b strings.Builder
	if p.StrokeWidth < 0 {
		return "", invalidf("path stroke width", "%s is negative", formatFloat(p.StrokeWidth))
	}
	if p.StrokeWidth > 0 {
		b.WriteString("-" + formatFloat(p.StrokeWidth))
	}
	for _, s := range []struct {
		field   string
		color   string
		opacity *float64
	}{
		{"path stroke", p.StrokeColor, p.StrokeOpacity},
		{"path fill", p.FillColor, p.FillOpacity},
	} {
		if s.color != "" {
			if !colorPattern.MatchString(s.color) {
				return "", invalidf(s.field+" color", "%q is not a hex color", s.color)
			}
			b.WriteString("+" + s.color)
		}
		if s.opacity != nil {
			if err := inRange(s.field+" opacity", *s.opacity, 0, 1); err != nil {
				return "", err
			}
			b.WriteString("-" + formatFloat(*s.opacity))
		}
	}
	return b.String(), nil
}

const upperhex = "0123456789ABCDEF"

// escapeOverlay percent-encodes a string so it stays inside a
// single url path segment.
func escapeOverlay(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if shouldEscape(c) {
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&15])
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// shouldEscape follows uri component encoding except for the json
// punctuation ':', ',', '[' and ']'.
func shouldEscape(c byte) bool {
	if 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' {
		return false
	}
	switch c {
	case '-', '_', '.', '~', '!', '*', '\'', '(', ')', ':', ',', '[', ']':
		return false
	}
	return true
}
