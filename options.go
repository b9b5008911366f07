package staticmap

import (
	"net/url"
	"strconv"
	"strings"
)

// Overlays are drawn on top of the map. Any combination may be set,
// the zero value draws nothing.
type Overlays struct {
	Markers []Marker
	// GeoJSON is any value that encodes to a geojson object, usually
	// one of the types from github.com/paulmach/orb/geojson.
	GeoJSON interface{}
	Path    *Path

	// Order overrides the order overlays are written in. The
	// default is DefaultOverlayOrder.
	Order []OverlayKind
}

// StylesOptions are the optional parameters for Client.StylesURL.
type StylesOptions struct {
	Overlays

	// Retina requests a double resolution image.
	Retina bool

	// Attribution and Logo are shown unless set to false.
	Attribution *bool
	Logo        *bool

	// BeforeLayer draws the overlays under the named style layer.
	BeforeLayer string

	// Padding around the framed area in pixels, css style with
	// one to four values. Only used with Auto or a BoundingBox.
	Padding []int
}

// ClassicOptions are the optional parameters for Client.ClassicURL.
type ClassicOptions struct {
	Overlays

	// Retina requests a double resolution image.
	Retina bool

	// Format is the image file extension, defaults to "png".
	Format string
}

// Bool returns a pointer to b.
func Bool(b bool) *bool { return &b }

// Float returns a pointer to f.
func Float(f float64) *float64 { return &f }

// DefaultFormat is the image format used by the classic api
// when none is given.
const DefaultFormat = "png"

var classicFormats = map[string]bool{
	"png": true, "png32": true, "png64": true, "png128": true, "png256": true,
	"jpg": true, "jpg70": true, "jpg80": true, "jpg90": true,
}

func (o *ClassicOptions) format() (string, error) {
	if o.Format == "" {
		return DefaultFormat, nil
	}
	if !classicFormats[o.Format] {
		return "", invalidf("format", "unknown image format %q", o.Format)
	}
	return o.Format, nil
}

func (o *StylesOptions) params(center Center) (params, error) {
	p := params{}
	if o.Attribution != nil && !*o.Attribution {
		p.Add("attribution", "false")
	}
	if o.Logo != nil && !*o.Logo {
		p.Add("logo", "false")
	}
	if o.BeforeLayer != "" {
		p.Add("before_layer", o.BeforeLayer)
	}
	if len(o.Padding) > 0 {
		pad, err := padding(o.Padding, center)
		if err != nil {
			return nil, err
		}
		p.Add("padding", pad)
	}
	return p, nil
}

func padding(pad []int, center Center) (string, error) {
	switch center.(type) {
	case Position, *Position:
		return "", invalid("padding", "cannot be used with a fixed position")
	}
	if len(pad) > 4 {
		return "", invalidf("padding", "at most 4 values, got %d", len(pad))
	}
	vals := make([]string, len(pad))
	for i, n := range pad {
		if n < 0 {
			return "", invalidf("padding", "%d is negative", n)
		}
		vals[i] = strconv.Itoa(n)
	}
	return strings.Join(vals, ","), nil
}

type param struct {
	key, val string
}

// params is an ordered list of query parameters. Unlike
// url.Values it keeps insertion order when encoded.
type params []param

type encoder interface {
	Encode() string
}

func (p *params) Add(key, val string) {
	*p = append(*p, param{key: key, val: val})
}

// Encode converts the params to a string
// representation of a url query.
func (p params) Encode() string {
	var b strings.Builder
	for i, kv := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(kv.key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv.val))
	}
	return b.String()
}

var _ encoder = (*params)(nil)
