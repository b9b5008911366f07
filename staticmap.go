// Package staticmap builds urls for the mapbox static images api.
//
// Nothing here talks to the network. A Client holds an access token and
// turns typed parameters into a url string that can be handed to any http
// client, an <img> tag, or a browser.
package staticmap

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DefaultHost is the default url host for the mapbox api.
var DefaultHost = "api.mapbox.com"

const (
	maxDimension = 1280
	retinaSuffix = "@2x"
)

// New will create a Client from an api token.
// New uses the default host.
func New(token string) *Client {
	return &Client{token: token, host: DefaultHost}
}

// WithHost will create a Client that uses a
// different hostname.
func WithHost(token, host string) *Client {
	return &Client{token: token, host: host}
}

// Client is the url builder. It only holds the access token
// and host so it is safe to share between goroutines.
type Client struct {
	token string
	host  string
}

// Token returns the access token appended to every url.
func (c *Client) Token() string { return c.token }

// Host returns the api hostname.
func (c *Client) Host() string { return c.host }

// StylesURL builds a url for the styles static images api.
//
//	https://api.mapbox.com/styles/v1/{owner}/{style}/static/[{overlay}/]{center}/{width}x{height}[@2x]
//
// The opts argument may be nil.
func (c *Client) StylesURL(owner, style string, width, height int, center Center, opts *StylesOptions) (string, error) {
	if opts == nil {
		opts = &StylesOptions{}
	}
	if err := identifier("owner", owner, idPattern); err != nil {
		return "", err
	}
	if err := identifier("style", style, idPattern); err != nil {
		return "", err
	}
	segs, err := c.segments(width, height, center, &opts.Overlays)
	if err != nil {
		return "", err
	}
	q, err := opts.params(center)
	if err != nil {
		return "", err
	}

	dims := segs.dims
	if opts.Retina {
		dims += retinaSuffix
	}
	path := join("/styles/v1", owner, style, "static", segs.overlay, segs.center, dims)
	return c.url(path, q), nil
}

// ClassicURL builds a url for the classic (v4) static images api.
//
//	https://api.mapbox.com/v4/{tileset}/[{overlay}/]{center}/{width}x{height}[@2x].{format}
//
// The opts argument may be nil.
func (c *Client) ClassicURL(tileset string, width, height int, center Center, opts *ClassicOptions) (string, error) {
	if opts == nil {
		opts = &ClassicOptions{}
	}
	if err := identifier("tileset", tileset, tilesetPattern); err != nil {
		return "", err
	}
	segs, err := c.segments(width, height, center, &opts.Overlays)
	if err != nil {
		return "", err
	}
	format, err := opts.format()
	if err != nil {
		return "", err
	}

	file := segs.dims
	if opts.Retina {
		file += retinaSuffix
	}
	file += "." + format
	path := join("/v4", tileset, segs.overlay, segs.center, file)
	return c.url(path, nil), nil
}

type pathSegments struct {
	overlay, center, dims string
}

// segments validates and renders everything shared by both apis.
func (c *Client) segments(width, height int, center Center, ov *Overlays) (*pathSegments, error) {
	if err := dimension("width", width); err != nil {
		return nil, err
	}
	if err := dimension("height", height); err != nil {
		return nil, err
	}
	if isNil(center) {
		return nil, invalid("center", "missing")
	}
	if err := center.validate(); err != nil {
		return nil, err
	}
	overlay, err := ov.encode()
	if err != nil {
		return nil, err
	}
	return &pathSegments{
		overlay: overlay,
		center:  center.segment(),
		dims:    strconv.Itoa(width) + "x" + strconv.Itoa(height),
	}, nil
}

// url puts the access token in front of the other query params.
func (c *Client) url(path string, q encoder) string {
	query := params{{key: "access_token", val: c.token}}.Encode()
	if q != nil {
		if rest := q.Encode(); rest != "" {
			query += "&" + rest
		}
	}
	return fmt.Sprintf("https://%s%s?%s", c.host, path, query)
}

// isNil catches nil pointers stored in a Center, which would
// otherwise panic when their value methods are called.
func isNil(center Center) bool {
	switch c := center.(type) {
	case nil:
		return true
	case *Position:
		return c == nil
	case *BoundingBox:
		return c == nil
	}
	return false
}

// join builds a url path skipping empty segments.
func join(root string, segs ...string) string {
	var b strings.Builder
	b.WriteString(root)
	for _, s := range segs {
		if s == "" {
			continue
		}
		b.WriteByte('/')
		b.WriteString(s)
	}
	return b.String()
}

var (
	idPattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)
	// tilesets can be composited with commas
	tilesetPattern = regexp.MustCompile(`^[A-Za-z0-9._-]+(,[A-Za-z0-9._-]+)*$`)
)

// identifier checks a value that becomes its own path segment.
func identifier(field, val string, pattern *regexp.Regexp) error {
	switch {
	case strings.TrimSpace(val) == "":
		return invalid(field, "missing")
	case val == "." || val == "..", !pattern.MatchString(val):
		return invalidf(field, "%q is not a valid id", val)
	}
	return nil
}

func dimension(field string, n int) error {
	if n < 1 || n > maxDimension {
		return invalid(field, fmt.Sprintf("%d is not between 1 and %d", n, maxDimension))
	}
	return nil
}

// formatFloat writes a number the shortest way that round trips,
// so 1 is "1" and 0.5 is "0.5".
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
