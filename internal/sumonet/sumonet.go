// Package sumonet reads the geo-reference of a SUMO network file and converts
// simulation coordinates to longitude/latitude.
package sumonet

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	UTM "github.com/im7mortal/UTM"
	"github.com/paulmach/orb"
)

var (
	ErrNoLocation            = errors.New("network has no location element")
	ErrNoProjection          = errors.New("network is not geo-referenced")
	ErrUnsupportedProjection = errors.New("unsupported projection")
)

type location struct {
	NetOffset     string `xml:"netOffset,attr"`
	ConvBoundary  string `xml:"convBoundary,attr"`
	OrigBoundary  string `xml:"origBoundary,attr"`
	ProjParameter string `xml:"projParameter,attr"`
}

type netFile struct {
	Location *location `xml:"location"`
}

// Net holds the projection context of a SUMO network.
type Net struct {
	Offset       orb.Point
	ConvBoundary orb.Bound
	OrigBoundary orb.Bound
	ProjParam    string

	proj projection
}

type projection interface {
	inverse(x, y float64) (lon, lat float64, err error)
}

type utmProjection struct {
	zone     int
	northern bool
}

func (p utmProjection) inverse(x, y float64) (float64, float64, error) {
	lat, lon, err := UTM.ToLatLon(x, y, p.zone, "", p.northern)
	if err != nil {
		return 0, 0, err
	}
	return lon, lat, nil
}

func Parse(r io.Reader) (*Net, error) {
	var doc netFile
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode network: %w", err)
	}
	if doc.Location == nil {
		return nil, ErrNoLocation
	}

	loc := doc.Location
	offset, err := parsePoint(loc.NetOffset)
	if err != nil {
		return nil, fmt.Errorf("netOffset: %w", err)
	}
	conv, err := parseBound(loc.ConvBoundary)
	if err != nil {
		return nil, fmt.Errorf("convBoundary: %w", err)
	}
	orig, err := parseBound(loc.OrigBoundary)
	if err != nil {
		return nil, fmt.Errorf("origBoundary: %w", err)
	}

	n := &Net{
		Offset:       offset,
		ConvBoundary: conv,
		OrigBoundary: orig,
		ProjParam:    strings.TrimSpace(loc.ProjParameter),
	}
	n.proj, err = parseProjection(n.ProjParam)
	if err != nil {
		return nil, err
	}
	return n, nil
}

func Load(path string) (*Net, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open network: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// ToLonLat removes the network offset and applies the inverse projection.
// The returned point is (longitude, latitude).
func (n *Net) ToLonLat(x, y float64) (orb.Point, error) {
	if n.proj == nil {
		return orb.Point{}, ErrNoProjection
	}
	lon, lat, err := n.proj.inverse(x-n.Offset.X(), y-n.Offset.Y())
	if err != nil {
		return orb.Point{}, fmt.Errorf("inverse projection: %w", err)
	}
	return orb.Point{lon, lat}, nil
}

// InBounds reports whether p lies inside the original geographic boundary.
// Networks without a usable boundary accept every point.
func (n *Net) InBounds(p orb.Point) bool {
	if n.OrigBoundary == (orb.Bound{}) {
		return true
	}
	return n.OrigBoundary.Contains(p)
}

// parseProjection understands the proj4 strings netconvert writes for UTM.
// "!" marks a network without projection.
func parseProjection(param string) (projection, error) {
	if param == "" || param == "!" {
		return nil, nil
	}

	opts := map[string]string{}
	for _, field := range strings.Fields(param) {
		key, value, _ := strings.Cut(strings.TrimPrefix(field, "+"), "=")
		opts[key] = value
	}

	if opts["proj"] != "utm" {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedProjection, param)
	}
	zone, err := strconv.Atoi(opts["zone"])
	if err != nil || zone < 1 || zone > 60 {
		return nil, fmt.Errorf("%w: bad utm zone in %q", ErrUnsupportedProjection, param)
	}
	_, south := opts["south"]
	return utmProjection{zone: zone, northern: !south}, nil
}

func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("expected %d values, got %q", n, s)
	}
	out := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func parsePoint(s string) (orb.Point, error) {
	if s == "" {
		return orb.Point{}, nil
	}
	v, err := parseFloats(s, 2)
	if err != nil {
		return orb.Point{}, err
	}
	return orb.Point{v[0], v[1]}, nil
}

func parseBound(s string) (orb.Bound, error) {
	if s == "" {
		return orb.Bound{}, nil
	}
	v, err := parseFloats(s, 4)
	if err != nil {
		return orb.Bound{}, err
	}
	return orb.Bound{Min: orb.Point{v[0], v[1]}, Max: orb.Point{v[2], v[3]}}, nil
}
