package sumonet

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/paulmach/orb"
)

const annArborNet = `<?xml version="1.0" encoding="UTF-8"?>
<net version="1.16" junctionCornerDetail="5" limitTurnSpeed="5.50">
    <location netOffset="-273000.00,-4684000.00" convBoundary="0.00,0.00,1500.00,1200.00" origBoundary="-83.760000,42.270000,-83.730000,42.290000" projParameter="+proj=utm +zone=17 +ellps=WGS84 +datum=WGS84 +units=m +no_defs"/>
    <edge id="E0" from="J0" to="J1"/>
</net>`

func netFromString(t *testing.T, doc string) *Net {
	t.Helper()
	n, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return n
}

func assertClose(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %.7f, want %.7f", name, got, want)
	}
}

func TestParse_Location(t *testing.T) {
	n := netFromString(t, annArborNet)

	if n.Offset != (orb.Point{-273000, -4684000}) {
		t.Errorf("unexpected offset %v", n.Offset)
	}
	if n.ConvBoundary.Max != (orb.Point{1500, 1200}) {
		t.Errorf("unexpected convBoundary %v", n.ConvBoundary)
	}
	if n.OrigBoundary.Min != (orb.Point{-83.76, 42.27}) {
		t.Errorf("unexpected origBoundary %v", n.OrigBoundary)
	}
	if !strings.HasPrefix(n.ProjParam, "+proj=utm") {
		t.Errorf("unexpected projParameter %q", n.ProjParam)
	}
}

func TestToLonLat_UTMNorth(t *testing.T) {
	n := netFromString(t, annArborNet)

	p, err := n.ToLonLat(824.3961579215, 597.71394538)
	if err != nil {
		t.Fatalf("ToLonLat failed: %v", err)
	}
	assertClose(t, "lon", p.Lon(), -83.7430, 1e-5)
	assertClose(t, "lat", p.Lat(), 42.2808, 1e-5)

	if !n.InBounds(p) {
		t.Errorf("expected %v to be inside origBoundary", p)
	}
}

func TestToLonLat_UTMSouth(t *testing.T) {
	n := netFromString(t, `<net><location netOffset="-334000.00,-6250000.00" projParameter="+proj=utm +zone=56 +south +ellps=WGS84 +datum=WGS84 +units=m +no_defs"/></net>`)

	p, err := n.ToLonLat(368.63364640076, 948.345360274)
	if err != nil {
		t.Fatalf("ToLonLat failed: %v", err)
	}
	assertClose(t, "lon", p.Lon(), 151.2093, 1e-5)
	assertClose(t, "lat", p.Lat(), -33.8688, 1e-5)
}

func TestToLonLat_OutOfRange(t *testing.T) {
	n := netFromString(t, annArborNet)

	// Easting far outside the UTM zone is rejected by the projection.
	if _, err := n.ToLonLat(5_000_000, 0); err == nil {
		t.Error("expected projection error")
	}
}

func TestToLonLat_NoProjection(t *testing.T) {
	n := netFromString(t, `<net><location netOffset="0.00,0.00" convBoundary="0,0,10,10" origBoundary="0,0,10,10" projParameter="!"/></net>`)

	_, err := n.ToLonLat(1, 1)
	if !errors.Is(err, ErrNoProjection) {
		t.Errorf("expected ErrNoProjection, got %v", err)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"no location", `<net><edge id="e"/></net>`, ErrNoLocation},
		{"tmerc", `<net><location netOffset="0,0" projParameter="+proj=tmerc +lat_0=0"/></net>`, ErrUnsupportedProjection},
		{"bad zone", `<net><location netOffset="0,0" projParameter="+proj=utm +zone=99"/></net>`, ErrUnsupportedProjection},
		{"bad offset", `<net><location netOffset="1;2" projParameter="!"/></net>`, nil},
		{"not xml", `garbage`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.doc))
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestInBounds(t *testing.T) {
	n := netFromString(t, annArborNet)
	if n.InBounds(orb.Point{-80, 40}) {
		t.Error("expected point outside origBoundary")
	}

	noBounds := netFromString(t, `<net><location netOffset="0,0" projParameter="!"/></net>`)
	if !noBounds.InBounds(orb.Point{10, 10}) {
		t.Error("network without boundary should accept every point")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.net.xml")
	if err := os.WriteFile(path, []byte(annArborNet), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.net.xml")); err == nil {
		t.Error("expected error for missing file")
	}
}
