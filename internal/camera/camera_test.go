package camera

import (
	"strings"
	"testing"
)

func TestDefault_SixCameras(t *testing.T) {
	p := Default()

	want := []struct {
		name   string
		offset float64
		fov    int
	}{
		{"front", 0, 120},
		{"front_left", -66, 120},
		{"front_right", 66, 120},
		{"rear", 180, 30},
		{"rear_left", -152, 70},
		{"rear_right", 152, 70},
	}

	if len(p.Views) != len(want) {
		t.Fatalf("expected %d views, got %d", len(want), len(p.Views))
	}
	for i, w := range want {
		v := p.Views[i]
		if v.Name != w.name || v.HeadingOffset != w.offset || v.FOV != w.fov {
			t.Errorf("view %d = %+v, want %s/%v/%d", i, v, w.name, w.offset, w.fov)
		}
		if !strings.HasPrefix(v.Prefix, "The video is captured from a camera mounted on a car.") {
			t.Errorf("view %s has unexpected prefix %q", v.Name, v.Prefix)
		}
		if !strings.HasSuffix(v.Prefix, ". ") {
			t.Errorf("view %s prefix should end with a sentence break", v.Name)
		}
	}
}

func TestViewpoint_Heading(t *testing.T) {
	tests := []struct {
		offset float64
		angle  float64
		want   float64
	}{
		{0, 90, 90},
		{-66, 90, 24},
		{152, 300, 452},
		{-152, 10, -142},
	}

	for _, tt := range tests {
		v := Viewpoint{HeadingOffset: tt.offset}
		if got := v.Heading(tt.angle); got != tt.want {
			t.Errorf("Heading(%v) with offset %v = %v, want %v", tt.angle, tt.offset, got, tt.want)
		}
	}
}

func TestLookup(t *testing.T) {
	p, err := Lookup(WaymoPreset)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if p.Name != WaymoPreset || len(p.Views) != 5 {
		t.Errorf("unexpected waymo preset %+v", p)
	}

	if _, err := Lookup("tesla"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestLookup_ReturnsCopy(t *testing.T) {
	p := Default()
	p.Views[0].FOV = 1

	if Default().Views[0].FOV != 120 {
		t.Error("mutating a looked-up preset must not change the table")
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != 2 || names[0] != DefaultPreset || names[1] != WaymoPreset {
		t.Errorf("unexpected names %v", names)
	}
}
