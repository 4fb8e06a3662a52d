// Package camera holds the static viewpoint tables used to sample imagery
// around a vehicle.
package camera

import (
	"fmt"
	"sort"
)

// Viewpoint is a camera mounted on the ego vehicle. HeadingOffset is added to
// the vehicle heading; FOV is the horizontal field of view. Both in degrees.
type Viewpoint struct {
	Name          string
	HeadingOffset float64
	FOV           int
	Prefix        string
}

// Heading returns the absolute compass heading for a vehicle angle.
func (v Viewpoint) Heading(vehicleAngle float64) float64 {
	return vehicleAngle + v.HeadingOffset
}

// Preset is an ordered camera rig.
type Preset struct {
	Name  string
	Views []Viewpoint
}

const (
	DefaultPreset = "default"
	WaymoPreset   = "waymo"
)

const mounted = "The video is captured from a camera mounted on a car. "

var presets = map[string][]Viewpoint{
	DefaultPreset: {
		{Name: "front", HeadingOffset: 0, FOV: 120, Prefix: mounted + "The camera is facing forward. "},
		{Name: "front_left", HeadingOffset: -66, FOV: 120, Prefix: mounted + "The camera is facing to the left. "},
		{Name: "front_right", HeadingOffset: 66, FOV: 120, Prefix: mounted + "The camera is facing to the right. "},
		{Name: "rear", HeadingOffset: 180, FOV: 30, Prefix: mounted + "The camera is facing backwards. "},
		{Name: "rear_left", HeadingOffset: -152, FOV: 70, Prefix: mounted + "The camera is facing the rear left side. "},
		{Name: "rear_right", HeadingOffset: 152, FOV: 70, Prefix: mounted + "The camera is facing the rear right side. "},
	},
	WaymoPreset: {
		{Name: "front", HeadingOffset: 0, FOV: 90, Prefix: mounted + "The camera is facing forward. "},
		{Name: "front_left", HeadingOffset: -45, FOV: 90, Prefix: mounted + "The camera is facing the front left side. "},
		{Name: "front_right", HeadingOffset: 45, FOV: 90, Prefix: mounted + "The camera is facing the front right side. "},
		{Name: "side_left", HeadingOffset: -90, FOV: 70, Prefix: mounted + "The camera is facing to the left. "},
		{Name: "side_right", HeadingOffset: 90, FOV: 70, Prefix: mounted + "The camera is facing to the right. "},
	},
}

// Lookup returns a copy of the named preset.
func Lookup(name string) (Preset, error) {
	views, ok := presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("unknown camera preset %q (available: %v)", name, Names())
	}
	return Preset{Name: name, Views: append([]Viewpoint(nil), views...)}, nil
}

func Default() Preset {
	p, _ := Lookup(DefaultPreset)
	return p
}

// Names lists the available presets in sorted order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
