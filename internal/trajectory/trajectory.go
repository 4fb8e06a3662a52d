// Package trajectory reads SUMO floating car data (FCD) exports and resolves
// vehicle poses at a given simulation time.
package trajectory

import (
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"os"
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Vehicle is one vehicle record inside a timestep.
type Vehicle struct {
	ID    string  `xml:"id,attr"`
	X     float64 `xml:"x,attr"`
	Y     float64 `xml:"y,attr"`
	Angle float64 `xml:"angle,attr"`
	Type  string  `xml:"type,attr,omitempty"`
	Speed float64 `xml:"speed,attr,omitempty"`
	Lane  string  `xml:"lane,attr,omitempty"`
}

func (v Vehicle) Point() orb.Point {
	return orb.Point{v.X, v.Y}
}

type Timestep struct {
	Time     float64   `xml:"time,attr"`
	Vehicles []Vehicle `xml:"vehicle"`
}

// Vehicle returns the record with the given id, if present.
func (ts *Timestep) Vehicle(id string) (Vehicle, bool) {
	for _, v := range ts.Vehicles {
		if v.ID == id {
			return v, true
		}
	}
	return Vehicle{}, false
}

// Log is a fully loaded FCD export. Timesteps keep file order; the root
// element name is not checked.
type Log struct {
	Timesteps []Timestep `xml:"timestep"`
}

// Pose is a vehicle position in simulation coordinates plus its SUMO angle
// (degrees, clockwise from north).
type Pose struct {
	Time  float64 `yaml:"time" json:"time"`
	X     float64 `yaml:"x" json:"x"`
	Y     float64 `yaml:"y" json:"y"`
	Angle float64 `yaml:"angle" json:"angle"`
}

// Neighbor is another vehicle close to the ego vehicle.
type Neighbor struct {
	ID       string  `yaml:"id" json:"id"`
	Distance float64 `yaml:"distance" json:"distance"`
}

func Parse(r io.Reader) (*Log, error) {
	var log Log
	if err := xml.NewDecoder(r).Decode(&log); err != nil {
		return nil, fmt.Errorf("decode fcd: %w", err)
	}
	return &log, nil
}

func Load(path string) (*Log, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fcd: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// sorted returns the timesteps ordered by time. Equal times keep file order.
func (l *Log) sorted() []*Timestep {
	steps := make([]*Timestep, len(l.Timesteps))
	for i := range l.Timesteps {
		steps[i] = &l.Timesteps[i]
	}
	sort.SliceStable(steps, func(i, j int) bool {
		return steps[i].Time < steps[j].Time
	})
	return steps
}

// Nearest returns the timestep whose time is closest to target. On a tie the
// earlier timestamp wins.
func (l *Log) Nearest(target float64) (*Timestep, bool) {
	var best *Timestep
	minDiff := math.Inf(1)
	for _, ts := range l.sorted() {
		if diff := math.Abs(ts.Time - target); diff < minDiff {
			minDiff = diff
			best = ts
		}
	}
	return best, best != nil
}

// PoseAt resolves the pose of vehicleID in the timestep nearest to target.
// It reports false when the log is empty or the vehicle is absent from that
// timestep; the neighbouring timesteps are not consulted.
func (l *Log) PoseAt(vehicleID string, target float64) (Pose, bool) {
	ts, ok := l.Nearest(target)
	if !ok {
		return Pose{}, false
	}
	v, ok := ts.Vehicle(vehicleID)
	if !ok {
		return Pose{}, false
	}
	return Pose{Time: ts.Time, X: v.X, Y: v.Y, Angle: v.Angle}, true
}

// Neighbors lists the other vehicles within radius metres of vehicleID in the
// timestep nearest to target, closest first.
func (l *Log) Neighbors(vehicleID string, target, radius float64) []Neighbor {
	ts, ok := l.Nearest(target)
	if !ok {
		return nil
	}
	ego, ok := ts.Vehicle(vehicleID)
	if !ok {
		return nil
	}

	var out []Neighbor
	for _, v := range ts.Vehicles {
		if v.ID == vehicleID {
			continue
		}
		if d := planar.Distance(ego.Point(), v.Point()); d <= radius {
			out = append(out, Neighbor{ID: v.ID, Distance: d})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Distance < out[j].Distance
	})
	return out
}

// Span returns the earliest and latest timestep times.
func (l *Log) Span() (start, end float64, ok bool) {
	if len(l.Timesteps) == 0 {
		return 0, 0, false
	}
	start, end = math.Inf(1), math.Inf(-1)
	for _, ts := range l.Timesteps {
		start = math.Min(start, ts.Time)
		end = math.Max(end, ts.Time)
	}
	return start, end, true
}
