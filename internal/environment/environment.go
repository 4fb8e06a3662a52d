// Package environment derives scene conditions from the crash report that
// accompanies a simulation run.
package environment

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ReportFile is looked up next to the FCD file.
const ReportFile = "report.yaml"

// accident_time uses month/day/year with a 24h clock.
const accidentTimeLayout = "1/2/2006 15:04"

// Context describes the conditions a caption must respect. The zero value
// means no report was available.
type Context struct {
	Weather     string `yaml:"weather,omitempty" json:"weather,omitempty"`
	Lighting    string `yaml:"lighting,omitempty" json:"lighting,omitempty"`
	RoadSurface string `yaml:"road_surface,omitempty" json:"road_surface,omitempty"`
	TimeOfDay   string `yaml:"time_of_day,omitempty" json:"time_of_day,omitempty"`
}

// Summary renders the present fields as a comma separated list.
func (c Context) Summary() string {
	var parts []string
	if c.Weather != "" {
		parts = append(parts, "weather: "+c.Weather)
	}
	if c.Lighting != "" {
		parts = append(parts, "lighting: "+c.Lighting)
	}
	if c.RoadSurface != "" {
		parts = append(parts, "road surface: "+c.RoadSurface)
	}
	if c.TimeOfDay != "" {
		parts = append(parts, "time of day: "+c.TimeOfDay)
	}
	return strings.Join(parts, ", ")
}

func (c Context) IsZero() bool {
	return c == Context{}
}

// Bucket maps an hour of day to a coarse label.
func Bucket(hour int) string {
	switch {
	case hour >= 5 && hour < 11:
		return "morning"
	case hour >= 11 && hour < 13:
		return "noon"
	case hour >= 13 && hour < 17:
		return "afternoon"
	case hour >= 17 && hour < 19:
		return "evening"
	default:
		return "night"
	}
}

// TimeOfDay parses an accident_time value and returns its bucket, or "" when
// the value is not a valid timestamp.
func TimeOfDay(accidentTime string) string {
	t, err := time.Parse(accidentTimeLayout, strings.TrimSpace(accidentTime))
	if err != nil {
		return ""
	}
	return Bucket(t.Hour())
}

// Load reads report.yaml from the directory holding fcdPath. A missing or
// malformed report yields the zero Context.
func Load(fcdPath string) Context {
	data, err := os.ReadFile(filepath.Join(filepath.Dir(fcdPath), ReportFile))
	if err != nil {
		return Context{}
	}
	return Parse(data)
}

// Parse extracts the context from raw report YAML. It never fails; fields it
// cannot interpret are left empty.
func Parse(data []byte) Context {
	var report map[string]any
	if err := yaml.Unmarshal(data, &report); err != nil {
		return Context{}
	}

	var ctx Context
	if weather, ok := report["accident_weather"].(map[string]any); ok {
		ctx.Weather = text(weather["weather"])
		ctx.Lighting = text(weather["light"])
		ctx.RoadSurface = text(weather["road_surface_condition"])
	}
	if ts, ok := report["accident_time"].(string); ok {
		ctx.TimeOfDay = TimeOfDay(ts)
	}
	return ctx
}

// text renders a scalar report value; empty, false and zero values count as
// absent.
func text(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		if !val {
			return ""
		}
	case int:
		if val == 0 {
			return ""
		}
	case float64:
		if val == 0 {
			return ""
		}
	}
	return fmt.Sprint(v)
}
