package scene

import (
	"context"

	"github.com/eleven-am/streetscene/internal/environment"
	"github.com/eleven-am/streetscene/internal/trajectory"
)

const (
	NotFoundMessage = "Vehicle not found at the specified time"
	ManifestFile    = "scene.yaml"
)

// Captioner describes one street-level image under the given conditions.
type Captioner interface {
	Caption(ctx context.Context, image []byte, env environment.Context) (string, error)
}

// Request identifies one vehicle at one moment of a simulation run. The
// target time is TimeStart; TimeEnd is carried through to the manifest.
type Request struct {
	OutputDir         string  `yaml:"output_dir" json:"output_dir" validate:"required"`
	FCDPath           string  `yaml:"fcd_path" json:"fcd_path" validate:"required"`
	NetPath           string  `yaml:"net_path" json:"net_path" validate:"required"`
	VehicleID         string  `yaml:"vehicle_id" json:"vehicle_id" validate:"required"`
	TimeStart         float64 `yaml:"time_start" json:"time_start" validate:"gte=0"`
	TimeEnd           float64 `yaml:"time_end,omitempty" json:"time_end,omitempty" validate:"omitempty,gtefield=TimeStart"`
	CameraSetting     string  `yaml:"camera_setting" json:"camera_setting" validate:"omitempty,oneof=default waymo"`
	AgentClipDistance float64 `yaml:"agent_clip_distance" json:"agent_clip_distance" validate:"gte=0"`
	MapClipDistance   float64 `yaml:"map_clip_distance" json:"map_clip_distance" validate:"gte=0"`
	Retrieve          bool    `yaml:"retrieve" json:"retrieve"`
}

// ViewResult is the outcome of one camera. Err is set when the image or its
// caption could not be produced.
type ViewResult struct {
	Name       string
	Heading    float64
	FOV        int
	ImagePath  string
	PromptPath string
	Text       string
	Err        error
}

func (v ViewResult) OK() bool {
	return v.Err == nil
}

func (v ViewResult) Section() string {
	if v.Err != nil {
		return v.Name + ": Failed to retrieve street view"
	}
	return v.Name + ": " + v.Text
}

type Report struct {
	Request   Request
	Found     bool
	Pose      trajectory.Pose
	Lon       float64
	Lat       float64
	InBounds  bool
	Neighbors []trajectory.Neighbor
	Context   environment.Context
	Views     []ViewResult
	Combined  string
}

// Failed lists the cameras that produced a placeholder.
func (r *Report) Failed() []string {
	var out []string
	for _, v := range r.Views {
		if !v.OK() {
			out = append(out, v.Name)
		}
	}
	return out
}
