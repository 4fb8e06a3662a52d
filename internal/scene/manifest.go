package scene

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/eleven-am/streetscene/internal/environment"
	"github.com/eleven-am/streetscene/internal/trajectory"
	"gopkg.in/yaml.v3"
)

type manifestView struct {
	Name    string  `yaml:"name"`
	Heading float64 `yaml:"heading"`
	FOV     int     `yaml:"fov"`
	Image   string  `yaml:"image,omitempty"`
	Prompt  string  `yaml:"prompt,omitempty"`
	Error   string  `yaml:"error,omitempty"`
}

type manifest struct {
	Request   Request               `yaml:"request"`
	Found     bool                  `yaml:"found"`
	Pose      *trajectory.Pose      `yaml:"pose,omitempty"`
	Lon       float64               `yaml:"lon,omitempty"`
	Lat       float64               `yaml:"lat,omitempty"`
	InBounds  bool                  `yaml:"in_bounds"`
	Neighbors []trajectory.Neighbor `yaml:"neighbors,omitempty"`
	Context   environment.Context   `yaml:"context,omitempty"`
	Views     []manifestView        `yaml:"views,omitempty"`
}

func newManifest(r *Report) manifest {
	m := manifest{
		Request:   r.Request,
		Found:     r.Found,
		Lon:       r.Lon,
		Lat:       r.Lat,
		InBounds:  r.InBounds,
		Neighbors: r.Neighbors,
		Context:   r.Context,
	}
	if r.Found {
		pose := r.Pose
		m.Pose = &pose
	}
	for _, v := range r.Views {
		mv := manifestView{
			Name:    v.Name,
			Heading: v.Heading,
			FOV:     v.FOV,
			Image:   baseName(v.ImagePath),
			Prompt:  baseName(v.PromptPath),
		}
		if v.Err != nil {
			mv.Error = v.Err.Error()
		}
		m.Views = append(m.Views, mv)
	}
	return m
}

func baseName(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Base(path)
}

func writeManifest(dir string, r *Report) error {
	data, err := yaml.Marshal(newManifest(r))
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ManifestFile), data, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}
