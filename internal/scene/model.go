package scene

import (
	"time"

	"github.com/eleven-am/streetscene/internal/camera"
	"github.com/eleven-am/streetscene/internal/shared"
)

type Record struct {
	ID            string             `gorm:"primaryKey" json:"id"`
	VehicleID     string             `gorm:"not null;index" json:"vehicle_id"`
	FCDPath       string             `gorm:"not null" json:"fcd_path"`
	NetPath       string             `gorm:"not null" json:"net_path"`
	TimeStart     float64            `json:"time_start"`
	CameraSetting string             `json:"camera_setting"`
	OutputDir     string             `json:"output_dir"`
	Found         bool               `json:"found"`
	Lon           float64            `json:"lon"`
	Lat           float64            `json:"lat"`
	Heading       float64            `json:"heading"`
	TimeOfDay     string             `json:"time_of_day,omitempty"`
	Combined      string             `gorm:"type:text" json:"combined"`
	FailedViews   shared.StringSlice `gorm:"type:text" json:"failed_views"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

func NewRecord(r *Report) *Record {
	setting := r.Request.CameraSetting
	if setting == "" {
		setting = camera.DefaultPreset
	}
	return &Record{
		VehicleID:     r.Request.VehicleID,
		FCDPath:       r.Request.FCDPath,
		NetPath:       r.Request.NetPath,
		TimeStart:     r.Request.TimeStart,
		CameraSetting: setting,
		OutputDir:     r.Request.OutputDir,
		Found:         r.Found,
		Lon:           r.Lon,
		Lat:           r.Lat,
		Heading:       r.Pose.Angle,
		TimeOfDay:     r.Context.TimeOfDay,
		Combined:      r.Combined,
		FailedViews:   shared.StringSlice(r.Failed()),
	}
}
