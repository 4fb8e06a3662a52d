package streetview

import (
	"errors"
	"fmt"
	"time"
)

const (
	DefaultBaseURL = "https://maps.googleapis.com/maps/api/streetview"
	ImageSize      = "600x400"
)

var ErrMissingAPIKey = errors.New("street view api key is required")

type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	// RequestsPerSecond caps outgoing requests; zero means unlimited.
	RequestsPerSecond float64
}

// Request selects one image. Heading and FOV are in degrees.
type Request struct {
	Lat     float64
	Lon     float64
	Heading float64
	Pitch   float64
	FOV     int
}

// StatusError is returned when the imagery service answers with anything
// other than 200.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("street view returned status %d", e.StatusCode)
}
