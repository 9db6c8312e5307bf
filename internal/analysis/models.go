package analysis

import (
	"errors"

	"github.com/kotaicode/gpx-analyzer/internal/surface"
	"github.com/kotaicode/gpx-analyzer/internal/track"
)

// ErrNoTrackPoints is returned when a GPX document parses but holds no
// usable path: no points at all, or no two distinct coordinates.
var ErrNoTrackPoints = errors.New("no track points found in gpx file")

// Report is the complete analysis result for one uploaded track.
type Report struct {
	SurfaceLengthsKm  map[string]float64     `json:"surface_lengths_km"`
	SuitabilityScores surface.Scores         `json:"suitability_scores"`
	Elevation         track.ElevationSummary `json:"elevation"`
}
