package analysis

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/paulmach/orb"

	"github.com/kotaicode/gpx-analyzer/internal/overpass"
	"github.com/kotaicode/gpx-analyzer/internal/shared/geo"
	"github.com/kotaicode/gpx-analyzer/internal/surface"
	"github.com/kotaicode/gpx-analyzer/internal/track"
)

// RoadSource supplies surface-tagged road geometries for a bounding box.
type RoadSource interface {
	SurfaceWays(ctx context.Context, bbox string) ([]overpass.Element, error)
}

type Service struct {
	roads         RoadSource
	bufferDegrees float64
}

func NewService(roads RoadSource, bufferDegrees float64) *Service {
	return &Service{roads: roads, bufferDegrees: bufferDegrees}
}

// Analyze runs the full pipeline for one GPX document: parse, elevation
// summary, corridor, road query, surface aggregation, suitability scoring.
// It returns either a complete report or an error, never partial results.
func (s *Service) Analyze(ctx context.Context, gpxData []byte) (Report, error) {
	points, err := track.Parse(gpxData)
	if err != nil {
		return Report{}, err
	}
	if len(points) == 0 {
		return Report{}, ErrNoTrackPoints
	}

	elevation := track.ElevationGain(points)

	line := make(orb.LineString, 0, len(points))
	for _, p := range points {
		line = append(line, orb.Point{p.Lon, p.Lat})
	}
	corridor, err := geo.NewCorridor(line, s.bufferDegrees)
	if err != nil {
		if errors.Is(err, geo.ErrDegeneratePath) {
			return Report{}, fmt.Errorf("%w: %v", ErrNoTrackPoints, err)
		}
		return Report{}, err
	}

	elements, err := s.roads.SurfaceWays(ctx, bboxString(corridor))
	if err != nil {
		return Report{}, err
	}

	lengths, err := surface.AggregateLengths(corridor, elements)
	if err != nil {
		return Report{}, err
	}

	lengthsKm := make(map[string]float64, len(lengths))
	for label, meters := range lengths {
		lengthsKm[label] = math.Round(meters/1000*100) / 100
	}

	return Report{
		SurfaceLengthsKm:  lengthsKm,
		SuitabilityScores: surface.Score(lengthsKm),
		Elevation:         elevation,
	}, nil
}

func bboxString(c *geo.Corridor) string {
	south, west, north, east := c.BBox()
	return strconv.FormatFloat(south, 'f', -1, 64) + "," +
		strconv.FormatFloat(west, 'f', -1, 64) + "," +
		strconv.FormatFloat(north, 'f', -1, 64) + "," +
		strconv.FormatFloat(east, 'f', -1, 64)
}
