package geo

import (
	"errors"

	"github.com/paulmach/orb"
)

var (
	// ErrDegeneratePath is returned when a point sequence cannot form a
	// line, i.e. it has fewer than two distinct points.
	ErrDegeneratePath = errors.New("track path is degenerate")

	// ErrGeometry is returned for geometry input the corridor math cannot
	// work with, such as non-finite coordinates.
	ErrGeometry = errors.New("geometry error")
)

// Corridor is the round-capped buffer of a track polyline: the set of all
// points within a fixed planar-degree radius of the path. The region is the
// union of capsules around the path's edges, which is exactly the polygon a
// round buffer operation would produce.
type Corridor struct {
	line   orb.LineString
	radius float64
	bound  orb.Bound
}

// NewCorridor buffers the path connecting the given points in order. The
// radius is in planar degrees, the same units as the coordinates.
func NewCorridor(line orb.LineString, radius float64) (*Corridor, error) {
	if radius <= 0 {
		return nil, errors.New("corridor radius must be positive")
	}
	if !hasDistinctPoints(line) {
		return nil, ErrDegeneratePath
	}

	b := line.Bound()
	b.Min = orb.Point{b.Min.Lon() - radius, b.Min.Lat() - radius}
	b.Max = orb.Point{b.Max.Lon() + radius, b.Max.Lat() + radius}

	return &Corridor{line: line, radius: radius, bound: b}, nil
}

func hasDistinctPoints(line orb.LineString) bool {
	if len(line) < 2 {
		return false
	}
	for _, p := range line[1:] {
		if p != line[0] {
			return true
		}
	}
	return false
}

// Bound returns the corridor's bounding box: the path extrema padded by the
// buffer radius on every side.
func (c *Corridor) Bound() orb.Bound {
	return c.bound
}

// BBox returns the bounding box reordered for the road-data query interface.
func (c *Corridor) BBox() (south, west, north, east float64) {
	return c.bound.Min.Lat(), c.bound.Min.Lon(), c.bound.Max.Lat(), c.bound.Max.Lon()
}
