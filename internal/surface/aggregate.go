package surface

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/kotaicode/gpx-analyzer/internal/overpass"
	"github.com/kotaicode/gpx-analyzer/internal/shared/geo"
)

// metersPerDegree is the flat-earth conversion factor used throughout the
// pipeline. It is accurate near the equator and increasingly wrong for the
// longitude component at higher latitudes; the approximation is part of the
// scoring contract.
const metersPerDegree = 111320.0

// Lengths maps a surface label to accumulated length. The aggregator
// produces meters; the scorer consumes kilometers.
type Lengths = map[string]float64

// AggregateLengths intersects each way against the corridor and attributes
// the intersected length, in meters, to the way's surface label. Ways
// without geometry or tags are skipped, unlabeled ways count as "unknown",
// and ways whose intersection is empty contribute nothing. Geometry errors
// fail the whole aggregation instead of being dropped per way.
func AggregateLengths(corridor *geo.Corridor, elements []overpass.Element) (Lengths, error) {
	lengths := Lengths{}
	for _, el := range elements {
		if el.Geometry == nil || el.Tags == nil {
			continue
		}

		line := make(orb.LineString, 0, len(el.Geometry))
		for _, v := range el.Geometry {
			line = append(line, orb.Point{v.Lon, v.Lat})
		}

		degrees, err := corridor.IntersectionLength(line)
		if err != nil {
			return nil, fmt.Errorf("way %d: %w", el.ID, err)
		}
		if degrees == 0 {
			continue
		}

		label := el.Tags["surface"]
		if label == "" {
			label = "unknown"
		}
		lengths[label] += degrees * metersPerDegree
	}
	return lengths, nil
}
