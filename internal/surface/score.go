package surface

import "math"

// Scores holds the final suitability per bike type, each in [0,1].
type Scores struct {
	RoadBike   float64 `json:"roadbike"`
	GravelBike float64 `json:"gravelbike"`
}

// Score computes length-weighted suitability over a surface distribution in
// kilometers. Surfaces missing from the factor table contribute zero to both
// scores but still count toward the total, diluting the result in proportion
// to their share of the distance. An empty distribution scores (0, 0).
func Score(lengthsKm Lengths) Scores {
	var total float64
	for _, length := range lengthsKm {
		total += length
	}
	if total == 0 {
		return Scores{RoadBike: 0.0, GravelBike: 0.0}
	}

	var road, gravel float64
	for label, length := range lengthsKm {
		factors := suitability[label]
		weight := length / total
		road += weight * factors.RoadBike
		gravel += weight * factors.GravelBike
	}
	return Scores{RoadBike: round2(road), GravelBike: round2(gravel)}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
