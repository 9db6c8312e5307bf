package track

import "math"

// ElevationGain sums positive and negative elevation deltas between
// consecutive points. A zero delta counts toward neither total, and a pair
// where either point carries no elevation is skipped. No smoothing is
// applied.
func ElevationGain(points []Point) ElevationSummary {
	var up, down float64
	for i := 1; i < len(points); i++ {
		if !points[i-1].HasEle || !points[i].HasEle {
			continue
		}
		delta := points[i].Ele - points[i-1].Ele
		if delta > 0 {
			up += delta
		} else {
			down += math.Abs(delta)
		}
	}
	return ElevationSummary{Up: round2(up), Down: round2(down)}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
