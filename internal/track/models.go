package track

// Point is a single recorded track point. Elevation is optional in GPX, so
// Ele is only meaningful when HasEle is set.
type Point struct {
	Lon    float64
	Lat    float64
	Ele    float64
	HasEle bool
}

type ElevationSummary struct {
	Up   float64 `json:"elevation_up"`
	Down float64 `json:"elevation_down"`
}
