package overpass

// LatLon is a single vertex of a way geometry as Overpass returns it.
type LatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Element is one way from an Overpass response. Tags and Geometry stay nil
// when the response omits them, which callers use to skip such elements.
type Element struct {
	Type     string            `json:"type"`
	ID       int64             `json:"id"`
	Tags     map[string]string `json:"tags"`
	Geometry []LatLon          `json:"geometry"`
}

type response struct {
	Elements []Element `json:"elements"`
}
