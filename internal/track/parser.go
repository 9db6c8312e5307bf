package track

import (
	"errors"
	"fmt"

	"github.com/tkrajina/gpxgo/gpx"
)

// ErrMalformedGPX is returned when the input cannot be parsed as a GPX
// document. Parsing never recovers partial content.
var ErrMalformedGPX = errors.New("malformed gpx document")

// Parse flattens all tracks and segments of a GPX document into one ordered
// point sequence. Order and duplicates are preserved; a valid document with
// no track points yields an empty slice.
func Parse(data []byte) ([]Point, error) {
	doc, err := gpx.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedGPX, err)
	}

	var points []Point
	for _, trk := range doc.Tracks {
		for _, seg := range trk.Segments {
			for _, p := range seg.Points {
				pt := Point{
					Lon: p.Longitude,
					Lat: p.Latitude,
				}
				if p.Elevation.NotNull() {
					pt.Ele = p.Elevation.Value()
					pt.HasEle = true
				}
				points = append(points, pt)
			}
		}
	}
	return points, nil
}
