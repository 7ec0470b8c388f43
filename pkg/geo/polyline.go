package geo

import (
	"github.com/twpayne/go-polyline"
)

// PolylineFromCoords encodes coordinates as a google encoded polyline.
func PolylineFromCoords(coords []Coordinate) string {
	flatCoords := make([][]float64, len(coords))
	for i, c := range coords {
		flatCoords[i] = []float64{c.Lat, c.Lon}
	}
	return string(polyline.EncodeCoords(flatCoords))
}
