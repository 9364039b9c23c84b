package geo

import (
	"github.com/twpayne/go-polyline"
)

// PolylineFromCoords. encode coordinates as google encoded polyline (precision 5)
func PolylineFromCoords(coords []Coordinate) string {
	latLons := make([][]float64, 0, len(coords))
	for _, c := range coords {
		latLons = append(latLons, []float64{c.Lat, c.Lon})
	}
	return string(polyline.EncodeCoords(latLons))
}
