package geo

import (
	"math"

	"github.com/lintang-b-s/navigatorx-junction/pkg/util"
	"github.com/paulmach/orb"
)

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (c Coordinate) GetLat() float64 {
	return c.Lat
}

func (c Coordinate) GetLon() float64 {
	return c.Lon
}

func NewCoordinate(lat, lon float64) Coordinate {
	return Coordinate{
		Lat: lat,
		Lon: lon,
	}
}

// ToPoint. orb points are (lon, lat)
func (c Coordinate) ToPoint() orb.Point {
	return orb.Point{c.Lon, c.Lat}
}

func NewLineString(coords []Coordinate) orb.LineString {
	ls := make(orb.LineString, len(coords))
	for i, c := range coords {
		ls[i] = c.ToPoint()
	}
	return ls
}

const (
	earthRadiusKM = 6371.0
)

func havFunction(angleRad float64) float64 {
	return (1 - math.Cos(angleRad)) / 2.0
}

// CalculateHaversineDistance. calculate haversine distance in km
func CalculateHaversineDistance(latOne, longOne, latTwo, longTwo float64) float64 {
	latOne = util.DegreeToRadians(latOne)
	longOne = util.DegreeToRadians(longOne)
	latTwo = util.DegreeToRadians(latTwo)
	longTwo = util.DegreeToRadians(longTwo)

	a := havFunction(latOne-latTwo) + math.Cos(latOne)*math.Cos(latTwo)*havFunction(longOne-longTwo)
	c := 2.0 * math.Asin(math.Sqrt(a))
	return earthRadiusKM * c
}

// GetDestinationPoint returns the destination point given the starting point, bearing and distance
// dist in km
func GetDestinationPoint(lat1, lon1 float64, bearing float64, dist float64) (float64, float64) {

	dr := dist / earthRadiusKM

	bearing = util.DegreeToRadians(bearing)

	lat1 = util.DegreeToRadians(lat1)
	lon1 = util.DegreeToRadians(lon1)

	lat2 := math.Asin(math.Sin(lat1)*math.Cos(dr) + math.Cos(lat1)*math.Sin(dr)*math.Cos(bearing))

	lon2 := lon1 + math.Atan2(math.Sin(bearing)*math.Sin(dr)*math.Cos(lat1),
		math.Cos(dr)-(math.Sin(lat1)*math.Sin(lat2)))

	return util.RadiansToDegree(lat2), normalizeLongitude(util.RadiansToDegree(lon2))
}

// normalizeLongitude. long in degree
func normalizeLongitude(long float64) float64 {
	return math.Mod((long+540), 360) - 180.0
}

/*
RadiusBound. smallest lat/lon box containing every point within radius (in km) of (lat, lon).
ref: http://janmatuschek.de/LatitudeLongitudeBoundingCoordinates

	dLat = radius / R
	dLon = asin(sin(radius / R) / cos(lat))

the longitude span is widened to [-180, 180] when the circle contains a pole or crosses the antimeridian.
*/ // nolint: gofmt
func RadiusBound(lat, lon, radius float64) orb.Bound {
	dr := radius / earthRadiusKM
	latR := util.DegreeToRadians(lat)
	lonR := util.DegreeToRadians(lon)

	minLat, maxLat := latR-dr, latR+dr
	minLon, maxLon := -math.Pi, math.Pi
	if minLat > -math.Pi/2 && maxLat < math.Pi/2 {
		dLon := math.Asin(math.Sin(dr) / math.Cos(latR))
		if lonR-dLon >= -math.Pi && lonR+dLon <= math.Pi {
			minLon, maxLon = lonR-dLon, lonR+dLon
		}
	} else {
		minLat = math.Max(minLat, -math.Pi/2)
		maxLat = math.Min(maxLat, math.Pi/2)
	}

	return orb.Bound{
		Min: orb.Point{util.RadiansToDegree(minLon), util.RadiansToDegree(minLat)},
		Max: orb.Point{util.RadiansToDegree(maxLon), util.RadiansToDegree(maxLat)},
	}
}
