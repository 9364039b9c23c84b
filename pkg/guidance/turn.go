package guidance

import (
	"math"

	"github.com/lintang-b-s/navigatorx-junction/pkg/geo"
	"github.com/lintang-b-s/navigatorx-junction/pkg/util"
)

type TurnDirection int

const (
	UNKNOWN            TurnDirection = -9999
	TURN_SHARP_LEFT    TurnDirection = -3
	TURN_LEFT          TurnDirection = -2
	TURN_SLIGHT_LEFT   TurnDirection = -1
	CONTINUE_ON_STREET TurnDirection = 0
	TURN_SLIGHT_RIGHT  TurnDirection = 1
	TURN_RIGHT         TurnDirection = 2
	TURN_SHARP_RIGHT   TurnDirection = 3
)

func (t TurnDirection) String() string {
	switch t {
	case TURN_SHARP_LEFT:
		return "sharp_left"
	case TURN_LEFT:
		return "left"
	case TURN_SLIGHT_LEFT:
		return "slight_left"
	case CONTINUE_ON_STREET:
		return "straight"
	case TURN_SLIGHT_RIGHT:
		return "slight_right"
	case TURN_RIGHT:
		return "right"
	case TURN_SHARP_RIGHT:
		return "sharp_right"
	default:
		return "unknown"
	}
}

// https://www.movable-type.co.uk/scripts/latlong.html
// initial bearing (baering from a to b with meridian line crossing a)
func computeInitialBearing(lat1, lon1, lat2, lon2 float64) float64 {
	bearing := geo.BearingTo(lat1, lon1, lat2, lon2)
	bearing = util.DegreeToRadians(bearing)
	return bearing
}

// computeDeltaBearing. compute \Delta (current edge initial bearing - prev edge initial bearing) . output in radians
func computeDeltaBearing(prevLat, prevLon, lat, lon, prevInitialBearing float64) float64 {
	initialBearing := computeInitialBearing(prevLat, prevLon, lat, lon)
	prevInitialBearing, initialBearing = alignInitialBearing(prevInitialBearing, initialBearing)
	return initialBearing - prevInitialBearing
}

/*
alignInitialBearing. handle case ketika initialBearing-prevInitialBearing > 180° atau  initialBearing-prevInitialBearing < -180°.

prevInitialBearing 20°, initialBearing 350°: dif 330° would read as a right turn, it is a left turn.
fix: prevInitialBearing + 360°.

prevInitialBearing 340°, initialBearing 10°: dif -330° would read as a left turn, it is a right turn.
fix: initialBearing + 360°.
*/
func alignInitialBearing(prevInitialBearing, initialBearing float64) (float64, float64) {
	dif := util.RadiansToDegree(initialBearing) - util.RadiansToDegree(prevInitialBearing)
	if dif > 180 {
		prevInitialBearing += 2 * math.Pi
	} else if dif < -180 {
		initialBearing += 2 * math.Pi
	}
	return prevInitialBearing, initialBearing
}

func getTurnDirection(prevLat, prevLon, lat, long, prevInitialBearing float64) TurnDirection {
	delta := computeDeltaBearing(prevLat, prevLon, lat, long, prevInitialBearing)
	deltaDegree := util.RadiansToDegree(math.Abs(delta))
	if deltaDegree < 12 {
		// 12°
		return CONTINUE_ON_STREET
	} else if deltaDegree < 40 {
		if delta < 0 {
			return TURN_SLIGHT_LEFT
		}
		return TURN_SLIGHT_RIGHT
	} else if deltaDegree < 105 {
		if delta < 0 {
			return TURN_LEFT
		}
		return TURN_RIGHT
	} else if delta < 0 {
		return TURN_SHARP_LEFT
	}
	return TURN_SHARP_RIGHT
}

/*
GetTurnDirection. arah belokan dari edge (from, via) ke edge (via, to).

	        to
	        |
	from ---via        -> TURN_LEFT (heading east, leaving north)
*/ // nolint: gofmt
func GetTurnDirection(from, via, to geo.Coordinate) TurnDirection {
	if from == via || via == to {
		return UNKNOWN
	}
	prevInitialBearing := computeInitialBearing(from.Lat, from.Lon, via.Lat, via.Lon)
	return getTurnDirection(via.Lat, via.Lon, to.Lat, to.Lon, prevInitialBearing)
}
