package geo

import (
	"github.com/golang/geo/s2"
	"github.com/paulmach/orb"
)

func toS2Point(p orb.Point) s2.Point {
	return s2.PointFromLatLng(s2.LatLngFromDegrees(p.Lat(), p.Lon()))
}

/*
SelfIntersects. cek apakah ada 2 edge polyline yang tidak bertetangga saling crossing.

	a-----b
	 \   /
	  \ /
	   x        <- edge (a,d) crosses (b,c)
	  / \
	 c---d

edges that share a vertex (consecutive edges, and the closing edge of a ring with the
first edge) are never reported.
*/ // nolint: gofmt
func SelfIntersects(line orb.LineString) bool {
	if len(line) < 4 {
		return false
	}

	points := make([]s2.Point, len(line))
	for i, p := range line {
		points[i] = toS2Point(p)
	}

	closed := line[0] == line[len(line)-1]
	numEdges := len(points) - 1
	for i := 0; i < numEdges; i++ {
		for j := i + 2; j < numEdges; j++ {
			if closed && i == 0 && j == numEdges-1 {
				continue
			}
			if s2.CrossingSign(points[i], points[i+1], points[j], points[j+1]) == s2.Cross {
				return true
			}
		}
	}
	return false
}
