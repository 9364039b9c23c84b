package controllers

import (
	"github.com/lintang-b-s/navigatorx-junction/pkg/geo"
	"github.com/lintang-b-s/navigatorx-junction/pkg/intersection"
	"github.com/lintang-b-s/navigatorx-junction/pkg/validation"
	"github.com/paulmach/osm"
)

type IntersectionService interface {
	GetIntersection(nodeID int64) (*intersection.Intersection, error)
	GetTurns(nodeID int64, from string) (*intersection.Intersection, []intersection.Turn, error)
	NearestIntersection(lat, lon float64) (*intersection.Intersection, float64, error)
	WayIssues(wayID int64) ([]validation.Issue, error)
	NodeCoordinate(nodeID osm.NodeID) (geo.Coordinate, bool)
	SegmentPolyline(nodes []osm.NodeID) string
}
