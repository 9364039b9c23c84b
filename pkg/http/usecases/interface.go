package usecases

import (
	da "github.com/lintang-b-s/navigatorx-junction/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-junction/pkg/intersection"
	"github.com/lintang-b-s/navigatorx-junction/pkg/spatialindex"
	"github.com/lintang-b-s/navigatorx-junction/pkg/validation"
	"github.com/paulmach/osm"
)

type IntersectionBuilder interface {
	Build(g *da.Graph, vertex osm.NodeID) *intersection.Intersection
}

type SpatialIndex interface {
	NearestJunction(qLat, qLon, radius float64) (spatialindex.JunctionVertex, float64, bool)
}

type WayValidator interface {
	ValidateWay(g *da.Graph, way *da.Way) []validation.Issue
}
