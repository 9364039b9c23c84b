package usecases

import (
	"errors"

	da "github.com/lintang-b-s/navigatorx-junction/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-junction/pkg/geo"
	"github.com/lintang-b-s/navigatorx-junction/pkg/intersection"
	"github.com/lintang-b-s/navigatorx-junction/pkg/util"
	"github.com/lintang-b-s/navigatorx-junction/pkg/validation"
	"github.com/paulmach/osm"
	"go.uber.org/zap"
)

var (
	ErrNodeNotFound       = errors.New("node not found")
	ErrWayNotFound        = errors.New("way not found")
	ErrSegmentNotFound    = errors.New("segment not part of the intersection")
	ErrNoNearbyJunction   = errors.New("no junction near the given coordinate")
	ErrInvalidSegmentName = errors.New("invalid segment id")
)

type IntersectionService struct {
	log          *zap.Logger
	graph        *da.Graph
	builder      IntersectionBuilder
	spatialIndex SpatialIndex
	validator    WayValidator
	searchRadius float64
}

func NewIntersectionService(log *zap.Logger, graph *da.Graph, builder IntersectionBuilder, spatialIndex SpatialIndex,
	validator WayValidator, searchRadius float64) *IntersectionService {
	return &IntersectionService{
		log:          log,
		graph:        graph,
		builder:      builder,
		spatialIndex: spatialIndex,
		validator:    validator,
		searchRadius: searchRadius,
	}
}

func (is *IntersectionService) GetGraph() *da.Graph {
	return is.graph
}

func (is *IntersectionService) GetIntersection(nodeID int64) (*intersection.Intersection, error) {
	vertex := osm.NodeID(nodeID)
	if !is.graph.HasNode(vertex) {
		return nil, util.WrapErrorf(ErrNodeNotFound, util.ErrNotFound, "node %d not found", nodeID)
	}

	in := is.builder.Build(is.graph, vertex)
	if skipped := in.SkippedRestrictions(); skipped > 0 {
		is.log.Debug("skipped malformed restriction relations", zap.Int64("node", nodeID), zap.Int("count", skipped))
	}
	return in, nil
}

// GetTurns. turns at nodeID arriving along segment from ("w12", "w12.a", ...)
func (is *IntersectionService) GetTurns(nodeID int64, from string) (*intersection.Intersection, []intersection.Turn, error) {
	fromID, err := intersection.ParseSegmentID(from)
	if err != nil {
		return nil, nil, util.WrapErrorf(errors.Join(ErrInvalidSegmentName, err), util.ErrBadParamInput, "invalid from segment %q", from)
	}

	in, err := is.GetIntersection(nodeID)
	if err != nil {
		return nil, nil, err
	}

	if _, ok := in.GetSegment(fromID); !ok {
		return nil, nil, util.WrapErrorf(ErrSegmentNotFound, util.ErrBadParamInput,
			"segment %s does not meet node %d", fromID, nodeID)
	}
	return in, in.Turns(fromID), nil
}

// NearestIntersection. intersection at the nearest junction within the search radius, distance in km
func (is *IntersectionService) NearestIntersection(lat, lon float64) (*intersection.Intersection, float64, error) {
	jv, dist, found := is.spatialIndex.NearestJunction(lat, lon, is.searchRadius)
	if !found {
		return nil, 0, util.WrapErrorf(ErrNoNearbyJunction, util.ErrNotFound,
			"no junction within %.3f km of %f,%f", is.searchRadius, lat, lon)
	}

	in, err := is.GetIntersection(int64(jv.GetID()))
	if err != nil {
		return nil, 0, err
	}
	return in, dist, nil
}

func (is *IntersectionService) WayIssues(wayID int64) ([]validation.Issue, error) {
	way, ok := is.graph.GetWay(osm.WayID(wayID))
	if !ok {
		return nil, util.WrapErrorf(ErrWayNotFound, util.ErrNotFound, "way %d not found", wayID)
	}
	return is.validator.ValidateWay(is.graph, way), nil
}

func (is *IntersectionService) NodeCoordinate(nodeID osm.NodeID) (geo.Coordinate, bool) {
	n, ok := is.graph.GetNode(nodeID)
	if !ok {
		return geo.Coordinate{}, false
	}
	return n.GetCoordinate(), true
}

// SegmentPolyline. encoded polyline of the segment geometry
func (is *IntersectionService) SegmentPolyline(nodes []osm.NodeID) string {
	return geo.PolylineFromCoords(is.graph.GetCoordinates(nodes))
}
