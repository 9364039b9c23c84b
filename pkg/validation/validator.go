package validation

import (
	"github.com/lintang-b-s/navigatorx-junction/pkg"
	"github.com/lintang-b-s/navigatorx-junction/pkg/classify"
	da "github.com/lintang-b-s/navigatorx-junction/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-junction/pkg/geo"
	"github.com/paulmach/osm"
	orbgeo "github.com/paulmach/orb/geo"
)

type Validator struct {
	classifier          *classify.Classifier
	mergeDistanceMeters float64
}

func NewValidator(classifier *classify.Classifier, mergeDistanceMeters float64) *Validator {
	if mergeDistanceMeters <= 0 {
		mergeDistanceMeters = pkg.DEFAULT_MERGE_DISTANCE_METERS
	}
	return &Validator{
		classifier:          classifier,
		mergeDistanceMeters: mergeDistanceMeters,
	}
}

/*
ValidateWay. unclosed_area: tags suggest an area but the way is open.

fixes, each offered only if the resulting ring does not self intersect:

	merge_endpoints: first & last node less than mergeDistanceMeters apart, last node replaced by the first
	close_way:       first node appended to the node list
*/ // nolint: gofmt
func (v *Validator) ValidateWay(g *da.Graph, way *da.Way) []Issue {
	issues := make([]Issue, 0)
	if way.IsClosed() || way.DistinctNodeCount() < 2 || !v.classifier.IsAreaTag(way.GetTags()) {
		return issues
	}

	issue := Issue{Type: UNCLOSED_AREA, Way: way.GetID(), Fixes: make([]Fix, 0, 2)}
	nodes := way.GetNodes()

	if merged, ok := v.mergeEndpoints(g, nodes); ok {
		issue.Fixes = append(issue.Fixes, Fix{Type: MERGE_ENDPOINTS, Way: way.WithNodes(merged)})
	}

	closed := make([]osm.NodeID, 0, len(nodes)+1)
	closed = append(closed, nodes...)
	closed = append(closed, nodes[0])
	if v.isValidRing(g, closed) {
		issue.Fixes = append(issue.Fixes, Fix{Type: CLOSE_WAY, Way: way.WithNodes(closed)})
	}

	return append(issues, issue)
}

func (v *Validator) mergeEndpoints(g *da.Graph, nodes []osm.NodeID) ([]osm.NodeID, bool) {
	first, okFirst := g.GetNode(nodes[0])
	last, okLast := g.GetNode(nodes[len(nodes)-1])
	if !okFirst || !okLast {
		return nil, false
	}

	if orbgeo.Distance(first.GetCoordinate().ToPoint(), last.GetCoordinate().ToPoint()) >= v.mergeDistanceMeters {
		return nil, false
	}

	merged := make([]osm.NodeID, len(nodes))
	copy(merged, nodes)
	merged[len(merged)-1] = merged[0]
	if !v.isValidRing(g, merged) {
		return nil, false
	}
	return merged, true
}

// isValidRing. closed ring with at least 3 distinct nodes, all nodes known, no crossing edges
func (v *Validator) isValidRing(g *da.Graph, ring []osm.NodeID) bool {
	if da.NewWay(0, ring, nil).DistinctNodeCount() < 3 {
		return false
	}
	coords := g.GetCoordinates(ring)
	if len(coords) != len(ring) {
		return false
	}
	return !geo.SelfIntersects(geo.NewLineString(coords))
}

/*
ValidateNode.

	vertex_as_point: vertex-only tags (e.g. highway=crossing) on a node no way references
	point_as_vertex: point-only tags (e.g. amenity=bench) on a node that sits on a way
*/ // nolint: gofmt
func (v *Validator) ValidateNode(g *da.Graph, node *da.Node) []Issue {
	issues := make([]Issue, 0)
	tags := node.GetTags()
	if len(tags) == 0 {
		return issues
	}

	switch v.classifier.NodeGeometry(g, node.GetID()) {
	case classify.POINT:
		if v.classifier.IsVertexTag(tags) {
			issues = append(issues, Issue{Type: VERTEX_AS_POINT, Node: node.GetID()})
		}
	case classify.VERTEX:
		if v.classifier.IsPointTag(tags) {
			issues = append(issues, Issue{Type: POINT_AS_VERTEX, Node: node.GetID()})
		}
	}
	return issues
}

// ValidateGraph. all way issues in way order, then all node issues in node order
func (v *Validator) ValidateGraph(g *da.Graph) []Issue {
	issues := make([]Issue, 0)
	g.ForWays(func(w *da.Way) {
		issues = append(issues, v.ValidateWay(g, w)...)
	})
	g.ForNodes(func(n *da.Node) {
		issues = append(issues, v.ValidateNode(g, n)...)
	})
	return issues
}
