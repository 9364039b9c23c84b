package intersection

import (
	da "github.com/lintang-b-s/navigatorx-junction/pkg/datastructure"
	"github.com/paulmach/osm"
)

/*
splitWay. segments of way that end at vertex.

	u----*----w   ->  u----*  (w.a)   *----w  (w.b)

vertex at the first/last node: the way itself, unsplit.
vertex at an interior position: split at the first interior occurrence, both halves keep the parent tags.
degenerate way (less than 2 distinct nodes) or vertex not on the way: nothing.
*/ // nolint: gofmt
func splitWay(way *da.Way, vertex osm.NodeID) []Segment {
	if way.IsDegenerate() {
		return nil
	}

	nodes := way.GetNodes()
	if way.Affix(vertex) {
		return []Segment{newSegment(NewSegmentID(way.GetID(), WHOLE), nodes, way.GetTags())}
	}

	idx := way.IndexOf(vertex, 1)
	if idx <= 0 || idx >= len(nodes)-1 {
		return nil
	}

	nodesA := make([]osm.NodeID, idx+1)
	copy(nodesA, nodes[:idx+1])
	nodesB := make([]osm.NodeID, len(nodes)-idx)
	copy(nodesB, nodes[idx:])

	return []Segment{
		newSegment(NewSegmentID(way.GetID(), HALF_A), nodesA, way.GetTags()),
		newSegment(NewSegmentID(way.GetID(), HALF_B), nodesB, way.GetTags()),
	}
}
