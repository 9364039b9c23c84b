package intersection

import (
	"github.com/lintang-b-s/navigatorx-junction/pkg/classify"
	da "github.com/lintang-b-s/navigatorx-junction/pkg/datastructure"
	"github.com/paulmach/osm"
)

const (
	nodeU    osm.NodeID = 1
	nodeStar osm.NodeID = 2
	nodeW    osm.NodeID = 3
	nodeX    osm.NodeID = 4
	nodeY    osm.NodeID = 5
)

/*
test nodes:

	        x
	        |
	u ----- * ----- w
	        |
	        y
*/ // nolint: gofmt
func testNodes() []*da.Node {
	return []*da.Node{
		da.NewNode(nodeU, 0, -0.001, nil),
		da.NewNode(nodeStar, 0, 0, nil),
		da.NewNode(nodeW, 0, 0.001, nil),
		da.NewNode(nodeX, 0.001, 0, nil),
		da.NewNode(nodeY, -0.001, 0, nil),
	}
}

func newTestGraph(ways []*da.Way, relations ...*da.Relation) *da.Graph {
	b := da.NewGraphBuilder()
	for _, n := range testNodes() {
		b.AddNode(n)
	}
	for _, w := range ways {
		b.AddWay(w)
	}
	for _, r := range relations {
		b.AddRelation(r)
	}
	return b.Build()
}

func highway(extra ...string) da.Tags {
	tags := da.Tags{"highway": "residential"}
	for i := 0; i+1 < len(extra); i += 2 {
		tags[extra[i]] = extra[i+1]
	}
	return tags
}

func newTestBuilder() *Builder {
	return NewBuilder(classify.NewClassifier(classify.HasKey("highway"), classify.AreaKeys(nil)))
}

func restrictionRelation(id osm.RelationID, kind string, from osm.WayID, via osm.NodeID, to osm.WayID) *da.Relation {
	return da.NewRelation(id, da.Tags{"type": "restriction", "restriction": kind}, []da.Member{
		{Ref: int64(from), Type: osm.TypeWay, Role: "from"},
		{Ref: int64(via), Type: osm.TypeNode, Role: "via"},
		{Ref: int64(to), Type: osm.TypeWay, Role: "to"},
	})
}

func whole(way osm.WayID) SegmentID {
	return NewSegmentID(way, WHOLE)
}
