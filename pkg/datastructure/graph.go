package datastructure

import (
	"github.com/lintang-b-s/navigatorx-junction/pkg"
	"github.com/lintang-b-s/navigatorx-junction/pkg/geo"
	"github.com/paulmach/osm"
)

/*
Graph. immutable snapshot of nodes, ways, relations + reverse indices.
every edit produces a new Graph (see WithWay), a published Graph is never mutated,
so any number of goroutines can read it without locking.

reverse index order = order the ways/relations were added to the GraphBuilder.
*/
type Graph struct {
	nodes     map[osm.NodeID]*Node
	ways      map[osm.WayID]*Way
	relations map[osm.RelationID]*Relation

	nodeOrder     []osm.NodeID
	wayOrder      []osm.WayID
	relationOrder []osm.RelationID

	nodeWays      map[osm.NodeID][]osm.WayID      // node -> ways referencing the node
	nodeRelations map[osm.NodeID][]osm.RelationID // node -> relations with the node as member
	wayRelations  map[osm.WayID][]osm.RelationID  // way -> relations with the way as member
}

func (g *Graph) GetNode(id osm.NodeID) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

func (g *Graph) HasNode(id osm.NodeID) bool {
	_, ok := g.nodes[id]
	return ok
}

func (g *Graph) GetWay(id osm.WayID) (*Way, bool) {
	w, ok := g.ways[id]
	return w, ok
}

func (g *Graph) GetRelation(id osm.RelationID) (*Relation, bool) {
	r, ok := g.relations[id]
	return r, ok
}

func (g *Graph) NumberOfNodes() int {
	return len(g.nodes)
}

func (g *Graph) NumberOfWays() int {
	return len(g.ways)
}

func (g *Graph) NumberOfRelations() int {
	return len(g.relations)
}

// WaysOf. all ways referencing node, each way once
func (g *Graph) WaysOf(node osm.NodeID) []*Way {
	ids := g.nodeWays[node]
	ways := make([]*Way, 0, len(ids))
	for _, id := range ids {
		if w, ok := g.ways[id]; ok {
			ways = append(ways, w)
		}
	}
	return ways
}

// RelationsOfNode. all relations with node as a member
func (g *Graph) RelationsOfNode(node osm.NodeID) []*Relation {
	return g.lookupRelations(g.nodeRelations[node])
}

// RelationsOfWay. all relations with way as a member
func (g *Graph) RelationsOfWay(way osm.WayID) []*Relation {
	return g.lookupRelations(g.wayRelations[way])
}

func (g *Graph) lookupRelations(ids []osm.RelationID) []*Relation {
	rels := make([]*Relation, 0, len(ids))
	for _, id := range ids {
		if r, ok := g.relations[id]; ok {
			rels = append(rels, r)
		}
	}
	return rels
}

func (g *Graph) ForNodes(handle func(n *Node)) {
	for _, id := range g.nodeOrder {
		handle(g.nodes[id])
	}
}

func (g *Graph) ForWays(handle func(w *Way)) {
	for _, id := range g.wayOrder {
		handle(g.ways[id])
	}
}

// GetCoordinates. coordinates of the given node ids, ids missing from the snapshot are skipped
func (g *Graph) GetCoordinates(ids []osm.NodeID) []geo.Coordinate {
	coords := make([]geo.Coordinate, 0, len(ids))
	for _, id := range ids {
		if n, ok := g.nodes[id]; ok {
			coords = append(coords, n.GetCoordinate())
		}
	}
	return coords
}

/*
NodeTypes. posisi node di dalam ways yang lolos filter:

	END_NODE      first/last node of exactly one way
	BETWEEN_NODE  interior node of exactly one way
	JUNCTION_NODE referenced by more than one way, or more than once by the same way
*/ // nolint: gofmt
func (g *Graph) NodeTypes(accept func(w *Way) bool) map[osm.NodeID]pkg.NodeType {
	nodeTypes := make(map[osm.NodeID]pkg.NodeType)
	g.ForWays(func(w *Way) {
		if !accept(w) {
			return
		}
		last := len(w.nodes) - 1
		if w.IsClosed() {
			// first == last, visit it once
			last--
		}
		for i := 0; i <= last; i++ {
			node := w.nodes[i]
			if _, ok := nodeTypes[node]; ok {
				nodeTypes[node] = pkg.JUNCTION_NODE
			} else if i == 0 || i == len(w.nodes)-1 {
				nodeTypes[node] = pkg.END_NODE
			} else {
				nodeTypes[node] = pkg.BETWEEN_NODE
			}
		}
	})
	return nodeTypes
}

// WithWay. copy-on-write: a new snapshot where way replaces the way with the same id (or is appended)
func (g *Graph) WithWay(way *Way) *Graph {
	b := g.toBuilder()
	b.AddWay(way)
	return b.Build()
}

func (g *Graph) toBuilder() *GraphBuilder {
	b := NewGraphBuilder()
	for _, id := range g.nodeOrder {
		b.AddNode(g.nodes[id])
	}
	for _, id := range g.wayOrder {
		b.AddWay(g.ways[id])
	}
	for _, id := range g.relationOrder {
		b.AddRelation(g.relations[id])
	}
	return b
}
