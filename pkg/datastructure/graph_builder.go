package datastructure

import (
	"github.com/paulmach/osm"
)

type GraphBuilder struct {
	nodes     map[osm.NodeID]*Node
	ways      map[osm.WayID]*Way
	relations map[osm.RelationID]*Relation

	nodeOrder     []osm.NodeID
	wayOrder      []osm.WayID
	relationOrder []osm.RelationID
}

func NewGraphBuilder() *GraphBuilder {
	return &GraphBuilder{
		nodes:     make(map[osm.NodeID]*Node),
		ways:      make(map[osm.WayID]*Way),
		relations: make(map[osm.RelationID]*Relation),
	}
}

// AddNode. adding an id twice replaces the node but keeps its original position
func (b *GraphBuilder) AddNode(n *Node) *GraphBuilder {
	if _, ok := b.nodes[n.id]; !ok {
		b.nodeOrder = append(b.nodeOrder, n.id)
	}
	b.nodes[n.id] = n
	return b
}

func (b *GraphBuilder) AddWay(w *Way) *GraphBuilder {
	if _, ok := b.ways[w.id]; !ok {
		b.wayOrder = append(b.wayOrder, w.id)
	}
	b.ways[w.id] = w
	return b
}

func (b *GraphBuilder) AddRelation(r *Relation) *GraphBuilder {
	if _, ok := b.relations[r.id]; !ok {
		b.relationOrder = append(b.relationOrder, r.id)
	}
	b.relations[r.id] = r
	return b
}

// Build. the builder must not be used after Build
func (b *GraphBuilder) Build() *Graph {
	g := &Graph{
		nodes:         b.nodes,
		ways:          b.ways,
		relations:     b.relations,
		nodeOrder:     b.nodeOrder,
		wayOrder:      b.wayOrder,
		relationOrder: b.relationOrder,
		nodeWays:      make(map[osm.NodeID][]osm.WayID),
		nodeRelations: make(map[osm.NodeID][]osm.RelationID),
		wayRelations:  make(map[osm.WayID][]osm.RelationID),
	}

	for _, wayID := range g.wayOrder {
		for _, node := range g.ways[wayID].nodes {
			g.nodeWays[node] = appendUnique(g.nodeWays[node], wayID)
		}
	}

	for _, relID := range g.relationOrder {
		for _, m := range g.relations[relID].members {
			switch m.Type {
			case osm.TypeNode:
				g.nodeRelations[m.NodeID()] = appendUnique(g.nodeRelations[m.NodeID()], relID)
			case osm.TypeWay:
				g.wayRelations[m.WayID()] = appendUnique(g.wayRelations[m.WayID()], relID)
			}
		}
	}

	return g
}

// NewGraphFromOSM. snapshot from a decoded osm document, entities keep the document order
func NewGraphFromOSM(o *osm.OSM) *Graph {
	b := NewGraphBuilder()
	for _, n := range o.Nodes {
		b.AddNode(NewNode(n.ID, n.Lat, n.Lon, NewTagsFromOSM(n.Tags)))
	}
	for _, w := range o.Ways {
		b.AddWay(NewWay(w.ID, w.Nodes.NodeIDs(), NewTagsFromOSM(w.Tags)))
	}
	for _, r := range o.Relations {
		b.AddRelation(NewRelation(r.ID, NewTagsFromOSM(r.Tags), NewMembersFromOSM(r.Members)))
	}
	return b.Build()
}
