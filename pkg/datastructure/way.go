package datastructure

import "github.com/paulmach/osm"

// Way. ordered node ids + tags. the way references nodes by id, node data lives in the Graph.
type Way struct {
	id    osm.WayID
	nodes []osm.NodeID
	tags  Tags
}

func NewWay(id osm.WayID, nodes []osm.NodeID, tags Tags) *Way {
	nodesCopy := make([]osm.NodeID, len(nodes))
	copy(nodesCopy, nodes)
	return &Way{
		id:    id,
		nodes: nodesCopy,
		tags:  tags.clone(),
	}
}

func (w *Way) GetID() osm.WayID {
	return w.id
}

// GetNodes. the returned slice must not be modified
func (w *Way) GetNodes() []osm.NodeID {
	return w.nodes
}

func (w *Way) GetTags() Tags {
	return w.tags
}

func (w *Way) GetTag(key string) string {
	return w.tags[key]
}

func (w *Way) First() osm.NodeID {
	if len(w.nodes) == 0 {
		return 0
	}
	return w.nodes[0]
}

func (w *Way) Last() osm.NodeID {
	if len(w.nodes) == 0 {
		return 0
	}
	return w.nodes[len(w.nodes)-1]
}

// IsClosed. first node == last node and at least 3 node refs
func (w *Way) IsClosed() bool {
	return len(w.nodes) >= 3 && w.nodes[0] == w.nodes[len(w.nodes)-1]
}

// Affix. node is the first or the last node of the way
func (w *Way) Affix(node osm.NodeID) bool {
	return len(w.nodes) > 0 && (w.First() == node || w.Last() == node)
}

func (w *Way) Contains(node osm.NodeID) bool {
	return w.IndexOf(node, 0) != -1
}

// IndexOf. index of the first occurrence of node at or after from, -1 if absent
func (w *Way) IndexOf(node osm.NodeID, from int) int {
	for i := max(from, 0); i < len(w.nodes); i++ {
		if w.nodes[i] == node {
			return i
		}
	}
	return -1
}

func (w *Way) DistinctNodeCount() int {
	seen := make(map[osm.NodeID]struct{}, len(w.nodes))
	for _, n := range w.nodes {
		seen[n] = struct{}{}
	}
	return len(seen)
}

// IsDegenerate. a way with less than 2 distinct nodes cannot carry traffic
func (w *Way) IsDegenerate() bool {
	return w.DistinctNodeCount() < 2
}

// WithNodes. copy of the way with a different node list
func (w *Way) WithNodes(nodes []osm.NodeID) *Way {
	return NewWay(w.id, nodes, w.tags)
}
