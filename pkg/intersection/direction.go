package intersection

import (
	da "github.com/lintang-b-s/navigatorx-junction/pkg/datastructure"
	"github.com/paulmach/osm"
)

type OneWay uint8

const (
	BIDIRECTIONAL OneWay = iota
	FORWARD              // travel follows the node order
	REVERSE              // travel runs from the last node to the first
)

// https://wiki.openstreetmap.org/wiki/Key:oneway
func GetOneWay(tags da.Tags) OneWay {
	switch tags.Find("oneway") {
	case "yes", "true", "1":
		return FORWARD
	case "-1":
		return REVERSE
	default:
		return BIDIRECTIONAL
	}
}

type Travel uint8

const (
	ARRIVE Travel = iota // arrive at the vertex
	DEPART               // depart from the vertex
)

// approach. one way of entering/leaving the vertex along a segment:
// the vertex sits at vertexIdx, the nearest different node at neighborIdx.
type approach struct {
	vertexIdx   int
	neighborIdx int
}

/*
approaches. a segment touches the vertex at its first node, its last node, or both (closed loop).

	*----u----w      -> {0, 1}
	w----u----*      -> {2, 1}
	*----u----w----* -> {0, 1}, {3, 2}

repeated vertex refs next to the endpoint are skipped when looking for the neighbour.
*/ // nolint: gofmt
func approaches(nodes []osm.NodeID, vertex osm.NodeID) []approach {
	last := len(nodes) - 1
	if last < 1 {
		return nil
	}

	result := make([]approach, 0, 2)
	if nodes[0] == vertex {
		for j := 1; j <= last; j++ {
			if nodes[j] != vertex {
				result = append(result, approach{vertexIdx: 0, neighborIdx: j})
				break
			}
		}
	}
	if nodes[last] == vertex {
		for j := last - 1; j >= 0; j-- {
			if nodes[j] != vertex {
				result = append(result, approach{vertexIdx: last, neighborIdx: j})
				break
			}
		}
	}
	return result
}

// allows. arriving moves forward through the node sequence when the neighbour comes before the vertex,
// departing moves forward when the neighbour comes after it.
func (a approach) allows(oneWay OneWay, travel Travel) bool {
	var movingForward bool
	switch travel {
	case ARRIVE:
		movingForward = a.neighborIdx < a.vertexIdx
	case DEPART:
		movingForward = a.neighborIdx > a.vertexIdx
	}

	switch oneWay {
	case FORWARD:
		return movingForward
	case REVERSE:
		return !movingForward
	default:
		return true
	}
}

// legalNeighbors. neighbour nodes of vertex along seg that can be used for travel, each node once
func legalNeighbors(seg Segment, vertex osm.NodeID, travel Travel) []osm.NodeID {
	oneWay := GetOneWay(seg.tags)
	neighbors := make([]osm.NodeID, 0, 2)
	for _, a := range approaches(seg.nodes, vertex) {
		if !a.allows(oneWay, travel) {
			continue
		}
		node := seg.nodes[a.neighborIdx]
		if !containsNode(neighbors, node) {
			neighbors = append(neighbors, node)
		}
	}
	return neighbors
}

// CanTravel. directionality resolver: may travel arrive at / depart from vertex along seg
func CanTravel(seg Segment, vertex osm.NodeID, travel Travel) bool {
	return len(legalNeighbors(seg, vertex, travel)) > 0
}

func containsNode(nodes []osm.NodeID, node osm.NodeID) bool {
	for _, n := range nodes {
		if n == node {
			return true
		}
	}
	return false
}
