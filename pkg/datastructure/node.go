package datastructure

import (
	"github.com/lintang-b-s/navigatorx-junction/pkg/geo"
	"github.com/paulmach/osm"
)

type Node struct {
	id   osm.NodeID
	lat  float64
	lon  float64
	tags Tags
}

func NewNode(id osm.NodeID, lat, lon float64, tags Tags) *Node {
	return &Node{
		id:   id,
		lat:  lat,
		lon:  lon,
		tags: tags.clone(),
	}
}

func (n *Node) GetID() osm.NodeID {
	return n.id
}

func (n *Node) GetLat() float64 {
	return n.lat
}

func (n *Node) GetLon() float64 {
	return n.lon
}

func (n *Node) GetCoordinate() geo.Coordinate {
	return geo.NewCoordinate(n.lat, n.lon)
}

func (n *Node) GetTags() Tags {
	return n.tags
}
