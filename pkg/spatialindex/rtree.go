package spatialindex

import (
	"math"

	"github.com/lintang-b-s/navigatorx-junction/pkg"
	da "github.com/lintang-b-s/navigatorx-junction/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-junction/pkg/geo"
	"github.com/paulmach/osm"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

type Rtree struct {
	tr *rtree.RTreeG[JunctionVertex]
}

// JunctionVertex. a node shared by more than one accepted way
type JunctionVertex struct {
	id  osm.NodeID
	lat float64
	lon float64
}

func (jv JunctionVertex) GetID() osm.NodeID {
	return jv.id
}

func (jv JunctionVertex) GetLat() float64 {
	return jv.lat
}

func (jv JunctionVertex) GetLon() float64 {
	return jv.lon
}

func newJunctionVertex(id osm.NodeID, lat, lon float64) JunctionVertex {
	return JunctionVertex{
		id:  id,
		lat: lat,
		lon: lon,
	}
}

func NewRtree() *Rtree {
	var tr rtree.RTreeG[JunctionVertex]
	return &Rtree{
		tr: &tr,
	}
}

// Build. index every junction node of the ways accepted by accept
func (rt *Rtree) Build(graph *da.Graph, accept func(w *da.Way) bool, log *zap.Logger) {
	log.Info("Building R-tree spatial index...")

	nodeTypes := graph.NodeTypes(accept)
	count := 0
	for _, id := range da.SortedKeys(nodeTypes) {
		if nodeTypes[id] != pkg.JUNCTION_NODE {
			continue
		}
		node, ok := graph.GetNode(id)
		if !ok {
			continue
		}
		point := [2]float64{node.GetLon(), node.GetLat()}
		rt.tr.Insert(point, point, newJunctionVertex(id, node.GetLat(), node.GetLon()))
		count++
	}

	log.Info("R-tree spatial index built.", zap.Int("junctions", count))
}

func (rt *Rtree) Len() int {
	return rt.tr.Len()
}

// SearchWithinRadius search for junction vertices within the bounding box of radius (in km) around the query point (qLat, qLon).
// the box contains the whole circle, callers filter by distance.
func (rt *Rtree) SearchWithinRadius(qLat, qLon, radius float64) []JunctionVertex {
	bound := geo.RadiusBound(qLat, qLon, radius)

	results := make([]JunctionVertex, 0, 10)
	rt.tr.Search(bound.Min, bound.Max,
		func(min, max [2]float64, data JunctionVertex) bool {
			results = append(results, data)
			return true
		})
	return results
}

// NearestJunction. nearest junction vertex within radius (in km), false if there is none
func (rt *Rtree) NearestJunction(qLat, qLon, radius float64) (JunctionVertex, float64, bool) {
	var (
		nearest JunctionVertex
		found   bool
	)
	best := math.MaxFloat64
	for _, jv := range rt.SearchWithinRadius(qLat, qLon, radius) {
		dist := geo.CalculateHaversineDistance(qLat, qLon, jv.lat, jv.lon)
		if dist > radius {
			continue
		}
		if dist < best || (dist == best && jv.id < nearest.id) {
			best = dist
			nearest = jv
			found = true
		}
	}
	return nearest, best, found
}
