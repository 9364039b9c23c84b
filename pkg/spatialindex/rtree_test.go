package spatialindex

import (
	"math"
	"testing"

	"github.com/lintang-b-s/navigatorx-junction/pkg/classify"
	da "github.com/lintang-b-s/navigatorx-junction/pkg/datastructure"
	"github.com/paulmach/osm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func buildTestGraph() *da.Graph {
	b := da.NewGraphBuilder()
	b.AddNode(da.NewNode(1, -7.7700, 110.3700, nil)).
		AddNode(da.NewNode(2, -7.7700, 110.3710, nil)).
		AddNode(da.NewNode(3, -7.7700, 110.3720, nil)).
		AddNode(da.NewNode(4, -7.7690, 110.3710, nil)).
		AddNode(da.NewNode(5, -7.7690, 110.3720, nil))

	b.AddWay(da.NewWay(10, []osm.NodeID{1, 2, 3}, da.Tags{"highway": "residential"})).
		AddWay(da.NewWay(11, []osm.NodeID{2, 4}, da.Tags{"highway": "residential"})).
		AddWay(da.NewWay(12, []osm.NodeID{3, 5}, da.Tags{"highway": "residential"})).
		AddWay(da.NewWay(13, []osm.NodeID{4, 5}, da.Tags{"building": "yes"}))
	return b.Build()
}

func isHighway(w *da.Way) bool {
	return w.GetTag("highway") != ""
}

func TestRtreeBuild(t *testing.T) {
	rt := NewRtree()
	rt.Build(buildTestGraph(), isHighway, zap.NewNop())

	// junctions: 2 (ways 10, 11) and 3 (ways 10, 12). 4 & 5 only join a building.
	assert.Equal(t, 2, rt.Len())
}

func TestNearestJunction(t *testing.T) {
	rt := NewRtree()
	rt.Build(buildTestGraph(), isHighway, zap.NewNop())

	tests := []struct {
		name     string
		lat, lon float64
		radius   float64
		expected osm.NodeID
		found    bool
	}{
		{name: "close to 2", lat: -7.77001, lon: 110.37101, radius: 0.05, expected: 2, found: true},
		{name: "close to 3", lat: -7.76999, lon: 110.37198, radius: 0.05, expected: 3, found: true},
		{name: "between, larger radius", lat: -7.7700, lon: 110.37140, radius: 0.2, expected: 2, found: true},
		{name: "nothing within radius", lat: -7.7600, lon: 110.3600, radius: 0.05, found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jv, dist, found := rt.NearestJunction(tt.lat, tt.lon, tt.radius)
			require.Equal(t, tt.found, found)
			if !found {
				return
			}
			assert.Equal(t, tt.expected, jv.GetID())
			assert.LessOrEqual(t, dist, tt.radius)
		})
	}
}

/*
junction 20 sits on the axes of the query points, farther than radius/sqrt(2) but inside radius.

	         22
	          |
	q0 ------ 20 ------ 21      q0 = (0, 0), 20 is ~40 m east of q0
	          |
	          q1                q1 is ~45 m south of 20
*/ // nolint: gofmt
func TestNearestJunctionOnAxis(t *testing.T) {
	b := da.NewGraphBuilder()
	b.AddNode(da.NewNode(20, 0, 0.00036, nil)).
		AddNode(da.NewNode(21, 0, 0.0010, nil)).
		AddNode(da.NewNode(22, 0.0005, 0.00036, nil))
	b.AddWay(da.NewWay(30, []osm.NodeID{21, 20}, da.Tags{"highway": "residential"})).
		AddWay(da.NewWay(31, []osm.NodeID{20, 22}, da.Tags{"highway": "residential"}))

	rt := NewRtree()
	rt.Build(b.Build(), isHighway, zap.NewNop())
	require.Equal(t, 1, rt.Len())

	tests := []struct {
		name     string
		lat, lon float64
	}{
		{name: "junction due east", lat: 0, lon: 0},
		{name: "junction due north", lat: -0.000405, lon: 0.00036},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jv, dist, found := rt.NearestJunction(tt.lat, tt.lon, 0.05)
			require.True(t, found)
			assert.Equal(t, osm.NodeID(20), jv.GetID())
			assert.Greater(t, dist, 0.05/math.Sqrt2)
			assert.LessOrEqual(t, dist, 0.05)
		})
	}
}

func TestRtreeBuildSkipsHighwayAreas(t *testing.T) {
	// road 40 touches the pedestrian square 41 at node 2, the square is not a segment so 2 is no junction
	b := da.NewGraphBuilder()
	b.AddNode(da.NewNode(1, -7.7700, 110.3700, nil)).
		AddNode(da.NewNode(2, -7.7700, 110.3710, nil)).
		AddNode(da.NewNode(3, -7.7690, 110.3710, nil)).
		AddNode(da.NewNode(4, -7.7690, 110.3720, nil))
	b.AddWay(da.NewWay(40, []osm.NodeID{1, 2}, da.Tags{"highway": "residential"})).
		AddWay(da.NewWay(41, []osm.NodeID{2, 3, 4, 2}, da.Tags{"highway": "pedestrian", "area": "yes"}))
	g := b.Build()

	c := classify.NewClassifier(classify.HasKey("highway"), classify.AreaKeys(nil))

	withAreas := NewRtree()
	withAreas.Build(g, c.IsHighway, zap.NewNop())
	assert.Equal(t, 1, withAreas.Len())

	traversable := NewRtree()
	traversable.Build(g, c.IsTraversable, zap.NewNop())
	assert.Equal(t, 0, traversable.Len())
}
