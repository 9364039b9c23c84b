package intersection

import (
	"testing"

	"github.com/lintang-b-s/navigatorx-junction/pkg"
	da "github.com/lintang-b-s/navigatorx-junction/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-junction/pkg/guidance"
	"github.com/paulmach/osm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type turnKey struct {
	from osm.NodeID
	to   osm.NodeID
	seg  string
}

func turnKeys(turns []Turn) []turnKey {
	keys := make([]turnKey, 0, len(turns))
	for _, t := range turns {
		keys = append(keys, turnKey{from: t.From.Node, to: t.To.Node, seg: t.To.Segment.String()})
	}
	return keys
}

func TestTurnsBetweenTwoWays(t *testing.T) {
	// u ---- * ---- w
	g := newTestGraph([]*da.Way{
		da.NewWay(10, []osm.NodeID{nodeU, nodeStar}, highway()),
		da.NewWay(11, []osm.NodeID{nodeStar, nodeW}, highway()),
	})
	in := newTestBuilder().Build(g, nodeStar)

	fromU := in.Turns(whole(10))
	require.Len(t, fromU, 1)
	assert.Equal(t, TurnEnd{Node: nodeU, Segment: whole(10)}, fromU[0].From)
	assert.Equal(t, TurnVia{Node: nodeStar}, fromU[0].Via)
	assert.Equal(t, TurnEnd{Node: nodeW, Segment: whole(11)}, fromU[0].To)
	assert.False(t, fromU[0].Restricted)
	assert.Equal(t, guidance.CONTINUE_ON_STREET, fromU[0].Direction)

	fromW := in.Turns(whole(11))
	require.Len(t, fromW, 1)
	assert.Equal(t, TurnEnd{Node: nodeW, Segment: whole(11)}, fromW[0].From)
	assert.Equal(t, TurnEnd{Node: nodeU, Segment: whole(10)}, fromW[0].To)
}

func TestTurnsFromOneWay(t *testing.T) {
	tests := []struct {
		name     string
		nodes    []osm.NodeID
		oneway   string
		expected int
	}{
		{name: "forward oneway toward vertex", nodes: []osm.NodeID{nodeU, nodeStar}, oneway: "yes", expected: 1},
		{name: "forward oneway away from vertex", nodes: []osm.NodeID{nodeStar, nodeU}, oneway: "yes", expected: 0},
		{name: "reverse oneway away from vertex", nodes: []osm.NodeID{nodeStar, nodeU}, oneway: "-1", expected: 1},
		{name: "reverse oneway toward vertex", nodes: []osm.NodeID{nodeU, nodeStar}, oneway: "-1", expected: 0},
		{name: "oneway=true", nodes: []osm.NodeID{nodeU, nodeStar}, oneway: "true", expected: 1},
		{name: "oneway=1 away from vertex", nodes: []osm.NodeID{nodeStar, nodeU}, oneway: "1", expected: 0},
		{name: "oneway=no", nodes: []osm.NodeID{nodeStar, nodeU}, oneway: "no", expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGraph([]*da.Way{
				da.NewWay(10, tt.nodes, highway("oneway", tt.oneway)),
				da.NewWay(11, []osm.NodeID{nodeStar, nodeW}, highway()),
			})
			in := newTestBuilder().Build(g, nodeStar)
			turns := in.Turns(whole(10))
			assert.Len(t, turns, tt.expected)
			for _, turn := range turns {
				assert.Equal(t, nodeU, turn.From.Node)
				assert.Equal(t, nodeW, turn.To.Node)
			}
		})
	}
}

func TestTurnsToOneWay(t *testing.T) {
	tests := []struct {
		name     string
		nodes    []osm.NodeID
		oneway   string
		expected int
	}{
		{name: "forward oneway away from vertex", nodes: []osm.NodeID{nodeStar, nodeW}, oneway: "yes", expected: 1},
		{name: "forward oneway toward vertex", nodes: []osm.NodeID{nodeW, nodeStar}, oneway: "yes", expected: 0},
		{name: "reverse oneway toward vertex", nodes: []osm.NodeID{nodeW, nodeStar}, oneway: "-1", expected: 1},
		{name: "reverse oneway away from vertex", nodes: []osm.NodeID{nodeStar, nodeW}, oneway: "-1", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGraph([]*da.Way{
				da.NewWay(10, []osm.NodeID{nodeU, nodeStar}, highway()),
				da.NewWay(11, tt.nodes, highway("oneway", tt.oneway)),
			})
			in := newTestBuilder().Build(g, nodeStar)
			assert.Len(t, in.Turns(whole(10)), tt.expected)
		})
	}
}

func TestTurnsOneWaySplitWay(t *testing.T) {
	// u ==> * ==> w  split into w10.a, w10.b, plus x ---- *
	g := newTestGraph([]*da.Way{
		da.NewWay(10, []osm.NodeID{nodeU, nodeStar, nodeW}, highway("oneway", "yes")),
		da.NewWay(11, []osm.NodeID{nodeX, nodeStar}, highway()),
	})
	in := newTestBuilder().Build(g, nodeStar)

	assert.Equal(t, []turnKey{{from: nodeU, to: nodeX, seg: "w11"}}, turnKeys(in.Turns(NewSegmentID(10, HALF_A))))
	assert.Empty(t, in.Turns(NewSegmentID(10, HALF_B)))
	assert.Equal(t, []turnKey{{from: nodeX, to: nodeW, seg: "w10.b"}}, turnKeys(in.Turns(whole(11))))
}

func TestTurnsNeverToSameWay(t *testing.T) {
	// u ---- * ---- w, a single way
	g := newTestGraph([]*da.Way{
		da.NewWay(10, []osm.NodeID{nodeU, nodeStar, nodeW}, highway()),
	})
	in := newTestBuilder().Build(g, nodeStar)

	assert.Empty(t, in.Turns(NewSegmentID(10, HALF_A)))
	assert.Empty(t, in.Turns(NewSegmentID(10, HALF_B)))
}

func TestTurnsThroughWayYieldsBothHalves(t *testing.T) {
	//         x
	//         |
	// u ----- *
	//         |
	//         y
	g := newTestGraph([]*da.Way{
		da.NewWay(10, []osm.NodeID{nodeU, nodeStar}, highway()),
		da.NewWay(11, []osm.NodeID{nodeX, nodeStar, nodeY}, highway()),
	}, restrictionRelation(20, "no_left_turn", 10, nodeStar, 11))
	in := newTestBuilder().Build(g, nodeStar)

	turns := in.Turns(whole(10))
	require.Len(t, turns, 2)
	assert.Equal(t, []turnKey{
		{from: nodeU, to: nodeX, seg: "w11.a"},
		{from: nodeU, to: nodeY, seg: "w11.b"},
	}, turnKeys(turns))

	for _, turn := range turns {
		assert.Equal(t, osm.WayID(11), turn.To.Segment.Way)
		assert.True(t, turn.Restricted)
		assert.Equal(t, osm.RelationID(20), turn.Restriction)
		assert.Equal(t, pkg.NO_LEFT_TURN, turn.RestrictionKind)
	}
	assert.Equal(t, guidance.TURN_LEFT, turns[0].Direction)
	assert.Equal(t, guidance.TURN_RIGHT, turns[1].Direction)
}

func TestTurnsRestrictionAnnotation(t *testing.T) {
	ways := []*da.Way{
		da.NewWay(10, []osm.NodeID{nodeU, nodeStar}, highway()),
		da.NewWay(11, []osm.NodeID{nodeStar, nodeW}, highway()),
		da.NewWay(12, []osm.NodeID{nodeStar, nodeX}, highway()),
	}

	t.Run("matching restriction annotates only its turn", func(t *testing.T) {
		g := newTestGraph(ways, restrictionRelation(20, "only_straight_on", 10, nodeStar, 11))
		in := newTestBuilder().Build(g, nodeStar)

		turns := in.Turns(whole(10))
		require.Len(t, turns, 2)
		assert.Equal(t, whole(11), turns[0].To.Segment)
		assert.True(t, turns[0].Restricted)
		assert.Equal(t, osm.RelationID(20), turns[0].Restriction)
		assert.Equal(t, pkg.ONLY_STRAIGHT_ON, turns[0].RestrictionKind)
		assert.True(t, turns[0].RestrictionKind.IsMandatory())

		assert.Equal(t, whole(12), turns[1].To.Segment)
		assert.False(t, turns[1].Restricted)
		assert.Equal(t, pkg.INVALID_RESTRICTION, turns[1].RestrictionKind)

		for _, turn := range in.Turns(whole(11)) {
			assert.False(t, turn.Restricted)
		}
		assert.Zero(t, in.SkippedRestrictions())
	})

	t.Run("unknown subtype still annotates", func(t *testing.T) {
		g := newTestGraph(ways, restrictionRelation(20, "no_parking_here", 10, nodeStar, 12))
		in := newTestBuilder().Build(g, nodeStar)

		turns := in.Turns(whole(10))
		require.Len(t, turns, 2)
		assert.True(t, turns[1].Restricted)
		assert.Equal(t, pkg.INVALID_RESTRICTION, turns[1].RestrictionKind)
	})

	t.Run("malformed restrictions skipped", func(t *testing.T) {
		missingTo := da.NewRelation(21, da.Tags{"type": "restriction", "restriction": "no_left_turn"}, []da.Member{
			{Ref: 10, Type: osm.TypeWay, Role: "from"},
			{Ref: int64(nodeStar), Type: osm.TypeNode, Role: "via"},
		})
		viaWay := da.NewRelation(22, da.Tags{"type": "restriction", "restriction": "no_left_turn"}, []da.Member{
			{Ref: 10, Type: osm.TypeWay, Role: "from"},
			{Ref: 11, Type: osm.TypeWay, Role: "via"},
			{Ref: int64(nodeStar), Type: osm.TypeNode, Role: "location_hint"},
			{Ref: 12, Type: osm.TypeWay, Role: "to"},
		})
		notRestriction := da.NewRelation(23, da.Tags{"type": "route"}, []da.Member{
			{Ref: int64(nodeStar), Type: osm.TypeNode, Role: "stop"},
		})

		g := newTestGraph(ways, missingTo, viaWay, notRestriction)
		in := newTestBuilder().Build(g, nodeStar)

		for _, turn := range in.Turns(whole(10)) {
			assert.False(t, turn.Restricted)
		}
		assert.Equal(t, 2, in.SkippedRestrictions())
	})
}

func TestTurnsClosedLoop(t *testing.T) {
	// u ---- * plus a loop * -> w -> x -> *
	g := newTestGraph([]*da.Way{
		da.NewWay(10, []osm.NodeID{nodeU, nodeStar}, highway()),
		da.NewWay(11, []osm.NodeID{nodeStar, nodeW, nodeX, nodeStar}, highway()),
	})
	in := newTestBuilder().Build(g, nodeStar)

	assert.Equal(t, []turnKey{
		{from: nodeU, to: nodeW, seg: "w11"},
		{from: nodeU, to: nodeX, seg: "w11"},
	}, turnKeys(in.Turns(whole(10))))

	assert.Equal(t, []turnKey{
		{from: nodeW, to: nodeU, seg: "w10"},
		{from: nodeX, to: nodeU, seg: "w10"},
	}, turnKeys(in.Turns(whole(11))))
}

func TestTurnsClosedLoopOrderedByToSegment(t *testing.T) {
	// loop * -> x -> y -> * arrives from x and from y, two plain ways leave *
	g := newTestGraph([]*da.Way{
		da.NewWay(10, []osm.NodeID{nodeU, nodeStar}, highway()),
		da.NewWay(11, []osm.NodeID{nodeStar, nodeX, nodeY, nodeStar}, highway()),
		da.NewWay(12, []osm.NodeID{nodeStar, nodeW}, highway()),
	})
	in := newTestBuilder().Build(g, nodeStar)

	assert.Equal(t, []turnKey{
		{from: nodeX, to: nodeU, seg: "w10"},
		{from: nodeY, to: nodeU, seg: "w10"},
		{from: nodeX, to: nodeW, seg: "w12"},
		{from: nodeY, to: nodeW, seg: "w12"},
	}, turnKeys(in.Turns(whole(11))))
}

func TestTurnsOneWayClosedLoop(t *testing.T) {
	g := newTestGraph([]*da.Way{
		da.NewWay(10, []osm.NodeID{nodeU, nodeStar}, highway()),
		da.NewWay(11, []osm.NodeID{nodeStar, nodeW, nodeX, nodeStar}, highway("oneway", "yes", "junction", "roundabout")),
	})
	in := newTestBuilder().Build(g, nodeStar)

	assert.Equal(t, []turnKey{{from: nodeU, to: nodeW, seg: "w11"}}, turnKeys(in.Turns(whole(10))))
	assert.Equal(t, []turnKey{{from: nodeX, to: nodeU, seg: "w10"}}, turnKeys(in.Turns(whole(11))))
}

func TestTurnsUnknownFromSegment(t *testing.T) {
	g := newTestGraph([]*da.Way{
		da.NewWay(10, []osm.NodeID{nodeU, nodeStar}, highway()),
		da.NewWay(11, []osm.NodeID{nodeStar, nodeW}, highway()),
	})
	in := newTestBuilder().Build(g, nodeStar)

	assert.Empty(t, in.Turns(whole(99)))
	assert.Empty(t, in.Turns(NewSegmentID(10, HALF_A)))
}

func TestTurnTable(t *testing.T) {
	g := newTestGraph([]*da.Way{
		da.NewWay(10, []osm.NodeID{nodeU, nodeStar}, highway()),
		da.NewWay(11, []osm.NodeID{nodeStar, nodeW}, highway("oneway", "yes")),
		da.NewWay(12, []osm.NodeID{nodeY, nodeStar, nodeX}, highway()),
	})
	in := newTestBuilder().Build(g, nodeStar)

	table := in.TurnTable()
	require.Len(t, table, 4)
	assert.Len(t, table[whole(10)], 3)
	assert.Empty(t, table[whole(11)])
	assert.Len(t, table[NewSegmentID(12, HALF_A)], 2)
	assert.Len(t, table[NewSegmentID(12, HALF_B)], 2)
}

func TestApproachAllows(t *testing.T) {
	tests := []struct {
		name   string
		nodes  []osm.NodeID
		oneWay OneWay
		arrive bool
		depart bool
	}{
		{name: "bidirectional", nodes: []osm.NodeID{nodeU, nodeStar}, oneWay: BIDIRECTIONAL, arrive: true, depart: true},
		{name: "forward, vertex last", nodes: []osm.NodeID{nodeU, nodeStar}, oneWay: FORWARD, arrive: true, depart: false},
		{name: "forward, vertex first", nodes: []osm.NodeID{nodeStar, nodeU}, oneWay: FORWARD, arrive: false, depart: true},
		{name: "reverse, vertex last", nodes: []osm.NodeID{nodeU, nodeStar}, oneWay: REVERSE, arrive: false, depart: true},
		{name: "reverse, vertex first", nodes: []osm.NodeID{nodeStar, nodeU}, oneWay: REVERSE, arrive: true, depart: false},
		{name: "forward loop", nodes: []osm.NodeID{nodeStar, nodeU, nodeW, nodeStar}, oneWay: FORWARD, arrive: true, depart: true},
		{name: "repeated vertex ref", nodes: []osm.NodeID{nodeU, nodeStar, nodeStar}, oneWay: FORWARD, arrive: true, depart: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seg := newSegment(whole(10), tt.nodes, da.Tags{})
			arrive, depart := false, false
			for _, a := range approaches(seg.nodes, nodeStar) {
				arrive = arrive || a.allows(tt.oneWay, ARRIVE)
				depart = depart || a.allows(tt.oneWay, DEPART)
			}
			assert.Equal(t, tt.arrive, arrive)
			assert.Equal(t, tt.depart, depart)
		})
	}
}

func TestGetOneWay(t *testing.T) {
	assert.Equal(t, FORWARD, GetOneWay(da.Tags{"oneway": "yes"}))
	assert.Equal(t, FORWARD, GetOneWay(da.Tags{"oneway": "true"}))
	assert.Equal(t, FORWARD, GetOneWay(da.Tags{"oneway": "1"}))
	assert.Equal(t, REVERSE, GetOneWay(da.Tags{"oneway": "-1"}))
	assert.Equal(t, BIDIRECTIONAL, GetOneWay(da.Tags{"oneway": "no"}))
	assert.Equal(t, BIDIRECTIONAL, GetOneWay(da.Tags{"oneway": "reversible"}))
	assert.Equal(t, BIDIRECTIONAL, GetOneWay(da.Tags{}))
}
