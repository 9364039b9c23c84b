package validation

import (
	"testing"

	"github.com/lintang-b-s/navigatorx-junction/pkg/classify"
	da "github.com/lintang-b-s/navigatorx-junction/pkg/datastructure"
	"github.com/paulmach/osm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
	2 ------- 3
	|         |
	|         |
	1 ------- 4
	5 (~0.1 m from 1)
*/ // nolint: gofmt
func newTestGraph(ways ...*da.Way) *da.Graph {
	b := da.NewGraphBuilder()
	b.AddNode(da.NewNode(1, 0, 0, nil)).
		AddNode(da.NewNode(2, 0.001, 0, da.Tags{"amenity": "bench"})).
		AddNode(da.NewNode(3, 0.001, 0.001, nil)).
		AddNode(da.NewNode(4, 0, 0.001, nil)).
		AddNode(da.NewNode(5, 0, 0.000001, nil)).
		AddNode(da.NewNode(6, 0.002, 0.002, da.Tags{"highway": "crossing"}))
	for _, w := range ways {
		b.AddWay(w)
	}
	return b.Build()
}

func newTestValidator() *Validator {
	c := classify.NewClassifier(classify.HasKey("highway"), classify.AreaKeys([]string{"building"})).
		WithNodePredicates(classify.TagList([]string{"highway=crossing"}), classify.TagList([]string{"amenity=*"}))
	return NewValidator(c, 0.75)
}

func fixTypes(issue Issue) []FixType {
	types := make([]FixType, 0, len(issue.Fixes))
	for _, f := range issue.Fixes {
		types = append(types, f.Type)
	}
	return types
}

func TestValidateWay(t *testing.T) {
	tests := []struct {
		name     string
		way      *da.Way
		issue    bool
		fixes    []FixType
		fixNodes [][]osm.NodeID
	}{
		{
			name:     "open area, endpoints far apart",
			way:      da.NewWay(10, []osm.NodeID{1, 2, 3, 4}, da.Tags{"building": "yes"}),
			issue:    true,
			fixes:    []FixType{CLOSE_WAY},
			fixNodes: [][]osm.NodeID{{1, 2, 3, 4, 1}},
		},
		{
			name:     "open area, endpoints close together",
			way:      da.NewWay(10, []osm.NodeID{1, 2, 3, 4, 5}, da.Tags{"building": "yes"}),
			issue:    true,
			fixes:    []FixType{MERGE_ENDPOINTS, CLOSE_WAY},
			fixNodes: [][]osm.NodeID{{1, 2, 3, 4, 1}, {1, 2, 3, 4, 5, 1}},
		},
		{
			name:     "closing would self intersect",
			way:      da.NewWay(10, []osm.NodeID{1, 3, 2, 4}, da.Tags{"building": "yes"}),
			issue:    true,
			fixes:    []FixType{},
			fixNodes: [][]osm.NodeID{},
		},
		{
			name:  "two node area cannot be closed",
			way:   da.NewWay(10, []osm.NodeID{1, 2}, da.Tags{"area": "yes", "highway": "pedestrian"}),
			issue: true,
			fixes: []FixType{},
		},
		{
			name: "closed area",
			way:  da.NewWay(10, []osm.NodeID{1, 2, 3, 4, 1}, da.Tags{"building": "yes"}),
		},
		{
			name: "open line",
			way:  da.NewWay(10, []osm.NodeID{1, 2, 3, 4}, da.Tags{"highway": "residential"}),
		},
		{
			name: "area=no",
			way:  da.NewWay(10, []osm.NodeID{1, 2, 3, 4}, da.Tags{"building": "yes", "area": "no"}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGraph(tt.way)
			issues := newTestValidator().ValidateWay(g, tt.way)
			if !tt.issue {
				assert.Empty(t, issues)
				return
			}

			require.Len(t, issues, 1)
			assert.Equal(t, UNCLOSED_AREA, issues[0].Type)
			assert.Equal(t, osm.WayID(10), issues[0].Way)
			assert.Equal(t, tt.fixes, fixTypes(issues[0]))
			for i, nodes := range tt.fixNodes {
				assert.Equal(t, nodes, issues[0].Fixes[i].Way.GetNodes())
				assert.Equal(t, tt.way.GetTags(), issues[0].Fixes[i].Way.GetTags())
			}
		})
	}
}

func TestFixApply(t *testing.T) {
	way := da.NewWay(10, []osm.NodeID{1, 2, 3, 4}, da.Tags{"building": "yes"})
	g := newTestGraph(way)

	issues := newTestValidator().ValidateWay(g, way)
	require.Len(t, issues, 1)
	require.Len(t, issues[0].Fixes, 1)

	fixed := issues[0].Fixes[0].Apply(g)
	fixedWay, ok := fixed.GetWay(10)
	require.True(t, ok)
	assert.True(t, fixedWay.IsClosed())
	assert.Empty(t, newTestValidator().ValidateWay(fixed, fixedWay))

	original, _ := g.GetWay(10)
	assert.False(t, original.IsClosed())
}

func TestValidateNode(t *testing.T) {
	way := da.NewWay(10, []osm.NodeID{1, 2, 3}, da.Tags{"highway": "footway"})
	g := newTestGraph(way)
	v := newTestValidator()

	tests := []struct {
		name     string
		node     osm.NodeID
		expected []IssueType
	}{
		{name: "crossing not on a way", node: 6, expected: []IssueType{VERTEX_AS_POINT}},
		{name: "bench on a way", node: 2, expected: []IssueType{POINT_AS_VERTEX}},
		{name: "untagged vertex", node: 1, expected: []IssueType{}},
		{name: "untagged point", node: 5, expected: []IssueType{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := g.GetNode(tt.node)
			require.True(t, ok)
			got := make([]IssueType, 0)
			for _, issue := range v.ValidateNode(g, n) {
				assert.Equal(t, tt.node, issue.Node)
				got = append(got, issue.Type)
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestValidateGraph(t *testing.T) {
	g := newTestGraph(
		da.NewWay(10, []osm.NodeID{1, 2, 3, 4}, da.Tags{"building": "yes"}),
		da.NewWay(11, []osm.NodeID{3, 4}, da.Tags{"highway": "service"}),
	)

	issues := newTestValidator().ValidateGraph(g)
	require.Len(t, issues, 3)
	assert.Equal(t, UNCLOSED_AREA, issues[0].Type)
	assert.Equal(t, POINT_AS_VERTEX, issues[1].Type)
	assert.Equal(t, VERTEX_AS_POINT, issues[2].Type)
}
