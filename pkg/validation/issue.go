package validation

import (
	da "github.com/lintang-b-s/navigatorx-junction/pkg/datastructure"
	"github.com/paulmach/osm"
)

type IssueType string

const (
	UNCLOSED_AREA   IssueType = "unclosed_area"
	VERTEX_AS_POINT IssueType = "vertex_as_point"
	POINT_AS_VERTEX IssueType = "point_as_vertex"
)

type FixType string

const (
	MERGE_ENDPOINTS FixType = "merge_endpoints"
	CLOSE_WAY       FixType = "close_way"
)

// Fix. the proposed way replacing the way with the same id
type Fix struct {
	Type FixType
	Way  *da.Way
}

// Apply. copy-on-write, g itself is not modified
func (f Fix) Apply(g *da.Graph) *da.Graph {
	return g.WithWay(f.Way)
}

type Issue struct {
	Type  IssueType
	Way   osm.WayID
	Node  osm.NodeID
	Fixes []Fix
}
