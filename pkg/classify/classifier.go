package classify

import (
	da "github.com/lintang-b-s/navigatorx-junction/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-junction/pkg/util"
	"github.com/paulmach/osm"
	"github.com/spf13/viper"
)

type Classifier struct {
	isHighwayTag TagPredicate
	isAreaTag    TagPredicate
	isVertexTag  TagPredicate
	isPointTag   TagPredicate
}

// NewClassifier. vertex/point predicates default to Never, see WithNodePredicates
func NewClassifier(isHighwayTag, isAreaTag TagPredicate) *Classifier {
	return &Classifier{
		isHighwayTag: isHighwayTag,
		isAreaTag:    isAreaTag,
		isVertexTag:  Never,
		isPointTag:   Never,
	}
}

func (c *Classifier) WithNodePredicates(isVertexTag, isPointTag TagPredicate) *Classifier {
	return &Classifier{
		isHighwayTag: c.isHighwayTag,
		isAreaTag:    c.isAreaTag,
		isVertexTag:  isVertexTag,
		isPointTag:   isPointTag,
	}
}

// NewClassifierFromConfig. predicates from HIGHWAY_VALUES, AREA_KEYS, VERTEX_TAGS, POINT_TAGS.
// without HIGHWAY_VALUES every highway value of the routing enum is accepted (RoutableHighway)
func NewClassifierFromConfig() *Classifier {
	isHighwayTag := TagPredicate(RoutableHighway)
	if highwayValues := viper.GetStringSlice("HIGHWAY_VALUES"); len(highwayValues) > 0 {
		isHighwayTag = HighwayValues(highwayValues)
	}
	areaKeys := viper.GetStringSlice("AREA_KEYS")
	if len(areaKeys) == 0 {
		areaKeys = util.DefaultAreaKeys
	}
	return NewClassifier(isHighwayTag, AreaKeys(areaKeys)).
		WithNodePredicates(TagList(viper.GetStringSlice("VERTEX_TAGS")), TagList(viper.GetStringSlice("POINT_TAGS")))
}

func (c *Classifier) IsHighway(w *da.Way) bool {
	return c.isHighwayTag(w.GetTags())
}

// IsAreaNotLine. closed and tagged as an area, e.g. a pedestrian square, not a loop road
func (c *Classifier) IsAreaNotLine(w *da.Way) bool {
	return w.IsClosed() && c.isAreaTag(w.GetTags())
}

// IsTraversable. ways that form intersection segments: highway, not an area, not degenerate
func (c *Classifier) IsTraversable(w *da.Way) bool {
	return c.IsHighway(w) && !c.IsAreaNotLine(w) && !w.IsDegenerate()
}

func (c *Classifier) IsHighwayTag(tags da.Tags) bool {
	return c.isHighwayTag(tags)
}

func (c *Classifier) IsAreaTag(tags da.Tags) bool {
	return c.isAreaTag(tags)
}

func (c *Classifier) IsVertexTag(tags da.Tags) bool {
	return c.isVertexTag(tags)
}

func (c *Classifier) IsPointTag(tags da.Tags) bool {
	return c.isPointTag(tags)
}

type Geometry uint8

const (
	POINT Geometry = iota
	VERTEX
	LINE
	AREA
)

func (g Geometry) String() string {
	return [...]string{"point", "vertex", "line", "area"}[g]
}

// NodeGeometry. a node referenced by any way is a vertex, otherwise a point
func (c *Classifier) NodeGeometry(g *da.Graph, node osm.NodeID) Geometry {
	if len(g.WaysOf(node)) > 0 {
		return VERTEX
	}
	return POINT
}

func (c *Classifier) WayGeometry(w *da.Way) Geometry {
	if c.IsAreaNotLine(w) {
		return AREA
	}
	return LINE
}
