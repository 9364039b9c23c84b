package intersection

import (
	da "github.com/lintang-b-s/navigatorx-junction/pkg/datastructure"
	"github.com/paulmach/osm"
)

// Intersection. the highway segments meeting at one vertex of a graph snapshot.
type Intersection struct {
	vertex   osm.NodeID
	segments []Segment
	graph    *da.Graph

	restrictions        []restriction
	skippedRestrictions int
}

type Builder struct {
	classifier WayClassifier
}

func NewBuilder(classifier WayClassifier) *Builder {
	return &Builder{classifier: classifier}
}

/*
Build. intersection at vertex:
ways referencing vertex -> drop non highway -> drop closed area -> drop degenerate -> split at vertex.

unknown vertex: empty intersection.
*/ // nolint: gofmt
func (b *Builder) Build(g *da.Graph, vertex osm.NodeID) *Intersection {
	in := &Intersection{
		vertex:   vertex,
		segments: make([]Segment, 0),
		graph:    g,
	}
	if !g.HasNode(vertex) {
		return in
	}

	seen := make(map[SegmentID]struct{})
	for _, way := range g.WaysOf(vertex) {
		if !b.classifier.IsHighway(way) || b.classifier.IsAreaNotLine(way) {
			continue
		}

		for _, seg := range splitWay(way, vertex) {
			if _, ok := seen[seg.id]; ok {
				continue
			}
			seen[seg.id] = struct{}{}
			in.segments = append(in.segments, seg)
		}
	}

	in.restrictions, in.skippedRestrictions = restrictionsAt(g, vertex)
	return in
}

func (in *Intersection) GetVertex() osm.NodeID {
	return in.vertex
}

func (in *Intersection) GetSegments() []Segment {
	return in.segments
}

func (in *Intersection) SegmentIDs() []SegmentID {
	ids := make([]SegmentID, len(in.segments))
	for i, seg := range in.segments {
		ids[i] = seg.id
	}
	return ids
}

func (in *Intersection) GetSegment(id SegmentID) (Segment, bool) {
	for _, seg := range in.segments {
		if seg.id == id {
			return seg, true
		}
	}
	return Segment{}, false
}

// SkippedRestrictions. number of restriction relations at the vertex that could not be matched (missing or wrong from/via/to)
func (in *Intersection) SkippedRestrictions() int {
	return in.skippedRestrictions
}

func (in *Intersection) IsEmpty() bool {
	return len(in.segments) == 0
}
