package intersection

import (
	"fmt"
	"strconv"
	"strings"

	da "github.com/lintang-b-s/navigatorx-junction/pkg/datastructure"
	"github.com/paulmach/osm"
)

// Half. which part of a way a segment covers
type Half uint8

const (
	WHOLE Half = iota
	HALF_A
	HALF_B
)

// SegmentID. parent way id + half. string form: w12 (whole way), w12.a, w12.b
type SegmentID struct {
	Way  osm.WayID
	Half Half
}

func NewSegmentID(way osm.WayID, half Half) SegmentID {
	return SegmentID{Way: way, Half: half}
}

func (id SegmentID) String() string {
	switch id.Half {
	case HALF_A:
		return fmt.Sprintf("w%d.a", id.Way)
	case HALF_B:
		return fmt.Sprintf("w%d.b", id.Way)
	default:
		return fmt.Sprintf("w%d", id.Way)
	}
}

func (id SegmentID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// ParseSegmentID. accepts "w12", "w12.a", "w12.b" and a bare way id "12"
func ParseSegmentID(s string) (SegmentID, error) {
	raw := strings.TrimPrefix(s, "w")
	half := WHOLE
	if wayPart, suffix, found := strings.Cut(raw, "."); found {
		switch suffix {
		case "a":
			half = HALF_A
		case "b":
			half = HALF_B
		default:
			return SegmentID{}, fmt.Errorf("invalid segment id %q: unknown half %q", s, suffix)
		}
		raw = wayPart
	}
	way, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return SegmentID{}, fmt.Errorf("invalid segment id %q: %w", s, err)
	}
	return NewSegmentID(osm.WayID(way), half), nil
}

// Segment. a highway way, or one half of a way split at the intersection vertex.
// the vertex is always the first or the last node of a segment.
type Segment struct {
	id    SegmentID
	nodes []osm.NodeID
	tags  da.Tags
}

func newSegment(id SegmentID, nodes []osm.NodeID, tags da.Tags) Segment {
	return Segment{
		id:    id,
		nodes: nodes,
		tags:  tags,
	}
}

func (s Segment) GetID() SegmentID {
	return s.id
}

func (s Segment) GetWayID() osm.WayID {
	return s.id.Way
}

// GetNodes. the returned slice must not be modified
func (s Segment) GetNodes() []osm.NodeID {
	return s.nodes
}

// GetTags. tags of the parent way
func (s Segment) GetTags() da.Tags {
	return s.tags
}

func (s Segment) First() osm.NodeID {
	return s.nodes[0]
}

func (s Segment) Last() osm.NodeID {
	return s.nodes[len(s.nodes)-1]
}
