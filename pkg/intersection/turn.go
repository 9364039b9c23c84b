package intersection

import (
	"github.com/lintang-b-s/navigatorx-junction/pkg"
	"github.com/lintang-b-s/navigatorx-junction/pkg/guidance"
	"github.com/paulmach/osm"
)

type TurnEnd struct {
	Node    osm.NodeID
	Segment SegmentID
}

type TurnVia struct {
	Node osm.NodeID
}

// Turn. a maneuver from one segment, through the vertex, to another segment.
// Restricted turns are still reported, RestrictionKind is an annotation only.
type Turn struct {
	From TurnEnd
	Via  TurnVia
	To   TurnEnd

	Restriction     osm.RelationID
	Restricted      bool
	RestrictionKind pkg.TurnRestriction
	Direction       guidance.TurnDirection
}

func NewTurn(from, to TurnEnd, via osm.NodeID) Turn {
	return Turn{
		From:            from,
		Via:             TurnVia{Node: via},
		To:              to,
		RestrictionKind: pkg.INVALID_RESTRICTION,
		Direction:       guidance.UNKNOWN,
	}
}

/*
Turns. all turns leaving the vertex after arriving along from.

	u ==> * ---- w    from u, arrive legal: turn (u, *, w)
	u <== * ---- w    from u, arrive illegal: no turns

segments of the same parent way as from are never a to-segment (no u-turn).
order: to-segment order in the intersection, then from-node, then to-node
(a closed loop has two neighbours at the vertex).
*/ // nolint: gofmt
func (in *Intersection) Turns(from SegmentID) []Turn {
	turns := make([]Turn, 0)

	fromSeg, ok := in.GetSegment(from)
	if !ok {
		return turns
	}

	fromNodes := legalNeighbors(fromSeg, in.vertex, ARRIVE)
	for _, toSeg := range in.segments {
		if toSeg.id.Way == fromSeg.id.Way {
			continue
		}

		toNodes := legalNeighbors(toSeg, in.vertex, DEPART)
		for _, fromNode := range fromNodes {
			for _, toNode := range toNodes {
				turn := NewTurn(
					TurnEnd{Node: fromNode, Segment: fromSeg.id},
					TurnEnd{Node: toNode, Segment: toSeg.id},
					in.vertex,
				)

				if r, ok := in.matchRestriction(fromSeg.id.Way, toSeg.id.Way); ok {
					turn.Restriction = r.id
					turn.Restricted = true
					turn.RestrictionKind = r.kind
				}

				turn.Direction = in.turnDirection(fromNode, toNode)
				turns = append(turns, turn)
			}
		}
	}

	return turns
}

// TurnTable. turns for every segment of the intersection, keyed by from-segment
func (in *Intersection) TurnTable() map[SegmentID][]Turn {
	table := make(map[SegmentID][]Turn, len(in.segments))
	for _, seg := range in.segments {
		table[seg.id] = in.Turns(seg.id)
	}
	return table
}

func (in *Intersection) turnDirection(fromNode, toNode osm.NodeID) guidance.TurnDirection {
	from, okFrom := in.graph.GetNode(fromNode)
	via, okVia := in.graph.GetNode(in.vertex)
	to, okTo := in.graph.GetNode(toNode)
	if !okFrom || !okVia || !okTo {
		return guidance.UNKNOWN
	}
	return guidance.GetTurnDirection(from.GetCoordinate(), via.GetCoordinate(), to.GetCoordinate())
}
