package intersection

import (
	"github.com/lintang-b-s/navigatorx-junction/pkg"
	da "github.com/lintang-b-s/navigatorx-junction/pkg/datastructure"
	"github.com/paulmach/osm"
)

type restriction struct {
	id   osm.RelationID
	from osm.WayID
	to   osm.WayID
	kind pkg.TurnRestriction
}

/*
restrictionsAt. restriction relations with a via node equal to vertex.
https://wiki.openstreetmap.org/wiki/Relation:restriction

relation tanpa from/via/to, via bukan node vertex, atau from/to bukan way di skip.
*/ // nolint: gofmt
func restrictionsAt(g *da.Graph, vertex osm.NodeID) ([]restriction, int) {
	var (
		rules   []restriction
		skipped int
	)

	for _, rel := range g.RelationsOfNode(vertex) {
		if !rel.IsRestriction() {
			continue
		}

		via, okVia := rel.MemberByRole("via")
		from, okFrom := rel.MemberByRole("from")
		to, okTo := rel.MemberByRole("to")
		if !okVia || !okFrom || !okTo {
			skipped++
			continue
		}
		if !via.IsNode() || via.NodeID() != vertex || !from.IsWay() || !to.IsWay() {
			skipped++
			continue
		}

		rules = append(rules, restriction{
			id:   rel.GetID(),
			from: from.WayID(),
			to:   to.WayID(),
			kind: pkg.ParseTurnRestriction(rel.GetTag("restriction")),
		})
	}
	return rules, skipped
}

// matchRestriction. first restriction whose from/to ways are the parent ways of the turn
func (in *Intersection) matchRestriction(from, to osm.WayID) (restriction, bool) {
	for _, r := range in.restrictions {
		if r.from == from && r.to == to {
			return r, true
		}
	}
	return restriction{}, false
}
