package datastructure

import "github.com/paulmach/osm"

type Member struct {
	Ref  int64
	Type osm.Type
	Role string
}

func NewMembersFromOSM(members osm.Members) []Member {
	ms := make([]Member, len(members))
	for i, m := range members {
		ms[i] = Member{Ref: m.Ref, Type: m.Type, Role: m.Role}
	}
	return ms
}

func (m Member) IsNode() bool {
	return m.Type == osm.TypeNode
}

func (m Member) IsWay() bool {
	return m.Type == osm.TypeWay
}

func (m Member) NodeID() osm.NodeID {
	return osm.NodeID(m.Ref)
}

func (m Member) WayID() osm.WayID {
	return osm.WayID(m.Ref)
}

type Relation struct {
	id      osm.RelationID
	tags    Tags
	members []Member
}

func NewRelation(id osm.RelationID, tags Tags, members []Member) *Relation {
	membersCopy := make([]Member, len(members))
	copy(membersCopy, members)
	return &Relation{
		id:      id,
		tags:    tags.clone(),
		members: membersCopy,
	}
}

func (r *Relation) GetID() osm.RelationID {
	return r.id
}

func (r *Relation) GetTags() Tags {
	return r.tags
}

func (r *Relation) GetTag(key string) string {
	return r.tags[key]
}

// GetMembers. the returned slice must not be modified
func (r *Relation) GetMembers() []Member {
	return r.members
}

// MemberByRole. first member with the given role
func (r *Relation) MemberByRole(role string) (Member, bool) {
	for _, m := range r.members {
		if m.Role == role {
			return m, true
		}
	}
	return Member{}, false
}

// https://wiki.openstreetmap.org/wiki/Relation:restriction
func (r *Relation) IsRestriction() bool {
	return r.tags["type"] == "restriction"
}
