package pkg

// enum of turn restriction subtypes.
// https://wiki.openstreetmap.org/wiki/Relation:restriction
// the intersection engine only carries these as an annotation, it never drops a turn because of them.
type TurnRestriction uint8

const (
	NO_LEFT_TURN TurnRestriction = iota
	NO_RIGHT_TURN
	NO_STRAIGHT_ON
	NO_U_TURN
	NO_ENTRY
	NO_EXIT
	ONLY_LEFT_TURN
	ONLY_RIGHT_TURN
	ONLY_STRAIGHT_ON
	ONLY_U_TURN
	INVALID_RESTRICTION
)

var turnRestrictionNames = [...]string{
	"no_left_turn",
	"no_right_turn",
	"no_straight_on",
	"no_u_turn",
	"no_entry",
	"no_exit",
	"only_left_turn",
	"only_right_turn",
	"only_straight_on",
	"only_u_turn",
	"",
}

func (t TurnRestriction) String() string {
	if int(t) >= len(turnRestrictionNames) {
		return ""
	}
	return turnRestrictionNames[t]
}

// IsMandatory. only_* restrictions
func (t TurnRestriction) IsMandatory() bool {
	return t >= ONLY_LEFT_TURN && t <= ONLY_U_TURN
}

func ParseTurnRestriction(value string) TurnRestriction {
	for i, name := range turnRestrictionNames[:INVALID_RESTRICTION] {
		if name == value {
			return TurnRestriction(i)
		}
	}
	return INVALID_RESTRICTION
}

// position of a node inside the ways that reference it
type NodeType uint8

const (
	END_NODE NodeType = iota
	BETWEEN_NODE
	JUNCTION_NODE
)

const (
	DEFAULT_MERGE_DISTANCE_METERS = 0.75
	DEFAULT_SEARCH_RADIUS_KM      = 0.05
	DEFAULT_WS_MAX_WORKERS        = 64
)

type OsmHighwayType uint8

// enum buat osm highway buat routing: https://wiki.openstreetmap.org/wiki/OSM_tags_for_routing/Telenav
const (
	MOTORWAY       OsmHighwayType = 0
	TRUNK          OsmHighwayType = 1
	PRIMARY        OsmHighwayType = 2
	SECONDARY      OsmHighwayType = 3
	TERTIARY       OsmHighwayType = 4
	RESIDENTIAL    OsmHighwayType = 5
	SERVICE        OsmHighwayType = 6
	UNCLASSIFIED   OsmHighwayType = 7
	MOTORWAY_LINK  OsmHighwayType = 8
	TRUNK_LINK     OsmHighwayType = 9
	PRIMARY_LINK   OsmHighwayType = 10
	SECONDARY_LINK OsmHighwayType = 11
	TERTIARY_LINK  OsmHighwayType = 12
	LIVING_STREET  OsmHighwayType = 13
	ROAD           OsmHighwayType = 14
	TRACK          OsmHighwayType = 15
	MOTORROAD      OsmHighwayType = 16
	UNKNOWN        OsmHighwayType = 17
)

func GetHighwayType(roadType string) OsmHighwayType {
	switch roadType {
	case "motorway":
		return MOTORWAY
	case "trunk":
		return TRUNK
	case "primary":
		return PRIMARY
	case "secondary":
		return SECONDARY
	case "tertiary":
		return TERTIARY
	case "unclassified":
		return UNCLASSIFIED
	case "residential":
		return RESIDENTIAL
	case "service":
		return SERVICE
	case "motorway_link":
		return MOTORWAY_LINK
	case "trunk_link":
		return TRUNK_LINK
	case "primary_link":
		return PRIMARY_LINK
	case "secondary_link":
		return SECONDARY_LINK
	case "tertiary_link":
		return TERTIARY_LINK
	case "living_street":
		return LIVING_STREET
	case "road":
		return ROAD
	case "track":
		return TRACK
	case "motorroad":
		return MOTORROAD
	default:
		return UNKNOWN
	}
}
