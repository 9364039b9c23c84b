package classify

import (
	"strings"

	"github.com/lintang-b-s/navigatorx-junction/pkg"
	da "github.com/lintang-b-s/navigatorx-junction/pkg/datastructure"
)

// TagPredicate. tag-schema knowledge lives in these functions, never in the intersection engine.
type TagPredicate func(tags da.Tags) bool

// HasKey. true for any value of key except "no"
func HasKey(key string) TagPredicate {
	return func(tags da.Tags) bool {
		v, ok := tags[key]
		return ok && v != "no"
	}
}

// HighwayValues. highway=<one of values>
func HighwayValues(values []string) TagPredicate {
	accepted := make(map[string]struct{}, len(values))
	for _, v := range values {
		accepted[v] = struct{}{}
	}
	return func(tags da.Tags) bool {
		_, ok := accepted[tags.Find("highway")]
		return ok
	}
}

// RoutableHighway. highway value known to the routing highway enum, or a junction way without highway tag
func RoutableHighway(tags da.Tags) bool {
	highway := tags.Find("highway")
	if highway != "" {
		return pkg.GetHighwayType(highway) != pkg.UNKNOWN
	}
	return tags.Find("junction") != ""
}

/*
AreaKeys. area semantics:

	area=yes          -> area
	area=no           -> not an area
	<key in keys>=*   -> area, unless the value is "no"
*/ // nolint: gofmt
func AreaKeys(keys []string) TagPredicate {
	return func(tags da.Tags) bool {
		switch tags.Find("area") {
		case "yes":
			return true
		case "no":
			return false
		}
		for _, key := range keys {
			if v, ok := tags[key]; ok && v != "no" {
				return true
			}
		}
		return false
	}
}

// TagList. matches "key=value" or "key=*" entries
func TagList(entries []string) TagPredicate {
	type kv struct{ key, value string }
	pairs := make([]kv, 0, len(entries))
	for _, e := range entries {
		key, value, found := strings.Cut(e, "=")
		if !found {
			value = "*"
		}
		pairs = append(pairs, kv{key, value})
	}
	return func(tags da.Tags) bool {
		for _, p := range pairs {
			v, ok := tags[p.key]
			if ok && (p.value == "*" || p.value == v) {
				return true
			}
		}
		return false
	}
}

func Never(da.Tags) bool {
	return false
}
