package datastructure

import "github.com/paulmach/osm"

// Tags. key -> value, keys unique
type Tags map[string]string

func NewTagsFromOSM(tags osm.Tags) Tags {
	t := make(Tags, len(tags))
	for _, tag := range tags {
		t[tag.Key] = tag.Value
	}
	return t
}

func (t Tags) Find(key string) string {
	return t[key]
}

func (t Tags) HasKey(key string) bool {
	_, ok := t[key]
	return ok
}

func (t Tags) clone() Tags {
	c := make(Tags, len(t))
	for k, v := range t {
		c[k] = v
	}
	return c
}
