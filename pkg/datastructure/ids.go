package datastructure

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// appendUnique. ids per key are few, a linear scan is enough
func appendUnique[T comparable](ids []T, id T) []T {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}

func SortedKeys[K constraints.Integer, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}
