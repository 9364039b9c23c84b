package intersection

import (
	da "github.com/lintang-b-s/navigatorx-junction/pkg/datastructure"
)

type WayClassifier interface {
	IsHighway(w *da.Way) bool
	IsAreaNotLine(w *da.Way) bool
}
