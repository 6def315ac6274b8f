package datastructure

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// LocationID is the id of a location as it appears in the source data.
type LocationID int64

// Index is the dense position of a LocationID in the sorted universe.
type Index uint32

// SortedUnique sorts ids ascending and drops duplicates in place.
func SortedUnique[T constraints.Ordered](ids []T) []T {
	if len(ids) == 0 {
		return ids
	}
	sort.Slice(ids, func(i, j int) bool {
		return ids[i] < ids[j]
	})
	n := 1
	for i := 1; i < len(ids); i++ {
		if ids[i] != ids[n-1] {
			ids[n] = ids[i]
			n++
		}
	}
	return ids[:n]
}

// IDMap maps the sorted location universe to dense indices. built once, read-only afterwards.
type IDMap struct {
	ids   []LocationID
	index map[LocationID]Index
}

func NewIDMap(ids []LocationID) IDMap {
	sorted := SortedUnique(append([]LocationID(nil), ids...))
	index := make(map[LocationID]Index, len(sorted))
	for i, id := range sorted {
		index[id] = Index(i)
	}
	return IDMap{
		ids:   sorted,
		index: index,
	}
}

func (m IDMap) GetIndex(id LocationID) (Index, bool) {
	idx, ok := m.index[id]
	return idx, ok
}

func (m IDMap) GetID(idx Index) LocationID {
	return m.ids[idx]
}

func (m IDMap) Len() int {
	return len(m.ids)
}

func (m IDMap) GetIDs() []LocationID {
	return append([]LocationID(nil), m.ids...)
}
