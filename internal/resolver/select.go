package resolver

import (
	"sort"

	"github.com/spherical-ai/spherical/libs/mat-configurator/internal/storage"
)

// Select picks one record from a non-empty match set. Records are ranked by
// the position of their material spelling in materials, then of their border
// spelling in borders, then by most recent update, then by lowest ID. The
// remaining records are returned in rank order.
func Select(records []storage.Record, materials, borders []string) (storage.Record, []storage.Record) {
	ranked := make([]storage.Record, len(records))
	copy(ranked, records)

	materialRank := rankOf(materials)
	borderRank := rankOf(borders)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if ma, mb := materialRank(a.MaterialColor), materialRank(b.MaterialColor); ma != mb {
			return ma < mb
		}
		if ba, bb := borderRank(a.BorderColor), borderRank(b.BorderColor); ba != bb {
			return ba < bb
		}
		if !a.UpdatedAt.Equal(b.UpdatedAt) {
			return a.UpdatedAt.After(b.UpdatedAt)
		}
		return a.ID.String() < b.ID.String()
	})

	return ranked[0], ranked[1:]
}

// rankOf returns a function giving the index of a token in list, or len(list)
// for tokens not in it.
func rankOf(list []string) func(string) int {
	idx := make(map[string]int, len(list))
	for i, s := range list {
		if _, ok := idx[s]; !ok {
			idx[s] = i
		}
	}
	return func(s string) int {
		if i, ok := idx[s]; ok {
			return i
		}
		return len(list)
	}
}
