package engine

import (
	"sort"

	"github.com/svalverde/dupscan/internal/entities"
)

// KeepStrategy selects which file of a duplicate group ends up at index
// 0, the "keeper".
type KeepStrategy int

const (
	// KeepFirst leaves discovery order untouched; the first file found
	// is the keeper.
	KeepFirst KeepStrategy = iota
	KeepShortestPath
	KeepLongestPath
	KeepOldest
	KeepNewest
)

// SortGroups orders the files of each group so that the file at index 0
// is the one to keep under the given strategy. Ties break on path length
// and then lexicographically, so the result is deterministic for any
// fixed set of files. KeepFirst is a no-op.
func SortGroups(groups map[entities.Digest]*entities.FileGroup, strategy KeepStrategy) {
	if strategy == KeepFirst {
		return
	}
	for _, group := range groups {
		if group.Count < 2 {
			continue
		}

		sort.SliceStable(group.Files, func(i, j int) bool {
			f1 := group.Files[i]
			f2 := group.Files[j]

			switch strategy {
			case KeepShortestPath:
				if len(f1.Path) != len(f2.Path) {
					return len(f1.Path) < len(f2.Path)
				}
			case KeepLongestPath:
				if len(f1.Path) != len(f2.Path) {
					return len(f1.Path) > len(f2.Path)
				}
			case KeepOldest:
				if !f1.ModTime.Equal(f2.ModTime) {
					return f1.ModTime.Before(f2.ModTime)
				}
			case KeepNewest:
				if !f1.ModTime.Equal(f2.ModTime) {
					return f1.ModTime.After(f2.ModTime)
				}
			}

			// Tie-breakers: path length, then alphabetical.
			if len(f1.Path) != len(f2.Path) {
				if strategy == KeepLongestPath {
					return len(f1.Path) > len(f2.Path)
				}
				return len(f1.Path) < len(f2.Path)
			}
			return f1.Path < f2.Path
		})
	}
}

// Victims returns every non-keeper path of every group: all files except
// the one at index 0. This is what a retention-aware deletion removes.
func Victims(groups map[entities.Digest]*entities.FileGroup) []entities.Path {
	var victims []entities.Path
	for _, group := range groups {
		if group.Count < 2 {
			continue
		}
		for _, f := range group.Files[1:] {
			victims = append(victims, f.Path)
		}
	}
	return victims
}
