// Package engine groups files by content digest and removes duplicates.
package engine

import (
	"time"

	"github.com/svalverde/dupscan/internal/entities"
	"github.com/svalverde/dupscan/internal/hasher"
	"github.com/svalverde/dupscan/internal/scanner"
)

// Options configure a Runner.
type Options struct {
	Strategy KeepStrategy
}

// Stats is the full result of one detection pass.
type Stats struct {
	TotalFilesScanned int64
	FilesByDigest     map[entities.Digest]*entities.FileGroup
	DuplicatesCount   int64
	WastedBytes       int64
	Duration          time.Duration
}

// Runner runs detection passes with a fixed keeper strategy. It holds no
// state between runs; every pass rebuilds its grouping from scratch.
type Runner struct {
	opts Options
}

// New creates a Runner.
func New(opts Options) *Runner {
	return &Runner{opts: opts}
}

// Run scans the include roots, groups files by digest and sorts each
// group by the configured keeper strategy. Shapes of include and exclude
// are those of GetDuplicates; exclude may be nil.
func (r *Runner) Run(include, exclude any) (*Stats, error) {
	stats, err := collect(include, exclude)
	if err != nil {
		return nil, err
	}
	SortGroups(stats.FilesByDigest, r.opts.Strategy)
	return stats, nil
}

// GetDuplicates scans the include roots and returns a mapping from digest
// to the paths sharing that digest, in discovery order. Only groups with
// two or more members are returned.
//
// include is one root or a collection of roots; for a collection the
// candidate set is the concatenation of each root's subtree, so
// duplicates across roots are detected. exclude, when non-nil, has the
// same shapes; every file beneath an exclude root is dropped from the
// candidate set by value equality, once per matching occurrence, and
// excluded paths that never appear as candidates are silently ignored.
// Unsupported shapes fail with a TypeError; an unreadable candidate
// aborts the whole pass with a FileAccessError.
func GetDuplicates(include, exclude any) (map[entities.Digest][]entities.Path, error) {
	stats, err := collect(include, exclude)
	if err != nil {
		return nil, err
	}
	out := make(map[entities.Digest][]entities.Path, len(stats.FilesByDigest))
	for digest, group := range stats.FilesByDigest {
		out[digest] = group.Paths()
	}
	return out, nil
}

// collect is the single detection pass behind Run and GetDuplicates:
// enumerate candidates, apply exclusions, hash, group, filter.
func collect(include, exclude any) (*Stats, error) {
	incSet, err := entities.NewPathSet(include)
	if err != nil {
		return nil, err
	}
	var excSet entities.PathSet
	if exclude != nil {
		excSet, err = entities.NewPathSet(exclude)
		if err != nil {
			return nil, err
		}
	}

	start := time.Now()

	// The exclusion multiset is materialized up front; each occurrence
	// cancels at most one matching candidate occurrence.
	excluded := make(map[entities.Path]int)
	for _, root := range excSet.Paths() {
		for p, err := range scanner.Subpaths(root) {
			if err != nil {
				return nil, err
			}
			excluded[p]++
		}
	}

	stats := &Stats{
		FilesByDigest: make(map[entities.Digest]*entities.FileGroup),
	}

	for _, root := range incSet.Paths() {
		for p, err := range scanner.Subpaths(root) {
			if err != nil {
				return nil, err
			}
			if excluded[p] > 0 {
				excluded[p]--
				continue
			}

			// No partial results: one unreadable candidate fails the
			// entire pass.
			digest, fstats, err := hasher.HashFile(p)
			if err != nil {
				return nil, err
			}
			stats.TotalFilesScanned++

			group, ok := stats.FilesByDigest[digest]
			if !ok {
				group = &entities.FileGroup{}
				stats.FilesByDigest[digest] = group
			}
			group.Add(&entities.FileInfo{
				Path:     p,
				Size:     fstats.Size,
				Digest:   digest,
				ModTime:  fstats.ModTime,
				DeviceID: fstats.DeviceID,
				Inode:    fstats.Inode,
			})
		}
	}

	for digest, group := range stats.FilesByDigest {
		if group.Count < 2 {
			delete(stats.FilesByDigest, digest)
			continue
		}
		stats.DuplicatesCount += group.Count - 1
		for _, f := range group.Files[1:] {
			stats.WastedBytes += f.Size
		}
	}

	stats.Duration = time.Since(start)
	return stats, nil
}
