// Package scanner enumerates the regular files beneath a root directory.
//
// Traversal order is fixed: every file of a directory comes before the
// contents of its subdirectories, and subdirectories are visited in
// listing order. Subpaths is lazy; nothing is read until the caller pulls
// the next element.
package scanner

import (
	"iter"
	"os"

	"github.com/svalverde/dupscan/internal/entities"
)

// Subfiles returns the immediate regular files of dir, non-recursive, in
// directory-listing order.
func Subfiles(dir entities.Path) ([]entities.Path, error) {
	entries, err := os.ReadDir(string(dir))
	if err != nil {
		return nil, err
	}
	var files []entities.Path
	for _, e := range entries {
		if e.Type().IsRegular() {
			files = append(files, dir.Join(e.Name()))
		}
	}
	return files, nil
}

// Subdirs returns the immediate subdirectories of dir, non-recursive, in
// directory-listing order.
func Subdirs(dir entities.Path) ([]entities.Path, error) {
	entries, err := os.ReadDir(string(dir))
	if err != nil {
		return nil, err
	}
	var dirs []entities.Path
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, dir.Join(e.Name()))
		}
	}
	return dirs, nil
}

// Subpaths yields every regular file at every depth beneath root: first
// the files of root itself, then the full subtree of its first
// subdirectory, then the second, and so on.
//
// The traversal is driven by an explicit work stack rather than
// recursion, so depth is bounded only by directory count. A failed
// directory read (including a root that is not a directory) is yielded
// as the error of the pair and ends the sequence. Symlink cycles are not
// detected.
func Subpaths(root entities.Path) iter.Seq2[entities.Path, error] {
	return func(yield func(entities.Path, error) bool) {
		stack := []entities.Path{root}
		for len(stack) > 0 {
			dir := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			entries, err := os.ReadDir(string(dir))
			if err != nil {
				yield("", err)
				return
			}

			var dirs []entities.Path
			for _, e := range entries {
				switch {
				case e.Type().IsRegular():
					if !yield(dir.Join(e.Name()), nil) {
						return
					}
				case e.IsDir():
					dirs = append(dirs, dir.Join(e.Name()))
				}
			}
			// Push in reverse so the first subdirectory is processed
			// next and its whole subtree precedes its siblings.
			for i := len(dirs) - 1; i >= 0; i-- {
				stack = append(stack, dirs[i])
			}
		}
	}
}
