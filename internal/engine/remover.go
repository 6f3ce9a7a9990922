package engine

import (
	"os"

	"github.com/svalverde/dupscan/internal/entities"
)

// RemoveFile deletes the file at p. Any OS-level failure is returned as
// a DeletionError; the cause is deliberately not narrowed to a missing
// file, a permission failure fails the same way.
func RemoveFile(p entities.Path) error {
	if err := os.Remove(string(p)); err != nil {
		return &entities.DeletionError{Path: p, Err: err}
	}
	return nil
}

// Remove deletes the given path or collection of paths and returns the
// paths that failed to delete. A failed deletion never aborts the batch;
// every remaining path is still attempted. The error return is non-nil
// only for an unsupported argument shape.
func Remove(paths any) ([]entities.Path, error) {
	set, err := entities.NewPathSet(paths)
	if err != nil {
		return nil, err
	}
	var failed []entities.Path
	for _, p := range set.Paths() {
		if err := RemoveFile(p); err != nil {
			failed = append(failed, p)
		}
	}
	return failed, nil
}

// RemoveDuplicates finds the duplicate groups beneath directory and
// deletes EVERY member of every group, including the first-discovered
// copy. Callers that want to retain one file per group must select
// keepers (see SortGroups and Victims) and call Remove themselves.
// Returns the paths that failed to delete.
func RemoveDuplicates(directory any) ([]entities.Path, error) {
	groups, err := GetDuplicates(directory, nil)
	if err != nil {
		return nil, err
	}
	var victims []entities.Path
	for _, paths := range groups {
		victims = append(victims, paths...)
	}
	return Remove(victims)
}
