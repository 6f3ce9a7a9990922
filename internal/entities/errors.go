package entities

import (
	"errors"
	"fmt"
)

// ErrUnsupportedType marks an argument whose shape is neither a single
// path nor a collection of paths.
var ErrUnsupportedType = errors.New("unsupported path type")

// TypeError reports the offending value of a failed path coercion.
type TypeError struct {
	Value any
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: cannot use %T as a path or path collection", ErrUnsupportedType, e.Value)
}

func (e *TypeError) Unwrap() error { return ErrUnsupportedType }

// FileAccessError reports a candidate file that could not be opened or
// read during hashing. It aborts the detection pass that hit it.
type FileAccessError struct {
	Path Path
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error { return e.Err }

// DeletionError reports a single failed removal. Batch removal never
// raises these; it collects the affected paths instead.
type DeletionError struct {
	Path Path
	Err  error
}

func (e *DeletionError) Error() string {
	return fmt.Sprintf("cannot remove %s: %v", e.Path, e.Err)
}

func (e *DeletionError) Unwrap() error { return e.Err }
