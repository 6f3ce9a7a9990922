package entities

import (
	"path/filepath"
)

// Path is a canonical file-system location: absolute, cleaned, and with
// symlinks resolved where possible. Immutable once produced.
type Path string

// NewPath coerces a raw path value into a Path. It accepts a string or an
// already-constructed Path; any other type fails with a TypeError wrapping
// ErrUnsupportedType. Strings are made absolute and resolved; an existing
// Path is returned unchanged.
func NewPath(v any) (Path, error) {
	switch p := v.(type) {
	case Path:
		return p, nil
	case string:
		abs, err := filepath.Abs(p)
		if err != nil {
			return "", err
		}
		// Resolve symlinks when the target exists; a path that does not
		// exist yet is still a valid Path (e.g. for removal reporting).
		if resolved, err := filepath.EvalSymlinks(abs); err == nil {
			return Path(resolved), nil
		}
		return Path(abs), nil
	default:
		return "", &TypeError{Value: v}
	}
}

// Join returns the Path of the named child entry. No further resolution is
// performed; the receiver is already canonical.
func (p Path) Join(name string) Path {
	return Path(filepath.Join(string(p), name))
}

// Base returns the last element of the path.
func (p Path) Base() string {
	return filepath.Base(string(p))
}

func (p Path) String() string {
	return string(p)
}
