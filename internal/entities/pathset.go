package entities

// PathSet is the resolved form of a "single path or collection of paths"
// argument. The dynamic shape check happens exactly once, here at the
// boundary; everything downstream works with the flattened slice.
type PathSet struct {
	paths []Path
}

// NewPathSet coerces an include/exclude style argument into a PathSet.
// Accepted shapes: Path, string, PathSet, []Path, []string, or []any whose
// elements are Paths or strings. Anything else fails with a TypeError
// wrapping ErrUnsupportedType.
func NewPathSet(v any) (PathSet, error) {
	switch s := v.(type) {
	case PathSet:
		return s, nil
	case Path, string:
		p, err := NewPath(s)
		if err != nil {
			return PathSet{}, err
		}
		return PathSet{paths: []Path{p}}, nil
	case []Path:
		out := make([]Path, len(s))
		copy(out, s)
		return PathSet{paths: out}, nil
	case []string:
		out := make([]Path, 0, len(s))
		for _, raw := range s {
			p, err := NewPath(raw)
			if err != nil {
				return PathSet{}, err
			}
			out = append(out, p)
		}
		return PathSet{paths: out}, nil
	case []any:
		out := make([]Path, 0, len(s))
		for _, raw := range s {
			p, err := NewPath(raw)
			if err != nil {
				return PathSet{}, err
			}
			out = append(out, p)
		}
		return PathSet{paths: out}, nil
	default:
		return PathSet{}, &TypeError{Value: v}
	}
}

// Paths returns the member paths in argument order.
func (s PathSet) Paths() []Path {
	return s.paths
}

// Empty reports whether the set has no members.
func (s PathSet) Empty() bool {
	return len(s.paths) == 0
}
