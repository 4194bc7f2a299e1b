package schema

import "strings"

// Path locates a field inside a schema or value tree as an ordered sequence
// of property names. Paths stay structured internally; the dotted form is
// produced only at system boundaries (callback payloads, connection handles,
// validation messages) so property names containing the join character never
// become ambiguous mid-pipeline.
type Path []string

// ParsePath splits a dotted boundary representation into a structured path.
func ParsePath(raw string) Path {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	return Path(strings.Split(trimmed, "."))
}

// String renders the dotted boundary form.
func (p Path) String() string {
	return strings.Join([]string(p), ".")
}

// Child returns a new path extended by one segment. The receiver is never
// aliased, so sibling paths derived from the same parent stay independent.
func (p Path) Child(segment string) Path {
	out := make(Path, 0, len(p)+1)
	out = append(out, p...)
	return append(out, segment)
}

// IsEmpty reports whether the path has no segments.
func (p Path) IsEmpty() bool {
	return len(p) == 0
}

// Equal compares two paths segment by segment.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}
