// Package values implements the pure path-addressed store behind a node's
// value tree. Reads against missing paths return the Unset sentinel instead
// of failing, and writes return a fresh tree so earlier references keep
// observing the values they held before the write.
package values

import "github.com/goliatone/go-nodepanel/pkg/schema"

// Unset is the sentinel returned for any path the tree does not address.
// It doubles as the stored representation of "no value" for controls that
// can be explicitly cleared.
const Unset = ""

// Get walks the tree along path. Missing intermediate nodes and non-mapping
// interiors yield Unset, never an error.
func Get(root map[string]any, path schema.Path) any {
	if len(path) == 0 {
		return Unset
	}
	current := any(root)
	for _, segment := range path {
		node, ok := current.(map[string]any)
		if !ok {
			return Unset
		}
		next, ok := node[segment]
		if !ok {
			return Unset
		}
		current = next
	}
	return current
}

// Set returns a new tree holding value at path, creating intermediate
// mappings on demand. Nodes along the written path are copied; untouched
// siblings are shared structurally. The input tree is never mutated.
func Set(root map[string]any, path schema.Path, value any) map[string]any {
	if len(path) == 0 {
		return root
	}

	out := make(map[string]any, len(root)+1)
	for key, existing := range root {
		out[key] = existing
	}

	head := path[0]
	if len(path) == 1 {
		out[head] = value
		return out
	}

	child, _ := root[head].(map[string]any)
	out[head] = Set(child, path[1:], value)
	return out
}

// Strings coerces the value at path into a string slice. Both []string and
// []any-of-strings are accepted; anything else yields nil.
func Strings(root map[string]any, path schema.Path) []string {
	switch current := Get(root, path).(type) {
	case []string:
		out := make([]string, len(current))
		copy(out, current)
		return out
	case []any:
		out := make([]string, 0, len(current))
		for _, item := range current {
			text, ok := item.(string)
			if !ok {
				return nil
			}
			out = append(out, text)
		}
		return out
	default:
		return nil
	}
}
