// Package validation checks declared-required leaf fields against a node's
// value tree. Results are advisory inline messages; nothing here ever blocks
// an edit from committing.
package validation

import (
	"github.com/goliatone/go-nodepanel/pkg/schema"
	"github.com/goliatone/go-nodepanel/pkg/values"
)

// Validate walks the schema and reports, keyed by dotted path, every
// property whose own required flag is set while the tree still holds the
// unset sentinel at that path. Recursion descends into object properties
// only; other shapes are treated as leaves regardless of their internal
// structure.
func Validate(s schema.Schema, tree map[string]any) map[string]string {
	issues := make(map[string]string)
	walk(s, nil, tree, issues)
	return issues
}

func walk(s schema.Schema, path schema.Path, tree map[string]any, issues map[string]string) {
	if s.Kind != schema.KindObject {
		return
	}
	for _, prop := range s.Properties {
		child := path.Child(prop.Name)
		if prop.Schema.Kind == schema.KindObject {
			walk(prop.Schema, child, tree, issues)
			continue
		}
		if !prop.Required {
			continue
		}
		if values.Get(tree, child) == values.Unset {
			dotted := child.String()
			issues[dotted] = dotted + " is required"
		}
	}
}
