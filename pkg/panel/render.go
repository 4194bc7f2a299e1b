package panel

import (
	"github.com/goliatone/go-nodepanel/pkg/graph"
	"github.com/goliatone/go-nodepanel/pkg/schema"
	"github.com/goliatone/go-nodepanel/pkg/values"
)

// RenderNode produces the full panel for the session's node: graph handles
// for both schemas, one field tree per top-level input property, the latched
// results summary and the chrome state. Rendering is pure over session state.
func (s *Session) RenderNode() Panel {
	out := Panel{
		NodeID:   s.nodeID,
		Handles:  graph.Layout(s.inputSchema, s.outputSchema),
		Expanded: s.expanded,
	}

	if s.inputSchema.Kind == schema.KindObject {
		for _, prop := range s.inputSchema.Properties {
			out.Fields = append(out.Fields, s.RenderField(schema.Path{prop.Name}, prop.Schema))
		}
	}

	if s.resultsSeen {
		out.Results = &Results{Status: s.status, Output: s.output}
	}
	return out
}

// RenderField picks the rendering strategy for one schema node. Dispatch
// order matters: a connected field is terminal and read-only regardless of
// shape, containers recurse, and only then do primitive kinds apply.
func (s *Session) RenderField(path schema.Path, node schema.Schema) Element {
	if graph.IsConnected(s.nodeID, path, s.connections) {
		return s.annotate(Element{
			Kind:  ElementConnected,
			Path:  path,
			Label: s.labeler(leafName(path)),
		})
	}

	switch node.Kind {
	case schema.KindObject:
		if len(node.Properties) > 0 {
			return s.renderGroup(path, node.Properties, node.Description)
		}
	case schema.KindOptionalUnion:
		if node.Elem == schema.KindString {
			return s.annotate(Element{
				Kind:        ElementOptionalText,
				Path:        path,
				Label:       s.labeler(leafName(path)),
				Description: node.Description,
				Placeholder: "optional",
				Value:       displayText(values.Get(s.tree, path)),
			})
		}
	case schema.KindMerged:
		if len(node.Branches) > 0 && node.Branches[0].IsObject() {
			return s.renderGroup(path, node.Branches[0].Properties, node.Description)
		}
	case schema.KindString:
		if len(node.Enum) > 0 {
			return s.annotate(Element{
				Kind:        ElementSelect,
				Path:        path,
				Label:       s.labeler(leafName(path)),
				Description: node.Description,
				Options:     node.Enum,
				Value:       displayText(values.Get(s.tree, path)),
			})
		}
		return s.annotate(Element{
			Kind:        ElementText,
			Path:        path,
			Label:       s.labeler(leafName(path)),
			Description: node.Description,
			Value:       displayText(values.Get(s.tree, path)),
			Editing:     s.editingAt(path),
		})
	case schema.KindBoolean:
		return s.annotate(Element{
			Kind:        ElementTriState,
			Path:        path,
			Label:       s.labeler(leafName(path)),
			Description: node.Description,
			Options:     []string{"", "true", "false"},
			Value:       triStateValue(values.Get(s.tree, path)),
		})
	case schema.KindNumber, schema.KindInteger:
		return s.annotate(Element{
			Kind:        ElementNumber,
			Path:        path,
			Label:       s.labeler(leafName(path)),
			Description: node.Description,
			Value:       displayText(values.Get(s.tree, path)),
			Integer:     node.Kind == schema.KindInteger,
		})
	case schema.KindArray:
		if node.Items != nil && node.Items.Kind == schema.KindString {
			rows := values.Strings(s.tree, path)
			if rows == nil {
				rows = []string{}
			}
			return s.annotate(Element{
				Kind:        ElementStringList,
				Path:        path,
				Label:       s.labeler(leafName(path)),
				Description: node.Description,
				Rows:        rows,
			})
		}
	}

	// Everything else is an unrecognised or composite shape: hand the value
	// to the modal editor as pretty-printed text.
	return s.annotate(Element{
		Kind:        ElementComplex,
		Path:        path,
		Label:       s.labeler(leafName(path)),
		Description: node.Description,
		Value:       displayText(values.Get(s.tree, path)),
		Editing:     s.editingAt(path),
	})
}

func (s *Session) renderGroup(path schema.Path, props []schema.Property, description string) Element {
	group := Element{
		Kind:        ElementGroup,
		Path:        path,
		Label:       s.labeler(leafName(path)),
		Description: description,
	}
	for _, prop := range props {
		group.Children = append(group.Children, s.RenderField(path.Child(prop.Name), prop.Schema))
	}
	return group
}

// annotate attaches the field's validation message from the last Submit.
func (s *Session) annotate(element Element) Element {
	if len(s.messages) > 0 {
		element.Message = s.messages[element.Path.String()]
	}
	return element
}

func (s *Session) editingAt(path schema.Path) bool {
	return s.editor != nil && s.editor.path.Equal(path)
}

func leafName(path schema.Path) string {
	if len(path) == 0 {
		return ""
	}
	return path[len(path)-1]
}

// triStateValue maps a stored value onto the boolean select options. Only a
// real stored bool selects true/false; the sentinel and anything else stay
// on the unset option.
func triStateValue(value any) string {
	switch typed := value.(type) {
	case bool:
		if typed {
			return "true"
		}
		return "false"
	default:
		return ""
	}
}
