package graph

import "github.com/goliatone/go-nodepanel/pkg/schema"

// Side places a handle on the node's left or right edge.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// Role distinguishes connection endpoints: targets accept incoming edges,
// sources emit outgoing ones.
type Role string

const (
	RoleTarget Role = "target"
	RoleSource Role = "source"
)

// Handle is one connection port, keyed by its top-level property name.
type Handle struct {
	Name string `json:"name"`
	Side Side   `json:"side"`
	Role Role   `json:"role"`
}

// Layout maps the node's schemas onto ports: one left-side target per
// top-level input property, one right-side source per top-level output
// property, in declaration order. Property-name uniqueness within an object
// guarantees key collisions cannot occur per side.
func Layout(input, output schema.Schema) []Handle {
	var handles []Handle
	if input.Kind == schema.KindObject {
		for _, prop := range input.Properties {
			handles = append(handles, Handle{Name: prop.Name, Side: SideLeft, Role: RoleTarget})
		}
	}
	if output.Kind == schema.KindObject {
		for _, prop := range output.Properties {
			handles = append(handles, Handle{Name: prop.Name, Side: SideRight, Role: RoleSource})
		}
	}
	return handles
}
