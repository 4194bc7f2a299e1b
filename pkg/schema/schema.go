package schema

// Kind enumerates the closed set of shape variants a Schema can take. Every
// consumer switches exhaustively on Kind; there is no open-ended fallthrough
// on raw document keys.
type Kind string

const (
	KindObject        Kind = "object"
	KindString        Kind = "string"
	KindNumber        Kind = "number"
	KindInteger       Kind = "integer"
	KindBoolean       Kind = "boolean"
	KindArray         Kind = "array"
	KindOptionalUnion Kind = "optionalUnion"
	KindMerged        Kind = "merged"
)

// Property is a named member of an object schema. The required flag lives on
// the property itself rather than in a container-level name list; validation
// reads this flag and nothing else.
type Property struct {
	Name     string `json:"name"`
	Required bool   `json:"required"`
	Schema   Schema `json:"schema"`
}

// Schema is the structural description of a node's input or output shape.
// Only the fields relevant to the declared Kind are populated.
type Schema struct {
	Kind Kind `json:"kind"`

	// Properties holds the ordered members of an object schema.
	Properties []Property `json:"properties,omitempty"`

	// Enum holds the ordered options of a bounded string schema.
	Enum []string `json:"enum,omitempty"`

	// Items describes the element shape of an array schema.
	Items *Schema `json:"items,omitempty"`

	// Elem names the non-null variant of an optional union ("anyOf" in the
	// source document).
	Elem Kind `json:"elem,omitempty"`

	// Branches holds the ordered members of a merged ("allOf") schema.
	// Consumers honour the first branch's properties only.
	Branches []Schema `json:"branches,omitempty"`

	// Description is optional free text carried through from the source.
	Description string `json:"description,omitempty"`
}

// Prop returns the named property of an object schema.
func (s Schema) Prop(name string) (Property, bool) {
	for _, prop := range s.Properties {
		if prop.Name == name {
			return prop, true
		}
	}
	return Property{}, false
}

// IsObject reports whether the schema is an object with at least one property.
func (s Schema) IsObject() bool {
	return s.Kind == KindObject && len(s.Properties) > 0
}
