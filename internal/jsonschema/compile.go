package jsonschema

import (
	"errors"
	"fmt"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-nodepanel/pkg/schema"
)

// Compile parses a raw JSON Schema payload into the closed schema union.
func Compile(raw []byte) (schema.Schema, error) {
	if len(raw) == 0 {
		return schema.Schema{}, errors.New("jsonschema: payload is empty")
	}

	var doc openapi3.Schema
	if err := doc.UnmarshalJSON(raw); err != nil {
		return schema.Schema{}, fmt.Errorf("jsonschema: parse payload: %w", err)
	}

	return fromDocument(&doc), nil
}

// fromDocument maps a kin-openapi schema node onto the closed union. The
// mapping never fails: shapes the union cannot express become object schemas
// without properties, which downstream rendering treats as complex values.
func fromDocument(doc *openapi3.Schema) schema.Schema {
	if doc == nil {
		return schema.Schema{Kind: schema.KindObject}
	}

	if len(doc.AllOf) > 0 {
		return mergedFromBranches(doc)
	}
	if len(doc.AnyOf) > 0 {
		return unionFromBranches(doc)
	}

	switch {
	case typeIs(doc, "string"):
		return stringFromDocument(doc)
	case typeIs(doc, "number"):
		return schema.Schema{Kind: schema.KindNumber, Description: doc.Description}
	case typeIs(doc, "integer"):
		return schema.Schema{Kind: schema.KindInteger, Description: doc.Description}
	case typeIs(doc, "boolean"):
		return schema.Schema{Kind: schema.KindBoolean, Description: doc.Description}
	case typeIs(doc, "array"):
		return arrayFromDocument(doc)
	default:
		// "object", missing types and anything unrecognised land here.
		return objectFromDocument(doc)
	}
}

func typeIs(doc *openapi3.Schema, name string) bool {
	return doc.Type != nil && doc.Type.Is(name)
}

func stringFromDocument(doc *openapi3.Schema) schema.Schema {
	out := schema.Schema{Kind: schema.KindString, Description: doc.Description}
	for _, option := range doc.Enum {
		if text, ok := option.(string); ok {
			out.Enum = append(out.Enum, text)
		}
	}
	return out
}

func arrayFromDocument(doc *openapi3.Schema) schema.Schema {
	out := schema.Schema{Kind: schema.KindArray, Description: doc.Description}
	if doc.Items != nil && doc.Items.Value != nil {
		items := fromDocument(doc.Items.Value)
		out.Items = &items
	}
	return out
}

func objectFromDocument(doc *openapi3.Schema) schema.Schema {
	out := schema.Schema{Kind: schema.KindObject, Description: doc.Description}

	requiredSet := make(map[string]struct{}, len(doc.Required))
	for _, name := range doc.Required {
		requiredSet[name] = struct{}{}
	}

	names := make([]string, 0, len(doc.Properties))
	for name := range doc.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		ref := doc.Properties[name]
		var child schema.Schema
		if ref != nil {
			child = fromDocument(ref.Value)
		} else {
			child = schema.Schema{Kind: schema.KindObject}
		}
		_, required := requiredSet[name]
		out.Properties = append(out.Properties, schema.Property{
			Name:     name,
			Required: required,
			Schema:   child,
		})
	}

	return out
}

func mergedFromBranches(doc *openapi3.Schema) schema.Schema {
	out := schema.Schema{Kind: schema.KindMerged, Description: doc.Description}
	for _, ref := range doc.AllOf {
		if ref == nil || ref.Value == nil {
			continue
		}
		out.Branches = append(out.Branches, fromDocument(ref.Value))
	}
	return out
}

// unionFromBranches recognises the "anyOf [type, null]" optionality idiom.
// An anyOf that pairs exactly one non-null branch with a null branch becomes
// the optional-union variant; any other combination degrades to the first
// non-null branch.
func unionFromBranches(doc *openapi3.Schema) schema.Schema {
	var nonNull []*openapi3.Schema
	sawNull := false
	for _, ref := range doc.AnyOf {
		if ref == nil || ref.Value == nil {
			continue
		}
		if typeIs(ref.Value, "null") {
			sawNull = true
			continue
		}
		nonNull = append(nonNull, ref.Value)
	}

	if len(nonNull) == 1 && sawNull {
		member := fromDocument(nonNull[0])
		return schema.Schema{
			Kind:        schema.KindOptionalUnion,
			Elem:        member.Kind,
			Description: doc.Description,
		}
	}
	if len(nonNull) > 0 {
		return fromDocument(nonNull[0])
	}
	return schema.Schema{Kind: schema.KindObject, Description: doc.Description}
}
