package jsonschema

import (
	"testing"

	"github.com/goliatone/go-nodepanel/pkg/schema"
)

func TestCompileObjectWithRequiredList(t *testing.T) {
	raw := []byte(`{
		"type": "object",
		"properties": {
			"name": {"type": "string"},
			"age": {"type": "integer"}
		},
		"required": ["age"]
	}`)

	compiled, err := Compile(raw)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if compiled.Kind != schema.KindObject {
		t.Fatalf("unexpected kind %q", compiled.Kind)
	}
	if len(compiled.Properties) != 2 {
		t.Fatalf("expected 2 properties, got %d", len(compiled.Properties))
	}
	// Property order is sorted by name for determinism.
	if compiled.Properties[0].Name != "age" || compiled.Properties[1].Name != "name" {
		t.Fatalf("unexpected property order: %+v", compiled.Properties)
	}

	age, _ := compiled.Prop("age")
	if !age.Required {
		t.Fatal("required list was not folded into the per-field flag")
	}
	if age.Schema.Kind != schema.KindInteger {
		t.Fatalf("age kind = %q", age.Schema.Kind)
	}
	name, _ := compiled.Prop("name")
	if name.Required {
		t.Fatal("name should not be required")
	}
}

func TestCompileStringEnum(t *testing.T) {
	raw := []byte(`{"type": "string", "enum": ["GET", "POST", "PUT"]}`)

	compiled, err := Compile(raw)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if compiled.Kind != schema.KindString {
		t.Fatalf("unexpected kind %q", compiled.Kind)
	}
	if len(compiled.Enum) != 3 || compiled.Enum[0] != "GET" {
		t.Fatalf("unexpected enum %v", compiled.Enum)
	}
}

func TestCompileAnyOfStringNull(t *testing.T) {
	raw := []byte(`{"anyOf": [{"type": "string"}, {"type": "null"}]}`)

	compiled, err := Compile(raw)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if compiled.Kind != schema.KindOptionalUnion {
		t.Fatalf("unexpected kind %q", compiled.Kind)
	}
	if compiled.Elem != schema.KindString {
		t.Fatalf("unexpected union member %q", compiled.Elem)
	}
}

func TestCompileAnyOfWithoutNullDegradesToFirstBranch(t *testing.T) {
	raw := []byte(`{"anyOf": [{"type": "integer"}, {"type": "string"}]}`)

	compiled, err := Compile(raw)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if compiled.Kind != schema.KindInteger {
		t.Fatalf("unexpected kind %q", compiled.Kind)
	}
}

func TestCompileAllOf(t *testing.T) {
	raw := []byte(`{
		"allOf": [
			{"type": "object", "properties": {"host": {"type": "string"}}, "required": ["host"]},
			{"type": "object", "properties": {"port": {"type": "integer"}}}
		]
	}`)

	compiled, err := Compile(raw)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if compiled.Kind != schema.KindMerged {
		t.Fatalf("unexpected kind %q", compiled.Kind)
	}
	if len(compiled.Branches) != 2 {
		t.Fatalf("expected 2 branches, got %d", len(compiled.Branches))
	}
	host, ok := compiled.Branches[0].Prop("host")
	if !ok || !host.Required {
		t.Fatalf("first branch lost its properties: %+v", compiled.Branches[0])
	}
}

func TestCompileArrayOfStrings(t *testing.T) {
	raw := []byte(`{"type": "array", "items": {"type": "string"}}`)

	compiled, err := Compile(raw)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if compiled.Kind != schema.KindArray {
		t.Fatalf("unexpected kind %q", compiled.Kind)
	}
	if compiled.Items == nil || compiled.Items.Kind != schema.KindString {
		t.Fatalf("unexpected items: %+v", compiled.Items)
	}
}

func TestCompileUntypedFallsBackToObject(t *testing.T) {
	compiled, err := Compile([]byte(`{"description": "mystery"}`))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if compiled.Kind != schema.KindObject || len(compiled.Properties) != 0 {
		t.Fatalf("expected bare object, got %+v", compiled)
	}
	if compiled.Description != "mystery" {
		t.Fatalf("description lost: %q", compiled.Description)
	}
}

func TestCompileEmptyPayload(t *testing.T) {
	if _, err := Compile(nil); err == nil {
		t.Fatal("expected error for empty payload")
	}
}
