// Package nodedef loads node definition documents: the per-node bundle of
// input/output schema payloads, seed values, connection list and execution
// results that the surrounding editor owns. Documents are YAML or JSON and
// compile into a ready-to-use panel session.
package nodedef

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-nodepanel/internal/jsonschema"
	"github.com/goliatone/go-nodepanel/pkg/graph"
	"github.com/goliatone/go-nodepanel/pkg/panel"
	"github.com/goliatone/go-nodepanel/pkg/schema"
)

// Definition is the raw document shape. Schema payloads stay untyped until
// Compile folds them into the closed schema union.
type Definition struct {
	NodeID      string             `json:"nodeId" yaml:"nodeId"`
	Title       string             `json:"title,omitempty" yaml:"title,omitempty"`
	Input       map[string]any     `json:"input" yaml:"input"`
	Output      map[string]any     `json:"output,omitempty" yaml:"output,omitempty"`
	Values      map[string]any     `json:"values,omitempty" yaml:"values,omitempty"`
	Connections []graph.Connection `json:"connections,omitempty" yaml:"connections,omitempty"`
	Status      string             `json:"status,omitempty" yaml:"status,omitempty"`
	Result      any                `json:"result,omitempty" yaml:"result,omitempty"`
	Expanded    bool               `json:"expanded,omitempty" yaml:"expanded,omitempty"`
}

// Load reads and parses a definition file.
func Load(path string) (Definition, error) {
	if strings.TrimSpace(path) == "" {
		return Definition{}, errors.New("nodedef: path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("nodedef: read %s: %w", path, err)
	}
	def, err := Parse(data)
	if err != nil {
		return Definition{}, fmt.Errorf("nodedef: parse %s: %w", path, err)
	}
	return def, nil
}

// Parse decodes a YAML or JSON definition payload. YAML is a superset of
// JSON here, so a single decoder covers both.
func Parse(data []byte) (Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return Definition{}, fmt.Errorf("nodedef: decode document: %w", err)
	}
	if strings.TrimSpace(def.NodeID) == "" {
		return Definition{}, errors.New("nodedef: document is missing nodeId")
	}
	if len(def.Input) == 0 {
		return Definition{}, fmt.Errorf("nodedef: node %q has no input schema", def.NodeID)
	}
	return def, nil
}

// CompileSchema folds one raw schema payload into the closed union.
func CompileSchema(payload map[string]any) (schema.Schema, error) {
	if len(payload) == 0 {
		return schema.Schema{Kind: schema.KindObject}, nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return schema.Schema{}, fmt.Errorf("nodedef: encode schema payload: %w", err)
	}
	return jsonschema.Compile(raw)
}

// Session compiles the definition's schemas and builds a panel session.
// onChange receives every committed value tree; options pass through to the
// session untouched.
func (d Definition) Session(onChange panel.ChangeFunc, options ...panel.Option) (*panel.Session, error) {
	input, err := CompileSchema(d.Input)
	if err != nil {
		return nil, fmt.Errorf("nodedef: node %q input schema: %w", d.NodeID, err)
	}
	output, err := CompileSchema(d.Output)
	if err != nil {
		return nil, fmt.Errorf("nodedef: node %q output schema: %w", d.NodeID, err)
	}

	return panel.NewSession(panel.Config{
		NodeID:       d.NodeID,
		InputSchema:  input,
		OutputSchema: output,
		Values:       normalizeTree(d.Values),
		Connections:  d.Connections,
		Status:       d.Status,
		Output:       d.Result,
		Expanded:     d.Expanded,
		OnChange:     onChange,
	}, options...)
}

// normalizeTree rewrites YAML-decoded containers into the JSON-like shapes
// the value store walks (map[string]any interiors).
func normalizeTree(tree map[string]any) map[string]any {
	if tree == nil {
		return nil
	}
	out := make(map[string]any, len(tree))
	for key, value := range tree {
		out[key] = normalizeValue(value)
	}
	return out
}

func normalizeValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		return normalizeTree(typed)
	case map[any]any:
		out := make(map[string]any, len(typed))
		for key, nested := range typed {
			out[fmt.Sprint(key)] = normalizeValue(nested)
		}
		return out
	case []any:
		out := make([]any, len(typed))
		for i, nested := range typed {
			out[i] = normalizeValue(nested)
		}
		return out
	default:
		return typed
	}
}
