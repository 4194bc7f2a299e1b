package panel

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/goliatone/go-nodepanel/pkg/graph"
	"github.com/goliatone/go-nodepanel/pkg/schema"
)

// ElementKind identifies the rendering strategy picked for a schema node.
type ElementKind string

const (
	// ElementGroup is a labeled container recursing into object properties.
	ElementGroup ElementKind = "group"
	// ElementConnected is the terminal read-only indicator for fields driven
	// by an upstream connection.
	ElementConnected ElementKind = "connected"
	// ElementSelect is a bounded single-select over enum options.
	ElementSelect ElementKind = "select"
	// ElementText is a free-text control backed by the modal editor.
	ElementText ElementKind = "text"
	// ElementOptionalText is the free-text control for optional string
	// unions; empty text is a valid value, not an error.
	ElementOptionalText ElementKind = "optionalText"
	// ElementTriState is the unset/true/false boolean select.
	ElementTriState ElementKind = "triState"
	// ElementNumber is the numeric control for number/integer schemas.
	ElementNumber ElementKind = "number"
	// ElementStringList renders one row per array element with in-place
	// edit, clear and append actions.
	ElementStringList ElementKind = "stringList"
	// ElementComplex delegates unrecognised or composite values to the
	// modal editor with a pretty-printed preview.
	ElementComplex ElementKind = "complex"
)

// Element is one node of the rendered control tree. Only the fields relevant
// to the Kind are populated.
type Element struct {
	Kind        ElementKind `json:"kind"`
	Path        schema.Path `json:"path"`
	Label       string      `json:"label,omitempty"`
	Description string      `json:"description,omitempty"`
	Placeholder string      `json:"placeholder,omitempty"`
	Options     []string    `json:"options,omitempty"`
	Value       string      `json:"value,omitempty"`
	Rows        []string    `json:"rows,omitempty"`
	Integer     bool        `json:"integer,omitempty"`
	Children    []Element   `json:"children,omitempty"`

	// Message carries the inline validation text from the last Submit.
	Message string `json:"message,omitempty"`
	// Editing marks the path currently staged in the modal editor.
	Editing bool `json:"editing,omitempty"`
}

// Results is the node's execution summary. Output is an opaque JSON-like
// payload owned by the surrounding editor.
type Results struct {
	Status string `json:"status,omitempty"`
	Output any    `json:"output,omitempty"`
}

// Panel is the full render of one node's property panel.
type Panel struct {
	NodeID   string         `json:"nodeId"`
	Handles  []graph.Handle `json:"handles,omitempty"`
	Fields   []Element      `json:"fields"`
	Results  *Results       `json:"results,omitempty"`
	Expanded bool           `json:"expanded"`
}

// displayText renders a stored value as control text. Composite values are
// pretty-printed so the modal editor can round-trip them.
func displayText(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	case bool:
		return strconv.FormatBool(typed)
	case float64:
		if math.IsNaN(typed) {
			return "NaN"
		}
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(typed, 10)
	case int:
		return strconv.Itoa(typed)
	case map[string]any, []any, []string:
		pretty, err := json.MarshalIndent(typed, "", "  ")
		if err != nil {
			return fmt.Sprint(typed)
		}
		return string(pretty)
	default:
		return fmt.Sprint(typed)
	}
}
