// Package htmlpanel renders a panel session as static HTML markup. It is a
// snapshot renderer: controls carry data attributes describing the edit
// operations a host runtime would wire up, but no behaviour of its own.
package htmlpanel

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/goliatone/go-nodepanel/pkg/panel"
	"github.com/goliatone/go-nodepanel/pkg/render"
)

// Renderer implements render.Renderer producing text/html.
type Renderer struct{}

// New constructs the HTML renderer.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Name() string {
	return "html"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render snapshots the session into markup. With options.Validate set, the
// required-field validator runs first so inline messages are present.
func (r *Renderer) Render(ctx context.Context, session *panel.Session, options render.Options) ([]byte, error) {
	if ctx == nil {
		return nil, fmt.Errorf("htmlpanel: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if session == nil {
		return nil, fmt.Errorf("htmlpanel: session is required")
	}

	if options.Validate {
		session.Submit()
	}
	node := session.RenderNode()

	var builder strings.Builder
	builder.WriteString(`<section class="node-panel" data-node="`)
	builder.WriteString(html.EscapeString(node.NodeID))
	builder.WriteString(`" data-expanded="`)
	builder.WriteString(strconv.FormatBool(node.Expanded))
	builder.WriteString("\">\n")

	writeHandles(&builder, node)
	for _, field := range node.Fields {
		writeElement(&builder, field, 1)
	}
	writeResults(&builder, node.Results)

	builder.WriteString("</section>\n")
	return []byte(builder.String()), nil
}

func writeHandles(builder *strings.Builder, node panel.Panel) {
	if len(node.Handles) == 0 {
		return
	}
	builder.WriteString("  <ul class=\"node-handles\">\n")
	for _, handle := range node.Handles {
		builder.WriteString(`    <li class="handle handle-`)
		builder.WriteString(string(handle.Side))
		builder.WriteString(`" data-role="`)
		builder.WriteString(string(handle.Role))
		builder.WriteString(`" data-handle="`)
		builder.WriteString(html.EscapeString(handle.Name))
		builder.WriteString("\">")
		builder.WriteString(html.EscapeString(handle.Name))
		builder.WriteString("</li>\n")
	}
	builder.WriteString("  </ul>\n")
}

func writeElement(builder *strings.Builder, element panel.Element, depth int) {
	pad := strings.Repeat("  ", depth)
	path := html.EscapeString(element.Path.String())
	label := html.EscapeString(element.Label)

	switch element.Kind {
	case panel.ElementGroup:
		builder.WriteString(pad + `<fieldset class="field-group" data-path="` + path + "\">\n")
		builder.WriteString(pad + "  <legend>" + label + "</legend>\n")
		for _, child := range element.Children {
			writeElement(builder, child, depth+1)
		}
		builder.WriteString(pad + "</fieldset>\n")
		return
	case panel.ElementConnected:
		builder.WriteString(pad + `<div class="field field-connected" data-path="` + path + "\">")
		builder.WriteString(label + ": <em>connected</em></div>\n")
		return
	case panel.ElementSelect, panel.ElementTriState:
		builder.WriteString(pad + `<label class="field" data-path="` + path + "\">" + label + "\n")
		builder.WriteString(pad + "  <select>\n")
		options := element.Options
		if element.Kind == panel.ElementSelect {
			options = append([]string{""}, options...)
		}
		for _, option := range options {
			builder.WriteString(pad + `    <option value="` + html.EscapeString(option) + `"`)
			if option == element.Value {
				builder.WriteString(" selected")
			}
			builder.WriteString(">" + optionText(option) + "</option>\n")
		}
		builder.WriteString(pad + "  </select>\n")
	case panel.ElementNumber:
		builder.WriteString(pad + `<label class="field" data-path="` + path + "\">" + label + "\n")
		builder.WriteString(pad + `  <input type="text" inputmode="numeric" value="` + html.EscapeString(element.Value) + "\">\n")
	case panel.ElementOptionalText:
		builder.WriteString(pad + `<label class="field" data-path="` + path + "\">" + label + "\n")
		builder.WriteString(pad + `  <input type="text" placeholder="` + html.EscapeString(element.Placeholder) + `" value="` + html.EscapeString(element.Value) + "\">\n")
	case panel.ElementText, panel.ElementComplex:
		builder.WriteString(pad + `<label class="field" data-path="` + path + `" data-editor="modal"`)
		if element.Editing {
			builder.WriteString(` data-editing="true"`)
		}
		builder.WriteString(">" + label + "\n")
		builder.WriteString(pad + "  <textarea readonly>" + html.EscapeString(element.Value) + "</textarea>\n")
	case panel.ElementStringList:
		builder.WriteString(pad + `<div class="field field-list" data-path="` + path + "\">" + label + "\n")
		for index, row := range element.Rows {
			builder.WriteString(pad + `  <div class="list-row" data-index="` + strconv.Itoa(index) + "\">\n")
			builder.WriteString(pad + `    <input type="text" value="` + html.EscapeString(row) + "\">\n")
			builder.WriteString(pad + `    <button type="button" data-action="clear">clear</button>` + "\n")
			builder.WriteString(pad + "  </div>\n")
		}
		builder.WriteString(pad + `  <button type="button" data-action="add">add</button>` + "\n")
		writeMessage(builder, element, pad)
		builder.WriteString(pad + "</div>\n")
		return
	}

	writeMessage(builder, element, pad)
	builder.WriteString(pad + "</label>\n")
}

func writeMessage(builder *strings.Builder, element panel.Element, pad string) {
	if element.Message == "" {
		return
	}
	builder.WriteString(pad + `  <small class="field-message">` + html.EscapeString(element.Message) + "</small>\n")
}

func writeResults(builder *strings.Builder, results *panel.Results) {
	if results == nil {
		return
	}
	builder.WriteString("  <div class=\"node-results\">\n")
	if results.Status != "" {
		builder.WriteString("    <p class=\"status\">" + html.EscapeString(results.Status) + "</p>\n")
	}
	if results.Output != nil {
		builder.WriteString("    <pre class=\"output\">" + sanitizeOutput(outputText(results.Output)) + "</pre>\n")
	}
	builder.WriteString("  </div>\n")
}

func outputText(output any) string {
	if text, ok := output.(string); ok {
		return text
	}
	pretty, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Sprint(output)
	}
	return string(pretty)
}

func optionText(option string) string {
	if option == "" {
		return "(unset)"
	}
	return html.EscapeString(option)
}
