package htmlpanel

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-nodepanel/pkg/graph"
	"github.com/goliatone/go-nodepanel/pkg/panel"
	"github.com/goliatone/go-nodepanel/pkg/render"
	"github.com/goliatone/go-nodepanel/pkg/schema"
)

func buildSession(t *testing.T, cfg panel.Config) *panel.Session {
	t.Helper()
	if cfg.NodeID == "" {
		cfg.NodeID = "node-1"
	}
	session, err := panel.NewSession(cfg)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return session
}

func requestSchema() schema.Schema {
	return schema.Schema{
		Kind: schema.KindObject,
		Properties: []schema.Property{
			{Name: "url", Required: true, Schema: schema.Schema{Kind: schema.KindString}},
			{Name: "method", Schema: schema.Schema{Kind: schema.KindString, Enum: []string{"GET", "POST"}}},
			{Name: "verify", Schema: schema.Schema{Kind: schema.KindBoolean}},
			{Name: "headers", Schema: schema.Schema{
				Kind:  schema.KindArray,
				Items: &schema.Schema{Kind: schema.KindString},
			}},
		},
	}
}

func renderToString(t *testing.T, session *panel.Session, options render.Options) string {
	t.Helper()
	out, err := New().Render(context.Background(), session, options)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(out)
}

func TestRenderMarkup(t *testing.T) {
	session := buildSession(t, panel.Config{
		InputSchema: requestSchema(),
		Values: map[string]any{
			"method":  "POST",
			"headers": []any{"Accept: */*"},
		},
	})

	markup := renderToString(t, session, render.Options{})

	for _, want := range []string{
		`data-node="node-1"`,
		`data-handle="url"`,
		`data-path="method"`,
		`<option value="POST" selected>`,
		`<option value="">(unset)</option>`,
		`data-action="clear"`,
		`data-action="add"`,
		`data-editor="modal"`,
	} {
		if !strings.Contains(markup, want) {
			t.Fatalf("markup missing %q:\n%s", want, markup)
		}
	}
}

func TestRenderConnectedIndicator(t *testing.T) {
	session := buildSession(t, panel.Config{
		NodeID:      "consumer",
		InputSchema: requestSchema(),
		Connections: []graph.Connection{
			{SourceNodeID: "producer", SourceHandle: "out", TargetNodeID: "consumer", TargetHandle: "url"},
		},
	})

	markup := renderToString(t, session, render.Options{})
	if !strings.Contains(markup, "field-connected") {
		t.Fatalf("expected connected indicator:\n%s", markup)
	}
	if strings.Contains(markup, `data-path="url" data-editor="modal"`) {
		t.Fatal("connected field must not render an editable control")
	}
}

func TestRenderWithValidation(t *testing.T) {
	session := buildSession(t, panel.Config{InputSchema: requestSchema()})

	markup := renderToString(t, session, render.Options{Validate: true})
	if !strings.Contains(markup, "url is required") {
		t.Fatalf("expected inline validation message:\n%s", markup)
	}
}

func TestRenderResultsSanitizesOutput(t *testing.T) {
	session := buildSession(t, panel.Config{
		InputSchema: requestSchema(),
		Status:      "completed",
		Output:      "<script>alert(1)</script><b>ok</b>",
	})

	markup := renderToString(t, session, render.Options{})
	if strings.Contains(markup, "<script>") {
		t.Fatalf("script tag survived sanitization:\n%s", markup)
	}
	if !strings.Contains(markup, "<b>ok</b>") {
		t.Fatalf("harmless markup was stripped:\n%s", markup)
	}
	if !strings.Contains(markup, `<p class="status">completed</p>`) {
		t.Fatalf("status missing:\n%s", markup)
	}
}

func TestRenderEscapesValues(t *testing.T) {
	session := buildSession(t, panel.Config{
		InputSchema: requestSchema(),
		Values:      map[string]any{"url": `"><img src=x>`},
	})

	markup := renderToString(t, session, render.Options{})
	if strings.Contains(markup, "<img") {
		t.Fatalf("value was not escaped:\n%s", markup)
	}
}

func TestRenderRequiresSessionAndContext(t *testing.T) {
	if _, err := New().Render(context.Background(), nil, render.Options{}); err == nil {
		t.Fatal("expected error for nil session")
	}
}
