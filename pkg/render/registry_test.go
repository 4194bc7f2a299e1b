package render

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-nodepanel/pkg/panel"
)

type fakeRenderer struct {
	name string
}

func (f fakeRenderer) Name() string        { return f.name }
func (f fakeRenderer) ContentType() string { return "text/plain" }
func (f fakeRenderer) Render(context.Context, *panel.Session, Options) ([]byte, error) {
	return []byte(f.name), nil
}

func TestRegistryRegisterAndGet(t *testing.T) {
	registry := NewRegistry()

	if err := registry.Register(fakeRenderer{name: "html"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := registry.Register(fakeRenderer{name: "html"}); err == nil {
		t.Fatal("expected duplicate registration error")
	}
	if err := registry.Register(nil); err == nil {
		t.Fatal("expected error for nil renderer")
	}
	if err := registry.Register(fakeRenderer{}); err == nil {
		t.Fatal("expected error for empty name")
	}

	renderer, err := registry.Get("html")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if renderer.Name() != "html" {
		t.Fatalf("unexpected renderer %q", renderer.Name())
	}
	if _, err := registry.Get("missing"); err == nil {
		t.Fatal("expected lookup error")
	}
}

func TestRegistryList(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(fakeRenderer{name: "tui"})
	registry.MustRegister(fakeRenderer{name: "html"})

	if diff := cmp.Diff([]string{"html", "tui"}, registry.List()); diff != "" {
		t.Fatalf("unexpected names (-want +got):\n%s", diff)
	}
}
