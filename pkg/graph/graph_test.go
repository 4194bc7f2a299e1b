package graph

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-nodepanel/pkg/schema"
)

func TestIsConnectedExactMatch(t *testing.T) {
	connections := []Connection{
		{SourceNodeID: "producer", SourceHandle: "result", TargetNodeID: "consumer", TargetHandle: "url"},
	}

	cases := []struct {
		name   string
		nodeID string
		path   string
		want   bool
	}{
		{"match", "consumer", "url", true},
		{"other node", "producer", "url", false},
		{"other handle", "consumer", "timeout", false},
		{"descendant of connected handle", "consumer", "url.scheme", false},
		{"prefix is not a match", "consumer", "ur", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := IsConnected(tc.nodeID, schema.ParsePath(tc.path), connections)
			if got != tc.want {
				t.Fatalf("IsConnected(%q, %q) = %v, want %v", tc.nodeID, tc.path, got, tc.want)
			}
		})
	}
}

func TestIsConnectedEmptyList(t *testing.T) {
	if IsConnected("node", schema.ParsePath("url"), nil) {
		t.Fatal("expected false with no connections")
	}
}

func TestLayout(t *testing.T) {
	input := schema.Schema{
		Kind: schema.KindObject,
		Properties: []schema.Property{
			{Name: "url", Schema: schema.Schema{Kind: schema.KindString}},
			{Name: "timeout", Schema: schema.Schema{Kind: schema.KindInteger}},
		},
	}
	output := schema.Schema{
		Kind: schema.KindObject,
		Properties: []schema.Property{
			{Name: "body", Schema: schema.Schema{Kind: schema.KindString}},
		},
	}

	want := []Handle{
		{Name: "url", Side: SideLeft, Role: RoleTarget},
		{Name: "timeout", Side: SideLeft, Role: RoleTarget},
		{Name: "body", Side: SideRight, Role: RoleSource},
	}
	if diff := cmp.Diff(want, Layout(input, output)); diff != "" {
		t.Fatalf("unexpected layout (-want +got):\n%s", diff)
	}
}

func TestLayoutIgnoresNonObjectSchemas(t *testing.T) {
	if handles := Layout(schema.Schema{Kind: schema.KindString}, schema.Schema{}); handles != nil {
		t.Fatalf("expected no handles, got %v", handles)
	}
}
