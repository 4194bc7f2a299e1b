package schema

import "testing"

func TestParsePathRoundTrip(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"", 0},
		{"url", 1},
		{"author.email", 2},
		{"a.b.c", 3},
	}

	for _, tc := range cases {
		path := ParsePath(tc.raw)
		if len(path) != tc.want {
			t.Fatalf("ParsePath(%q) has %d segments, want %d", tc.raw, len(path), tc.want)
		}
		if path.String() != tc.raw {
			t.Fatalf("round trip of %q produced %q", tc.raw, path.String())
		}
	}
}

func TestChildDoesNotAliasParent(t *testing.T) {
	parent := Path{"config"}
	first := parent.Child("host")
	second := parent.Child("port")

	if first.String() != "config.host" {
		t.Fatalf("unexpected first child: %q", first.String())
	}
	if second.String() != "config.port" {
		t.Fatalf("sibling was clobbered: %q", second.String())
	}
	if parent.String() != "config" {
		t.Fatalf("parent mutated: %q", parent.String())
	}
}

func TestPathEqual(t *testing.T) {
	if !(Path{"a", "b"}).Equal(Path{"a", "b"}) {
		t.Fatal("expected equal paths")
	}
	if (Path{"a", "b"}).Equal(Path{"a"}) {
		t.Fatal("expected length mismatch to differ")
	}
	if (Path{"a", "b"}).Equal(Path{"a", "c"}) {
		t.Fatal("expected segment mismatch to differ")
	}
}

func TestProp(t *testing.T) {
	object := Schema{
		Kind: KindObject,
		Properties: []Property{
			{Name: "name", Schema: Schema{Kind: KindString}},
			{Name: "age", Required: true, Schema: Schema{Kind: KindInteger}},
		},
	}

	prop, ok := object.Prop("age")
	if !ok {
		t.Fatal("expected age property")
	}
	if !prop.Required {
		t.Fatal("expected per-field required flag to be set")
	}
	if _, ok := object.Prop("missing"); ok {
		t.Fatal("expected lookup miss")
	}
}
