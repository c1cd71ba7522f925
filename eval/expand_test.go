package eval

import (
	"testing"

	"github.com/nodecfg/kdlgen/ir"
	"github.com/nodecfg/kdlgen/load"
)

func TestExpandString(t *testing.T) {
	env := Env{
		"name": "world",
		"n":    3,
		"on":   true,
	}
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"hello $[name]", "hello world"},
		{"$[name]$[name]", "worldworld"},
		{"$[n + 1] workers", "4 workers"},
		{"$[on ? \"yes\" : \"no\"]", "yes"},
		{"$[ name ]", "world"},
		{"close $[\"a\\]b\"]", "close a]b"},
		{"unclosed $[name", "unclosed $[name"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ExpandString(tt.in, env)
			if err != nil {
				t.Fatalf("ExpandString(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ExpandString(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExpandStringGetenv(t *testing.T) {
	t.Setenv("KDLGEN_TEST_VAR", "abc")
	got, err := ExpandString(`$[getenv("KDLGEN_TEST_VAR")]`, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != "abc" {
		t.Errorf("got %q, want %q", got, "abc")
	}
}

func TestExpandStringBadExpr(t *testing.T) {
	if _, err := ExpandString("$[1 +]", nil); err == nil {
		t.Error("ExpandString() with a malformed expression did not error")
	}
}

func TestExpandTyped(t *testing.T) {
	doc, err := load.Parse([]byte("count: .[n * 2]\nmsg: v$[n]"))
	if err != nil {
		t.Fatal(err)
	}
	if err := Expand(doc, Env{"n": 5}); err != nil {
		t.Fatalf("Expand() error: %v", err)
	}
	count := ir.Get(doc, "count")
	if count == nil || count.Type != ir.NumberType || count.Int64 == nil || *count.Int64 != 10 {
		t.Errorf("count = %#v, want typed 10", count)
	}
	msg := ir.Get(doc, "msg")
	if msg == nil || msg.String != "v5" {
		t.Errorf("msg = %#v, want v5", msg)
	}
}

func TestExpandNested(t *testing.T) {
	doc, err := load.Parse([]byte("outer:\n  items:\n    - \"$[a]\"\n    - \".[a == 1]\""))
	if err != nil {
		t.Fatal(err)
	}
	if err := Expand(doc, Env{"a": 1}); err != nil {
		t.Fatal(err)
	}
	items := ir.GetPath(doc, "outer.items")
	if items == nil || len(items.Values) != 2 {
		t.Fatalf("items = %#v", items)
	}
	if items.Values[0].String != "1" {
		t.Errorf("items[0] = %q, want \"1\"", items.Values[0].String)
	}
	if items.Values[1].Type != ir.BoolType || !items.Values[1].Bool {
		t.Errorf("items[1] = %#v, want true", items.Values[1])
	}
}
