package encode

import (
	"bytes"
	"errors"
	"testing"

	"github.com/nodecfg/kdlgen/ir"
)

func obj(kvs ...ir.KeyVal) *ir.Node {
	return ir.FromKeyVals(kvs)
}

func kv(k string, v *ir.Node) ir.KeyVal {
	return ir.KeyVal{Key: k, Val: v}
}

func render(t *testing.T, root *ir.Node, opts ...EncodeOption) string {
	t.Helper()
	buf := bytes.NewBuffer(nil)
	if err := Encode(root, buf, opts...); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	return buf.String()
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		root *ir.Node
		want string
	}{
		{
			name: "empty document",
			root: obj(),
			want: "\n",
		},
		{
			name: "scalar attributes join with newlines",
			root: obj(kv("a", ir.FromInt(1)), kv("b", ir.FromInt(2))),
			want: "a 1\nb 2\n",
		},
		{
			name: "args and props",
			root: obj(kv("n", obj(
				kv("_args", ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})),
				kv("_props", obj(kv("x", ir.FromString("y")))),
			))),
			want: "n 1 2 x=\"y\"\n",
		},
		{
			name: "flat sequence as positional arguments",
			root: obj(kv("tags", ir.FromSlice([]*ir.Node{
				ir.FromInt(1), ir.FromInt(2), ir.FromInt(3),
			}))),
			want: "tags 1 2 3\n",
		},
		{
			name: "empty flat sequence is a bare node",
			root: obj(kv("tags", ir.FromSlice(nil))),
			want: "tags\n",
		},
		{
			name: "non-flat sequence becomes repeated siblings",
			root: obj(kv("tags", ir.FromSlice([]*ir.Node{
				obj(kv("x", ir.FromInt(1))),
				obj(kv("x", ir.FromInt(2))),
			}))),
			want: "tags {\n\tx 1\n}\ntags {\n\tx 2\n}\n",
		},
		{
			name: "mixed sequence is non-flat, not an error",
			root: obj(kv("x", ir.FromSlice([]*ir.Node{
				ir.FromInt(1),
				obj(kv("y", ir.FromInt(2))),
			}))),
			want: "x 1\nx {\n\ty 2\n}\n",
		},
		{
			name: "empty mapping suppresses braces",
			root: obj(kv("win", obj())),
			want: "win\n",
		},
		{
			name: "args only, no brace block",
			root: obj(kv("spawn", obj(
				kv("_args", ir.FromSlice([]*ir.Node{
					ir.FromString("alacritty"), ir.FromString("-e"), ir.FromString("fish"),
				})),
			))),
			want: "spawn \"alacritty\" \"-e\" \"fish\"\n",
		},
		{
			name: "nested blocks indent by tabs",
			root: obj(kv("input", obj(
				kv("keyboard", obj(
					kv("layout", ir.FromString("us")),
				)),
			))),
			want: "input {\n\tkeyboard {\n\t\tlayout \"us\"\n\t}\n}\n",
		},
		{
			name: "ordered children precede attribute-derived children",
			root: obj(kv("node", obj(
				kv("b", ir.FromInt(2)),
				kv("_children", ir.FromSlice([]*ir.Node{
					obj(kv("a", ir.FromInt(1))),
				})),
			))),
			want: "node {\n\ta 1\n\tb 2\n}\n",
		},
		{
			name: "ordered child expanding to multiple siblings stays in place",
			root: obj(kv("binds", obj(
				kv("_children", ir.FromSlice([]*ir.Node{
					obj(kv("bind", ir.FromSlice([]*ir.Node{
						obj(kv("k", ir.FromInt(1))),
						obj(kv("k", ir.FromInt(2))),
					}))),
					obj(kv("z", ir.FromInt(3))),
				})),
			))),
			want: "binds {\n\tbind {\n\t\tk 1\n\t}\n\tbind {\n\t\tk 2\n\t}\n\tz 3\n}\n",
		},
		{
			name: "args and props precede the brace block",
			root: obj(kv("output", obj(
				kv("_args", ir.FromSlice([]*ir.Node{ir.FromString("eDP-1")})),
				kv("_props", obj(kv("scale", ir.FromFloat(1.5)))),
				kv("mode", ir.FromString("1920x1080@60")),
			))),
			want: "output \"eDP-1\" scale=1.5 {\n\tmode \"1920x1080@60\"\n}\n",
		},
		{
			name: "null and bool literals",
			root: obj(
				kv("focus", ir.FromBool(true)),
				kv("shadow", ir.Null()),
			),
			want: "focus true\nshadow null\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := render(t, tt.root); got != tt.want {
				t.Errorf("Encode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEncodeDeterministic(t *testing.T) {
	root := obj(kv("layout", obj(
		kv("gaps", ir.FromInt(16)),
		kv("border", obj(kv("width", ir.FromInt(4)))),
		kv("preset-column-widths", obj(
			kv("_children", ir.FromSlice([]*ir.Node{
				obj(kv("proportion", ir.FromFloat(0.5))),
				obj(kv("proportion", ir.FromFloat(0.75))),
			})),
		)),
	)))
	first := render(t, root)
	for i := 0; i < 3; i++ {
		if got := render(t, root); got != first {
			t.Fatalf("render %d differs:\n%q\n%q", i, got, first)
		}
	}
}

func TestEncodeTrailer(t *testing.T) {
	root := obj(kv("a", ir.FromInt(1)))
	got := render(t, root, Trailer("// extra\nspawn-at-startup \"bar\""))
	want := "a 1\n// extra\nspawn-at-startup \"bar\"\n"
	if got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
	// trailer already newline-terminated
	got = render(t, root, Trailer("// extra\n"))
	if want := "a 1\n// extra\n"; got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestEncodeDepth(t *testing.T) {
	root := obj(kv("input", obj(kv("tap", ir.FromBool(true)))))
	got := render(t, root, Depth(1))
	want := "\tinput {\n\t\ttap true\n\t}\n"
	if got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestEncodeErrors(t *testing.T) {
	tests := []struct {
		name string
		root *ir.Node
		want error
	}{
		{
			name: "non-object root",
			root: ir.FromSlice(nil),
			want: ErrUnsupportedAttribute,
		},
		{
			name: "args not a sequence",
			root: obj(kv("n", obj(kv("_args", ir.FromInt(1))))),
			want: ErrInvalidReservedKey,
		},
		{
			name: "args with composite element",
			root: obj(kv("n", obj(kv("_args", ir.FromSlice([]*ir.Node{obj()}))))),
			want: ErrInvalidReservedKey,
		},
		{
			name: "props not a mapping",
			root: obj(kv("n", obj(kv("_props", ir.FromSlice(nil))))),
			want: ErrInvalidReservedKey,
		},
		{
			name: "props with composite value",
			root: obj(kv("n", obj(kv("_props", obj(kv("x", ir.FromSlice(nil))))))),
			want: ErrInvalidReservedKey,
		},
		{
			name: "children not a sequence",
			root: obj(kv("n", obj(kv("_children", obj())))),
			want: ErrInvalidReservedKey,
		},
		{
			name: "children element not a mapping",
			root: obj(kv("n", obj(kv("_children", ir.FromSlice([]*ir.Node{ir.FromInt(1)}))))),
			want: ErrInvalidReservedKey,
		},
		{
			name: "children element with two entries",
			root: obj(kv("n", obj(kv("_children", ir.FromSlice([]*ir.Node{
				obj(kv("a", ir.FromInt(1)), kv("b", ir.FromInt(2))),
			}))))),
			want: ErrInvalidReservedKey,
		},
		{
			name: "children element with zero entries",
			root: obj(kv("n", obj(kv("_children", ir.FromSlice([]*ir.Node{obj()}))))),
			want: ErrInvalidReservedKey,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Encode(tt.root, bytes.NewBuffer(nil))
			if !errors.Is(err, tt.want) {
				t.Errorf("Encode() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestEncodeCyclic(t *testing.T) {
	inner := obj()
	root := obj(kv("a", inner))
	inner.Set("b", inner)
	err := Encode(root, bytes.NewBuffer(nil))
	if !errors.Is(err, ErrCyclic) {
		t.Errorf("Encode() error = %v, want ErrCyclic", err)
	}

	arr := ir.FromSlice(nil)
	arr.Values = append(arr.Values, obj(kv("x", arr)))
	root = obj(kv("a", arr))
	err = Encode(root, bytes.NewBuffer(nil))
	if !errors.Is(err, ErrCyclic) {
		t.Errorf("Encode() error = %v, want ErrCyclic", err)
	}
}

func TestMustString(t *testing.T) {
	got := MustString(obj(kv("gaps", ir.FromInt(16))))
	if got != "gaps 16\n" {
		t.Errorf("MustString() = %q", got)
	}
	defer func() {
		if recover() == nil {
			t.Error("MustString() on a bad tree did not panic")
		}
	}()
	MustString(obj(kv("n", obj(kv("_args", ir.FromInt(1))))))
}
