package textdiff

import (
	"strings"
	"testing"
)

func TestLines(t *testing.T) {
	from := "a 1\nb 2\nc 3\n"
	to := "a 1\nb 20\nc 3\n"
	got := Lines(from, to)
	want := " a 1\n-b 2\n+b 20\n c 3\n"
	if got != want {
		t.Errorf("Lines() = %q, want %q", got, want)
	}
}

func TestLinesEqual(t *testing.T) {
	doc := "a 1\nb 2\n"
	got := Lines(doc, doc)
	for _, ln := range strings.Split(strings.TrimSuffix(got, "\n"), "\n") {
		if !strings.HasPrefix(ln, " ") {
			t.Errorf("Lines() of equal inputs had change %q:\n%s", ln, got)
		}
	}
}

func TestLinesAddRemove(t *testing.T) {
	got := Lines("a 1\n", "a 1\nb 2\n")
	if !strings.Contains(got, "+b 2\n") {
		t.Errorf("added line missing from diff:\n%s", got)
	}
	got = Lines("a 1\nb 2\n", "b 2\n")
	if !strings.Contains(got, "-a 1\n") {
		t.Errorf("removed line missing from diff:\n%s", got)
	}
}
