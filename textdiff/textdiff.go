// Package textdiff produces line-oriented diffs of rendered
// configuration documents.
package textdiff

import (
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Lines diffs from against to, line by line, prefixing removed lines
// with "-", added lines with "+" and common lines with a space.
func Lines(from, to string) string {
	return render(from, to, false)
}

// ColorLines is Lines with removed lines in red and added lines in
// green.
func ColorLines(from, to string) string {
	return render(from, to, true)
}

func render(from, to string, colored bool) string {
	dmp := diffpatch.New()
	c1, c2, lineArray := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(c1, c2, false), lineArray)
	var sb strings.Builder
	for _, d := range diffs {
		if d.Text == "" {
			continue
		}
		prefix := " "
		paint := func(s string) string { return s }
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "-"
			if colored {
				paint = func(s string) string { return color.RedString("%s", s) }
			}
		case diffpatch.DiffInsert:
			prefix = "+"
			if colored {
				paint = func(s string) string { return color.GreenString("%s", s) }
			}
		}
		for _, ln := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			sb.WriteString(paint(prefix + ln))
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
