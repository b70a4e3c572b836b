package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Lines returns a line oriented diff of from and to, one line per input
// line, each prefixed by "-", "+" or " ". Unchanged runs longer than
// 2*context lines are elided. It returns "" when the inputs are equal.
func Lines(from, to string, context int) string {
	if from == to {
		return ""
	}
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	buf := &strings.Builder{}
	for i := range diffs {
		d := &diffs[i]
		ls := splitLines(d.Text)
		switch d.Type {
		case diffpatch.DiffInsert:
			writeLines(buf, Insert, ls)
		case diffpatch.DiffDelete:
			writeLines(buf, Delete, ls)
		case diffpatch.DiffEqual:
			head, tail := context, context
			if i == 0 {
				head = 0
			}
			if i == len(diffs)-1 {
				tail = 0
			}
			if len(ls) <= head+tail {
				writeLines(buf, Equal, ls)
				continue
			}
			writeLines(buf, Equal, ls[:head])
			buf.WriteString("...\n")
			writeLines(buf, Equal, ls[len(ls)-tail:])
		}
	}
	return buf.String()
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}

func writeLines(buf *strings.Builder, op Op, ls []string) {
	for _, l := range ls {
		buf.WriteString(op.String())
		buf.WriteString(l)
		buf.WriteByte('\n')
	}
}
