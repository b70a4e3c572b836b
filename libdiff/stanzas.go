package libdiff

import (
	"unicode/utf8"

	"github.com/signadot/obo-format/go-obo/encode"
	"github.com/signadot/obo-format/go-obo/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// StanzaDiff describes one stanza that differs between two documents.
type StanzaDiff struct {
	Op   Op
	Kind ir.Kind
	ID   string
	// Tags holds the differing tag lines of a Replace.
	Tags []TagDiff
}

// TagDiff is one canonical tag line inserted into or deleted from a
// stanza.
type TagDiff struct {
	Op   Op
	Line string
}

// Stanzas compares the stanzas of two documents. Stanzas are matched by
// kind and id in document order; matched stanzas whose tags differ, in
// canonical order, are reported as Replace with their tag differences.
func Stanzas(from, to *ir.Document) []StanzaDiff {
	keys := map[string]rune{}
	fromRunes := summarize(keys, from.Stanzas, stanzaKey)
	toRunes := summarize(keys, to.Stanzas, stanzaKey)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)

	var res []StanzaDiff
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		n := utf8.RuneCountInString(diff.Text)
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range n {
				s := from.Stanzas[fi]
				res = append(res, StanzaDiff{Op: Delete, Kind: s.Kind, ID: s.ID()})
				fi++
			}
		case diffpatch.DiffInsert:
			for range n {
				s := to.Stanzas[ti]
				res = append(res, StanzaDiff{Op: Insert, Kind: s.Kind, ID: s.ID()})
				ti++
			}
		case diffpatch.DiffEqual:
			for range n {
				a, b := from.Stanzas[fi], to.Stanzas[ti]
				if td := Tags(a, b); len(td) != 0 {
					res = append(res, StanzaDiff{Op: Replace, Kind: a.Kind, ID: a.ID(), Tags: td})
				}
				fi++
				ti++
			}
		}
	}
	return res
}

// Tags returns the canonical tag lines deleted from and inserted into a
// to produce b.
func Tags(a, b *ir.Stanza) []TagDiff {
	from := tagLines(a)
	to := tagLines(b)
	keys := map[string]rune{}
	diffs := diffpatch.New().DiffMainRunes(
		summarize(keys, from, ident), summarize(keys, to, ident), false)
	var res []TagDiff
	fi, ti := 0, 0
	for i := range diffs {
		n := utf8.RuneCountInString(diffs[i].Text)
		switch diffs[i].Type {
		case diffpatch.DiffDelete:
			for range n {
				res = append(res, TagDiff{Op: Delete, Line: from[fi]})
				fi++
			}
		case diffpatch.DiffInsert:
			for range n {
				res = append(res, TagDiff{Op: Insert, Line: to[ti]})
				ti++
			}
		case diffpatch.DiffEqual:
			fi += n
			ti += n
		}
	}
	return res
}

func tagLines(s *ir.Stanza) []string {
	tags := ir.CanonicalTags(s.Tags)
	res := make([]string, 0, len(tags))
	for i := range tags {
		l, err := encode.TagLine(&tags[i], nil)
		if err != nil {
			l = tags[i].Name + ": " + err.Error()
		}
		res = append(res, l)
	}
	return res
}

func stanzaKey(s *ir.Stanza) string {
	return s.Kind.String() + "\x00" + s.ID()
}

func ident(s string) string { return s }

// summarize maps each element to a rune standing for its key, so that
// sequences can be diffed with DiffMainRunes.
func summarize[T any](keys map[string]rune, xs []T, key func(T) string) []rune {
	res := make([]rune, len(xs))
	for i, x := range xs {
		k := key(x)
		r, ok := keys[k]
		if !ok {
			r = keyRune(len(keys))
			keys[k] = r
		}
		res[i] = r
	}
	return res
}

// keyRune returns the i'th valid rune, skipping surrogates.
func keyRune(i int) rune {
	r := rune(i + 1)
	if r >= 0xD800 {
		r += 0x800
	}
	return r
}
