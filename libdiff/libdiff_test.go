package libdiff

import (
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/obo-format/go-obo/ir"
	"github.com/signadot/obo-format/go-obo/parse"
)

func TestLines(t *testing.T) {
	if d := Lines("a\nb\n", "a\nb\n", 1); d != "" {
		t.Errorf("equal inputs: %q", d)
	}
	got := Lines("a\nb\nc\n", "a\nB\nc\n", 1)
	want := " a\n-b\n+B\n c\n"
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
	from := "1\n2\n3\n4\n5\n6\n7\nx\n"
	to := "1\n2\n3\n4\n5\n6\n7\ny\n"
	got = Lines(from, to, 2)
	want = "...\n 6\n 7\n-x\n+y\n"
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func mustParse(t *testing.T, in string) *ir.Document {
	t.Helper()
	doc, err := parse.ParseString(in)
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestStanzas(t *testing.T) {
	from := mustParse(t, `[Term]
id: A:1
name: one

[Term]
id: A:2
name: two

[Typedef]
id: part_of
`)
	to := mustParse(t, `[Term]
id: A:1
name: uno

[Typedef]
id: part_of

[Term]
id: A:3
`)
	got := Stanzas(from, to)
	want := []StanzaDiff{
		{Op: Replace, Kind: ir.TermKind, ID: "A:1", Tags: []TagDiff{
			{Op: Delete, Line: "name: one"},
			{Op: Insert, Line: "name: uno"},
		}},
		{Op: Delete, Kind: ir.TermKind, ID: "A:2"},
		{Op: Insert, Kind: ir.TermKind, ID: "A:3"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("stanza diff (-want +got):\n%s", diff)
	}
	if d := Stanzas(from, from); len(d) != 0 {
		t.Errorf("self diff %v", d)
	}
}

func TestTagsIgnoreOrder(t *testing.T) {
	a := mustParse(t, "[Term]\nid: A:1\nis_a: A:0\nname: n\n").Stanzas[0]
	b := mustParse(t, "[Term]\nid: A:1\nname: n\nis_a: A:0\n").Stanzas[0]
	if d := Tags(a, b); len(d) != 0 {
		t.Errorf("got %v", d)
	}
}

func TestKeyRune(t *testing.T) {
	for _, i := range []int{0, 0xD7FE, 0xD7FF, 0xE000} {
		r := keyRune(i)
		if r >= 0xD800 && r <= 0xDFFF {
			t.Errorf("keyRune(%d) is a surrogate", i)
		}
		if !utf8.ValidRune(r) {
			t.Errorf("keyRune(%d) is not valid", i)
		}
	}
}
