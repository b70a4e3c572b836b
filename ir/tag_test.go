package ir

import (
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestTagComments(t *testing.T) {
	isa := NewTag("is_a", IdentifierWithComment{ID: "A:1"})
	c := isa.WithComment("first")
	if c.TrailingComment() != "first" || c.Comment != "" {
		t.Errorf("identifier comment %+v", c)
	}
	if isa.TrailingComment() != "" {
		t.Error("WithComment modified its receiver")
	}
	name := NewTag("name", PlainString{Text: "n"})
	c = name.WithComment("note")
	if c.Comment != "note" || c.TrailingComment() != "note" {
		t.Errorf("plain comment %+v", c)
	}
	q := isa.WithQualifiers(Qualifier{Key: "source", Value: "X:1"})
	if diff := cmp.Diff([]Qualifier{{Key: "source", Value: "X:1"}}, q.Qualifiers); diff != "" {
		t.Errorf("qualifiers (-want +got):\n%s", diff)
	}
	if len(isa.Qualifiers) != 0 {
		t.Error("WithQualifiers modified its receiver")
	}
	parsed := Tag{Name: "name", Value: PlainString{Text: "n"}, Source: Source{Line: 4, Raw: "name: n", Leading: []string{""}}}
	c = parsed.WithComment("x")
	if c.Source.Raw != "" || c.Source.Line != 4 || len(c.Source.Leading) != 1 {
		t.Errorf("source after WithComment %+v", c.Source)
	}
	if parsed.Source.Raw != "name: n" {
		t.Error("WithComment modified its receiver source")
	}
}

func TestSourceBlanks(t *testing.T) {
	s := Source{Leading: []string{"", "! c", " \t", "\r"}}
	if n := s.Blanks(); n != 3 {
		t.Errorf("got %d blanks", n)
	}
}

func TestKinds(t *testing.T) {
	for _, k := range Kinds() {
		d, err := k.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var got Kind
		if err := got.UnmarshalText(d); err != nil || got != k {
			t.Errorf("%s: got %v %v", k, got, err)
		}
	}
	if _, err := ParseKind("Thing"); !errors.Is(err, ErrMalformedStanza) {
		t.Errorf("got %v", err)
	}
	for _, vt := range ValueTypes() {
		if vt.String() == "<unknown type>" {
			t.Errorf("%d has no name", vt)
		}
	}
}

func TestDocumentHeader(t *testing.T) {
	doc, err := NewBuilder().
		AddHeaderTag("format-version", PlainString{Text: "1.4"}).
		AddHeaderTag("ontology", PlainString{Text: "ms"}).
		NewStanza(TermKind, "MS:1").
		AddTag("name", PlainString{Text: "one"}).
		Finalize()
	if err != nil {
		t.Fatal(err)
	}
	if n := len(doc.HeaderTags()); n != 2 {
		t.Errorf("got %d header tags", n)
	}
	if v, ok := doc.HeaderValue("ontology"); !ok || v != "ms" {
		t.Errorf("ontology %q %v", v, ok)
	}
	if _, ok := doc.HeaderValue("date"); ok {
		t.Error("unexpected date")
	}
	if s := doc.Stanza(TermKind, "MS:1"); s == nil || s.Name() != "one" {
		t.Errorf("stanza %v", s)
	}
	if s := doc.Stanza(TypedefKind, "MS:1"); s != nil {
		t.Error("wrong kind matched")
	}
	if l, ok := doc.Label("MS:1"); !ok || l != "one" {
		t.Errorf("label %q %v", l, ok)
	}
}

func TestIDIndex(t *testing.T) {
	x := NewIDIndex(ScopeKindNamespace)
	if err := x.Add(TermKind, "MS:1"); err != nil {
		t.Fatal(err)
	}
	if err := x.Add(TermKind, "PEFF:1"); err != nil {
		t.Fatal(err)
	}
	if !x.Has(TermKind, "MS:1") || x.Has(TypedefKind, "MS:1") {
		t.Error("wrong membership")
	}
	if x.Len() != 2 {
		t.Errorf("len %d", x.Len())
	}
	if ScopeGlobal.String() != "global" {
		t.Errorf("scope %s", ScopeGlobal)
	}
}

func TestHeaderValues(t *testing.T) {
	utc := time.Date(2019, time.April, 6, 15, 0, 0, 0, time.UTC)
	local := utc.In(time.FixedZone("X", 3600))
	if !ValueEqual(Date{Time: utc}, Date{Time: local}) {
		t.Error("same instant should compare equal")
	}
	if got := Text(Date{Time: utc}); got != "06:04:2019 15:00" {
		t.Errorf("date text %q", got)
	}
	if got := Text(Idspace{Prefix: "RO", URL: "http://x/RO_"}); got != "RO" {
		t.Errorf("idspace text %q", got)
	}
	for _, vt := range []ValueType{DateType, SubsetdefType, SynonymTypedefType, IdspaceType, TreatXrefsType} {
		if !slices.Contains(ValueTypes(), vt) {
			t.Errorf("%s missing from ValueTypes", vt)
		}
	}
	if ImpliedScope("related_synonym") != ScopeRelated || ImpliedScope("synonym") != "" {
		t.Error("implied scope")
	}
}
