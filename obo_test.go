package obo

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/obo-format/go-obo/encode"
	"github.com/signadot/obo-format/go-obo/ir"
	"github.com/signadot/obo-format/go-obo/parse"
)

func readSample(t *testing.T) []byte {
	t.Helper()
	d, err := os.ReadFile("testdata/ms-sample.obo")
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestSampleCanonical(t *testing.T) {
	d := readSample(t)
	doc, err := Parse(d)
	if err != nil {
		t.Fatal(err)
	}
	if n := len(doc.StanzasOfKind(ir.TermKind)); n != 8 {
		t.Errorf("got %d terms", n)
	}
	if n := len(doc.StanzasOfKind(ir.TypedefKind)); n != 3 {
		t.Errorf("got %d typedefs", n)
	}
	out, err := Serialize(doc)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(string(d), string(out)); diff != "" {
		t.Errorf("canonical output (-want +got):\n%s", diff)
	}
}

func TestSampleRoundTrip(t *testing.T) {
	d := readSample(t)
	if err := Verify(d); err != nil {
		t.Error(err)
	}
	for _, opts := range [][]encode.EncodeOption{
		nil,
		{encode.EncodeStrict(true)},
		{encode.EncodeBlankLines(encode.BlankPreserve)},
		{encode.EncodeComments(encode.CommentsRegenerate)},
	} {
		if _, err := RoundTrip(d, opts...); err != nil {
			t.Error(err)
		}
	}
}

func TestRoundTripMismatch(t *testing.T) {
	_, err := RoundTrip(readSample(t), encode.EncodeComments(encode.CommentsDrop))
	if !errors.Is(err, ErrRoundTrip) {
		t.Fatalf("got %v", err)
	}
	if !strings.Contains(err.Error(), "~[Term] MS:1000001") {
		t.Errorf("missing stanza in %v", err)
	}
	if !strings.Contains(err.Error(), "-is_a: MS:1000548 ! sample attribute") {
		t.Errorf("missing tag line in %v", err)
	}
}

func TestVerifyMismatch(t *testing.T) {
	err := Verify([]byte("! c\n[Term]\nid: A:1\n"), parse.ParseSource(false))
	if !errors.Is(err, ErrRoundTrip) {
		t.Fatalf("got %v", err)
	}
	if !strings.Contains(err.Error(), "-! c") {
		t.Errorf("got %v", err)
	}
	if err := Verify([]byte("[Term]\nid: A:1\nid: A:2\n")); !errors.Is(err, ir.ErrDuplicateID) {
		t.Errorf("got %v", err)
	}
}

func TestSelect(t *testing.T) {
	doc, err := Parse(readSample(t))
	if err != nil {
		t.Fatal(err)
	}
	for _, tc := range []struct {
		expr string
		want []string
	}{
		{`obsolete`, []string{"MS:1000017"}},
		{`kind == "Typedef" && name startsWith "has_"`, []string{"has_units", "has_domain"}},
		{`"MS:1000548" in is_a`, []string{"MS:1000001", "MS:1000004"}},
		{`any(relationships, .typedef == "part_of")`, []string{"MS:1000008"}},
		{`"synonym" in tags`, []string{"MS:1000075"}},
		{`namespace == "MS" && len(tags["relationship"]) > 1`, []string{"MS:1000004"}},
		{`any(is_a, label(#) == "ionization type")`, []string{"MS:1000075"}},
		{`namespace_of("UO:0000021") == "UO" && id == "MS:0000000"`, []string{"MS:0000000"}},
	} {
		got, err := Select(doc, tc.expr)
		if err != nil {
			t.Errorf("%s: %v", tc.expr, err)
			continue
		}
		var ids []string
		for _, s := range got {
			ids = append(ids, s.ID())
		}
		if diff := cmp.Diff(tc.want, ids); diff != "" {
			t.Errorf("%s (-want +got):\n%s", tc.expr, diff)
		}
	}
	if _, err := Select(doc, `id + 1`); err == nil {
		t.Error("expected a compile error for a non boolean expression")
	}
}

func TestMatch(t *testing.T) {
	doc, err := parse.ParseString("[Term]\nid: MS:1\nname: one\nis_obsolete: true\n")
	if err != nil {
		t.Fatal(err)
	}
	ok, err := Match(doc.Stanzas[0], `obsolete && name == "one" && label(id) == ""`)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("expected a match")
	}
}
