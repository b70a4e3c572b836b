package parse

import (
	"bytes"
	"testing"

	"github.com/signadot/obo-format/go-obo/encode"
	"github.com/signadot/obo-format/go-obo/ir"
)

func FuzzParse(f *testing.F) {
	seeds := []string{
		``,
		"format-version: 1.2\n",
		sampleMass,
		"[Typedef]\nid: part_of\nis_transitive: true\n",
		"[Term]\nid: A:1\ndef: \"d\" []\nsynonym: \"s\" EXACT [X:1 \"x\"]\n",
		"[Term]\nid: A:1\nxref: value-type:xsd\\:string \"The allowed value-type for this CV term.\"\n",
		"[Term]\nid: A:1\nis_a: A:2 {source=\"X:1\"} ! two\n",
		"[Term]\nid: A:1\ncomment: a \\\n b\n",
		"! c\n\n[Instance]\nid: I:1\ninstance_of: A:1\n",
		"[Term]\nid:0\nxref:0\"\x80\"",
		"[Term]\nid: A:1\ndef: \"caf\xe9\" []\n",
		"0\\n0:",
		"[Term]\nid: A:1\n\\!note: x\n",
		"date: 06:04:2019 15:00\nsubsetdef: S:1 \"s\"\nidspace: RO http://x/RO_ \"r\"\n",
		"date: 06:04:2019\\W15:00\nsubsetdef: a \\\"b\\\"\n",
	}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, in string) {
		doc, err := ParseString(in)
		if err != nil {
			return
		}
		out := &bytes.Buffer{}
		if err := encode.Encode(doc, out); err != nil {
			t.Fatalf("encode: %v\n%q", err, in)
		}
		again, err := Parse(out.Bytes())
		if err != nil {
			t.Fatalf("reparse: %v\nin: %q\nout: %q", err, in, out.String())
		}
		if !ir.Equal(doc, again) {
			t.Errorf("round trip changed the document\nin: %q\nout: %q", in, out.String())
		}
		strict := &bytes.Buffer{}
		if err := encode.Encode(doc, strict, encode.EncodeStrict(true)); err != nil {
			t.Fatal(err)
		}
		if strict.String() != in {
			t.Errorf("strict output differs\nin:  %q\nout: %q", in, strict.String())
		}
	})
}
