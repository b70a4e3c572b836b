package encode

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/obo-format/go-obo/debug"
	"github.com/signadot/obo-format/go-obo/format"
	"github.com/signadot/obo-format/go-obo/ir"
	"github.com/signadot/obo-format/go-obo/token"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	strict   bool
	blanks   BlankPolicy
	comments CommentPolicy
	labels   func(string) (string, bool)

	format format.Format

	Color func(ir.ValueType, ColorAttr, string) string
}

// Encode writes doc to w. By default the output is canonical OBO text:
// header tags in their original order, then each stanza with its tags in
// canonical order, stanzas separated by one blank line.
func Encode(doc *ir.Document, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	if doc == nil {
		return fmt.Errorf("%w: nil document", ErrEncoding)
	}
	if debug.Encode() {
		debug.Logger().Debug("encode", "format", es.format.String(), "strict", es.strict,
			"header", len(doc.Header), "stanzas", len(doc.Stanzas))
	}
	if es.format.IsStructured() {
		return encodeStructured(doc, w, es)
	}
	if es.comments == CommentsRegenerate && es.labels == nil {
		es.labels = doc.Label
	}
	lw := &lineWriter{w: w}
	if es.strict {
		encodeStrict(doc, lw, es)
		lw.finish(!doc.NoFinalNewline)
	} else {
		encodeCanonical(doc, lw, es)
		lw.finish(true)
	}
	return lw.err
}

// lineWriter holds back each line terminator until the next line, so the
// final one can be omitted.
type lineWriter struct {
	w       io.Writer
	pending bool
	err     error
}

func (lw *lineWriter) line(s string) {
	if lw.err != nil {
		return
	}
	if lw.pending {
		s = "\n" + s
	}
	_, lw.err = io.WriteString(lw.w, s)
	lw.pending = true
}

func (lw *lineWriter) finish(nl bool) {
	if lw.err != nil || !lw.pending || !nl {
		return
	}
	_, lw.err = io.WriteString(lw.w, "\n")
	lw.pending = false
}

func (lw *lineWriter) fail(err error) {
	if lw.err == nil {
		lw.err = err
	}
}

func encodeCanonical(doc *ir.Document, lw *lineWriter, es *EncState) {
	for i := range doc.Header {
		writeTag(&doc.Header[i], lw, es)
	}
	for i, s := range doc.Stanzas {
		if i > 0 || len(doc.Header) > 0 {
			n := 1
			// stanzas without recorded source get one blank line
			if es.blanks == BlankPreserve && s.Source.Raw != "" {
				n = s.Source.Blanks()
			}
			for range n {
				lw.line("")
			}
		}
		lw.line(marker(s, es))
		for _, t := range ir.CanonicalTags(s.Tags) {
			writeTag(&t, lw, es)
		}
	}
}

func encodeStrict(doc *ir.Document, lw *lineWriter, es *EncState) {
	for i := range doc.Header {
		t := &doc.Header[i]
		writeLeading(&t.Source, lw)
		if t.Source.Raw != "" {
			lw.line(t.Source.Raw)
			continue
		}
		writeTag(t, lw, es)
	}
	for _, s := range doc.Stanzas {
		if s.Source.Leading == nil && s.Source.Raw == "" && lw.pending {
			lw.line("")
		}
		writeLeading(&s.Source, lw)
		if s.Source.Raw != "" {
			lw.line(s.Source.Raw)
		} else {
			lw.line(marker(s, es))
		}
		for i := range s.Tags {
			t := &s.Tags[i]
			writeLeading(&t.Source, lw)
			if t.Source.Raw != "" {
				lw.line(t.Source.Raw)
				continue
			}
			writeTag(t, lw, es)
		}
	}
	for _, l := range doc.Trailing {
		lw.line(l)
	}
}

func writeLeading(src *ir.Source, lw *lineWriter) {
	for _, l := range src.Leading {
		lw.line(l)
	}
}

func marker(s *ir.Stanza, es *EncState) string {
	return es.color(ir.PlainStringType, MarkerColor, "["+s.Kind.String()+"]")
}

func writeTag(t *ir.Tag, lw *lineWriter, es *EncState) {
	s, err := TagLine(t, es)
	if err != nil {
		lw.fail(err)
		return
	}
	lw.line(s)
}

// TagLine renders t as a single canonical tag line, without line
// terminator. es may be nil.
func TagLine(t *ir.Tag, es *EncState) (string, error) {
	if es == nil {
		es = &EncState{}
	}
	if t.Name == "" {
		return "", fmt.Errorf("%w: tag without name", ErrEncoding)
	}
	if t.Value == nil {
		return "", fmt.Errorf("%w: tag %q has no value", ErrEncoding, t.Name)
	}
	vt := t.Value.Type()
	b := &strings.Builder{}
	b.WriteString(es.color(vt, TagColor, token.EscapeTagName(t.Name)))
	b.WriteString(es.color(vt, SepColor, ":"))
	if v := valueString(t.Value, es); v != "" {
		b.WriteByte(' ')
		b.WriteString(v)
	}
	if len(t.Qualifiers) != 0 && vt != ir.PlainStringType {
		b.WriteByte(' ')
		b.WriteString(qualifierString(t.Qualifiers, vt, es))
	}
	if c := es.comment(t); c != "" {
		b.WriteByte(' ')
		b.WriteString(es.color(vt, CommentColor, "! "+commentText(c)))
	}
	return b.String(), nil
}

func commentText(c string) string {
	return strings.TrimRight(strings.ReplaceAll(c, "\n", " "), `\`)
}
