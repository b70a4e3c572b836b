package parse

import (
	"io"

	"github.com/signadot/obo-format/go-obo/ir"
	"github.com/signadot/obo-format/go-obo/token"
)

// Parse parses a complete OBO document. It returns either the whole
// document or an error; a partially parsed document is never returned.
func Parse(d []byte, opts ...ParseOption) (*ir.Document, error) {
	lx := token.LexBytes(d)
	m := NewMachine(opts...)
	doc := &ir.Document{}
	for {
		l, err := lx.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, m.lexError(err)
		}
		ev, err := m.Feed(l)
		if err != nil {
			return nil, err
		}
		apply(doc, ev)
	}
	ev, err := m.Close()
	if err != nil {
		return nil, err
	}
	apply(doc, ev)
	doc.Trailing = m.Trailing()
	doc.NoFinalNewline = !lx.FinalNewline()
	return doc, nil
}

func ParseString(s string, opts ...ParseOption) (*ir.Document, error) {
	return Parse([]byte(s), opts...)
}

func apply(doc *ir.Document, ev *Event) {
	if ev == nil {
		return
	}
	switch ev.Type {
	case EventHeader:
		doc.Header = ev.Header
	case EventStanza:
		doc.Stanzas = append(doc.Stanzas, ev.Stanza)
	}
}
