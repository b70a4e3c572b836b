package parse

import (
	"fmt"
	"io"

	"github.com/signadot/obo-format/go-obo/ir"
	"github.com/signadot/obo-format/go-obo/token"
)

// Reader parses a document one stanza at a time, so that memory use is
// bounded by the largest stanza rather than the document.
//
//	r := parse.NewReader(f)
//	header, err := r.Header()
//	...
//	for {
//	    s, err := r.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    process(s)
//	}
//
// Duplicate id detection still spans the whole document.
type Reader struct {
	lx     *token.Lexer
	m      *Machine
	header []ir.Tag
	gotHdr bool
	next   *ir.Stanza
	err    error
	eof    bool
}

func NewReader(r io.Reader, opts ...ParseOption) *Reader {
	return &Reader{lx: token.NewLexer(r), m: NewMachine(opts...)}
}

// Header returns the header tags, reading up to the first stanza marker.
func (r *Reader) Header() ([]ir.Tag, error) {
	for !r.gotHdr {
		if err := r.step(); err != nil {
			return nil, err
		}
	}
	return r.header, nil
}

// Next returns the next stanza, or io.EOF after the last one.
func (r *Reader) Next() (*ir.Stanza, error) {
	for r.next == nil {
		if err := r.step(); err != nil {
			return nil, err
		}
	}
	s := r.next
	r.next = nil
	return s, nil
}

// Trailing returns the trivia after the last stanza once Next has returned
// io.EOF.
func (r *Reader) Trailing() []string {
	return r.m.Trailing()
}

func (r *Reader) step() error {
	if r.err != nil {
		return r.err
	}
	if r.eof {
		return io.EOF
	}
	var ev *Event
	l, err := r.lx.Next()
	switch {
	case err == io.EOF:
		r.eof = true
		ev, err = r.m.Close()
	case err != nil:
		err = r.m.lexError(err)
	default:
		ev, err = r.m.Feed(l)
	}
	if err != nil {
		r.err = err
		return err
	}
	if ev == nil {
		return nil
	}
	switch ev.Type {
	case EventHeader:
		r.header = ev.Header
		r.gotHdr = true
	case EventStanza:
		r.next = ev.Stanza
	default:
		r.err = fmt.Errorf("%w: unexpected event %d", errInternal, ev.Type)
		return r.err
	}
	return nil
}
