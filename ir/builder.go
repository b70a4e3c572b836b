package ir

import (
	"fmt"

	"github.com/signadot/obo-format/go-obo/debug"
)

// Builder constructs a Document programmatically.
//
// Builder methods return the builder so calls can be chained; the first
// error encountered is kept and returned by Finalize, and later calls are
// ignored. A Builder is meant for a single goroutine.
type Builder struct {
	scope IDScope
	doc   *Document
	cur   *Stanza
	index *IDIndex
	err   error
	done  bool
}

type BuilderOption func(*Builder)

// WithIDScope sets the identifier uniqueness scope. The default is
// ScopeKindNamespace.
func WithIDScope(s IDScope) BuilderOption {
	return func(b *Builder) { b.scope = s }
}

func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{doc: &Document{}}
	for _, opt := range opts {
		opt(b)
	}
	b.index = NewIDIndex(b.scope)
	return b
}

func (b *Builder) usable() bool {
	if b.err != nil {
		return false
	}
	if b.done {
		b.err = fmt.Errorf("%w: builder already finalized", ErrBuild)
		return false
	}
	return true
}

// AddHeaderTag appends a header tag. Header tags must be added before the
// first stanza.
func (b *Builder) AddHeaderTag(name string, v Value) *Builder {
	return b.AddHeader(NewTag(name, v))
}

func (b *Builder) AddHeader(t Tag) *Builder {
	if !b.usable() {
		return b
	}
	if b.cur != nil || len(b.doc.Stanzas) != 0 {
		b.err = fmt.Errorf("%w: header tag %q after first stanza", ErrBuild, t.Name)
		return b
	}
	if t.Value == nil {
		b.err = fmt.Errorf("%w: header tag %q has no value", ErrBuild, t.Name)
		return b
	}
	b.doc.Header = append(b.doc.Header, t)
	return b
}

// NewStanza closes the current stanza, if any, and opens a new one whose
// first tag is `id: id`.
func (b *Builder) NewStanza(k Kind, id string) *Builder {
	if !b.usable() {
		return b
	}
	b.closeStanza()
	if b.err != nil {
		return b
	}
	if id == "" {
		b.err = fmt.Errorf("%w: %s stanza without id", ErrMissingRequiredTag, k)
		return b
	}
	b.cur = &Stanza{Kind: k, Tags: []Tag{NewTag("id", Identifier{ID: id})}}
	return b
}

// AddTag appends a tag to the current stanza.
func (b *Builder) AddTag(name string, v Value) *Builder {
	return b.Add(NewTag(name, v))
}

// Add appends t, qualifiers and comment included, to the current stanza.
func (b *Builder) Add(t Tag) *Builder {
	if !b.usable() {
		return b
	}
	if b.cur == nil {
		b.err = fmt.Errorf("%w: tag %q before first stanza", ErrBuild, t.Name)
		return b
	}
	if t.Value == nil {
		b.err = fmt.Errorf("%w: tag %q has no value", ErrBuild, t.Name)
		return b
	}
	if t.Name == "id" {
		b.err = fmt.Errorf("second id tag: %w", &DuplicateIDError{Kind: b.cur.Kind, ID: b.cur.ID()})
		return b
	}
	b.cur.Tags = append(b.cur.Tags, t)
	return b
}

func (b *Builder) closeStanza() {
	if b.cur == nil {
		return
	}
	s := b.cur
	b.cur = nil
	if err := b.index.Add(s.Kind, s.ID()); err != nil {
		b.err = err
		return
	}
	if debug.Build() {
		debug.Logger().Debug("build stanza", "kind", s.Kind.String(), "id", s.ID(), "tags", len(s.Tags))
	}
	b.doc.Stanzas = append(b.doc.Stanzas, s)
}

// Err returns the first error recorded by the builder.
func (b *Builder) Err() error {
	return b.err
}

// Finalize closes the current stanza and returns the document. It fails
// with a *DuplicateIDError if two stanzas share an id within the scope.
func (b *Builder) Finalize() (*Document, error) {
	if !b.usable() {
		return nil, b.err
	}
	b.closeStanza()
	if b.err != nil {
		return nil, b.err
	}
	b.done = true
	return b.doc, nil
}
