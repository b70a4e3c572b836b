package parse

import "github.com/signadot/obo-format/go-obo/ir"

type parseOpts struct {
	scope  ir.IDScope
	source bool
}

func defaultOpts() *parseOpts {
	return &parseOpts{scope: ir.ScopeKindNamespace, source: true}
}

type ParseOption func(*parseOpts)

// IDScope sets how widely stanza ids must be unique.
func IDScope(s ir.IDScope) ParseOption {
	return func(o *parseOpts) { o.scope = s }
}

// ParseSource controls whether raw source text and blank/comment trivia are
// recorded on tags and stanzas. Strict encoding needs it; it is on by
// default.
func ParseSource(v bool) ParseOption {
	return func(o *parseOpts) { o.source = v }
}
