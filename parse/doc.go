// Package parse parses OBO 1.2/1.4 text into an ir.Document.
//
// # Usage
//
//	doc, err := parse.Parse(data)
//	if err != nil {
//	    return err
//	}
//
//	// Parse with options
//	doc, err := parse.Parse(data, parse.IDScope(ir.ScopeGlobal))
//
// Parsing is line oriented. Logical lines from the token package are fed to
// a Machine which builds the header and one stanza at a time; Reader exposes
// the stanzas as they complete. Errors are *Error values carrying the line
// number and wrap one of the ir sentinel errors, so callers can test them
// with errors.Is:
//
//	if errors.Is(err, ir.ErrDuplicateID) { ... }
//
// By default every tag and stanza records its raw source text and the
// blank and comment lines preceding it, which lets the encode package
// reproduce the input byte for byte.
//
// # Related Packages
//
//   - github.com/signadot/obo-format/go-obo/ir - document model
//   - github.com/signadot/obo-format/go-obo/encode - serialization
//   - github.com/signadot/obo-format/go-obo/token - line lexing
package parse
