// Package obo reads and writes OBO 1.2/1.4 ontology files.
//
// The heavy lifting is done by the parse, ir and encode packages; this
// package ties them together and adds round trip checks and stanza
// queries.
//
//	doc, err := obo.Parse(data)
//	if err != nil {
//	    return err
//	}
//	out, err := obo.Serialize(doc)
//
//	// exact reproduction of the input
//	if err := obo.Verify(data); err != nil { ... }
//
//	// obsolete terms in the MS namespace
//	terms, err := obo.Select(doc, `kind == "Term" && namespace == "MS" && obsolete`)
//
// # Related Packages
//
//   - github.com/signadot/obo-format/go-obo/ir - document model
//   - github.com/signadot/obo-format/go-obo/parse - parsing
//   - github.com/signadot/obo-format/go-obo/encode - serialization
package obo
