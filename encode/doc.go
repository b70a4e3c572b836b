// Package encode writes an ir.Document as OBO text, or exports it as YAML
// or JSON.
//
// # Usage
//
//	// Canonical OBO text
//	err := encode.Encode(doc, w)
//
//	// Reproduce parsed input byte for byte
//	err := encode.Encode(doc, w, encode.EncodeStrict(true))
//
//	// Keep original blank lines, replace reference comments by labels
//	err := encode.Encode(doc, w,
//	    encode.EncodeBlankLines(encode.BlankPreserve),
//	    encode.EncodeComments(encode.CommentsRegenerate))
//
//	// Structured export
//	err := encode.Encode(doc, w, encode.EncodeFormat(format.JSONFormat))
//
// Canonical output orders stanza tags as id, name and def, then other tags
// in their original order, then is_a and relationship, then is_obsolete and
// comment. Definitions and synonyms always carry a bracketed xref list.
//
// # Related Packages
//
//   - github.com/signadot/obo-format/go-obo/ir - document model
//   - github.com/signadot/obo-format/go-obo/parse - parse OBO text
package encode
