// Package ir provides the in-memory model of OBO documents.
//
// # Overview
//
// A [Document] holds an ordered list of header tags and an ordered list of
// stanzas. A [Stanza] is a kind ([TermKind], [TypedefKind], [InstanceKind])
// and an ordered list of [Tag]s. Repeated tags are kept in the order they
// were read; that order is part of the document.
//
// The tag list is the source of truth. Typed accessors such as
// [Stanza.ID], [Stanza.IsAEdges], [Stanza.Relationships] and
// [Stanza.IsObsolete] scan it on each call, so tags the package has no
// accessor for still survive a round trip.
//
// # Values
//
// Each tag carries a [Value], a closed tagged union:
//
//   - [PlainString]: free text, the fallback for unknown tags
//   - [QuotedDefinition]: `"text" [xref, ...]`
//   - [Identifier] and [IdentifierWithComment]: `id` and `is_a` style tags
//   - [Relationship]: `relationship: typedef target`
//   - [Boolean]: exactly `true` or `false`
//   - [Synonym] and [XrefValue]
//
// Header clauses with a fixed shape get their own values: [Date],
// [Subsetdef], [SynonymTypedef], [Idspace] and [TreatXrefs]. `import` and
// `default-namespace` carry an [Identifier]. A header clause that does not
// fit its shape is kept as a [PlainString].
//
// # Building
//
// [Builder] constructs documents programmatically. It places `id:` first in
// every stanza and rejects duplicate ids within the configured [IDScope].
//
// # Related Packages
//
//   - github.com/signadot/obo-format/go-obo/parse - Parse text to a Document
//   - github.com/signadot/obo-format/go-obo/encode - Encode a Document to text
package ir
