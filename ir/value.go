package ir

// Value is the structured value of a tag. Stanza tags carry one of
// PlainString, QuotedDefinition, Identifier, IdentifierWithComment,
// Relationship, Boolean, Synonym or XrefValue. Header tags may also carry
// Date, Subsetdef, SynonymTypedef, Idspace or TreatXrefs.
type Value interface {
	Type() ValueType
	isValue()
}

// PlainString is free text with escapes resolved. Tags the grammar does not
// know about always carry a PlainString.
type PlainString struct {
	Text string
}

// QuotedDefinition is the value of a def: tag, `"text" [xref, ...]`.
// Xrefs is empty, not nil, when the bracket list is empty or absent.
type QuotedDefinition struct {
	Text  string
	Xrefs []Xref
}

type Identifier struct {
	ID string
}

// IdentifierWithComment is a single identifier followed by an optional
// human readable comment, as in `is_a: MS:1000548 ! sample attribute`.
type IdentifierWithComment struct {
	ID      string
	Comment string
}

// Relationship is a typedef/target pair, as in
// `relationship: part_of GO:0005634 ! nucleus`.
type Relationship struct {
	Typedef string
	Target  string
	Comment string
}

type Boolean struct {
	Value bool
}

// Synonym scopes.
const (
	ScopeExact   = "EXACT"
	ScopeBroad   = "BROAD"
	ScopeNarrow  = "NARROW"
	ScopeRelated = "RELATED"
)

// Synonym is the value of a synonym: tag,
// `"text" SCOPE [TYPE] [xref, ...]`. Scope and TypeID may be empty.
type Synonym struct {
	Text   string
	Scope  string
	TypeID string
	Xrefs  []Xref
}

// XrefValue is the value of an xref: tag.
type XrefValue struct {
	Xref Xref
}

// Xref is a cross reference with an optional quoted description. An empty
// description is not written.
type Xref struct {
	ID          string
	Description string
}

// Qualifier is one entry of a trailing modifier list,
// `{key="value", ...}`.
type Qualifier struct {
	Key   string
	Value string
}

func (PlainString) Type() ValueType           { return PlainStringType }
func (QuotedDefinition) Type() ValueType      { return QuotedDefinitionType }
func (Identifier) Type() ValueType            { return IdentifierType }
func (IdentifierWithComment) Type() ValueType { return IdentifierWithCommentType }
func (Relationship) Type() ValueType          { return RelationshipType }
func (Boolean) Type() ValueType               { return BooleanType }
func (Synonym) Type() ValueType               { return SynonymType }
func (XrefValue) Type() ValueType             { return XrefType }

func (PlainString) isValue()           {}
func (QuotedDefinition) isValue()      {}
func (Identifier) isValue()            {}
func (IdentifierWithComment) isValue() {}
func (Relationship) isValue()          {}
func (Boolean) isValue()               {}
func (Synonym) isValue()               {}
func (XrefValue) isValue()             {}

// ValueComment returns the comment carried by identifier valued tags.
func ValueComment(v Value) (string, bool) {
	switch x := v.(type) {
	case IdentifierWithComment:
		return x.Comment, true
	case Relationship:
		return x.Comment, true
	}
	return "", false
}

// WithValueComment returns v with its comment replaced. Values that do not
// carry a comment are returned unchanged.
func WithValueComment(v Value, comment string) Value {
	switch x := v.(type) {
	case IdentifierWithComment:
		x.Comment = comment
		return x
	case Relationship:
		x.Comment = comment
		return x
	}
	return v
}

// Text returns the textual content of v: the text of strings, definitions
// and synonyms, the identifier of identifier values and "true"/"false" for
// booleans.
func Text(v Value) string {
	switch x := v.(type) {
	case PlainString:
		return x.Text
	case QuotedDefinition:
		return x.Text
	case Identifier:
		return x.ID
	case IdentifierWithComment:
		return x.ID
	case Relationship:
		return x.Typedef + " " + x.Target
	case Boolean:
		if x.Value {
			return "true"
		}
		return "false"
	case Synonym:
		return x.Text
	case XrefValue:
		return x.Xref.ID
	case Date:
		return x.Time.Format(DateLayout)
	case Subsetdef:
		return x.ID
	case SynonymTypedef:
		return x.ID
	case Idspace:
		return x.Prefix
	case TreatXrefs:
		return x.Prefix
	}
	return ""
}
