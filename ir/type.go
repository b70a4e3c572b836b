package ir

import "fmt"

// Kind is the kind of a stanza, given by its bracketed marker.
type Kind int

const (
	TermKind Kind = iota
	TypedefKind
	InstanceKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		TermKind:     "Term",
		TypedefKind:  "Typedef",
		InstanceKind: "Instance",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, err := ParseKind(string(d))
	if err != nil {
		return err
	}
	*k = kk
	return nil
}

// ParseKind maps a stanza marker name to its Kind.
func ParseKind(v string) (Kind, error) {
	k, ok := map[string]Kind{
		"Term":     TermKind,
		"Typedef":  TypedefKind,
		"Instance": InstanceKind,
	}[v]
	if !ok {
		return 0, fmt.Errorf("%w: unrecognized stanza kind %q", ErrMalformedStanza, v)
	}
	return k, nil
}

func Kinds() []Kind {
	return []Kind{
		TermKind,
		TypedefKind,
		InstanceKind,
	}
}

// ValueType discriminates the variants of Value.
type ValueType int

const (
	PlainStringType ValueType = iota
	QuotedDefinitionType
	IdentifierType
	IdentifierWithCommentType
	RelationshipType
	BooleanType
	SynonymType
	XrefType
	DateType
	SubsetdefType
	SynonymTypedefType
	IdspaceType
	TreatXrefsType
)

func (t ValueType) String() string {
	s, ok := map[ValueType]string{
		PlainStringType:           "PlainString",
		QuotedDefinitionType:      "QuotedDefinition",
		IdentifierType:            "Identifier",
		IdentifierWithCommentType: "IdentifierWithComment",
		RelationshipType:          "Relationship",
		BooleanType:               "Boolean",
		SynonymType:               "Synonym",
		XrefType:                  "Xref",
		DateType:                  "Date",
		SubsetdefType:             "Subsetdef",
		SynonymTypedefType:        "SynonymTypedef",
		IdspaceType:               "Idspace",
		TreatXrefsType:            "TreatXrefs",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t ValueType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func ValueTypes() []ValueType {
	return []ValueType{
		PlainStringType,
		QuotedDefinitionType,
		IdentifierType,
		IdentifierWithCommentType,
		RelationshipType,
		BooleanType,
		SynonymType,
		XrefType,
		DateType,
		SubsetdefType,
		SynonymTypedefType,
		IdspaceType,
		TreatXrefsType,
	}
}
