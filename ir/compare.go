package ir

import "slices"

// Equal reports whether a and b are the same logical document. Source
// information and trivia are ignored, stanza tags are compared in canonical
// order and empty xref lists equal nil ones.
func Equal(a, b *Document) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if !TagsEqual(a.Header, b.Header) {
		return false
	}
	return slices.EqualFunc(a.Stanzas, b.Stanzas, StanzaEqual)
}

func StanzaEqual(a, b *Stanza) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Kind != b.Kind {
		return false
	}
	return TagsEqual(CanonicalTags(a.Tags), CanonicalTags(b.Tags))
}

// TagsEqual compares two tag lists position by position.
func TagsEqual(a, b []Tag) bool {
	return slices.EqualFunc(a, b, func(x, y Tag) bool {
		return TagEqual(&x, &y)
	})
}

func TagEqual(a, b *Tag) bool {
	return a.Name == b.Name &&
		a.Comment == b.Comment &&
		slices.Equal(a.Qualifiers, b.Qualifiers) &&
		ValueEqual(a.Value, b.Value)
}

func ValueEqual(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Type() != b.Type() {
		return false
	}
	switch x := a.(type) {
	case QuotedDefinition:
		y := b.(QuotedDefinition)
		return x.Text == y.Text && slices.Equal(x.Xrefs, y.Xrefs)
	case Synonym:
		y := b.(Synonym)
		return x.Text == y.Text && x.Scope == y.Scope && x.TypeID == y.TypeID &&
			slices.Equal(x.Xrefs, y.Xrefs)
	case Date:
		return x.Time.Equal(b.(Date).Time)
	}
	return a == b
}
