package ir

import "strings"

// Stanza is a bracketed block of tags describing one entity. The tag list is
// the source of truth; the accessors below are projections of it computed
// on each call.
type Stanza struct {
	Kind Kind
	Tags []Tag

	// Source describes the stanza marker line.
	Source Source
}

// ID returns the value of the id: tag, or "" if there is none.
func (s *Stanza) ID() string {
	if t, ok := s.Tag("id"); ok {
		return t.Text()
	}
	return ""
}

func (s *Stanza) Name() string {
	if t, ok := s.Tag("name"); ok {
		return t.Text()
	}
	return ""
}

// Namespace returns the identifier prefix of the stanza id.
func (s *Stanza) Namespace() string {
	return Namespace(s.ID())
}

// Tag returns the first tag called name.
func (s *Stanza) Tag(name string) (Tag, bool) {
	for i := range s.Tags {
		if s.Tags[i].Name == name {
			return s.Tags[i], true
		}
	}
	return Tag{}, false
}

// TagsNamed returns every tag called name, in order.
func (s *Stanza) TagsNamed(name string) []Tag {
	var res []Tag
	for i := range s.Tags {
		if s.Tags[i].Name == name {
			res = append(res, s.Tags[i])
		}
	}
	return res
}

// IsObsolete reports whether the stanza carries `is_obsolete: true`.
func (s *Stanza) IsObsolete() bool {
	return s.flag("is_obsolete")
}

// IsTransitive reports whether a Typedef carries `is_transitive: true`.
// It is always false for other kinds.
func (s *Stanza) IsTransitive() bool {
	if s.Kind != TypedefKind {
		return false
	}
	return s.flag("is_transitive")
}

func (s *Stanza) flag(name string) bool {
	for i := range s.Tags {
		if s.Tags[i].Name != name {
			continue
		}
		if b, ok := s.Tags[i].Value.(Boolean); ok && b.Value {
			return true
		}
	}
	return false
}

// IsA returns the is_a: values in order, comments included.
func (s *Stanza) IsA() []IdentifierWithComment {
	var res []IdentifierWithComment
	for i := range s.Tags {
		t := &s.Tags[i]
		if t.Name != "is_a" {
			continue
		}
		switch v := t.Value.(type) {
		case IdentifierWithComment:
			res = append(res, v)
		case Identifier:
			res = append(res, IdentifierWithComment{ID: v.ID})
		}
	}
	return res
}

// IsAEdges returns the targets of the is_a: tags in order.
func (s *Stanza) IsAEdges() []string {
	isa := s.IsA()
	res := make([]string, len(isa))
	for i := range isa {
		res[i] = isa[i].ID
	}
	return res
}

// Relationships returns the relationship: values in order.
func (s *Stanza) Relationships() []Relationship {
	var res []Relationship
	for i := range s.Tags {
		if s.Tags[i].Name != "relationship" {
			continue
		}
		if r, ok := s.Tags[i].Value.(Relationship); ok {
			res = append(res, r)
		}
	}
	return res
}

// Def returns the definition of the stanza, if any.
func (s *Stanza) Def() (QuotedDefinition, bool) {
	t, ok := s.Tag("def")
	if !ok {
		return QuotedDefinition{}, false
	}
	d, ok := t.Value.(QuotedDefinition)
	return d, ok
}

// Xrefs returns the xref: values in order.
func (s *Stanza) Xrefs() []Xref {
	var res []Xref
	for i := range s.Tags {
		if x, ok := s.Tags[i].Value.(XrefValue); ok && s.Tags[i].Name == "xref" {
			res = append(res, x.Xref)
		}
	}
	return res
}

// Synonyms returns the synonym values in order, OBO 1.2 scoped synonym
// tags included. Those report the scope their tag name implies when no
// scope word was written.
func (s *Stanza) Synonyms() []Synonym {
	var res []Synonym
	for i := range s.Tags {
		if syn, ok := s.Tags[i].Value.(Synonym); ok {
			if syn.Scope == "" {
				syn.Scope = ImpliedScope(s.Tags[i].Name)
			}
			res = append(res, syn)
		}
	}
	return res
}

// ImpliedScope returns the synonym scope named by an OBO 1.2 synonym tag
// such as exact_synonym, or "" for any other tag.
func ImpliedScope(tag string) string {
	switch tag {
	case "exact_synonym":
		return ScopeExact
	case "broad_synonym":
		return ScopeBroad
	case "narrow_synonym":
		return ScopeNarrow
	case "related_synonym":
		return ScopeRelated
	}
	return ""
}

// Namespace returns the prefix of id before its first colon, or "" for
// unprefixed identifiers such as "part_of".
func Namespace(id string) string {
	if strings.Contains(id, "://") {
		return ""
	}
	prefix, _, found := strings.Cut(id, ":")
	if !found {
		return ""
	}
	return prefix
}
