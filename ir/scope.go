package ir

// IDScope selects how widely stanza identifiers must be unique.
type IDScope int

const (
	// ScopeKindNamespace requires ids to be unique among stanzas of the
	// same kind and identifier prefix. The same id may name a Term and a
	// Typedef.
	ScopeKindNamespace IDScope = iota
	// ScopeGlobal requires ids to be unique across the whole document.
	ScopeGlobal
)

func (s IDScope) String() string {
	switch s {
	case ScopeKindNamespace:
		return "kind+namespace"
	case ScopeGlobal:
		return "global"
	}
	return "<unknown scope>"
}

type idKey struct {
	kind Kind
	ns   string
	id   string
}

// IDIndex tracks the identifiers seen so far within a scope.
type IDIndex struct {
	scope IDScope
	seen  map[idKey]struct{}
}

func NewIDIndex(scope IDScope) *IDIndex {
	return &IDIndex{scope: scope, seen: map[idKey]struct{}{}}
}

func (x *IDIndex) key(k Kind, id string) idKey {
	if x.scope == ScopeGlobal {
		return idKey{id: id}
	}
	return idKey{kind: k, ns: Namespace(id), id: id}
}

// Add records id for kind k. It returns a *DuplicateIDError if the id was
// already recorded within the scope.
func (x *IDIndex) Add(k Kind, id string) error {
	key := x.key(k, id)
	if _, ok := x.seen[key]; ok {
		return &DuplicateIDError{Kind: k, ID: id}
	}
	x.seen[key] = struct{}{}
	return nil
}

func (x *IDIndex) Has(k Kind, id string) bool {
	_, ok := x.seen[x.key(k, id)]
	return ok
}

func (x *IDIndex) Len() int {
	return len(x.seen)
}
