package ir

import "time"

// DateLayout is the layout of the date: header clause, dd:MM:yyyy HH:mm.
const DateLayout = "02:01:2006 15:04"

// Date is the value of the date: header clause.
type Date struct {
	Time time.Time
}

// Subsetdef declares a subset, `subsetdef: ID "description"`.
type Subsetdef struct {
	ID          string
	Description string
}

// SynonymTypedef declares a synonym type,
// `synonymtypedef: ID "description" [SCOPE]`. Scope may be empty.
type SynonymTypedef struct {
	ID          string
	Description string
	Scope       string
}

// Idspace maps an id prefix to a URL, `idspace: PREFIX URL ["description"]`.
type Idspace struct {
	Prefix      string
	URL         string
	Description string
}

// TreatXrefs is the value of the treat-xrefs-as-* header clauses. Relation
// and Class are set only by the clauses that take them.
type TreatXrefs struct {
	Prefix   string
	Relation string
	Class    string
}

func (Date) Type() ValueType           { return DateType }
func (Subsetdef) Type() ValueType      { return SubsetdefType }
func (SynonymTypedef) Type() ValueType { return SynonymTypedefType }
func (Idspace) Type() ValueType        { return IdspaceType }
func (TreatXrefs) Type() ValueType     { return TreatXrefsType }

func (Date) isValue()           {}
func (Subsetdef) isValue()      {}
func (SynonymTypedef) isValue() {}
func (Idspace) isValue()        {}
func (TreatXrefs) isValue()     {}

// Subsetdefs returns the subsets declared in the header.
func (d *Document) Subsetdefs() []Subsetdef {
	var res []Subsetdef
	for i := range d.Header {
		if v, ok := d.Header[i].Value.(Subsetdef); ok {
			res = append(res, v)
		}
	}
	return res
}

// SynonymTypedefs returns the synonym types declared in the header.
func (d *Document) SynonymTypedefs() []SynonymTypedef {
	var res []SynonymTypedef
	for i := range d.Header {
		if v, ok := d.Header[i].Value.(SynonymTypedef); ok {
			res = append(res, v)
		}
	}
	return res
}

func (d *Document) Idspaces() []Idspace {
	var res []Idspace
	for i := range d.Header {
		if v, ok := d.Header[i].Value.(Idspace); ok {
			res = append(res, v)
		}
	}
	return res
}

// Imports returns the targets of the import: header clauses.
func (d *Document) Imports() []string {
	var res []string
	for i := range d.Header {
		t := &d.Header[i]
		if t.Name != "import" {
			continue
		}
		if v, ok := t.Value.(Identifier); ok {
			res = append(res, v.ID)
		}
	}
	return res
}

// Date returns the date: header clause, if present and well formed.
func (d *Document) Date() (time.Time, bool) {
	for i := range d.Header {
		if v, ok := d.Header[i].Value.(Date); ok {
			return v.Time, true
		}
	}
	return time.Time{}, false
}

// DefaultNamespace returns the default-namespace header value, or "".
func (d *Document) DefaultNamespace() string {
	v, _ := d.HeaderValue("default-namespace")
	return v
}
