package encode

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/signadot/obo-format/go-obo/format"
	"github.com/signadot/obo-format/go-obo/ir"
)

// DocView is the structured export of a document used for YAML and JSON
// output.
type DocView struct {
	Header  []TagView    `json:"header,omitempty" yaml:"header,omitempty"`
	Stanzas []StanzaView `json:"stanzas" yaml:"stanzas"`
}

type StanzaView struct {
	Kind ir.Kind   `json:"kind" yaml:"kind"`
	ID   string    `json:"id" yaml:"id"`
	Tags []TagView `json:"tags" yaml:"tags"`
}

type TagView struct {
	Name       string          `json:"name" yaml:"name"`
	Type       ir.ValueType    `json:"type" yaml:"type"`
	Value      any             `json:"value" yaml:"value"`
	Qualifiers []QualifierView `json:"qualifiers,omitempty" yaml:"qualifiers,omitempty"`
	Comment    string          `json:"comment,omitempty" yaml:"comment,omitempty"`
}

type QualifierView struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

type XrefView struct {
	ID          string `json:"id" yaml:"id"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

type DefView struct {
	Text  string     `json:"text" yaml:"text"`
	Xrefs []XrefView `json:"xrefs" yaml:"xrefs"`
}

type RelationshipView struct {
	Typedef string `json:"typedef" yaml:"typedef"`
	Target  string `json:"target" yaml:"target"`
}

type SynonymView struct {
	Text  string     `json:"text" yaml:"text"`
	Scope string     `json:"scope,omitempty" yaml:"scope,omitempty"`
	Type  string     `json:"type,omitempty" yaml:"type,omitempty"`
	Xrefs []XrefView `json:"xrefs" yaml:"xrefs"`
}

type SubsetdefView struct {
	ID          string `json:"id" yaml:"id"`
	Description string `json:"description" yaml:"description"`
}

type SynonymTypedefView struct {
	ID          string `json:"id" yaml:"id"`
	Description string `json:"description" yaml:"description"`
	Scope       string `json:"scope,omitempty" yaml:"scope,omitempty"`
}

type IdspaceView struct {
	Prefix      string `json:"prefix" yaml:"prefix"`
	URL         string `json:"url" yaml:"url"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

type TreatXrefsView struct {
	Prefix   string `json:"prefix" yaml:"prefix"`
	Relation string `json:"relation,omitempty" yaml:"relation,omitempty"`
	Class    string `json:"class,omitempty" yaml:"class,omitempty"`
}

// View returns the structured export of doc. Source positions and trivia
// are not included.
func View(doc *ir.Document) *DocView {
	res := &DocView{Stanzas: make([]StanzaView, 0, len(doc.Stanzas))}
	for i := range doc.Header {
		res.Header = append(res.Header, tagView(&doc.Header[i]))
	}
	for _, s := range doc.Stanzas {
		sv := StanzaView{Kind: s.Kind, ID: s.ID(), Tags: make([]TagView, 0, len(s.Tags))}
		for i := range s.Tags {
			sv.Tags = append(sv.Tags, tagView(&s.Tags[i]))
		}
		res.Stanzas = append(res.Stanzas, sv)
	}
	return res
}

func tagView(t *ir.Tag) TagView {
	res := TagView{Name: t.Name, Comment: t.TrailingComment()}
	if t.Value != nil {
		res.Type = t.Value.Type()
		res.Value = valueView(t.Value)
	}
	for _, q := range t.Qualifiers {
		res.Qualifiers = append(res.Qualifiers, QualifierView(q))
	}
	return res
}

func valueView(v ir.Value) any {
	switch x := v.(type) {
	case ir.PlainString:
		return x.Text
	case ir.QuotedDefinition:
		return DefView{Text: x.Text, Xrefs: xrefViews(x.Xrefs)}
	case ir.Identifier:
		return x.ID
	case ir.IdentifierWithComment:
		return x.ID
	case ir.Relationship:
		return RelationshipView{Typedef: x.Typedef, Target: x.Target}
	case ir.Boolean:
		return x.Value
	case ir.Synonym:
		return SynonymView{Text: x.Text, Scope: x.Scope, Type: x.TypeID, Xrefs: xrefViews(x.Xrefs)}
	case ir.XrefValue:
		return XrefView(x.Xref)
	case ir.Date:
		return x.Time.Format(ir.DateLayout)
	case ir.Subsetdef:
		return SubsetdefView(x)
	case ir.SynonymTypedef:
		return SynonymTypedefView(x)
	case ir.Idspace:
		return IdspaceView(x)
	case ir.TreatXrefs:
		return TreatXrefsView(x)
	}
	return nil
}

func xrefViews(xs []ir.Xref) []XrefView {
	res := make([]XrefView, len(xs))
	for i, x := range xs {
		res[i] = XrefView(x)
	}
	return res
}

func encodeStructured(doc *ir.Document, w io.Writer, es *EncState) error {
	v := View(doc)
	switch es.format {
	case format.YAMLFormat:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("%w: %w", ErrEncoding, err)
		}
		return enc.Close()
	case format.JSONFormat:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("%w: %w", ErrEncoding, err)
		}
		return nil
	}
	return fmt.Errorf("%w: unsupported format %s", ErrEncoding, es.format)
}
