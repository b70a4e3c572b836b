package encode

import (
	"strconv"
	"strings"

	"github.com/signadot/obo-format/go-obo/ir"
	"github.com/signadot/obo-format/go-obo/token"
)

// ValueString returns the canonical OBO text of v, without any trailing
// comment.
func ValueString(v ir.Value) string {
	return valueString(v, &EncState{})
}

func (es *EncState) color(t ir.ValueType, a ColorAttr, s string) string {
	if es.Color == nil || s == "" {
		return s
	}
	return es.Color(t, a, s)
}

func valueString(v ir.Value, es *EncState) string {
	t := v.Type()
	switch x := v.(type) {
	case ir.PlainString:
		return es.color(t, ValueColor, token.EscapePlain(x.Text))
	case ir.QuotedDefinition:
		return es.color(t, ValueColor, token.Quote(x.Text)) + " " + xrefList(x.Xrefs, t, es)
	case ir.Identifier:
		return es.color(t, ValueColor, token.EscapeIdent(x.ID))
	case ir.IdentifierWithComment:
		return es.color(t, ValueColor, token.EscapeIdent(x.ID))
	case ir.Relationship:
		return es.color(t, ValueColor, token.EscapeIdent(x.Typedef)) + " " +
			es.color(t, ValueColor, token.EscapeIdent(x.Target))
	case ir.Boolean:
		return es.color(t, ValueColor, strconv.FormatBool(x.Value))
	case ir.Synonym:
		parts := []string{es.color(t, ValueColor, token.Quote(x.Text))}
		if x.Scope != "" {
			parts = append(parts, x.Scope)
		}
		if x.TypeID != "" {
			parts = append(parts, token.EscapeIdent(x.TypeID))
		}
		parts = append(parts, xrefList(x.Xrefs, t, es))
		return strings.Join(parts, " ")
	case ir.XrefValue:
		return xrefString(x.Xref, t, es)
	case ir.Date:
		return es.color(t, ValueColor, x.Time.Format(ir.DateLayout))
	case ir.Subsetdef:
		return es.color(t, ValueColor, token.EscapeIdent(x.ID)) + " " +
			es.color(t, ValueColor, token.Quote(x.Description))
	case ir.SynonymTypedef:
		res := es.color(t, ValueColor, token.EscapeIdent(x.ID)) + " " +
			es.color(t, ValueColor, token.Quote(x.Description))
		if x.Scope != "" {
			res += " " + x.Scope
		}
		return res
	case ir.Idspace:
		res := es.color(t, ValueColor, token.EscapeIdent(x.Prefix)) + " " +
			es.color(t, XrefColor, token.EscapeIdent(x.URL))
		if x.Description != "" {
			res += " " + es.color(t, ValueColor, token.Quote(x.Description))
		}
		return res
	case ir.TreatXrefs:
		parts := []string{es.color(t, ValueColor, token.EscapeIdent(x.Prefix))}
		for _, id := range []string{x.Relation, x.Class} {
			if id != "" {
				parts = append(parts, es.color(t, ValueColor, token.EscapeIdent(id)))
			}
		}
		return strings.Join(parts, " ")
	}
	return ""
}

// xrefList always writes the brackets, even for an empty list.
func xrefList(xs []ir.Xref, t ir.ValueType, es *EncState) string {
	b := &strings.Builder{}
	b.WriteString(es.color(t, SepColor, "["))
	for i := range xs {
		if i > 0 {
			b.WriteString(es.color(t, SepColor, ","))
			b.WriteByte(' ')
		}
		b.WriteString(xrefString(xs[i], t, es))
	}
	b.WriteString(es.color(t, SepColor, "]"))
	return b.String()
}

func xrefString(x ir.Xref, t ir.ValueType, es *EncState) string {
	res := es.color(t, XrefColor, token.EscapeIdent(x.ID))
	if x.Description != "" {
		res += " " + es.color(t, ValueColor, token.Quote(x.Description))
	}
	return res
}

func qualifierString(qs []ir.Qualifier, t ir.ValueType, es *EncState) string {
	parts := make([]string, len(qs))
	for i, q := range qs {
		parts[i] = token.EscapeIdent(q.Key) + "=" + token.Quote(q.Value)
	}
	return es.color(t, QualifierColor, "{"+strings.Join(parts, ", ")+"}")
}

// refTarget returns the id a reference valued tag points at.
func refTarget(v ir.Value) string {
	switch x := v.(type) {
	case ir.IdentifierWithComment:
		return x.ID
	case ir.Relationship:
		return x.Target
	}
	return ""
}

func (es *EncState) comment(t *ir.Tag) string {
	switch es.comments {
	case CommentsDrop:
		return ""
	case CommentsRegenerate:
		if id := refTarget(t.Value); id != "" && es.labels != nil {
			if l, ok := es.labels(id); ok {
				return l
			}
		}
	}
	return t.TrailingComment()
}
