package parse

import (
	"fmt"
	"strings"
	"time"

	"github.com/signadot/obo-format/go-obo/debug"
	"github.com/signadot/obo-format/go-obo/ir"
	"github.com/signadot/obo-format/go-obo/token"
)

type grammar int

const (
	plainGrammar grammar = iota
	idGrammar
	identGrammar
	relationshipGrammar
	intersectionGrammar
	booleanGrammar
	defGrammar
	synonymGrammar
	xrefGrammar
	dateGrammar
	subsetdefGrammar
	synonymTypedefGrammar
	idspaceGrammar
	treatXrefsGrammar
)

var grammars = map[string]grammar{
	"id":                    idGrammar,
	"is_a":                  identGrammar,
	"alt_id":                identGrammar,
	"replaced_by":           identGrammar,
	"consider":              identGrammar,
	"subset":                identGrammar,
	"union_of":              identGrammar,
	"disjoint_from":         identGrammar,
	"inverse_of":            identGrammar,
	"transitive_over":       identGrammar,
	"equivalent_to":         identGrammar,
	"domain":                identGrammar,
	"range":                 identGrammar,
	"instance_of":           identGrammar,
	"relationship":          relationshipGrammar,
	"intersection_of":       intersectionGrammar,
	"is_obsolete":           booleanGrammar,
	"is_transitive":         booleanGrammar,
	"is_symmetric":          booleanGrammar,
	"is_anti_symmetric":     booleanGrammar,
	"is_asymmetric":         booleanGrammar,
	"is_reflexive":          booleanGrammar,
	"is_cyclic":             booleanGrammar,
	"is_functional":         booleanGrammar,
	"is_inverse_functional": booleanGrammar,
	"is_anonymous":          booleanGrammar,
	"builtin":               booleanGrammar,
	"is_metadata_tag":       booleanGrammar,
	"is_class_level":        booleanGrammar,
	"def":                   defGrammar,
	"synonym":               synonymGrammar,
	"exact_synonym":         synonymGrammar,
	"narrow_synonym":        synonymGrammar,
	"broad_synonym":         synonymGrammar,
	"related_synonym":       synonymGrammar,
	"xref":                  xrefGrammar,
}

var headerGrammars = map[string]grammar{
	"date":                                     dateGrammar,
	"import":                                   idGrammar,
	"default-namespace":                        idGrammar,
	"subsetdef":                                subsetdefGrammar,
	"synonymtypedef":                           synonymTypedefGrammar,
	"idspace":                                  idspaceGrammar,
	"treat-xrefs-as-equivalent":                treatXrefsGrammar,
	"treat-xrefs-as-is_a":                      treatXrefsGrammar,
	"treat-xrefs-as-has-subclass":              treatXrefsGrammar,
	"treat-xrefs-as-relationship":              treatXrefsGrammar,
	"treat-xrefs-as-genus-differentia":         treatXrefsGrammar,
	"treat-xrefs-as-reverse-genus-differentia": treatXrefsGrammar,
}

var treatXrefsArity = map[string]int{
	"treat-xrefs-as-equivalent":                1,
	"treat-xrefs-as-is_a":                      1,
	"treat-xrefs-as-has-subclass":              1,
	"treat-xrefs-as-relationship":              2,
	"treat-xrefs-as-genus-differentia":         3,
	"treat-xrefs-as-reverse-genus-differentia": 3,
}

func malformed(name, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ir.ErrMalformedValue, name, fmt.Sprintf(format, args...))
}

// ParseHeaderValue parses the raw value of a header tag. Clauses with a
// known shape get a typed value; anything else, including a known clause
// that does not fit its shape, is a PlainString.
func ParseHeaderValue(name, raw string) ir.Tag {
	g, ok := headerGrammars[name]
	if !ok {
		return parsePlain(name, raw)
	}
	body, comment, _, err := token.SplitComment(raw, true)
	if err != nil {
		return parsePlain(name, raw)
	}
	v, err := parseHeaderClause(name, g, body)
	if err == nil {
		return ir.Tag{Name: name, Value: v, Comment: comment}
	}
	plain := parsePlain(name, raw)
	// the escaped plain text must not read back as a typed clause
	escaped := token.EscapePlain(plain.Value.(ir.PlainString).Text)
	if v, perr := parseHeaderClause(name, g, escaped); perr == nil {
		plain.Value = v
		return plain
	}
	if debug.Parse() {
		debug.Logger().Debug("untyped header clause", "tag", name, "err", err.Error())
	}
	return plain
}

func parsePlain(name, raw string) ir.Tag {
	body, comment, _, err := token.SplitComment(raw, true)
	if err != nil {
		body, comment, _, _ = token.SplitComment(raw, false)
	}
	return ir.Tag{Name: name, Value: ir.PlainString{Text: token.Unescape(body)}, Comment: comment}
}

func parseHeaderClause(name string, g grammar, body string) (ir.Value, error) {
	switch g {
	case dateGrammar:
		t, err := time.Parse(ir.DateLayout, strings.TrimSpace(body))
		if err != nil {
			return nil, malformed(name, "%v", err)
		}
		return ir.Date{Time: t}, nil
	case idGrammar:
		fs := fields(body)
		if len(fs) != 1 {
			return nil, malformed(name, "expected one identifier, got %d", len(fs))
		}
		return ir.Identifier{ID: fs[0]}, nil
	case subsetdefGrammar:
		id, desc, rest, err := identAndQuote(name, body)
		if err != nil {
			return nil, err
		}
		if rest != "" {
			return nil, malformed(name, "unexpected %q", rest)
		}
		return ir.Subsetdef{ID: id, Description: desc}, nil
	case synonymTypedefGrammar:
		id, desc, rest, err := identAndQuote(name, body)
		if err != nil {
			return nil, err
		}
		v := ir.SynonymTypedef{ID: id, Description: desc}
		switch rest {
		case "":
		case ir.ScopeExact, ir.ScopeBroad, ir.ScopeNarrow, ir.ScopeRelated:
			v.Scope = rest
		default:
			return nil, malformed(name, "bad scope %q", rest)
		}
		return v, nil
	case idspaceGrammar:
		head, tail := body, ""
		if i := unescapedIndex(body, '"'); i >= 0 {
			head, tail = body[:i], body[i:]
		}
		fs := fields(head)
		if len(fs) != 2 {
			return nil, malformed(name, "expected prefix and url, got %d fields", len(fs))
		}
		v := ir.Idspace{Prefix: fs[0], URL: fs[1]}
		if tail != "" {
			desc, rest, err := token.ScanQuoted(tail)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			if strings.TrimSpace(rest) != "" {
				return nil, malformed(name, "unexpected %q", rest)
			}
			v.Description = desc
		}
		return v, nil
	case treatXrefsGrammar:
		fs := fields(body)
		if len(fs) != treatXrefsArity[name] {
			return nil, malformed(name, "expected %d fields, got %d", treatXrefsArity[name], len(fs))
		}
		v := ir.TreatXrefs{Prefix: fs[0]}
		if len(fs) > 1 {
			v.Relation = fs[1]
		}
		if len(fs) > 2 {
			v.Class = fs[2]
		}
		return v, nil
	}
	return nil, fmt.Errorf("%w: no header grammar for %q", errInternal, name)
}

// identAndQuote reads `ID "text"` and returns what follows, trimmed.
func identAndQuote(name, s string) (string, string, string, error) {
	i := unescapedIndex(s, '"')
	if i < 0 {
		return "", "", "", malformed(name, "expected quoted text")
	}
	fs := fields(s[:i])
	if len(fs) != 1 {
		return "", "", "", malformed(name, "expected one identifier, got %d", len(fs))
	}
	text, rest, err := token.ScanQuoted(s[i:])
	if err != nil {
		return "", "", "", fmt.Errorf("%s: %w", name, err)
	}
	return fs[0], text, strings.TrimSpace(rest), nil
}

// ParseTagValue parses the raw value of a stanza tag called name into a
// Tag. The grammar is chosen by tag name; unknown tags yield a PlainString.
func ParseTagValue(name, raw string) (ir.Tag, error) {
	g := grammars[name]
	if g == plainGrammar {
		return parsePlain(name, raw), nil
	}
	body, comment, _, err := token.SplitComment(raw, true)
	if err != nil {
		return ir.Tag{}, fmt.Errorf("%s: %w", name, err)
	}
	tag := ir.Tag{Name: name}
	rest, quals, err := splitQualifiers(name, body)
	if err != nil {
		return ir.Tag{}, err
	}
	switch g {
	case idGrammar:
		fs := fields(rest)
		if len(fs) != 1 {
			return ir.Tag{}, malformed(name, "expected one identifier, got %d", len(fs))
		}
		tag.Value = ir.Identifier{ID: fs[0]}
		tag.Comment = comment
	case identGrammar:
		fs := fields(rest)
		if len(fs) != 1 {
			return ir.Tag{}, malformed(name, "expected one identifier, got %d", len(fs))
		}
		tag.Value = ir.IdentifierWithComment{ID: fs[0], Comment: comment}
	case relationshipGrammar:
		fs := fields(rest)
		switch len(fs) {
		case 2:
			tag.Value = ir.Relationship{Typedef: fs[0], Target: fs[1], Comment: comment}
		case 1:
			return ir.Tag{}, malformed(name, "missing target identifier")
		default:
			return ir.Tag{}, malformed(name, "expected typedef and target, got %d fields", len(fs))
		}
	case intersectionGrammar:
		fs := fields(rest)
		switch len(fs) {
		case 1:
			tag.Value = ir.IdentifierWithComment{ID: fs[0], Comment: comment}
		case 2:
			tag.Value = ir.Relationship{Typedef: fs[0], Target: fs[1], Comment: comment}
		default:
			return ir.Tag{}, malformed(name, "expected one or two identifiers, got %d", len(fs))
		}
	case booleanGrammar:
		switch rest {
		case "true":
			tag.Value = ir.Boolean{Value: true}
		case "false":
			tag.Value = ir.Boolean{Value: false}
		default:
			tag.Value = ir.PlainString{Text: token.Unescape(body)}
			quals = nil
		}
		tag.Comment = comment
	case defGrammar:
		def, err := parseDef(name, rest)
		if err != nil {
			return ir.Tag{}, err
		}
		tag.Value = def
		tag.Comment = comment
	case synonymGrammar:
		syn, err := parseSynonym(name, rest)
		if err != nil {
			return ir.Tag{}, err
		}
		tag.Value = syn
		tag.Comment = comment
	case xrefGrammar:
		x, err := parseXrefClause(name, rest)
		if err != nil {
			return ir.Tag{}, err
		}
		tag.Value = x
		tag.Comment = comment
	default:
		return ir.Tag{}, fmt.Errorf("%w: no grammar for %q", errInternal, name)
	}
	tag.Qualifiers = quals
	return tag, nil
}

func parseDef(name, s string) (ir.QuotedDefinition, error) {
	if !strings.HasPrefix(s, `"`) {
		return ir.QuotedDefinition{}, malformed(name, "expected quoted text")
	}
	text, rest, err := token.ScanQuoted(s)
	if err != nil {
		return ir.QuotedDefinition{}, fmt.Errorf("%s: %w", name, err)
	}
	xrefs, rest, err := optXrefList(name, strings.TrimSpace(rest))
	if err != nil {
		return ir.QuotedDefinition{}, err
	}
	if rest != "" {
		return ir.QuotedDefinition{}, malformed(name, "unexpected %q after xref list", rest)
	}
	return ir.QuotedDefinition{Text: text, Xrefs: xrefs}, nil
}

func parseSynonym(name, s string) (ir.Synonym, error) {
	if !strings.HasPrefix(s, `"`) {
		return ir.Synonym{}, malformed(name, "expected quoted text")
	}
	text, rest, err := token.ScanQuoted(s)
	if err != nil {
		return ir.Synonym{}, fmt.Errorf("%s: %w", name, err)
	}
	syn := ir.Synonym{Text: text}
	rest = strings.TrimSpace(rest)
	head, tail := rest, ""
	if i := unescapedIndex(rest, '['); i >= 0 {
		head, tail = rest[:i], rest[i:]
	}
	fs := fields(head)
	if len(fs) > 0 {
		switch fs[0] {
		case ir.ScopeExact, ir.ScopeBroad, ir.ScopeNarrow, ir.ScopeRelated:
			syn.Scope = fs[0]
			fs = fs[1:]
		}
	}
	switch len(fs) {
	case 0:
	case 1:
		syn.TypeID = fs[0]
	default:
		return ir.Synonym{}, malformed(name, "unexpected %q", strings.Join(fs, " "))
	}
	syn.Xrefs, tail, err = optXrefList(name, tail)
	if err != nil {
		return ir.Synonym{}, err
	}
	if tail != "" {
		return ir.Synonym{}, malformed(name, "unexpected %q after xref list", tail)
	}
	return syn, nil
}

func parseXrefClause(name, s string) (ir.XrefValue, error) {
	x, rest, err := scanXref(name, s)
	if err != nil {
		return ir.XrefValue{}, err
	}
	if rest = strings.TrimSpace(rest); rest != "" {
		return ir.XrefValue{}, malformed(name, "unexpected %q", rest)
	}
	return ir.XrefValue{Xref: x}, nil
}

// optXrefList parses a bracketed xref list at the start of s, if present.
// The returned list is never nil.
func optXrefList(name, s string) ([]ir.Xref, string, error) {
	if !strings.HasPrefix(s, "[") {
		return []ir.Xref{}, s, nil
	}
	res := []ir.Xref{}
	s = strings.TrimLeft(s[1:], " \t")
	if strings.HasPrefix(s, "]") {
		return res, strings.TrimSpace(s[1:]), nil
	}
	for {
		x, rest, err := scanXref(name, s)
		if err != nil {
			return nil, "", err
		}
		res = append(res, x)
		rest = strings.TrimLeft(rest, " \t")
		switch {
		case strings.HasPrefix(rest, ","):
			s = strings.TrimLeft(rest[1:], " \t")
		case strings.HasPrefix(rest, "]"):
			return res, strings.TrimSpace(rest[1:]), nil
		default:
			return nil, "", malformed(name, "unterminated xref list")
		}
	}
}

// scanXref reads `ID ["description"]` from the start of s.
func scanXref(name, s string) (ir.Xref, string, error) {
	s = strings.TrimLeft(s, " \t")
	i := 0
scan:
	for i < len(s) {
		switch s[i] {
		case '\\':
			i += 2
			continue
		case ' ', '\t', ',', ']', '"':
			break scan
		}
		i++
	}
	i = min(i, len(s))
	if i == 0 {
		return ir.Xref{}, "", malformed(name, "missing xref identifier")
	}
	x := ir.Xref{ID: token.Unescape(s[:i])}
	rest := strings.TrimLeft(s[i:], " \t")
	if strings.HasPrefix(rest, `"`) {
		desc, r, err := token.ScanQuoted(rest)
		if err != nil {
			return ir.Xref{}, "", fmt.Errorf("%s: %w", name, err)
		}
		x.Description = desc
		rest = r
	}
	return x, rest, nil
}

// splitQualifiers removes a trailing `{key="value", ...}` list from s.
func splitQualifiers(name, s string) (string, []ir.Qualifier, error) {
	s = strings.TrimSpace(s)
	if !strings.HasSuffix(s, "}") || strings.HasSuffix(s, `\}`) {
		return s, nil, nil
	}
	open := -1
	inQuote := false
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '\\':
			i++
		case c == '"':
			inQuote = !inQuote
		case c == '{' && !inQuote:
			open = i
		}
	}
	if open < 0 {
		return "", nil, malformed(name, "unbalanced qualifier list")
	}
	quals, err := parseQualifiers(name, s[open+1:len(s)-1])
	if err != nil {
		return "", nil, err
	}
	return strings.TrimSpace(s[:open]), quals, nil
}

func parseQualifiers(name, s string) ([]ir.Qualifier, error) {
	var res []ir.Qualifier
	s = strings.TrimSpace(s)
	for s != "" {
		eq := unescapedIndex(s, '=')
		if eq <= 0 {
			return nil, malformed(name, "bad qualifier %q", s)
		}
		q := ir.Qualifier{Key: token.Unescape(strings.TrimSpace(s[:eq]))}
		rest := strings.TrimLeft(s[eq+1:], " \t")
		if strings.HasPrefix(rest, `"`) {
			v, r, err := token.ScanQuoted(rest)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			q.Value = v
			rest = strings.TrimLeft(r, " \t")
		} else {
			end := unescapedIndex(rest, ',')
			if end < 0 {
				end = len(rest)
			}
			q.Value = token.Unescape(strings.TrimSpace(rest[:end]))
			rest = rest[end:]
		}
		res = append(res, q)
		switch {
		case rest == "":
			s = ""
		case rest[0] == ',':
			s = strings.TrimSpace(rest[1:])
		default:
			return nil, malformed(name, "bad qualifier separator %q", rest)
		}
	}
	return res, nil
}

// fields splits s on unescaped whitespace and unescapes each field.
func fields(s string) []string {
	var res []string
	start := -1
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ' ' || c == '\t' {
			if start >= 0 {
				res = append(res, token.Unescape(s[start:i]))
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
		if c == '\\' {
			i++
		}
	}
	if start >= 0 {
		res = append(res, token.Unescape(s[start:]))
	}
	return res
}

func unescapedIndex(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case b:
			return i
		}
	}
	return -1
}
