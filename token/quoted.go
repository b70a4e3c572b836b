package token

import "strings"

// Unescape resolves OBO escape sequences in s. Unknown escapes are kept
// verbatim, backslash included.
func Unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	b := &strings.Builder{}
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i == len(s)-1 {
			b.WriteByte(c)
			continue
		}
		i++
		switch e := s[i]; e {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'W':
			b.WriteByte(' ')
		case ':', '!', '"', '\\', ',', '{', '}', '[', ']':
			b.WriteByte(e)
		default:
			b.WriteByte('\\')
			b.WriteByte(e)
		}
	}
	return b.String()
}

// ScanQuoted reads the quoted string at the start of s. It returns the
// unescaped content and the remainder after the closing quote.
func ScanQuoted(s string) (string, string, error) {
	if s == "" || s[0] != '"' {
		return "", s, ErrUnterminatedQuote
	}
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return Unescape(s[1:i]), s[i+1:], nil
		}
	}
	return "", s, ErrUnterminatedQuote
}

// SplitTag splits a tag line at its first unescaped colon.
func SplitTag(text string) (name, value string, ok bool) {
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\\':
			i++
		case ':':
			name = Unescape(strings.TrimSpace(text[:i]))
			if name == "" {
				return "", "", false
			}
			return name, strings.TrimSpace(text[i+1:]), true
		}
	}
	return "", "", false
}

// SplitComment separates a trailing "! comment" from a raw value. An
// unescaped '!' outside a quoted string starts the comment. With quotes
// false, double quotes are not treated specially.
func SplitComment(value string, quotes bool) (body, comment string, has bool, err error) {
	inQuote := false
	for i := 0; i < len(value); i++ {
		c := value[i]
		switch {
		case c == '\\':
			i++
		case c == '"' && quotes:
			if inQuote {
				inQuote = false
			} else if atBoundary(value, i) {
				inQuote = true
			}
		case c == '!' && !inQuote:
			return strings.TrimRight(value[:i], " \t"), strings.TrimSpace(value[i+1:]), true, nil
		}
	}
	if inQuote {
		return "", "", false, ErrUnterminatedQuote
	}
	return value, "", false, nil
}

func atBoundary(s string, i int) bool {
	if i == 0 {
		return true
	}
	switch s[i-1] {
	case ' ', '\t', '[', ',', '{', '=':
		return true
	}
	return false
}

// Quote returns v as an OBO quoted string. It works on bytes, so invalid
// UTF-8 in v is written through unchanged.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	for i := 0; i < len(v); i++ {
		switch c := v[i]; c {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\n':
			d = append(d, '\\', 'n')
		case '\t':
			d = append(d, '\\', 't')
		default:
			d = append(d, c)
		}
	}
	d = append(d, '"')
	return string(d)
}

// EscapeIdent escapes an identifier. Colons after the prefix separator are
// escaped, so "value-type:xsd:string" becomes `value-type:xsd\:string`.
// URL identifiers keep their colons.
func EscapeIdent(id string) string {
	if strings.Contains(id, "://") {
		return escapeIdentPart(id, false)
	}
	prefix, local, found := strings.Cut(id, ":")
	if !found {
		return escapeIdentPart(id, false)
	}
	return escapeIdentPart(prefix, false) + ":" + escapeIdentPart(local, true)
}

func escapeIdentPart(s string, colons bool) string {
	b := &strings.Builder{}
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\\', '!', ',', '"', '{', '}', '[', ']':
			b.WriteByte('\\')
			b.WriteByte(c)
		case ':':
			if colons {
				b.WriteByte('\\')
			}
			b.WriteByte(c)
		case ' ':
			b.WriteString(`\W`)
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// EscapePlain escapes free text so that it reads back unchanged as an
// unquoted tag value.
func EscapePlain(s string) string {
	b := &strings.Builder{}
	b.Grow(len(s))
	lead := len(s) - len(strings.TrimLeft(s, " "))
	trail := len(s) - len(strings.TrimRight(s, " "))
	if lead == len(s) {
		trail = 0
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == ' ' && (i < lead || i >= len(s)-trail):
			b.WriteString(`\W`)
		case c == '\\' || c == '!':
			b.WriteByte('\\')
			b.WriteByte(c)
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// EscapeTagName escapes a tag name so that it reads back through SplitTag
// unchanged and cannot be taken for a comment or a stanza marker.
func EscapeTagName(s string) string {
	b := &strings.Builder{}
	b.Grow(len(s))
	lead := len(s) - len(strings.TrimLeft(s, " "))
	trail := len(s) - len(strings.TrimRight(s, " "))
	if lead == len(s) {
		trail = 0
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == ' ' && (i < lead || i >= len(s)-trail):
			b.WriteString(`\W`)
		case c == '\\' || c == ':' || c == '!':
			b.WriteByte('\\')
			b.WriteByte(c)
		case c == '[' && i == 0:
			b.WriteString(`\[`)
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
