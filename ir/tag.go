package ir

// Source records where a tag or stanza came from in parsed input. It is
// the zero value for programmatically built elements and is ignored by
// Equal.
type Source struct {
	// Line is the 1-based line of the element.
	Line int
	// Raw is the source text, continuation lines included.
	Raw string
	// Leading holds the raw blank and comment lines directly preceding
	// the element.
	Leading []string
}

// Blanks counts the blank lines in s.Leading.
func (s *Source) Blanks() int {
	n := 0
	for _, l := range s.Leading {
		if isBlank(l) {
			n++
		}
	}
	return n
}

func isBlank(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\r':
		default:
			return false
		}
	}
	return true
}

// Tag is one `name: value` line of a header or stanza.
type Tag struct {
	Name       string
	Value      Value
	Qualifiers []Qualifier

	// Comment is the trailing "! comment" of tags whose value does not
	// carry one itself. See TrailingComment.
	Comment string

	Source Source
}

func NewTag(name string, v Value) Tag {
	return Tag{Name: name, Value: v}
}

// TrailingComment returns the trailing comment of t, wherever it is held.
func (t *Tag) TrailingComment() string {
	if c, ok := ValueComment(t.Value); ok {
		return c
	}
	return t.Comment
}

// Text is shorthand for Text(t.Value).
func (t *Tag) Text() string {
	if t.Value == nil {
		return ""
	}
	return Text(t.Value)
}

// WithQualifiers and WithComment return a modified copy of t. The copy has
// no Source.Raw, so strict encoding regenerates its line.
func (t *Tag) WithQualifiers(qs ...Qualifier) Tag {
	res := *t
	res.Source.Raw = ""
	res.Qualifiers = append([]Qualifier(nil), qs...)
	return res
}

func (t *Tag) WithComment(c string) Tag {
	res := *t
	res.Source.Raw = ""
	if _, ok := ValueComment(res.Value); ok {
		res.Value = WithValueComment(res.Value, c)
		return res
	}
	res.Comment = c
	return res
}
