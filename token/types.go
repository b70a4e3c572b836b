package token

import "fmt"

type LineType int

const (
	LBlank LineType = iota
	LComment
	LHeader
	LStanzaMarker
	LTag
)

func (t LineType) String() string {
	return map[LineType]string{
		LBlank:        "LBlank",
		LComment:      "LComment",
		LHeader:       "LHeader",
		LStanzaMarker: "LStanzaMarker",
		LTag:          "LTag",
	}[t]
}

// Line is one logical line of OBO input.
type Line struct {
	Type LineType
	Pos  Pos

	// Raw is the source text of every physical line making up this logical
	// line, joined by "\n", without the final line terminator.
	Raw string

	// Text is the logical text: continuations joined, "\r" and trailing
	// whitespace removed.
	Text string

	// Marker holds the bracketed name of an LStanzaMarker line, eg "Term".
	Marker string

	// Physical is the number of physical lines consumed.
	Physical int
}

func (l *Line) Info() string {
	return fmt.Sprintf("%s %s", l.Type, l.Pos.String())
}

// IsTrivia reports whether the line carries no document content.
func (l *Line) IsTrivia() bool {
	return l.Type == LBlank || l.Type == LComment
}
