package token

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"

	"github.com/signadot/obo-format/go-obo/debug"
)

// Lexer produces logical lines from a reader, one at a time.
//
// Lines before the first stanza marker are classified LHeader, lines after
// it LTag.
type Lexer struct {
	r        *bufio.Reader
	line     int
	inStanza bool
	finalNL  bool
	done     bool
}

func NewLexer(r io.Reader) *Lexer {
	return &Lexer{r: bufio.NewReader(r), finalNL: true}
}

// LexBytes returns a lexer over an in-memory document.
func LexBytes(d []byte) *Lexer {
	return NewLexer(bytes.NewReader(d))
}

// Lex returns all logical lines of d.
func Lex(d []byte) ([]Line, error) {
	lx := LexBytes(d)
	var res []Line
	for {
		l, err := lx.Next()
		if err == io.EOF {
			return res, nil
		}
		if err != nil {
			return nil, err
		}
		res = append(res, l)
	}
}

// FinalNewline reports whether the input ended with a line terminator. It
// is meaningful once Next has returned io.EOF.
func (lx *Lexer) FinalNewline() bool {
	return lx.finalNL
}

// readPhysical returns the next physical line without its "\n".
func (lx *Lexer) readPhysical() (string, bool, error) {
	if lx.done {
		return "", false, io.EOF
	}
	s, err := lx.r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false, err
	}
	if errors.Is(err, io.EOF) {
		lx.done = true
		if s == "" {
			return "", false, io.EOF
		}
		lx.finalNL = false
		lx.line++
		return s, false, nil
	}
	lx.line++
	return s[:len(s)-1], true, nil
}

// Next returns the next logical line, or io.EOF.
func (lx *Lexer) Next() (Line, error) {
	phys, _, err := lx.readPhysical()
	if err != nil {
		return Line{}, err
	}
	res := Line{Pos: Pos{Line: lx.line}, Physical: 1}
	raw := []string{phys}
	text := strings.TrimSuffix(phys, "\r")
	for continues(text) {
		next, _, err := lx.readPhysical()
		if errors.Is(err, io.EOF) {
			return Line{}, NewLexErr(ErrUnterminatedContinuation, res.Pos)
		}
		if err != nil {
			return Line{}, err
		}
		raw = append(raw, next)
		res.Physical++
		text = text[:len(text)-1] + " " + strings.TrimSuffix(next, "\r")
	}
	res.Raw = strings.Join(raw, "\n")
	res.Text = strings.TrimRight(text, " \t")
	lx.classify(&res)
	if debug.Lex() {
		debug.Logger().Debug("lex", "type", res.Type.String(), "line", res.Pos.Line, "text", res.Text)
	}
	return res, nil
}

func (lx *Lexer) classify(l *Line) {
	trimmed := strings.TrimSpace(l.Text)
	switch {
	case trimmed == "":
		l.Type = LBlank
	case trimmed[0] == '!':
		l.Type = LComment
	case isMarker(trimmed):
		body, _, _ := strings.Cut(trimmed, "!")
		body = strings.TrimSpace(body)
		l.Type = LStanzaMarker
		l.Marker = strings.TrimSpace(body[1 : len(body)-1])
		lx.inStanza = true
	case lx.inStanza:
		l.Type = LTag
	default:
		l.Type = LHeader
	}
}

// isMarker matches "[Name]", optionally followed by a "!" comment.
func isMarker(s string) bool {
	if s[0] != '[' {
		return false
	}
	body, _, _ := strings.Cut(s, "!")
	body = strings.TrimSpace(body)
	return len(body) >= 2 && body[len(body)-1] == ']'
}

// continues reports whether s ends in an unescaped backslash.
func continues(s string) bool {
	n := 0
	for i := len(s) - 1; i >= 0 && s[i] == '\\'; i-- {
		n++
	}
	return n%2 == 1
}
