package token

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func lineTypes(lines []Line) []LineType {
	res := make([]LineType, len(lines))
	for i := range lines {
		res[i] = lines[i].Type
	}
	return res
}

func TestLexClassify(t *testing.T) {
	in := `format-version: 1.2
! a comment

[Term]
id: MS:0000001
[Typedef] ! relations
id: part_of
`
	lines, err := Lex([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	want := []LineType{LHeader, LComment, LBlank, LStanzaMarker, LTag, LStanzaMarker, LTag}
	got := lineTypes(lines)
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d: got %s want %s", i+1, got[i], want[i])
		}
	}
	if lines[3].Marker != "Term" {
		t.Errorf("marker %q", lines[3].Marker)
	}
	if lines[5].Marker != "Typedef" {
		t.Errorf("marker %q", lines[5].Marker)
	}
	for i := range lines {
		if lines[i].Pos.Line != i+1 {
			t.Errorf("line %d has pos %s", i+1, lines[i].Pos)
		}
	}
}

func TestLexContinuation(t *testing.T) {
	in := "remark: first \\\n  second\\\nthird\nremark: next\n"
	lines, err := Lex([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 2 {
		t.Fatalf("got %d lines", len(lines))
	}
	if got, want := lines[0].Text, "remark: first    second third"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
	if lines[0].Physical != 3 {
		t.Errorf("physical %d", lines[0].Physical)
	}
	if got, want := lines[0].Raw, "remark: first \\\n  second\\\nthird"; got != want {
		t.Errorf("raw %q want %q", got, want)
	}
	if lines[1].Pos.Line != 4 {
		t.Errorf("second logical line at %s", lines[1].Pos)
	}
}

func TestLexEscapedBackslashIsNotContinuation(t *testing.T) {
	lines, err := Lex([]byte("remark: ends in \\\\\nremark: b\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 2 {
		t.Fatalf("got %d lines", len(lines))
	}
}

func TestLexUnterminatedContinuation(t *testing.T) {
	_, err := Lex([]byte("remark: dangling \\"))
	if !errors.Is(err, ErrUnterminatedContinuation) {
		t.Fatalf("got %v", err)
	}
	var le *LexErr
	if !errors.As(err, &le) || le.Pos.Line != 1 {
		t.Errorf("expected lex error at line 1, got %v", err)
	}
}

func TestLexCRLF(t *testing.T) {
	lines, err := Lex([]byte("format-version: 1.4\r\n\r\n[Term]\r\nid: A:1\r\n"))
	if err != nil {
		t.Fatal(err)
	}
	if lines[0].Text != "format-version: 1.4" {
		t.Errorf("got %q", lines[0].Text)
	}
	if lines[1].Type != LBlank {
		t.Errorf("got %s", lines[1].Type)
	}
	if lines[0].Raw != "format-version: 1.4\r" {
		t.Errorf("raw %q", lines[0].Raw)
	}
}

func TestLexFinalNewline(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want bool
	}{
		{"a: b\n", true},
		{"a: b", false},
		{"", true},
	} {
		lx := NewLexer(strings.NewReader(tc.in))
		for {
			_, err := lx.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				t.Fatal(err)
			}
		}
		if lx.FinalNewline() != tc.want {
			t.Errorf("%q: final newline %v", tc.in, lx.FinalNewline())
		}
	}
}
