// Package token splits OBO text into logical lines.
//
// [Lexer] reads physical lines one at a time, joins backslash continuations
// and classifies each logical line as a header line, a stanza marker, a tag
// line, a whole-line comment or a blank line. [Lex] is a convenience for
// in-memory input.
//
// The package also holds the escape rules shared by the parser and the
// encoder: [Unescape], [ScanQuoted], [SplitTag], [SplitComment] and their
// inverses [Quote], [EscapeIdent] and [EscapePlain].
package token
