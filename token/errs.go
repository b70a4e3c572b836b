package token

import (
	"errors"
	"fmt"
)

var (
	ErrSyntax = errors.New("obo syntax error")

	ErrUnterminatedQuote        = fmt.Errorf("%w: unterminated quote", ErrSyntax)
	ErrUnterminatedContinuation = fmt.Errorf("%w: unterminated continuation", ErrSyntax)
)

// LexErr is an error tied to a position in the input.
type LexErr struct {
	Err error
	Pos Pos
}

func (e *LexErr) Unwrap() error {
	return e.Err
}

func NewLexErr(e error, p Pos) *LexErr {
	return &LexErr{Err: e, Pos: p}
}

func (e *LexErr) Error() string {
	if e.Pos.IsZero() {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}
