package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/obo-format/go-obo/ir"
)

var (
	errInternal = errors.New("internal parse error")
	ErrParse    = ir.ErrParse
	ErrClosed   = fmt.Errorf("%w: machine closed", ErrParse)
)

// Error reports a structural error with the 1-based line it was found on
// and the id of the enclosing stanza, when known.
type Error struct {
	Line     int
	StanzaID string
	Err      error
}

func (e *Error) Error() string {
	if e.StanzaID != "" {
		return fmt.Sprintf("line %d (stanza %q): %s", e.Line, e.StanzaID, e.Err.Error())
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Err.Error())
}

func (e *Error) Unwrap() error {
	return e.Err
}
