package ir

import (
	"errors"
	"fmt"

	"github.com/signadot/obo-format/go-obo/token"
)

var (
	ErrParse = token.ErrSyntax

	ErrMalformedHeader          = fmt.Errorf("%w: malformed header", ErrParse)
	ErrMalformedStanza          = fmt.Errorf("%w: malformed stanza", ErrParse)
	ErrMissingRequiredTag       = fmt.Errorf("%w: missing required tag", ErrParse)
	ErrDuplicateID              = fmt.Errorf("%w: duplicate id", ErrParse)
	ErrMalformedValue           = fmt.Errorf("%w: malformed value", ErrParse)
	ErrUnterminatedQuote        = token.ErrUnterminatedQuote
	ErrUnterminatedContinuation = token.ErrUnterminatedContinuation

	ErrBuild = errors.New("build error")
)

// DuplicateIDError names an identifier that occurs twice within its
// uniqueness scope.
type DuplicateIDError struct {
	Kind Kind
	ID   string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("%s: %s %q", ErrDuplicateID.Error(), e.Kind, e.ID)
}

func (e *DuplicateIDError) Unwrap() error {
	return ErrDuplicateID
}
