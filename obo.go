package obo

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/signadot/obo-format/go-obo/debug"
	"github.com/signadot/obo-format/go-obo/encode"
	"github.com/signadot/obo-format/go-obo/ir"
	"github.com/signadot/obo-format/go-obo/libdiff"
	"github.com/signadot/obo-format/go-obo/parse"
)

var ErrRoundTrip = errors.New("round trip mismatch")

func Parse(d []byte, opts ...parse.ParseOption) (*ir.Document, error) {
	return parse.Parse(d, opts...)
}

// Serialize encodes doc, by default as canonical OBO text.
func Serialize(doc *ir.Document, opts ...encode.EncodeOption) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := encode.Encode(doc, buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RoundTrip parses d, serializes the result with opts, parses that again
// and checks both documents are logically equal. It returns the first
// parsed document. A mismatch is reported as ErrRoundTrip with a diff.
func RoundTrip(d []byte, opts ...encode.EncodeOption) (*ir.Document, error) {
	doc, err := parse.Parse(d)
	if err != nil {
		return nil, err
	}
	out, err := Serialize(doc, opts...)
	if err != nil {
		return nil, err
	}
	again, err := parse.Parse(out)
	if err != nil {
		return nil, fmt.Errorf("%w: reparse: %w", ErrRoundTrip, err)
	}
	if ir.Equal(doc, again) {
		return doc, nil
	}
	if debug.Parse() {
		debug.LogAny(libdiff.Stanzas(doc, again))
	}
	return nil, fmt.Errorf("%w:\n%s", ErrRoundTrip, describe(libdiff.Stanzas(doc, again)))
}

// Verify checks that strict serialization of d reproduces d byte for byte.
func Verify(d []byte, opts ...parse.ParseOption) error {
	doc, err := parse.Parse(d, opts...)
	if err != nil {
		return err
	}
	out, err := Serialize(doc, encode.EncodeStrict(true))
	if err != nil {
		return err
	}
	if bytes.Equal(d, out) {
		return nil
	}
	return fmt.Errorf("%w:\n%s", ErrRoundTrip, libdiff.Lines(string(d), string(out), 2))
}

func describe(diffs []libdiff.StanzaDiff) string {
	buf := &strings.Builder{}
	for _, sd := range diffs {
		fmt.Fprintf(buf, "%s[%s] %s\n", sd.Op, sd.Kind, sd.ID)
		for _, td := range sd.Tags {
			fmt.Fprintf(buf, "  %s%s\n", td.Op, td.Line)
		}
	}
	return buf.String()
}
