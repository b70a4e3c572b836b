package encode

import (
	"github.com/signadot/obo-format/go-obo/format"
)

type EncodeOption func(*EncState)

// BlankPolicy controls the blank lines written between stanzas.
type BlankPolicy int

const (
	// BlankCanonical separates stanzas with exactly one blank line.
	BlankCanonical BlankPolicy = iota
	// BlankPreserve writes the number of blank lines that preceded each
	// stanza in the parsed input.
	BlankPreserve
)

// CommentPolicy controls trailing "! comment" text on tag lines.
type CommentPolicy int

const (
	CommentsPreserve CommentPolicy = iota
	CommentsDrop
	// CommentsRegenerate replaces the comment of is_a, relationship and
	// other reference tags with the name of the referenced stanza.
	CommentsRegenerate
)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

// EncodeStrict writes the recorded source of every element in its original
// order, so an unmodified parsed document is reproduced byte for byte.
func EncodeStrict(v bool) EncodeOption {
	return func(es *EncState) { es.strict = v }
}
func EncodeBlankLines(p BlankPolicy) EncodeOption {
	return func(es *EncState) { es.blanks = p }
}
func EncodeComments(p CommentPolicy) EncodeOption {
	return func(es *EncState) { es.comments = p }
}

// EncodeLabels sets the lookup used by CommentsRegenerate. Without it, the
// names of stanzas in the encoded document are used.
func EncodeLabels(f func(id string) (string, bool)) EncodeOption {
	return func(es *EncState) { es.labels = f }
}
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}
