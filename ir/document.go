package ir

// Document is a parsed or built OBO document: header tags followed by
// stanzas, each in source order.
//
// A Document is not modified by this module once constructed and may be
// read from several goroutines.
type Document struct {
	Header  []Tag
	Stanzas []*Stanza

	// Trailing holds the raw blank and comment lines after the last
	// element of a parsed document.
	Trailing []string
	// NoFinalNewline is set when parsed input did not end in a newline.
	NoFinalNewline bool
}

func (d *Document) HeaderTags() []Tag {
	return d.Header
}

// HeaderValue returns the text of the first header tag called name.
func (d *Document) HeaderValue(name string) (string, bool) {
	for i := range d.Header {
		if d.Header[i].Name == name {
			return d.Header[i].Text(), true
		}
	}
	return "", false
}

// FormatVersion returns the format-version header value, or "".
func (d *Document) FormatVersion() string {
	v, _ := d.HeaderValue("format-version")
	return v
}

// StanzasOfKind returns the stanzas of kind k in document order.
func (d *Document) StanzasOfKind(k Kind) []*Stanza {
	var res []*Stanza
	for _, s := range d.Stanzas {
		if s.Kind == k {
			res = append(res, s)
		}
	}
	return res
}

// Stanza returns the stanza of kind k with the given id, or nil.
func (d *Document) Stanza(k Kind, id string) *Stanza {
	for _, s := range d.Stanzas {
		if s.Kind == k && s.ID() == id {
			return s
		}
	}
	return nil
}

// Label returns the name of the first stanza with the given id, of any
// kind.
func (d *Document) Label(id string) (string, bool) {
	for _, s := range d.Stanzas {
		if s.ID() != id {
			continue
		}
		if n := s.Name(); n != "" {
			return n, true
		}
	}
	return "", false
}
