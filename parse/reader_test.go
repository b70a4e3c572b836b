package parse

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/obo-format/go-obo/ir"
)

func TestReader(t *testing.T) {
	r := NewReader(strings.NewReader("format-version: 1.2\n\n" + sampleMass + "\n[Typedef]\nid: has_units\n\n! done\n"))
	hdr, err := r.Header()
	if err != nil {
		t.Fatal(err)
	}
	if len(hdr) != 1 || hdr[0].Text() != "1.2" {
		t.Errorf("header %+v", hdr)
	}
	var got []string
	for {
		s, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, s.Kind.String()+" "+s.ID())
	}
	if diff := cmp.Diff([]string{"Term MS:1000004", "Typedef has_units"}, got); diff != "" {
		t.Errorf("stanzas (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"", "! done"}, r.Trailing()); diff != "" {
		t.Errorf("trailing (-want +got):\n%s", diff)
	}
	if _, err := r.Next(); err != io.EOF {
		t.Errorf("after end: %v", err)
	}
}

func TestReaderNextWithoutHeader(t *testing.T) {
	r := NewReader(strings.NewReader("remark: r\n[Term]\nid: A:1\n"))
	s, err := r.Next()
	if err != nil {
		t.Fatal(err)
	}
	if s.ID() != "A:1" {
		t.Errorf("id %q", s.ID())
	}
	hdr, err := r.Header()
	if err != nil || len(hdr) != 1 {
		t.Errorf("header %v %v", hdr, err)
	}
}

func TestReaderError(t *testing.T) {
	r := NewReader(strings.NewReader("[Term]\nid: A:1\n\n[Term]\nid: A:1\n"))
	if _, err := r.Next(); err != nil {
		t.Fatalf("first stanza: %v", err)
	}
	_, err := r.Next()
	if !errors.Is(err, ir.ErrDuplicateID) {
		t.Fatalf("got %v", err)
	}
	if _, again := r.Next(); again != err {
		t.Errorf("error not sticky: %v", again)
	}
}

func TestMachineClosed(t *testing.T) {
	m := NewMachine()
	if _, err := m.Close(); err != nil {
		t.Fatal(err)
	}
	if m.State() != Done {
		t.Errorf("state %s", m.State())
	}
	if _, err := m.Close(); !errors.Is(err, ErrClosed) {
		t.Errorf("got %v", err)
	}
}
