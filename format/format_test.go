package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"obo": OBOFormat, "o": OBOFormat,
		"yaml": YAMLFormat, "y": YAMLFormat,
		"json": JSONFormat, "j": JSONFormat,
	} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("xml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v", err)
	}
}

func TestFormatText(t *testing.T) {
	for _, f := range AllFormats() {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var g Format
		if err := g.UnmarshalText(d); err != nil || g != f {
			t.Errorf("%s: got %v %v", f, g, err)
		}
		if s, ok := FromSuffix(f.Suffix()); !ok || s != f {
			t.Errorf("suffix %s: got %v", f.Suffix(), s)
		}
	}
	if f, ok := FromSuffix(".yml"); !ok || !f.IsYAML() {
		t.Errorf(".yml: got %v", f)
	}
	if Format(7).String() == "" {
		t.Error("expected an error string")
	}
}
