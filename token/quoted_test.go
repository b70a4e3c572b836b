package token

import (
	"errors"
	"testing"
)

type tsTest struct {
	in, out string
}

func TestUnescape(t *testing.T) {
	for _, ts := range []tsTest{
		{in: `xsd\:string`, out: `xsd:string`},
		{in: `a\!b`, out: `a!b`},
		{in: `\"q\"`, out: `"q"`},
		{in: `back\\slash`, out: `back\slash`},
		{in: `one\ntwo`, out: "one\ntwo"},
		{in: `tab\there`, out: "tab\there"},
		{in: `a\Wb`, out: "a b"},
		{in: `a\,b`, out: "a,b"},
		{in: `keep\qthis`, out: `keep\qthis`},
		{in: `trailing\`, out: `trailing\`},
		{in: `∞\:∞`, out: `∞:∞`},
	} {
		if got := Unescape(ts.in); got != ts.out {
			t.Errorf("Unescape(%q) = %q want %q", ts.in, got, ts.out)
		}
	}
}

func TestScanQuoted(t *testing.T) {
	text, rest, err := ScanQuoted(`"a \"quoted\" text" [X:1]`)
	if err != nil {
		t.Fatal(err)
	}
	if text != `a "quoted" text` {
		t.Errorf("text %q", text)
	}
	if rest != ` [X:1]` {
		t.Errorf("rest %q", rest)
	}
	if _, _, err := ScanQuoted(`"never closed`); !errors.Is(err, ErrUnterminatedQuote) {
		t.Errorf("got %v", err)
	}
}

func TestSplitTag(t *testing.T) {
	for _, tc := range []struct {
		in, name, value string
		ok              bool
	}{
		{"id: MS:1000004", "id", "MS:1000004", true},
		{"def:   \"x\" []", "def", "\"x\" []", true},
		{"date: 17:03:2019 20:16", "date", "17:03:2019 20:16", true},
		{`odd\:tag: v`, "odd:tag", "v", true},
		{`\Wpad\W: v`, " pad ", "v", true},
		{`\!note: v`, "!note", "v", true},
		{"no colon here", "", "", false},
		{": empty name", "", "", false},
	} {
		name, value, ok := SplitTag(tc.in)
		if ok != tc.ok || name != tc.name || value != tc.value {
			t.Errorf("SplitTag(%q) = %q, %q, %v", tc.in, name, value, ok)
		}
	}
}

func TestSplitComment(t *testing.T) {
	for _, tc := range []struct {
		in, body, comment string
		has               bool
	}{
		{"MS:1000548 ! sample attribute", "MS:1000548", "sample attribute", true},
		{"MS:1000548", "MS:1000548", "", false},
		{`"text ! not a comment" [] ! real`, `"text ! not a comment" []`, "real", true},
		{`escaped \! bang`, `escaped \! bang`, "", false},
		{`X:1 {source="a!b"} ! c`, `X:1 {source="a!b"}`, "c", true},
		{`5" long ! c`, `5" long`, "c", true},
	} {
		body, comment, has, err := SplitComment(tc.in, true)
		if err != nil {
			t.Errorf("%q: %v", tc.in, err)
			continue
		}
		if body != tc.body || comment != tc.comment || has != tc.has {
			t.Errorf("SplitComment(%q) = %q, %q, %v", tc.in, body, comment, has)
		}
	}
	if _, _, _, err := SplitComment(`"open ! x`, true); !errors.Is(err, ErrUnterminatedQuote) {
		t.Errorf("got %v", err)
	}
	body, comment, has, err := SplitComment(`"open ! x`, false)
	if err != nil || body != `"open` || comment != "x" || !has {
		t.Errorf("unquoted split: %q %q %v %v", body, comment, has, err)
	}
}

func TestEscapeRoundTrip(t *testing.T) {
	for _, v := range []string{
		"plain",
		"with ! bang",
		"multi\nline",
		`back\slash`,
		" padded ",
		"tab\tinside",
		"ends with \\",
		"caf\xe9",
		"\x80\xff",
	} {
		if got := Unescape(EscapePlain(v)); got != v {
			t.Errorf("plain %q -> %q -> %q", v, EscapePlain(v), got)
		}
		q := Quote(v)
		got, rest, err := ScanQuoted(q)
		if err != nil || rest != "" || got != v {
			t.Errorf("quote %q -> %q -> %q %q %v", v, q, got, rest, err)
		}
	}
}

func TestEscapeIdent(t *testing.T) {
	for _, ts := range []tsTest{
		{in: "MS:1000004", out: "MS:1000004"},
		{in: "value-type:xsd:string", out: `value-type:xsd\:string`},
		{in: "has_units", out: "has_units"},
		{in: "http://purl.obolibrary.org/obo/BFO_0000050", out: "http://purl.obolibrary.org/obo/BFO_0000050"},
		{in: "X:a b,c", out: `X:a\Wb\,c`},
	} {
		got := EscapeIdent(ts.in)
		if got != ts.out {
			t.Errorf("EscapeIdent(%q) = %q want %q", ts.in, got, ts.out)
		}
		if Unescape(got) != ts.in {
			t.Errorf("Unescape(EscapeIdent(%q)) = %q", ts.in, Unescape(got))
		}
	}
}

func TestQuoteKeepsBytes(t *testing.T) {
	if got := Quote("caf\xe9"); got != "\"caf\xe9\"" {
		t.Errorf("got %q", got)
	}
}

func TestEscapeTagName(t *testing.T) {
	for _, ts := range []tsTest{
		{in: "is_a", out: "is_a"},
		{in: "odd:tag", out: `odd\:tag`},
		{in: "!note", out: `\!note`},
		{in: "[Term]", out: `\[Term]`},
		{in: "a[b]", out: "a[b]"},
		{in: " pad ", out: `\Wpad\W`},
		{in: "two\nlines", out: `two\nlines`},
		{in: `back\slash`, out: `back\\slash`},
	} {
		got := EscapeTagName(ts.in)
		if got != ts.out {
			t.Errorf("EscapeTagName(%q) = %q want %q", ts.in, got, ts.out)
		}
		name, _, ok := SplitTag(got + ": v")
		if !ok || name != ts.in {
			t.Errorf("SplitTag(%q) = %q, %v", got+": v", name, ok)
		}
	}
}
