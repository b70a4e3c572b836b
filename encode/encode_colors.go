package encode

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/signadot/obo-format/go-obo/ir"
)

// Colorable selects a color by value type and the part of a line being
// written.
type Colorable struct {
	Type ir.ValueType
	Attr ColorAttr
}

type ColorAttr int

const (
	CommentColor ColorAttr = iota
	TagColor
	ValueColor
	SepColor
	MarkerColor
	XrefColor
	QualifierColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range ir.ValueTypes() {
		able := Colorable{Type: t, Attr: TagColor}
		colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
		able.Attr = CommentColor
		colors.Map[able] = color.BlueString
		able.Attr = SepColor
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
		able.Attr = XrefColor
		colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
		able.Attr = QualifierColor
		colors.Map[able] = color.RGB(96, 96, 96).SprintfFunc()
	}
	colors.Map[Colorable{Attr: MarkerColor}] = color.RGB(196, 128, 128).SprintfFunc()

	able := Colorable{Attr: ValueColor}
	able.Type = ir.PlainStringType
	colors.Map[able] = color.RGB(88, 158, 86).SprintfFunc()
	able.Type = ir.QuotedDefinitionType
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()
	able.Type = ir.SynonymType
	colors.Map[able] = color.RGB(198, 198, 46).SprintfFunc()
	able.Type = ir.BooleanType
	colors.Map[able] = color.CyanString
	able.Type = ir.DateType
	colors.Map[able] = color.CyanString
	for _, t := range []ir.ValueType{ir.SubsetdefType, ir.SynonymTypedefType, ir.IdspaceType, ir.TreatXrefsType} {
		able.Type = t
		colors.Map[able] = color.RGB(198, 198, 46).SprintfFunc()
	}
	for _, t := range []ir.ValueType{ir.IdentifierType, ir.IdentifierWithCommentType, ir.RelationshipType, ir.XrefType} {
		able.Type = t
		colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	}
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	return colors
}

// ColorsFor returns NewColors when w is a terminal and nil otherwise.
func ColorsFor(w io.Writer) *Colors {
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if color.NoColor {
		return nil
	}
	fd := f.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return nil
	}
	return NewColors()
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t ir.ValueType, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t ir.ValueType, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
