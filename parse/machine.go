package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/obo-format/go-obo/debug"
	"github.com/signadot/obo-format/go-obo/ir"
	"github.com/signadot/obo-format/go-obo/token"
)

type State int

const (
	BeforeHeader State = iota
	InHeader
	InStanza
	Done
)

func (s State) String() string {
	switch s {
	case BeforeHeader:
		return "BeforeHeader"
	case InHeader:
		return "InHeader"
	case InStanza:
		return "InStanza"
	case Done:
		return "Done"
	}
	return "<unknown state>"
}

type EventType int

const (
	// EventHeader carries the complete header frame. It is emitted once,
	// when the first stanza marker is seen or at Close.
	EventHeader EventType = iota
	// EventStanza carries one complete, validated stanza.
	EventStanza
)

type Event struct {
	Type   EventType
	Header []ir.Tag
	Stanza *ir.Stanza
}

// Machine is the stanza parser state machine. It is fed logical lines in
// order and emits at most one Event per line.
type Machine struct {
	opts  *parseOpts
	state State
	ids   *ir.IDIndex

	header     []ir.Tag
	headerDone bool
	cur        *ir.Stanza
	curLine    int
	pending    []string
}

func NewMachine(opts ...ParseOption) *Machine {
	o := defaultOpts()
	for _, f := range opts {
		f(o)
	}
	return &Machine{opts: o, ids: ir.NewIDIndex(o.scope)}
}

func (m *Machine) State() State {
	return m.state
}

// Trailing returns the trivia lines seen after the last element. It is
// complete once Close has returned.
func (m *Machine) Trailing() []string {
	return m.pending
}

func (m *Machine) fail(line int, err error) error {
	e := &Error{Line: line, Err: err}
	if m.cur != nil {
		e.StanzaID = m.cur.ID()
	}
	if debug.Parse() {
		debug.Logger().Debug("parse error", "state", m.state.String(), "err", e.Error())
	}
	return e
}

// lexError turns a lexer error into an *Error carrying the id of the open
// stanza, if any.
func (m *Machine) lexError(err error) error {
	var le *token.LexErr
	if errors.As(err, &le) {
		return m.fail(le.Pos.Line, le.Err)
	}
	return err
}

func (m *Machine) source(l *token.Line) ir.Source {
	if !m.opts.source {
		return ir.Source{Line: l.Pos.Line}
	}
	src := ir.Source{Line: l.Pos.Line, Raw: l.Raw, Leading: m.pending}
	m.pending = nil
	return src
}

// Feed advances the machine by one logical line.
func (m *Machine) Feed(l token.Line) (*Event, error) {
	if m.state == Done {
		return nil, ErrClosed
	}
	if debug.Parse() {
		debug.Logger().Debug("feed", "state", m.state.String(), "line", l.Info())
	}
	if l.IsTrivia() {
		if m.opts.source {
			m.pending = append(m.pending, l.Raw)
		}
		return nil, nil
	}
	switch l.Type {
	case token.LStanzaMarker:
		return m.marker(&l)
	case token.LHeader:
		return nil, m.headerLine(&l)
	case token.LTag:
		if m.state != InStanza {
			return nil, m.fail(l.Pos.Line, fmt.Errorf("%w: tag line outside a stanza", ir.ErrMalformedHeader))
		}
		return nil, m.tagLine(&l)
	}
	return nil, m.fail(l.Pos.Line, fmt.Errorf("%w: line type %s", errInternal, l.Type))
}

func (m *Machine) headerLine(l *token.Line) error {
	if m.state == InStanza {
		return m.fail(l.Pos.Line, fmt.Errorf("%w: header line inside a stanza", errInternal))
	}
	name, raw, ok := token.SplitTag(l.Text)
	if !ok {
		return m.fail(l.Pos.Line, fmt.Errorf("%w: expected tag: value, got %q", ir.ErrMalformedHeader, l.Text))
	}
	tag := ParseHeaderValue(name, raw)
	tag.Source = m.source(l)
	m.header = append(m.header, tag)
	m.state = InHeader
	return nil
}

func (m *Machine) marker(l *token.Line) (*Event, error) {
	k, err := ir.ParseKind(l.Marker)
	if err != nil {
		return nil, m.fail(l.Pos.Line, err)
	}
	var ev *Event
	switch m.state {
	case BeforeHeader, InHeader:
		ev = m.headerEvent()
	case InStanza:
		s, err := m.finishStanza()
		if err != nil {
			return nil, err
		}
		ev = &Event{Type: EventStanza, Stanza: s}
	}
	m.cur = &ir.Stanza{Kind: k, Source: m.source(l)}
	m.curLine = l.Pos.Line
	m.state = InStanza
	return ev, nil
}

func (m *Machine) headerEvent() *Event {
	m.headerDone = true
	return &Event{Type: EventHeader, Header: m.header}
}

func (m *Machine) tagLine(l *token.Line) error {
	name, raw, ok := token.SplitTag(l.Text)
	if !ok {
		return m.fail(l.Pos.Line, fmt.Errorf("%w: expected tag: value, got %q", ir.ErrMalformedStanza, l.Text))
	}
	if name == "id" && len(m.cur.TagsNamed("id")) != 0 {
		return m.fail(l.Pos.Line, fmt.Errorf("second id tag: %w", &ir.DuplicateIDError{Kind: m.cur.Kind, ID: m.cur.ID()}))
	}
	tag, err := ParseTagValue(name, raw)
	if err != nil {
		return m.fail(l.Pos.Line, err)
	}
	tag.Source = m.source(l)
	m.cur.Tags = append(m.cur.Tags, tag)
	return nil
}

func (m *Machine) finishStanza() (*ir.Stanza, error) {
	s := m.cur
	id := s.ID()
	if id == "" {
		return nil, m.fail(m.curLine, fmt.Errorf("%w: %s stanza has no id", ir.ErrMissingRequiredTag, s.Kind))
	}
	if err := m.ids.Add(s.Kind, id); err != nil {
		t, _ := s.Tag("id")
		return nil, m.fail(t.Source.Line, err)
	}
	if debug.Parse() {
		debug.Logger().Debug("stanza", "kind", s.Kind.String(), "id", id, "tags", len(s.Tags))
	}
	m.cur = nil
	return s, nil
}

// Close ends input. It returns the header event if no stanza was seen, or
// the last stanza otherwise.
func (m *Machine) Close() (*Event, error) {
	if m.state == Done {
		return nil, ErrClosed
	}
	var ev *Event
	switch m.state {
	case BeforeHeader, InHeader:
		if !m.headerDone {
			ev = m.headerEvent()
		}
	case InStanza:
		s, err := m.finishStanza()
		if err != nil {
			return nil, err
		}
		ev = &Event{Type: EventStanza, Stanza: s}
	}
	m.state = Done
	return ev, nil
}
