package obo

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/signadot/obo-format/go-obo/debug"
	"github.com/signadot/obo-format/go-obo/encode"
	"github.com/signadot/obo-format/go-obo/ir"
)

// Env is the environment a query expression is evaluated in, one per
// stanza.
type Env struct {
	Kind          string              `expr:"kind"`
	ID            string              `expr:"id"`
	Name          string              `expr:"name"`
	Namespace     string              `expr:"namespace"`
	Obsolete      bool                `expr:"obsolete"`
	IsA           []string            `expr:"is_a"`
	Relationships []map[string]string `expr:"relationships"`
	Tags          map[string][]string `expr:"tags"`
}

func NewEnv(s *ir.Stanza) Env {
	env := Env{
		Kind:      s.Kind.String(),
		ID:        s.ID(),
		Name:      s.Name(),
		Namespace: s.Namespace(),
		Obsolete:  s.IsObsolete(),
		IsA:       s.IsAEdges(),
		Tags:      map[string][]string{},
	}
	for _, r := range s.Relationships() {
		env.Relationships = append(env.Relationships, map[string]string{"typedef": r.Typedef, "target": r.Target})
	}
	for i := range s.Tags {
		t := &s.Tags[i]
		if t.Value == nil {
			continue
		}
		env.Tags[t.Name] = append(env.Tags[t.Name], encode.ValueString(t.Value))
	}
	return env
}

// Query is a compiled boolean stanza expression.
type Query struct {
	src string
	prg *vm.Program
}

// Compile compiles a boolean expression over Env. doc, which may be nil,
// serves the label function.
func Compile(expression string, doc *ir.Document) (*Query, error) {
	opts := append(exprOpts(doc), expr.Env(Env{}), expr.AsBool())
	prg, err := expr.Compile(expression, opts...)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", expression, err)
	}
	return &Query{src: expression, prg: prg}, nil
}

func exprOpts(doc *ir.Document) []expr.Option {
	return []expr.Option{
		expr.Function("label", func(params ...any) (any, error) {
			if doc == nil {
				return "", nil
			}
			l, _ := doc.Label(params[0].(string))
			return l, nil
		},
			new(func(string) string)),
		expr.Function("namespace_of", func(params ...any) (any, error) {
			return ir.Namespace(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}

func (q *Query) Match(s *ir.Stanza) (bool, error) {
	env := NewEnv(s)
	res, err := expr.Run(q.prg, env)
	if err != nil {
		return false, fmt.Errorf("%s: %w", s.ID(), err)
	}
	if debug.Match() {
		debug.Logf("match %q on %s %s: %v\n", q.src, env.Kind, env.ID, res)
	}
	return res.(bool), nil
}

// Match reports whether s satisfies the boolean expression.
func Match(s *ir.Stanza, expression string) (bool, error) {
	q, err := Compile(expression, nil)
	if err != nil {
		return false, err
	}
	return q.Match(s)
}

// Select returns the stanzas of doc satisfying the boolean expression, in
// document order.
func Select(doc *ir.Document, expression string) ([]*ir.Stanza, error) {
	q, err := Compile(expression, doc)
	if err != nil {
		return nil, err
	}
	var res []*ir.Stanza
	for _, s := range doc.Stanzas {
		ok, err := q.Match(s)
		if err != nil {
			return nil, err
		}
		if ok {
			res = append(res, s)
		}
	}
	return res, nil
}
