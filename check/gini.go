// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package check

import (
	"fmt"
	"io"
	"os"

	"github.com/dalzilio/robdd"
	"github.com/dalzilio/robdd/aiger"
	"github.com/go-air/gini"
	gaiger "github.com/go-air/gini/logic/aiger"
	"github.com/go-air/gini/z"
)

// Reread checks node root of b against the first output of the circuit read
// from r by the AIGER reader of the gini solver, which shares no code with
// package aiger. The diagram is rebuilt in the circuit with one multiplexer
// per node, and the miter of both outputs is handed to gini.
func Reread(b *robdd.BDD, root robdd.Node, r io.Reader) error {
	a, err := gaiger.ReadAscii(r)
	if err != nil {
		return fmt.Errorf("%w: %v", robdd.ErrMalformed, err)
	}
	if len(a.Outputs) == 0 {
		return fmt.Errorf("%w: no output", aiger.ErrBadHeader)
	}
	inputs := make(map[string]z.Lit, len(a.Inputs))
	for k, m := range a.Inputs {
		name, ok := a.InputName(k)
		if !ok {
			return fmt.Errorf("%w: input %d has no symbol", aiger.ErrUndefinedLit, k)
		}
		inputs[name] = m
	}

	memo := map[robdd.Node]z.Lit{robdd.False: a.F, robdd.True: a.T}
	var rec func(n robdd.Node) z.Lit
	rec = func(n robdd.Node) z.Lit {
		if m, ok := memo[n]; ok {
			return m
		}
		name := b.Varname(n)
		x, ok := inputs[name]
		if !ok {
			// a variable of another circuit, free in this one
			x = a.Lit()
			inputs[name] = x
		}
		m := a.Choice(x, rec(b.High(n)), rec(b.Low(n)))
		memo[n] = m
		return m
	}
	miter := a.Xor(a.Outputs[0], rec(root))

	s := gini.New()
	a.ToCnfFrom(s, miter)
	s.Assume(miter)
	if s.Solve() != 1 {
		return nil
	}
	model := make(map[string]bool, len(inputs))
	for name, m := range inputs {
		model[name] = s.Value(m)
	}
	return fmt.Errorf("%w: counterexample %s", ErrMismatch, formatModel(model))
}

// RereadFile is Reread on the file at path.
func RereadFile(b *robdd.BDD, root robdd.Node, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := Reread(b, root, f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
