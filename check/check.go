// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package check cross-checks the diagrams built by package robdd with SAT
// solvers. Diagrams and AIG netlists are both turned into propositional
// formulas; two functions are equivalent if the exclusive or of their
// formulas is unsatisfiable. Circuit uses the gophersat solver on the netlist
// read by package aiger, while Reread parses the file again with gini.
package check

import (
	"errors"
	"fmt"
	"strings"

	"github.com/crillab/gophersat/bf"
	"github.com/dalzilio/robdd"
	"github.com/dalzilio/robdd/aiger"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ErrMismatch is returned when a diagram and its netlist differ.
var ErrMismatch = errors.New("diagram and netlist differ")

// Formula returns a propositional formula equivalent to node n of b, obtained
// by Shannon expansion: x ? high : low is written (x & high) | (^x & low).
// Shared nodes are converted once.
func Formula(b *robdd.BDD, n robdd.Node) bf.Formula {
	memo := map[robdd.Node]bf.Formula{
		robdd.False: bf.False,
		robdd.True:  bf.True,
	}
	var rec func(n robdd.Node) bf.Formula
	rec = func(n robdd.Node) bf.Formula {
		if f, ok := memo[n]; ok {
			return f
		}
		x := bf.Var(b.Varname(n))
		low, high := b.Low(n), b.High(n)
		var f bf.Formula
		switch {
		case low == robdd.False && high == robdd.True:
			f = x
		case low == robdd.True && high == robdd.False:
			f = bf.Not(x)
		default:
			f = bf.Or(bf.And(x, rec(high)), bf.And(bf.Not(x), rec(low)))
		}
		memo[n] = f
		return f
	}
	return rec(n)
}

// Netlist returns a propositional formula for the first output of circuit c,
// built from its gates only. The diagram c.Root is not used.
func Netlist(c *aiger.Circuit) (bf.Formula, error) {
	vars := map[uint]bf.Formula{0: bf.False}
	for _, in := range c.Inputs {
		vars[aiger.Var(in.Lit)] = bf.Var(in.Name)
	}
	gates := make(map[uint]aiger.Gate, len(c.Gates))
	for _, g := range c.Gates {
		gates[aiger.Var(g.Lhs)] = g
	}
	visiting := make(map[uint]bool)
	var lit func(l uint) (bf.Formula, error)
	lit = func(l uint) (bf.Formula, error) {
		v := aiger.Var(l)
		f, ok := vars[v]
		if !ok {
			g, ok := gates[v]
			if !ok {
				return nil, fmt.Errorf("%w: %d", aiger.ErrUndefinedLit, l)
			}
			if visiting[v] {
				return nil, fmt.Errorf("%w: through literal %d", aiger.ErrCombLoop, l)
			}
			visiting[v] = true
			f0, err := lit(g.Rhs0)
			if err != nil {
				return nil, err
			}
			f1, err := lit(g.Rhs1)
			if err != nil {
				return nil, err
			}
			// a gate written with an odd output literal still defines the
			// positive form of its variable
			f = bf.And(f0, f1)
			vars[v] = f
		}
		if aiger.IsNegated(l) {
			return bf.Not(f), nil
		}
		return f, nil
	}
	return lit(c.Output())
}

// Equivalent reports whether f and g denote the same function. When they
// differ, the model is an assignment on which they disagree. Each half of the
// miter, f and not g then not f and g, is solved on its own.
func Equivalent(f, g bf.Formula) (bool, map[string]bool) {
	for _, half := range [2]bf.Formula{bf.And(f, bf.Not(g)), bf.And(bf.Not(f), g)} {
		if model := bf.Solve(half); model != nil {
			return false, model
		}
	}
	return true, nil
}

// Circuit checks that the diagram built for circuit c is equivalent to its
// netlist. It returns an error wrapping ErrMismatch, with a counterexample, if
// they differ.
func Circuit(b *robdd.BDD, c *aiger.Circuit) error {
	want, err := Netlist(c)
	if err != nil {
		return err
	}
	if ok, model := Equivalent(Formula(b, c.Root), want); !ok {
		return fmt.Errorf("%w: circuit %s, counterexample %s", ErrMismatch, c.Name, formatModel(model))
	}
	return nil
}

func formatModel(model map[string]bool) string {
	names := maps.Keys(model)
	slices.Sort(names)
	var sb strings.Builder
	for k, name := range names {
		if k > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%s=%t", name, model[name])
	}
	return sb.String()
}
