// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package sop

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/dalzilio/robdd"
	"github.com/sirupsen/logrus"
)

// Option configures a translation.
type Option func(*evaluator)

// WithSweep selects IteSweep and NotSweep instead of Ite and Not, see the
// option of the same name in package aiger.
func WithSweep(on bool) Option {
	return func(e *evaluator) {
		e.sweep = on
	}
}

// WithLogger sets the logger used for progress messages.
func WithLogger(log *logrus.Entry) Option {
	return func(e *evaluator) {
		if log != nil {
			e.log = log
		}
	}
}

type evaluator struct {
	b     *robdd.BDD
	roots map[string]robdd.Node
	sweep bool
	log   *logrus.Entry
}

// Translate parses expr and returns its node in b. Names in the expression
// refer to the nodes in roots. Factors of a product are folded from left to
// right with ITE(acc, f, 0), and products with ITE(acc, 1, p).
func Translate(b *robdd.BDD, expr string, roots map[string]robdd.Node, opts ...Option) (robdd.Node, error) {
	s, err := Parse(expr)
	if err != nil {
		return robdd.False, err
	}
	return Eval(b, s, roots, opts...)
}

// TranslateFile reads the first non-blank line of the file at path and
// translates it. See Translate.
func TranslateFile(b *robdd.BDD, path string, roots map[string]robdd.Node, opts ...Option) (robdd.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return robdd.False, err
	}
	defer f.Close()
	s := bufio.NewScanner(f)
	for s.Scan() {
		if line := strings.TrimSpace(s.Text()); line != "" {
			res, err := Translate(b, line, roots, opts...)
			if err != nil {
				return robdd.False, fmt.Errorf("%s: %w", path, err)
			}
			return res, nil
		}
	}
	if err := s.Err(); err != nil {
		return robdd.False, err
	}
	return robdd.False, fmt.Errorf("%s: %w: no expression", path, ErrEmpty)
}

// Eval returns the node of a parsed expression.
func Eval(b *robdd.BDD, s *Sum, roots map[string]robdd.Node, opts ...Option) (robdd.Node, error) {
	e := &evaluator{
		b:     b,
		roots: roots,
		log:   logrus.NewEntry(logrus.StandardLogger()),
	}
	for _, opt := range opts {
		opt(e)
	}
	if len(s.Terms) == 0 {
		return robdd.False, fmt.Errorf("%w: no term", ErrEmpty)
	}
	var acc robdd.Node
	for k, t := range s.Terms {
		p, err := e.product(t)
		if err != nil {
			return robdd.False, err
		}
		if k == 0 {
			acc = p
			continue
		}
		if acc, err = e.ite(acc, robdd.True, p); err != nil {
			return robdd.False, err
		}
	}
	e.log.Debugf("%s: %s", s, b.Label(acc))
	return acc, nil
}

func (e *evaluator) product(t Product) (robdd.Node, error) {
	if len(t.Factors) == 0 {
		return robdd.False, fmt.Errorf("%w: no factor", ErrEmpty)
	}
	var acc robdd.Node
	for k, f := range t.Factors {
		n, err := e.factor(f)
		if err != nil {
			return robdd.False, err
		}
		if k == 0 {
			acc = n
			continue
		}
		if acc, err = e.ite(acc, n, robdd.False); err != nil {
			return robdd.False, err
		}
	}
	e.log.Debugf("    %s: %s", t, e.b.Label(acc))
	return acc, nil
}

func (e *evaluator) factor(f Factor) (robdd.Node, error) {
	n, ok := e.roots[f.Name]
	if !ok {
		return robdd.False, fmt.Errorf("%w %q at offset %d", ErrUnknownRoot, f.Name, f.Pos)
	}
	if !f.Neg {
		return n, nil
	}
	if e.sweep {
		return e.b.NotSweep(n)
	}
	return e.b.Not(n), nil
}

func (e *evaluator) ite(f, g, h robdd.Node) (robdd.Node, error) {
	if e.sweep {
		return e.b.IteSweep(f, g, h)
	}
	return e.b.Ite(f, g, h), nil
}
