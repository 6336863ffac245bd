// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package sop

import (
	"fmt"
	"strings"

	"github.com/dalzilio/robdd"
)

// Errors returned when parsing or evaluating an expression. They wrap
// robdd.ErrMalformed.
var (
	ErrSyntax      = fmt.Errorf("%w: syntax error", robdd.ErrMalformed)
	ErrEmpty       = fmt.Errorf("%w: empty term or factor", robdd.ErrMalformed)
	ErrUnknownRoot = fmt.Errorf("%w: unknown root", robdd.ErrMalformed)
)

// Sum is a sum of products: a disjunction of Terms.
type Sum struct {
	Terms []Product
}

// Product is a conjunction of factors.
type Product struct {
	Factors []Factor
}

// Factor is a reference to a named root, possibly complemented.
type Factor struct {
	Name string
	Neg  bool // written name'
	Pos  int  // byte offset of the name in the expression
}

func (s *Sum) String() string {
	terms := make([]string, len(s.Terms))
	for k, t := range s.Terms {
		terms[k] = t.String()
	}
	return strings.Join(terms, "+")
}

func (p Product) String() string {
	factors := make([]string, len(p.Factors))
	for k, f := range p.Factors {
		factors[k] = f.String()
	}
	return strings.Join(factors, "*")
}

func (f Factor) String() string {
	if f.Neg {
		return f.Name + "'"
	}
	return f.Name
}

// Names returns the names used in s, in order of first occurrence.
func (s *Sum) Names() []string {
	seen := make(map[string]bool)
	var res []string
	for _, t := range s.Terms {
		for _, f := range t.Factors {
			if !seen[f.Name] {
				seen[f.Name] = true
				res = append(res, f.Name)
			}
		}
	}
	return res
}

// Parse parses a sum-of-products expression following the grammar
//
//	expr   := term ('+' term)*
//	term   := factor ('*' factor)*
//	factor := name | name "'"
//
// Blanks between tokens are ignored.
func Parse(expr string) (*Sum, error) {
	p := &parser{src: expr}
	p.scan()
	s := &Sum{}
	for {
		t, err := p.term()
		if err != nil {
			return nil, err
		}
		s.Terms = append(s.Terms, t)
		if p.tok != '+' {
			break
		}
		p.scan()
	}
	if p.tok != tokEOF {
		return nil, p.errorf(ErrSyntax, "unexpected %s", p.describe())
	}
	return s, nil
}

const (
	tokEOF  = -1
	tokName = -2
	tokBad  = -3
)

// parser is a hand-written scanner and recursive descent parser. The current
// token is tok, starting at byte offset pos; for names, lit is the name.
type parser struct {
	src string
	off int // next byte to scan
	tok int
	pos int
	lit string
}

func isNameByte(c byte) bool {
	return c == '_' || c == '.' || c == '[' || c == ']' ||
		('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

func (p *parser) scan() {
	for p.off < len(p.src) && strings.IndexByte(" \t\r\n", p.src[p.off]) >= 0 {
		p.off++
	}
	p.pos = p.off
	p.lit = ""
	if p.off >= len(p.src) {
		p.tok = tokEOF
		return
	}
	c := p.src[p.off]
	switch {
	case c == '+' || c == '*' || c == '\'':
		p.tok = int(c)
		p.off++
	case isNameByte(c):
		for p.off < len(p.src) && isNameByte(p.src[p.off]) {
			p.off++
		}
		p.tok = tokName
		p.lit = p.src[p.pos:p.off]
	default:
		p.tok = tokBad
		p.lit = string(c)
		p.off++
	}
}

func (p *parser) term() (Product, error) {
	var t Product
	for {
		f, err := p.factor()
		if err != nil {
			return t, err
		}
		t.Factors = append(t.Factors, f)
		if p.tok != '*' {
			return t, nil
		}
		p.scan()
	}
}

func (p *parser) factor() (Factor, error) {
	switch p.tok {
	case tokName:
	case tokEOF, '+', '*':
		return Factor{}, p.errorf(ErrEmpty, "expected a name, found %s", p.describe())
	default:
		return Factor{}, p.errorf(ErrSyntax, "expected a name, found %s", p.describe())
	}
	f := Factor{Name: p.lit, Pos: p.pos}
	p.scan()
	if p.tok == '\'' {
		f.Neg = true
		p.scan()
	}
	return f, nil
}

func (p *parser) describe() string {
	switch p.tok {
	case tokEOF:
		return "end of expression"
	case tokName:
		return fmt.Sprintf("name %q", p.lit)
	case tokBad:
		return fmt.Sprintf("character %q", p.lit)
	}
	return fmt.Sprintf("%q", rune(p.tok))
}

func (p *parser) errorf(class error, format string, a ...interface{}) error {
	return fmt.Errorf("%w at offset %d: %s", class, p.pos, fmt.Sprintf(format, a...))
}
