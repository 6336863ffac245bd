// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package aiger

import (
	"fmt"

	"github.com/dalzilio/robdd"
)

// Errors related to reading and translating AIG files. They wrap the error
// classes of package robdd.
var (
	ErrBinary             = fmt.Errorf("%w: binary aig format", robdd.ErrUnsupported)
	ErrLatches            = fmt.Errorf("%w: latches", robdd.ErrUnsupported)
	ErrBadHeader          = fmt.Errorf("%w: bad header", robdd.ErrMalformed)
	ErrPrematureEOF       = fmt.Errorf("%w: premature EOF", robdd.ErrMalformed)
	ErrBadLiteral         = fmt.Errorf("%w: malformed literal", robdd.ErrMalformed)
	ErrLitOOB             = fmt.Errorf("%w: literal out of bounds", robdd.ErrMalformed)
	ErrSignedInput        = fmt.Errorf("%w: input is negated", robdd.ErrMalformed)
	ErrInvalidIndex       = fmt.Errorf("%w: invalid symbol index", robdd.ErrMalformed)
	ErrInvalidSymbolType  = fmt.Errorf("%w: invalid symbol type", robdd.ErrMalformed)
	ErrInvalidName        = fmt.Errorf("%w: invalid symbol name", robdd.ErrMalformed)
	ErrAndMultiplyDefined = fmt.Errorf("%w: and gate multiply defined", robdd.ErrMalformed)
	ErrUndefinedLit       = fmt.Errorf("%w: literal not defined", robdd.ErrMalformed)
	ErrCombLoop           = fmt.Errorf("%w: combinational logic has a loop", robdd.ErrMalformed)
)

// Header is the first line of an AIG file: <tag> M I L O A.
type Header struct {
	Tag     string
	MaxVar  uint // M, maximal variable index
	Inputs  int  // I
	Latches int  // L, must be 0
	Outputs int  // O
	Ands    int  // A
}

func (h Header) String() string {
	return fmt.Sprintf("%s %d %d %d %d %d", h.Tag, h.MaxVar, h.Inputs, h.Latches, h.Outputs, h.Ands)
}

// Input is a primary input of a circuit, with its (even) literal and the
// symbol naming its variable in the BDD.
type Input struct {
	Lit  uint
	Name string
}

// Gate is an AND gate definition: Lhs = Rhs0 & Rhs1.
type Gate struct {
	Lhs, Rhs0, Rhs1 uint
}

func (g Gate) String() string {
	return fmt.Sprintf("%d %d %d", g.Lhs, g.Rhs0, g.Rhs1)
}

// Circuit is the result of translating an AIG file: the netlist as it was
// read and the node of its first output.
type Circuit struct {
	Name    string // symbol of the first output, empty if it has none
	Header  Header
	Inputs  []Input
	Outputs []uint // output literals, only the first one is translated
	Gates   []Gate // in file order
	Root    robdd.Node
}

// Output returns the literal of the first output.
func (c *Circuit) Output() uint {
	return c.Outputs[0]
}

// Var returns the variable index of a literal.
func Var(lit uint) uint {
	return lit >> 1
}

// IsNegated reports whether a literal is the complement of its variable.
func IsNegated(lit uint) bool {
	return lit&1 == 1
}
