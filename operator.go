// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

// Operator describe the potential (binary) operations available on an Apply.
type Operator int

// Binary operators, each computed by Apply with a single ITE call.
const (
	OPand    Operator = iota // Boolean conjunction
	OPxor                    // Exclusive or
	OPor                     // Disjunction
	OPnand                   // Negation of and
	OPnor                    // Negation of or
	OPimp                    // Implication
	OPbiimp                  // Equivalence
	OPdiff                   // Difference
	OPless                   // Set difference
	OPinvimp                 // Reverse implication
)

var opnames = [...]string{
	OPand:    "and",
	OPxor:    "xor",
	OPor:     "or",
	OPnand:   "nand",
	OPnor:    "nor",
	OPimp:    "imp",
	OPbiimp:  "biimp",
	OPdiff:   "diff",
	OPless:   "less",
	OPinvimp: "invimp",
}

func (op Operator) String() string {
	if op < 0 || int(op) >= len(opnames) {
		return "unknown"
	}
	return opnames[op]
}
