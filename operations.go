// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"fmt"
	"math/big"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Not returns the negation of the expression corresponding to node n, computed
// as ITE(n, 0, 1).
func (b *BDD) Not(n Node) Node {
	b.checkptr(n)
	return b.ite(n, False, True)
}

// Ite, short for if-then-else operator, computes the BDD for the expression
// [(f /\ g) \/ (not f /\ h)]. At each step we split on the smallest variable
// labelling f, g or h, so the result does not depend on how the operands were
// built.
func (b *BDD) Ite(f, g, h Node) Node {
	b.checkptr(f)
	b.checkptr(g)
	b.checkptr(h)
	return b.ite(f, g, h)
}

// top3 returns the smallest variable labelling p, q or r.
func (b *BDD) top3(p, q, r Node) int {
	res := b.variable(p)
	if v := b.variable(q); b.order.Compare(v, res) < 0 {
		res = v
	}
	if v := b.variable(r); b.order.Compare(v, res) < 0 {
		res = v
	}
	return res
}

// cofactor returns the low (or high) branch of n if n is labelled with v, and
// n otherwise. Variable v must not come after the variable of n.
func (b *BDD) cofactor(n Node, v int, high bool) Node {
	if b.variable(n) != v {
		return n
	}
	if high {
		return b.nodes[n].high
	}
	return b.nodes[n].low
}

func (b *BDD) ite(f, g, h Node) Node {
	switch {
	case f == True:
		return g
	case f == False:
		return h
	case (g == True) && (h == False):
		return f
	case g == h:
		return g
	}
	if res, ok := b.matchite(f, g, h, sweepFree); ok {
		return res
	}
	v := b.top3(f, g, h)
	high := b.ite(b.cofactor(f, v, true), b.cofactor(g, v, true), b.cofactor(h, v, true))
	low := b.ite(b.cofactor(f, v, false), b.cofactor(g, v, false), b.cofactor(h, v, false))
	return b.setite(f, g, h, sweepFree, b.makenode(int32(v), low, high))
}

// IteAt computes the same function as Ite but lets the caller drive the
// variable sweep: we split on variable v, then on its successor in the order,
// and so on. This is only correct if every variable the operands depend on is
// at or after v; otherwise we return an error wrapping ErrInvariant.
func (b *BDD) IteAt(f, g, h Node, v string) (Node, error) {
	b.checkptr(f)
	b.checkptr(g)
	b.checkptr(h)
	id, ok := b.order.Lookup(v)
	if !ok {
		return False, fmt.Errorf("%w: %q in call to IteAt", ErrUnknownVariable, v)
	}
	return b.iteat(f, g, h, id)
}

func (b *BDD) iteat(f, g, h Node, v int) (Node, error) {
	switch {
	case f == True:
		return g, nil
	case f == False:
		return h, nil
	case (g == True) && (h == False):
		return f, nil
	case g == h:
		return g, nil
	}
	if res, ok := b.matchite(f, g, h, int32(v)); ok {
		return res, nil
	}
	var fh, gh, hh, fl, gl, hl Node
	var err error
	if fh, fl, err = b.restrict2(f, v); err != nil {
		return False, err
	}
	if gh, gl, err = b.restrict2(g, v); err != nil {
		return False, err
	}
	if hh, hl, err = b.restrict2(h, v); err != nil {
		return False, err
	}
	next := b.order.Next(v)
	high, err := b.iteat(fh, gh, hh, next)
	if err != nil {
		return False, err
	}
	low, err := b.iteat(fl, gl, hl, next)
	if err != nil {
		return False, err
	}
	return b.setite(f, g, h, int32(v), b.makenode(int32(v), low, high)), nil
}

// Restrict returns the cofactor of n where variable v is set to the value
// high. If n does not depend on v (its variable comes after v) we return n
// unchanged. It is an error to restrict n on a variable that comes before the
// variable of n.
func (b *BDD) Restrict(n Node, v string, high bool) (Node, error) {
	b.checkptr(n)
	id, ok := b.order.Lookup(v)
	if !ok {
		return False, fmt.Errorf("%w: %q in call to Restrict", ErrUnknownVariable, v)
	}
	nh, nl, err := b.restrict2(n, id)
	if high {
		return nh, err
	}
	return nl, err
}

// restrict2 returns both cofactors of n with respect to v.
func (b *BDD) restrict2(n Node, v int) (Node, Node, error) {
	nv := b.variable(n)
	switch c := b.order.Compare(nv, v); {
	case c > 0:
		return n, n, nil
	case c == 0:
		return b.nodes[n].high, b.nodes[n].low, nil
	}
	return False, False, invariantf("restrict on %q reached node %d labelled with earlier variable %q",
		b.order.Name(v), n, b.order.Name(nv))
}

// Apply performs all of the basic bdd operations with two operands, such as
// AND, OR etc. Each operation is computed with a single call to ITE.
//
//	Identifier    Description             Truth table
//
//	OPand         logical and             [0,0,0,1]
//	OPxor         logical xor             [0,1,1,0]
//	OPor          logical or              [0,1,1,1]
//	OPnand        logical not-and         [1,1,1,0]
//	OPnor         logical not-or          [1,0,0,0]
//	OPimp         implication             [1,1,0,1]
//	OPbiimp       equivalence             [1,0,0,1]
//	OPdiff        set difference          [0,0,1,0]
//	OPless        less than               [0,1,0,0]
//	OPinvimp      reverse implication     [1,0,1,1]
func (b *BDD) Apply(left Node, right Node, op Operator) Node {
	b.checkptr(left)
	b.checkptr(right)
	switch op {
	case OPand:
		return b.ite(left, right, False)
	case OPxor:
		return b.ite(left, b.ite(right, False, True), right)
	case OPor:
		return b.ite(left, True, right)
	case OPnand:
		return b.ite(left, b.ite(right, False, True), True)
	case OPnor:
		return b.ite(left, False, b.ite(right, False, True))
	case OPimp:
		return b.ite(left, right, True)
	case OPbiimp:
		return b.ite(left, right, b.ite(right, False, True))
	case OPdiff:
		return b.ite(left, b.ite(right, False, True), False)
	case OPless:
		return b.ite(left, False, right)
	case OPinvimp:
		return b.ite(left, True, b.ite(right, False, True))
	}
	panic(invariantf("unauthorized operation (%s) in apply", op))
}

// Satcount computes the number of satisfying variable assignments for the
// function denoted by n, over all the variables declared in b. We return a
// result using arbitrary-precision arithmetic to avoid possible overflows.
func (b *BDD) Satcount(n Node) *big.Int {
	b.checkptr(n)
	memo := make(map[Node]*big.Int)
	res := big.NewInt(1)
	res.Lsh(res, uint(b.order.Ordinal(b.variable(n))))
	return res.Mul(res, b.satcount(n, memo))
}

func (b *BDD) satcount(n Node, memo map[Node]*big.Int) *big.Int {
	if n == False {
		return big.NewInt(0)
	}
	if n == True {
		return big.NewInt(1)
	}
	if res, ok := memo[n]; ok {
		return res
	}
	level := b.order.Ordinal(b.variable(n))
	res := big.NewInt(0)
	for _, child := range [2]Node{b.nodes[n].low, b.nodes[n].high} {
		size := big.NewInt(1)
		size.Lsh(size, uint(b.order.Ordinal(b.variable(child))-level-1))
		res.Add(res, size.Mul(size, b.satcount(child, memo)))
	}
	memo[n] = res
	return res
}

// Allsat iterates through all legal variable assignments for n and calls the
// function f on each of them. We pass an int slice indexed by level (see
// Order.Names) where each entry is either 0 if the variable is false, 1 if it
// is true, and -1 if it is a don't care. We stop and return an error if f
// returns an error at some point.
func (b *BDD) Allsat(n Node, f func([]int) error) error {
	b.checkptr(n)
	prof := make([]int, b.order.Len())
	for k := range prof {
		prof[k] = -1
	}
	return b.allsat(n, prof, f)
}

func (b *BDD) allsat(n Node, prof []int, f func([]int) error) error {
	if n == True {
		return f(prof)
	}
	if n == False {
		return nil
	}
	level := b.order.Ordinal(b.variable(n))
	prof[level] = 0
	if err := b.allsat(b.nodes[n].low, prof, f); err != nil {
		return err
	}
	prof[level] = 1
	if err := b.allsat(b.nodes[n].high, prof, f); err != nil {
		return err
	}
	prof[level] = -1
	return nil
}

// Eval returns the value of the function n for the given assignment.
// Variables missing from the assignment are taken to be false.
func (b *BDD) Eval(n Node, assignment map[string]bool) bool {
	b.checkptr(n)
	for n > True {
		if assignment[b.order.Name(b.variable(n))] {
			n = b.nodes[n].high
		} else {
			n = b.nodes[n].low
		}
	}
	return n == True
}

// Allnodes applies function f over all the nodes accessible from the nodes in
// the sequence n..., or all the nodes in b if n is absent (len(n) == 0). The
// parameters to function f are the id, level, and id's of the low and high
// successors of each node. The two constant nodes (True and False) have always
// the id 1 and 0 respectively; their level is the number of variables. Nodes
// are visited in increasing id order, so children come before their parents.
func (b *BDD) Allnodes(f func(id, level, low, high int) error, n ...Node) error {
	ids := make([]int, 0, len(b.nodes))
	if len(n) == 0 {
		for k := range b.nodes {
			ids = append(ids, k)
		}
	} else {
		seen := map[Node]bool{False: true, True: true}
		for _, root := range n {
			b.checkptr(root)
			b.markrec(root, seen)
		}
		for _, k := range maps.Keys(seen) {
			ids = append(ids, int(k))
		}
		slices.Sort(ids)
	}
	for _, k := range ids {
		v := b.nodes[k]
		if err := f(k, b.order.Ordinal(int(v.v)), int(v.low), int(v.high)); err != nil {
			return err
		}
	}
	return nil
}

func (b *BDD) markrec(n Node, seen map[Node]bool) {
	if seen[n] {
		return
	}
	seen[n] = true
	b.markrec(b.nodes[n].low, seen)
	b.markrec(b.nodes[n].high, seen)
}

// Support returns the names of the variables that n depends on, from first to
// last level.
func (b *BDD) Support(n Node) []string {
	b.checkptr(n)
	seen := map[Node]bool{False: true, True: true}
	b.markrec(n, seen)
	vars := make(map[int]bool)
	for k := range seen {
		if k > True {
			vars[b.variable(k)] = true
		}
	}
	ids := maps.Keys(vars)
	slices.SortFunc(ids, b.order.Compare)
	res := make([]string, len(ids))
	for k, id := range ids {
		res[k] = b.order.Name(id)
	}
	return res
}

// IteSweep is IteAt with the sweep starting at the first variable of the
// order. It falls back to Ite when no variable is declared.
func (b *BDD) IteSweep(f, g, h Node) (Node, error) {
	first := b.order.First()
	if first == terminalID {
		return b.Ite(f, g, h), nil
	}
	return b.IteAt(f, g, h, b.order.Name(first))
}

// NotSweep computes the negation of n as IteAt(n, 0, 1) with the sweep starting
// at the variable of n.
func (b *BDD) NotSweep(n Node) (Node, error) {
	if b.IsTerminal(n) {
		return b.Not(n), nil
	}
	return b.IteAt(n, False, True, b.Varname(n))
}
