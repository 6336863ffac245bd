// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

// And returns the logical 'and' of a sequence of nodes, folded from left to
// right.
func (b *BDD) And(n ...Node) Node {
	if len(n) == 0 {
		return True
	}
	res := n[0]
	for _, v := range n[1:] {
		res = b.Apply(res, v, OPand)
	}
	return res
}

// Or returns the logical 'or' of a sequence of nodes, folded from left to
// right.
func (b *BDD) Or(n ...Node) Node {
	if len(n) == 0 {
		return False
	}
	res := n[0]
	for _, v := range n[1:] {
		res = b.Apply(res, v, OPor)
	}
	return res
}

// Imp returns the logical 'implication' between two BDDs.
func (b *BDD) Imp(n1, n2 Node) Node {
	return b.Apply(n1, n2, OPimp)
}

// Equiv returns the logical 'bi-implication' between two BDDs.
func (b *BDD) Equiv(n1, n2 Node) Node {
	return b.Apply(n1, n2, OPbiimp)
}

// Xor returns the logical 'exclusive or' between two BDDs.
func (b *BDD) Xor(n1, n2 Node) Node {
	return b.Apply(n1, n2, OPxor)
}

// Equal tests equivalence between nodes. Since diagrams are canonical, this is
// an identity test.
func (b *BDD) Equal(n1, n2 Node) bool {
	return n1 == n2
}
