// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import "github.com/sirupsen/logrus"

// Node is a reference to an element of a BDD. It is an index into the node
// table of the BDD that created it and is meaningless for any other BDD. Two
// nodes of the same BDD are equal if and only if they denote the same Boolean
// function.
type Node int

// The two constant nodes. They exist in every BDD, always at the same index.
const (
	False Node = 0
	True  Node = 1
)

// _DEFAULTNODESIZE is the default initial capacity of the node table.
const _DEFAULTNODESIZE int = 1 << 10

// _DEFAULTCACHESIZE is the default number of entries kept in the ITE cache.
const _DEFAULTCACHESIZE int = 1 << 16

// BDD is a shared, reduced and ordered Binary Decision Diagram. It owns every
// node created during a run: the two constants, the input variables and all
// the nodes built by the ITE operator. A BDD is not safe for concurrent use.
type BDD struct {
	order     *Order          // Variable order, used by every restrict/compare operation
	nodes     []vertex        // List of all the BDD nodes. Constants are always kept at index 0 and 1
	unique    map[triple]Node // Unicity table, used to associate each triplet to a single node
	itecache                  // Cache for ITE results
	cacheStat                 // Information about the caches
	log       *logrus.Entry   // Progress messages
}

// New returns a BDD with only the two constants and an empty variable order.
// Variables are declared with Ithvar.
func New(options ...func(*configs)) *BDD {
	c := makeconfigs()
	for _, f := range options {
		f(c)
	}
	b := &BDD{
		order:  NewOrder(c.pinned...),
		nodes:  make([]vertex, 2, c.nodesize),
		unique: make(map[triple]Node, c.nodesize),
		log:    c.log,
	}
	if b.log == nil {
		b.log = logrus.NewEntry(logrus.StandardLogger())
	}
	b.nodes[False] = vertex{v: terminalID, low: False, high: False, label: "0"}
	b.nodes[True] = vertex{v: terminalID, low: True, high: True, label: "1"}
	b.cacheinit(c.cachesize)
	return b
}

// Order returns the variable order of b.
func (b *BDD) Order() *Order {
	return b.order
}

// True returns the constant true BDD
func (b *BDD) True() Node {
	return True
}

// False returns the constant false BDD
func (b *BDD) False() Node {
	return False
}

// From returns a (constant) Node from a boolean value.
func (b *BDD) From(v bool) Node {
	if v {
		return True
	}
	return False
}

// Ithvar declares the variable name, if needed, and returns the node
// representing it.
func (b *BDD) Ithvar(name string) Node {
	id, fresh := b.order.Declare(name)
	if fresh {
		b.log.Debugf("declare variable %s (level %d)", name, b.order.Ordinal(id))
	}
	return b.makenode(int32(id), False, True)
}

// NIthvar returns the node representing the negation of variable name.
func (b *BDD) NIthvar(name string) Node {
	id, _ := b.order.Declare(name)
	return b.makenode(int32(id), True, False)
}

// Low returns the false branch of n. Constants are their own branches.
func (b *BDD) Low(n Node) Node {
	return b.nodes[b.checkptr(n)].low
}

// High returns the true branch of n.
func (b *BDD) High(n Node) Node {
	return b.nodes[b.checkptr(n)].high
}

// Varname returns the name of the variable labelling n, or the empty string if
// n is a constant.
func (b *BDD) Varname(n Node) string {
	return b.order.Name(int(b.nodes[b.checkptr(n)].v))
}

// IsTerminal reports whether n is one of the two constants.
func (b *BDD) IsTerminal(n Node) bool {
	return n == False || n == True
}

// Size returns the number of nodes in b, constants included.
func (b *BDD) Size() int {
	return len(b.nodes)
}
