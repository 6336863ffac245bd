// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// vertex is an entry of the node table.
type vertex struct {
	v     int32  // Id of the variable, terminalID for the constants
	low   Node   // Reference to the false branch
	high  Node   // Reference to the true branch
	label string // ITE expression of the function, computed once at creation
}

// triple is the key of the unicity table.
type triple struct {
	v    int32
	low  Node
	high Node
}

// checkptr returns n as an index in the node table and panics if n was not
// produced by b. Using a foreign node is a programming error.
func (b *BDD) checkptr(n Node) int {
	if n < 0 || int(n) >= len(b.nodes) {
		panic(invariantf("node %d is not a valid index (size %d)", n, len(b.nodes)))
	}
	return int(n)
}

// makenode returns the unique node with variable v and branches low and high.
// Redundant tests are skipped: if both branches are equal we return low.
func (b *BDD) makenode(v int32, low, high Node) Node {
	b.uniqueAccess++
	// check whether children are equal, in which case we can skip the node
	if low == high {
		return low
	}
	// otherwise try to find an existing node using the unique table
	key := triple{v, low, high}
	if res, ok := b.unique[key]; ok {
		b.uniqueHit++
		return res
	}
	b.uniqueMiss++
	res := Node(len(b.nodes))
	b.nodes = append(b.nodes, vertex{
		v:     v,
		low:   low,
		high:  high,
		label: b.mklabel(v, low, high),
	})
	b.unique[key] = res
	b.produced++
	if b.log.Logger.IsLevelEnabled(logrus.TraceLevel) {
		b.log.Tracef("create vertex %d: %s, lo: %s, hi: %s", res, b.order.Name(int(v)), b.nodes[low].label, b.nodes[high].label)
	}
	return res
}

// mklabel computes the textual form of a new node from the labels of its
// branches. A bare variable is written with its name only.
func (b *BDD) mklabel(v int32, low, high Node) string {
	name := b.order.Name(int(v))
	if low == False && high == True {
		return name
	}
	var sb strings.Builder
	hl, ll := b.nodes[high].label, b.nodes[low].label
	sb.Grow(len(name) + len(hl) + len(ll) + 8)
	sb.WriteString("ITE[")
	sb.WriteString(name)
	sb.WriteString(", ")
	sb.WriteString(hl)
	sb.WriteString(", ")
	sb.WriteString(ll)
	sb.WriteString("]")
	return sb.String()
}

// variable returns the id of the variable of n, terminalID for constants.
func (b *BDD) variable(n Node) int {
	return int(b.nodes[n].v)
}

// stats returns information about the node table
func (b *BDD) stats() string {
	res := fmt.Sprintf("Varnum:     %d\n", b.order.Len())
	res += fmt.Sprintf("Allocated:  %d\n", len(b.nodes))
	res += fmt.Sprintf("Produced:   %d", b.produced)
	return res
}
