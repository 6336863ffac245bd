// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"strings"

	"golang.org/x/exp/slices"
)

// terminalID is the variable id used by the two constant nodes. It ranks after
// every declared variable.
const terminalID = -1

// Order is the total order over the variables of a BDD. Variables receive a
// stable id when they are declared; their position in the order (their level)
// is computed from their names. By default variables are ordered by symbol
// code, so that "a" < "b" < "c". Names given with Pin precede all other
// variables, in the sequence they were given.
type Order struct {
	names  []string       // name of each variable, indexed by id
	ids    map[string]int // reverse of names
	pinned map[string]int // explicit rank of pinned names
	sorted []int          // variable ids, from first to last level
	level  []int          // level of each variable, indexed by id
}

// NewOrder returns an empty variable order. Names in pin, if any, are placed
// first, in this order, whenever they are declared.
func NewOrder(pin ...string) *Order {
	o := &Order{
		ids:    make(map[string]int),
		pinned: make(map[string]int, len(pin)),
	}
	for k, name := range pin {
		if _, ok := o.pinned[name]; !ok {
			o.pinned[name] = k
		}
	}
	return o
}

func (o *Order) less(a, b string) int {
	pa, oka := o.pinned[a]
	pb, okb := o.pinned[b]
	switch {
	case oka && okb:
		return pa - pb
	case oka:
		return -1
	case okb:
		return 1
	}
	return strings.Compare(a, b)
}

// Declare registers variable name and returns its id. The boolean is true if
// the variable was not known before.
func (o *Order) Declare(name string) (int, bool) {
	if id, ok := o.ids[name]; ok {
		return id, false
	}
	id := len(o.names)
	o.names = append(o.names, name)
	o.ids[name] = id
	pos, _ := slices.BinarySearchFunc(o.sorted, name, func(e int, target string) int {
		return o.less(o.names[e], target)
	})
	o.sorted = slices.Insert(o.sorted, pos, id)
	o.level = append(o.level, 0)
	for k := pos; k < len(o.sorted); k++ {
		o.level[o.sorted[k]] = k
	}
	return id, true
}

// Lookup returns the id of a declared variable.
func (o *Order) Lookup(name string) (int, bool) {
	id, ok := o.ids[name]
	return id, ok
}

// Len returns the number of declared variables.
func (o *Order) Len() int {
	return len(o.names)
}

// Name returns the symbol of variable id, or the empty string for the
// terminal sentinel.
func (o *Order) Name(id int) string {
	if id < 0 || id >= len(o.names) {
		return ""
	}
	return o.names[id]
}

// Names returns the declared variables, from first to last level.
func (o *Order) Names() []string {
	res := make([]string, len(o.sorted))
	for k, id := range o.sorted {
		res[k] = o.names[id]
	}
	return res
}

// Ordinal returns the level of variable id. The terminal sentinel has level
// Len().
func (o *Order) Ordinal(id int) int {
	if id == terminalID {
		return len(o.sorted)
	}
	return o.level[id]
}

// Compare returns a negative value if variable a comes before b, zero if they
// are the same variable and a positive value otherwise.
func (o *Order) Compare(a, b int) int {
	return o.Ordinal(a) - o.Ordinal(b)
}

// First returns the id of the variable with the lowest level, or the terminal
// sentinel (-1) if no variable was declared.
func (o *Order) First() int {
	if len(o.sorted) == 0 {
		return terminalID
	}
	return o.sorted[0]
}

// Next returns the successor of variable id in the order, or -1 if id is the
// last variable.
func (o *Order) Next(id int) int {
	if id == terminalID {
		return terminalID
	}
	k := o.level[id] + 1
	if k >= len(o.sorted) {
		return terminalID
	}
	return o.sorted[k]
}
