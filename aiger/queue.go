// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package aiger

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// queue holds the AND gates whose operands are not all defined yet. Gates are
// keyed by the variable of each missing operand, which covers both a literal
// and its complement. A gate blocked on two variables is queued twice.
type queue struct {
	blocked map[uint][]int // variable -> indices of blocked gates
	ready   []uint         // variables defined but not yet drained
}

func newQueue() *queue {
	return &queue{blocked: make(map[uint][]int)}
}

// wait registers gate k as blocked on variable v.
func (q *queue) wait(v uint, k int) {
	q.blocked[v] = append(q.blocked[v], k)
}

// resolved records that variable v is now defined.
func (q *queue) resolved(v uint) {
	if _, ok := q.blocked[v]; ok {
		q.ready = append(q.ready, v)
	}
}

// next returns the gates unblocked by the oldest defined variable. The
// boolean is false when there is nothing left to replay.
func (q *queue) next() ([]int, bool) {
	for len(q.ready) > 0 {
		v := q.ready[0]
		q.ready = q.ready[1:]
		if gates, ok := q.blocked[v]; ok {
			delete(q.blocked, v)
			return gates, true
		}
	}
	return nil, false
}

// pending returns the variables that still block some gate, in increasing
// order.
func (q *queue) pending() []uint {
	vars := maps.Keys(q.blocked)
	slices.Sort(vars)
	return vars
}
