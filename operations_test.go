// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	. "github.com/onsi/gomega"
)

//********************************************************************************************

func TestTop3(t *testing.T) {
	b := New()
	ids := make([]int, 4)
	for k, name := range []string{"a", "b", "c", "d"} {
		b.Ithvar(name)
		ids[k], _ = b.order.Lookup(name)
	}
	vars := []Node{b.Ithvar("a"), b.Ithvar("b"), b.Ithvar("c"), b.Ithvar("d")}
	var top3Tests = []struct {
		p, q, r  Node
		expected int
	}{
		{vars[3], vars[2], vars[3], ids[2]},
		{vars[3], vars[3], vars[3], ids[3]},
		{vars[2], vars[3], vars[3], ids[2]},
		{vars[1], vars[2], True, ids[1]},
		{True, False, vars[0], ids[0]},
		{True, False, True, terminalID},
	}
	for _, tt := range top3Tests {
		actual := b.top3(tt.p, tt.q, tt.r)
		if actual != tt.expected {
			t.Errorf("top3(%d, %d, %d): expected %d, actual %d", tt.p, tt.q, tt.r, tt.expected, actual)
		}
	}
}

//********************************************************************************************

func TestIte_1(t *testing.T) {
	b := New()
	x0, x2, x3 := b.Ithvar("x0"), b.Ithvar("x2"), b.Ithvar("x3")
	n1 := b.And(x0, x2, x3)
	n2 := b.And(x0, x3)
	actual := b.Equiv(b.Ite(n1, n2, b.Not(n2)), b.Or(b.And(n1, n2), b.And(b.Not(n1), b.Not(n2))))
	if actual != b.True() {
		t.Errorf("ite(f,g,h) <=> (f or g) and (-f or h): expected true, actual false")
	}
}

func TestIteTerminalRules(t *testing.T) {
	g := NewGomegaWithT(t)
	b := New()
	x, y := b.Ithvar("x"), b.Ithvar("y")

	g.Expect(b.Ite(True, x, y)).To(Equal(x))
	g.Expect(b.Ite(False, x, y)).To(Equal(y))
	g.Expect(b.Ite(x, True, False)).To(Equal(x))
	g.Expect(b.Ite(x, y, y)).To(Equal(y))
	g.Expect(b.Not(True)).To(Equal(False))
	g.Expect(b.Not(False)).To(Equal(True))
}

func TestCanonicity(t *testing.T) {
	g := NewGomegaWithT(t)
	b := New()
	x, y, z := b.Ithvar("x"), b.Ithvar("y"), b.Ithvar("z")

	// (x & y) | z built in two different ways
	n1 := b.Or(b.And(x, y), z)
	n2 := b.Not(b.And(b.Not(z), b.Or(b.Not(x), b.Not(y))))
	g.Expect(n1).To(Equal(n2))
	g.Expect(b.Label(n1)).To(Equal(b.Label(n2)))

	// complement is an involution and Ithvar is interned
	g.Expect(b.Not(b.Not(n1))).To(Equal(n1))
	g.Expect(b.Ithvar("y")).To(Equal(y))
	g.Expect(b.Not(x)).To(Equal(b.NIthvar("x")))
}

func TestReduced(t *testing.T) {
	g := NewGomegaWithT(t)
	b := New()
	x, y, z := b.Ithvar("x"), b.Ithvar("y"), b.Ithvar("z")
	b.Xor(b.Or(x, y), b.And(y, z))
	b.Equiv(x, b.Not(z))

	seen := make(map[triple]int)
	err := b.Allnodes(func(id, level, low, high int) error {
		if id < 2 {
			g.Expect(level).To(Equal(b.order.Len()))
			return nil
		}
		if low == high {
			return fmt.Errorf("node %d has two equal branches", id)
		}
		key := triple{b.nodes[id].v, Node(low), Node(high)}
		if k, ok := seen[key]; ok {
			return fmt.Errorf("nodes %d and %d are the same triple", k, id)
		}
		seen[key] = id
		// children are always at a later level
		g.Expect(b.order.Ordinal(b.variable(Node(low)))).To(BeNumerically(">", level))
		g.Expect(b.order.Ordinal(b.variable(Node(high)))).To(BeNumerically(">", level))
		return nil
	})
	g.Expect(err).NotTo(HaveOccurred())
}

//********************************************************************************************

func TestApply(t *testing.T) {
	b := New()
	x, y := b.Ithvar("x"), b.Ithvar("y")
	var applyTests = []struct {
		op    Operator
		table [4]bool // (x,y) = 00, 01, 10, 11
	}{
		{OPand, [4]bool{false, false, false, true}},
		{OPxor, [4]bool{false, true, true, false}},
		{OPor, [4]bool{false, true, true, true}},
		{OPnand, [4]bool{true, true, true, false}},
		{OPnor, [4]bool{true, false, false, false}},
		{OPimp, [4]bool{true, true, false, true}},
		{OPbiimp, [4]bool{true, false, false, true}},
		{OPdiff, [4]bool{false, false, true, false}},
		{OPless, [4]bool{false, true, false, false}},
		{OPinvimp, [4]bool{true, false, true, true}},
	}
	for _, tt := range applyTests {
		n := b.Apply(x, y, tt.op)
		for k, expected := range tt.table {
			env := map[string]bool{"x": k&2 != 0, "y": k&1 != 0}
			if actual := b.Eval(n, env); actual != expected {
				t.Errorf("%s on %v: expected %t, actual %t", tt.op, env, expected, actual)
			}
		}
	}
}

func TestApplyPanicsOnBadOperator(t *testing.T) {
	g := NewGomegaWithT(t)
	b := New()
	x := b.Ithvar("x")
	g.Expect(func() { b.Apply(x, x, Operator(42)) }).To(Panic())
	g.Expect(func() { b.Not(Node(1000)) }).To(Panic())
}

//********************************************************************************************

func TestIteAt(t *testing.T) {
	g := NewGomegaWithT(t)
	b := New()
	a, c, d := b.Ithvar("a"), b.Ithvar("c"), b.Ithvar("d")

	// a sweep from the first variable agrees with Ite
	f, h := b.Or(a, d), b.And(c, b.Not(d))
	want := b.Ite(f, c, h)
	got, err := b.IteAt(f, c, h, "a")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(got).To(Equal(want))

	got, err = b.IteSweep(f, c, h)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(got).To(Equal(want))

	// starting the sweep after the variable of f is a violation
	_, err = b.IteAt(a, c, False, "c")
	g.Expect(errors.Is(err, ErrInvariant)).To(BeTrue())

	_, err = b.IteAt(a, c, False, "zz")
	g.Expect(errors.Is(err, ErrUnknownVariable)).To(BeTrue())

	// declaring a variable in between keeps earlier results valid
	bb := b.Ithvar("b")
	got, err = b.IteSweep(f, c, h)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(got).To(Equal(want))
	got, err = b.IteSweep(bb, f, h)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(got).To(Equal(b.Ite(bb, f, h)))

	n, err := b.NotSweep(f)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(n).To(Equal(b.Not(f)))
}

func TestIteSweepWithoutVariables(t *testing.T) {
	g := NewGomegaWithT(t)
	b := New()
	n, err := b.IteSweep(True, False, True)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(n).To(Equal(False))
}

func TestRestrict(t *testing.T) {
	g := NewGomegaWithT(t)
	b := New()
	x, y, z := b.Ithvar("x"), b.Ithvar("y"), b.Ithvar("z")
	n := b.Ite(x, y, z)

	hi, err := b.Restrict(n, "x", true)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(hi).To(Equal(y))
	lo, err := b.Restrict(n, "x", false)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(lo).To(Equal(z))

	// y does not depend on x, which comes before y
	same, err := b.Restrict(y, "x", true)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(same).To(Equal(y))

	_, err = b.Restrict(n, "y", true)
	g.Expect(errors.Is(err, ErrInvariant)).To(BeTrue())
}

//********************************************************************************************

// TestOperations implements the same tests than the bddtest program in the
// Buddy distribution. It uses function Allsat for checking that all assignments
// are detected.

func TestOperations(t *testing.T) {
	bdd := New()
	varnum := 4
	for i := 0; i < varnum; i++ {
		bdd.Ithvar(fmt.Sprintf("x%d", i))
	}
	names := bdd.Order().Names()

	test1_check := func(x Node) error {
		allsatBDD := x
		allsatSumBDD := bdd.False()
		// Calculate whole set of asignments and remove all assignments
		// from original set
		bdd.Allsat(x, func(varset []int) error {
			x := bdd.True()
			for k, v := range varset {
				switch v {
				case 0:
					x = bdd.And(x, bdd.NIthvar(names[k]))
				case 1:
					x = bdd.And(x, bdd.Ithvar(names[k]))
				}
			}
			t.Logf("Checking bdd with %-4s assignments\n", bdd.Satcount(x))
			// Sum up all assignments
			allsatSumBDD = bdd.Or(allsatSumBDD, x)
			// Remove assignment from initial set
			allsatBDD = bdd.Apply(allsatBDD, x, OPdiff)
			return nil
		})

		// Now the summed set should be equal to the original set and the
		// subtracted set should be empty
		if !bdd.Equal(allsatSumBDD, x) {
			return fmt.Errorf("AllSat sum is not the initial BDD")
		}

		if !bdd.Equal(allsatBDD, bdd.False()) {
			return fmt.Errorf("AllSat is not False")
		}
		return nil
	}

	check := func(x Node) {
		t.Helper()
		if err := test1_check(x); err != nil {
			t.Error(err)
		}
	}

	a := bdd.Ithvar("x0")
	b := bdd.Ithvar("x1")
	c := bdd.Ithvar("x2")
	d := bdd.Ithvar("x3")
	na := bdd.NIthvar("x0")
	nb := bdd.NIthvar("x1")
	nc := bdd.NIthvar("x2")
	nd := bdd.NIthvar("x3")

	check(bdd.True())

	check(bdd.False())

	// a & b | !a & !b
	check(bdd.Or(bdd.And(a, b), bdd.And(na, nb)))

	// a & b | c & d
	check(bdd.Or(bdd.And(a, b), bdd.And(c, d)))

	// a & !b | a & !d | a & b & !c
	check(bdd.Or(bdd.And(a, nb), bdd.And(a, nd), bdd.And(a, b, nc)))

	for i := 0; i < varnum; i++ {
		check(bdd.Ithvar(names[i]))
		check(bdd.NIthvar(names[i]))
	}

	set := bdd.True()
	for i := 0; i < 50; i++ {
		v := rand.Intn(varnum)
		s := rand.Intn(2)
		o := rand.Intn(2)

		if o == 0 {
			if s == 0 {
				set = bdd.And(set, bdd.Ithvar(names[v]))
			} else {
				set = bdd.And(set, bdd.NIthvar(names[v]))
			}
		} else {
			if s == 0 {
				set = bdd.Or(set, bdd.Ithvar(names[v]))
			} else {
				set = bdd.Or(set, bdd.NIthvar(names[v]))
			}
		}

		check(set)
	}
}

func TestSatcount(t *testing.T) {
	g := NewGomegaWithT(t)
	b := New()
	x, y, z := b.Ithvar("x"), b.Ithvar("y"), b.Ithvar("z")

	g.Expect(b.Satcount(True).Int64()).To(Equal(int64(8)))
	g.Expect(b.Satcount(False).Int64()).To(Equal(int64(0)))
	g.Expect(b.Satcount(x).Int64()).To(Equal(int64(4)))
	g.Expect(b.Satcount(z).Int64()).To(Equal(int64(4)))
	g.Expect(b.Satcount(b.And(x, z)).Int64()).To(Equal(int64(2)))
	g.Expect(b.Satcount(b.Or(x, y, z)).Int64()).To(Equal(int64(7)))
	g.Expect(b.Satcount(b.Xor(x, b.Xor(y, z))).Int64()).To(Equal(int64(4)))
}

func TestSmallCache(t *testing.T) {
	g := NewGomegaWithT(t)
	build := func(b *BDD) string {
		vars := make([]Node, 6)
		for k := range vars {
			vars[k] = b.Ithvar(fmt.Sprintf("v%d", k))
		}
		res := False
		for k := range vars {
			res = b.Xor(res, b.And(vars[k], vars[(k+1)%len(vars)]))
		}
		return b.Label(res)
	}
	small := New(Cachesize(2))
	g.Expect(build(small)).To(Equal(build(New())))
	small.ResetCache()
	g.Expect(build(small)).To(Equal(build(New())))
	g.Expect(small.Stats()).To(ContainSubstring("Operator Hits:"))
}
