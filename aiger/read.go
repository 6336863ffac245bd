// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package aiger

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dalzilio/robdd"
	"github.com/sirupsen/logrus"
)

// Option configures a translation.
type Option func(*translator)

// WithSweep selects the variable sweep used to build gates. When on, every
// AND gate is computed with IteSweep, starting from the first variable of the
// order, and complements with NotSweep. Otherwise we use Ite and Not.
func WithSweep(on bool) Option {
	return func(t *translator) {
		t.sweep = on
	}
}

// WithLogger sets the logger used for progress messages.
func WithLogger(log *logrus.Entry) Option {
	return func(t *translator) {
		if log != nil {
			t.log = log
		}
	}
}

type translator struct {
	b       *robdd.BDD
	sweep   bool
	log     *logrus.Entry
	c       *Circuit
	lits    map[uint]robdd.Node // literal -> node
	defined map[uint]bool       // variables whose literals have a node
	gates   map[uint]bool       // variables on the left of an AND gate
	q       *queue
}

// TranslateFile translates the AIG file at path. See Translate.
func TranslateFile(b *robdd.BDD, path string, opts ...Option) (*Circuit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	c, err := Translate(b, f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Translate reads a combinational circuit in ASCII AIG format from r and builds
// the node of its first output in b. The source is read twice: a first pass
// collects inputs, outputs and symbols, and declares one BDD variable per
// input symbol; after rewinding r, a second pass builds the AND gates. Gates
// may use literals defined by later gates; they are replayed as soon as their
// operands are defined.
func Translate(b *robdd.BDD, r io.ReadSeeker, opts ...Option) (*Circuit, error) {
	t := &translator{
		b:       b,
		log:     logrus.NewEntry(logrus.StandardLogger()),
		c:       &Circuit{},
		lits:    map[uint]robdd.Node{0: robdd.False, 1: robdd.True},
		defined: map[uint]bool{0: true},
		gates:   make(map[uint]bool),
		q:       newQueue(),
	}
	for _, opt := range opts {
		opt(t)
	}
	if err := t.firstPass(newLineReader(r)); err != nil {
		return nil, err
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	if err := t.secondPass(newLineReader(r)); err != nil {
		return nil, err
	}
	root, ok := t.lits[t.c.Output()]
	if !ok {
		return nil, t.unresolved()
	}
	t.c.Root = root
	t.log.Debugf("output %d: %s", t.c.Output(), b.Label(root))
	return t.c, nil
}

func (t *translator) firstPass(lr *lineReader) error {
	fields, err := lr.next()
	if err != nil {
		return err
	}
	h, err := parseHeader(fields)
	if err != nil {
		return err
	}
	t.c.Header = h
	t.log.Debugf("header: %s", h)
	// input literals
	for k := 0; k < h.Inputs; k++ {
		lit, err := t.literal(lr)
		if err != nil {
			return err
		}
		if lit < 2 || IsNegated(lit) {
			return fmt.Errorf("%w: %d (line %d)", ErrSignedInput, lit, lr.line)
		}
		t.log.Debugf("input %d: literal %d", k, lit)
		t.c.Inputs = append(t.c.Inputs, Input{Lit: lit})
	}
	// output literals; only the first one is translated
	for k := 0; k < h.Outputs; k++ {
		lit, err := t.literal(lr)
		if err != nil {
			return err
		}
		t.log.Debugf("output %d: literal %d", k, lit)
		t.c.Outputs = append(t.c.Outputs, lit)
	}
	// skip the AND gates, read in the second pass
	for k := 0; k < h.Ands; k++ {
		if _, err := lr.next(); err != nil {
			return err
		}
	}
	// symbol table, up to the comment section or the end of the file
	for {
		fields, err := lr.next()
		if errors.Is(err, ErrPrematureEOF) {
			break
		}
		if err != nil {
			return err
		}
		if fields[0] == "c" {
			break
		}
		if err := t.symbol(fields, lr.line); err != nil {
			return err
		}
	}
	for k, in := range t.c.Inputs {
		if in.Name == "" {
			return fmt.Errorf("%w: input %d (literal %d) has no symbol", ErrUndefinedLit, k, in.Lit)
		}
	}
	return nil
}

// symbol handles a line of the symbol table. Input symbols declare a variable
// of the BDD and define the literals of the input and of its complement.
func (t *translator) symbol(fields []string, line int) error {
	if len(fields) < 2 || len(fields[0]) < 2 {
		return fmt.Errorf("%w: %q (line %d)", ErrInvalidName, strings.Join(fields, " "), line)
	}
	kind := fields[0][0]
	pos, err := strconv.Atoi(fields[0][1:])
	if err != nil || pos < 0 {
		return fmt.Errorf("%w: %q (line %d)", ErrInvalidIndex, fields[0], line)
	}
	name := strings.Join(fields[1:], " ")
	switch kind {
	case 'i':
		if pos >= len(t.c.Inputs) {
			return fmt.Errorf("%w: %q (line %d)", ErrInvalidIndex, fields[0], line)
		}
		in := &t.c.Inputs[pos]
		in.Name = name
		vtx := t.b.Ithvar(name)
		inv, err := t.not(vtx)
		if err != nil {
			return err
		}
		t.lits[in.Lit] = vtx
		t.lits[in.Lit+1] = inv
		t.defined[Var(in.Lit)] = true
		t.log.Debugf("input vertex %s (%d), negation (%d)", name, in.Lit, in.Lit+1)
	case 'o':
		if pos >= len(t.c.Outputs) {
			return fmt.Errorf("%w: %q (line %d)", ErrInvalidIndex, fields[0], line)
		}
		if pos == 0 {
			t.c.Name = name
		}
	case 'l':
		// no latches
	default:
		return fmt.Errorf("%w: %q (line %d)", ErrInvalidSymbolType, fields[0], line)
	}
	return nil
}

func (t *translator) secondPass(lr *lineReader) error {
	h := t.c.Header
	// header, input and output lines
	for k := 0; k < 1+h.Inputs+h.Outputs; k++ {
		if _, err := lr.next(); err != nil {
			return err
		}
	}
	for k := 0; k < h.Ands; k++ {
		fields, err := lr.next()
		if err != nil {
			return err
		}
		if len(fields) < 3 {
			return fmt.Errorf("%w: and gate %q (line %d)", ErrBadLiteral, strings.Join(fields, " "), lr.line)
		}
		var lits [3]uint
		for j := range lits {
			if lits[j], err = t.parseLit(fields[j], lr.line); err != nil {
				return err
			}
		}
		g := Gate{Lhs: lits[0], Rhs0: lits[1], Rhs1: lits[2]}
		if Var(g.Lhs) == 0 {
			return fmt.Errorf("%w: and gate %s defines a constant (line %d)", ErrBadLiteral, g, lr.line)
		}
		if t.gates[Var(g.Lhs)] || t.defined[Var(g.Lhs)] {
			return fmt.Errorf("%w: %s (line %d)", ErrAndMultiplyDefined, g, lr.line)
		}
		t.gates[Var(g.Lhs)] = true
		t.c.Gates = append(t.c.Gates, g)
		t.log.Debugf("and gate %s", g)
		if err := t.gate(len(t.c.Gates) - 1); err != nil {
			return err
		}
	}
	return nil
}

// gate builds gate k if both its operands are defined, then replays every
// gate that was waiting for the variables defined along the way. Otherwise
// gate k is queued under each missing operand.
func (t *translator) gate(k int) error {
	g := t.c.Gates[k]
	missing := false
	for _, lit := range [2]uint{g.Rhs0, g.Rhs1} {
		if _, ok := t.lits[lit]; !ok {
			missing = true
			t.q.wait(Var(lit), k)
			if Var(g.Rhs0) == Var(g.Rhs1) {
				break
			}
		}
	}
	if missing {
		t.log.Debugf("    deferred %s", g)
		return nil
	}
	if err := t.build(g); err != nil {
		return err
	}
	for {
		gates, ok := t.q.next()
		if !ok {
			return nil
		}
		for _, j := range gates {
			g := t.c.Gates[j]
			if t.defined[Var(g.Lhs)] {
				continue
			}
			_, ok0 := t.lits[g.Rhs0]
			_, ok1 := t.lits[g.Rhs1]
			if !ok0 || !ok1 {
				// still queued under its other operand
				continue
			}
			t.log.Debugf("    replay %s", g)
			if err := t.build(g); err != nil {
				return err
			}
		}
	}
}

// build computes the node of an AND gate and defines both polarities of its
// output literal, whatever the polarity used in the file.
func (t *translator) build(g Gate) error {
	in0, in1 := t.lits[g.Rhs0], t.lits[g.Rhs1]
	t.log.Debugf("    in1 %s", t.b.Label(in0))
	t.log.Debugf("    in2 %s", t.b.Label(in1))
	vtx, err := t.and(in0, in1)
	if err != nil {
		return fmt.Errorf("and gate %s: %w", g, err)
	}
	inv, err := t.not(vtx)
	if err != nil {
		return fmt.Errorf("and gate %s: %w", g, err)
	}
	even := g.Lhs &^ 1
	t.lits[even] = vtx
	t.lits[even+1] = inv
	t.defined[Var(even)] = true
	t.q.resolved(Var(even))
	t.log.Debugf("    set vertex %s (%d)", t.b.Label(vtx), even)
	t.log.Debugf("    set vertex %s (%d)", t.b.Label(inv), even+1)
	return nil
}

func (t *translator) and(f, g robdd.Node) (robdd.Node, error) {
	if t.sweep {
		return t.b.IteSweep(f, g, robdd.False)
	}
	return t.b.Ite(f, g, robdd.False), nil
}

func (t *translator) not(f robdd.Node) (robdd.Node, error) {
	if t.sweep {
		return t.b.NotSweep(f)
	}
	return t.b.Not(f), nil
}

// unresolved explains why the output literal has no node after the second
// pass: either some variable is never defined, or gates depend on each other.
func (t *translator) unresolved() error {
	out := t.c.Output()
	pending := t.q.pending()
	for _, v := range pending {
		if !t.gates[v] && !t.defined[v] {
			return fmt.Errorf("%w: %d, needed by output %d", ErrUndefinedLit, 2*v, out)
		}
	}
	if len(pending) > 0 {
		return fmt.Errorf("%w: output %d depends on variables %v", ErrCombLoop, out, pending)
	}
	return fmt.Errorf("%w: output %d", ErrUndefinedLit, out)
}

func (t *translator) literal(lr *lineReader) (uint, error) {
	fields, err := lr.next()
	if err != nil {
		return 0, err
	}
	return t.parseLit(fields[0], lr.line)
}

func (t *translator) parseLit(s string, line int) (uint, error) {
	lit, err := strconv.ParseUint(s, 10, 0)
	if err != nil {
		return 0, fmt.Errorf("%w: %q (line %d)", ErrBadLiteral, s, line)
	}
	if lit > 2*uint64(t.c.Header.MaxVar)+1 {
		return 0, fmt.Errorf("%w: %d > 2*%d+1 (line %d)", ErrLitOOB, lit, t.c.Header.MaxVar, line)
	}
	return uint(lit), nil
}

func parseHeader(fields []string) (Header, error) {
	var h Header
	if len(fields) < 6 {
		return h, fmt.Errorf("%w: %q", ErrBadHeader, strings.Join(fields, " "))
	}
	h.Tag = fields[0]
	if h.Tag == "aig" {
		return h, ErrBinary
	}
	var cnts [5]int
	for k := range cnts {
		n, err := strconv.Atoi(fields[k+1])
		if err != nil || n < 0 {
			return h, fmt.Errorf("%w: %q", ErrBadHeader, strings.Join(fields, " "))
		}
		cnts[k] = n
	}
	h.MaxVar = uint(cnts[0])
	h.Inputs, h.Latches, h.Outputs, h.Ands = cnts[1], cnts[2], cnts[3], cnts[4]
	if h.Latches != 0 {
		return h, fmt.Errorf("%w: expected latch number 0, got %d", ErrLatches, h.Latches)
	}
	if h.Outputs < 1 {
		return h, fmt.Errorf("%w: no output", ErrBadHeader)
	}
	return h, nil
}

// lineReader returns the fields of the non-empty lines of a source.
type lineReader struct {
	s    *bufio.Scanner
	line int
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{s: bufio.NewScanner(r)}
}

func (lr *lineReader) next() ([]string, error) {
	for lr.s.Scan() {
		lr.line++
		if fields := strings.Fields(lr.s.Text()); len(fields) > 0 {
			return fields, nil
		}
	}
	if err := lr.s.Err(); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("%w (line %d)", ErrPrematureEOF, lr.line)
}
