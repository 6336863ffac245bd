// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package sop

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dalzilio/robdd"
	"github.com/google/go-cmp/cmp"
	. "github.com/onsi/gomega"
)

func TestParse(t *testing.T) {
	var parseTests = []struct {
		expr     string
		expected string
		names    []string
	}{
		{"g", "g", []string{"g"}},
		{"g*h+g'*h'", "g*h+g'*h'", []string{"g", "h"}},
		{" h' + g * h ", "h'+g*h", []string{"h", "g"}},
		{"out[0]*x.y_1", "out[0]*x.y_1", []string{"out[0]", "x.y_1"}},
	}
	for _, tt := range parseTests {
		s, err := Parse(tt.expr)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error %v", tt.expr, err)
			continue
		}
		if actual := s.String(); actual != tt.expected {
			t.Errorf("Parse(%q): expected %q, actual %q", tt.expr, tt.expected, actual)
		}
		if diff := cmp.Diff(tt.names, s.Names()); diff != "" {
			t.Errorf("Parse(%q).Names() mismatch (-want +got):\n%s", tt.expr, diff)
		}
	}
}

func TestParsePositions(t *testing.T) {
	g := NewGomegaWithT(t)
	s, err := Parse("g * h'")
	g.Expect(err).NotTo(HaveOccurred())
	want := &Sum{Terms: []Product{{Factors: []Factor{
		{Name: "g", Pos: 0},
		{Name: "h", Neg: true, Pos: 4},
	}}}}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	var errorTests = []struct {
		expr     string
		expected error
	}{
		{"", ErrEmpty},
		{"g+", ErrEmpty},
		{"g*", ErrEmpty},
		{"+g", ErrEmpty},
		{"g**h", ErrEmpty},
		{"g h", ErrSyntax},
		{"g''", ErrSyntax},
		{"'g", ErrSyntax},
		{"g&h", ErrSyntax},
		{"(g)", ErrSyntax},
	}
	for _, tt := range errorTests {
		_, err := Parse(tt.expr)
		if !errors.Is(err, tt.expected) {
			t.Errorf("Parse(%q): expected %q, actual %v", tt.expr, tt.expected, err)
		}
		if !errors.Is(err, robdd.ErrMalformed) {
			t.Errorf("Parse(%q): error %v does not wrap %q", tt.expr, err, robdd.ErrMalformed)
		}
	}
}

func TestTranslate(t *testing.T) {
	for _, sweep := range []bool{false, true} {
		b := robdd.New()
		x, y := b.Ithvar("a"), b.Ithvar("b")
		roots := map[string]robdd.Node{"g": x, "h": y}
		var translateTests = []struct {
			expr     string
			expected robdd.Node
			label    string
		}{
			{"g", x, "a"},
			{"g'", b.Not(x), "ITE[a, 0, 1]"},
			{"g*h", b.And(x, y), "ITE[a, b, 0]"},
			{"g+h", b.Or(x, y), "ITE[a, 1, b]"},
			{"g*h+g'*h'", b.Equiv(x, y), "ITE[a, b, ITE[b, 0, 1]]"},
			{"g*h'+g'*h", b.Xor(x, y), "ITE[a, ITE[b, 0, 1], b]"},
			{"g*g'", robdd.False, "0"},
			{"g+g'", robdd.True, "1"},
		}
		for _, tt := range translateTests {
			n, err := Translate(b, tt.expr, roots, WithSweep(sweep))
			if err != nil {
				t.Errorf("Translate(%q): unexpected error %v", tt.expr, err)
				continue
			}
			if n != tt.expected || b.Label(n) != tt.label {
				t.Errorf("Translate(%q) (sweep=%t): expected %s, actual %s", tt.expr, sweep, tt.label, b.Label(n))
			}
		}
	}
}

func TestTranslateUnknownRoot(t *testing.T) {
	g := NewGomegaWithT(t)
	b := robdd.New()
	roots := map[string]robdd.Node{"g": b.Ithvar("a")}
	_, err := Translate(b, "g*k", roots)
	g.Expect(errors.Is(err, ErrUnknownRoot)).To(BeTrue())
	g.Expect(err).To(MatchError(ContainSubstring(`"k" at offset 2`)))
}

func TestTranslateFile(t *testing.T) {
	g := NewGomegaWithT(t)
	dir := t.TempDir()
	b := robdd.New()
	roots := map[string]robdd.Node{"g": b.Ithvar("a"), "h": b.Ithvar("b")}

	path := filepath.Join(dir, "expr.txt")
	g.Expect(os.WriteFile(path, []byte("\n  g*h+g'*h'\n"), 0o644)).To(Succeed())
	n, err := TranslateFile(b, path, roots)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(b.Format(n)).To(Equal("ITE[a, b, ITE[b, 0, 1]]."))

	empty := filepath.Join(dir, "empty.txt")
	g.Expect(os.WriteFile(empty, []byte("\n \n"), 0o644)).To(Succeed())
	_, err = TranslateFile(b, empty, roots)
	g.Expect(errors.Is(err, ErrEmpty)).To(BeTrue())

	_, err = TranslateFile(b, filepath.Join(dir, "missing.txt"), roots)
	g.Expect(err).To(HaveOccurred())
}
