// Copyright 2021. Silvano DAL ZILIO.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package robdd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
)

// Stats returns information about the BDD
func (b *BDD) Stats() string {
	res := "==============\n"
	res += b.stats() + "\n"
	res += "==============\n"
	res += b.cacheStat.String() + "\n"
	res += "=============="
	return res
}

// Label returns the canonical ITE expression of n. Labels are computed when
// nodes are created, never at print time.
func (b *BDD) Label(n Node) string {
	return b.nodes[b.checkptr(n)].label
}

// Format returns the label of n terminated by a period, as it is written in
// result files.
func (b *BDD) Format(n Node) string {
	return b.Label(n) + "."
}

// WriteLabels writes one line per node in n, with the formatted label of each
// node.
func (b *BDD) WriteLabels(w io.Writer, n ...Node) error {
	bw := bufio.NewWriter(w)
	for _, v := range n {
		if _, err := fmt.Fprintln(bw, b.Format(v)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Print returns a one-line description of node n.
func (b *BDD) Print(n Node) string {
	switch {
	case n == False:
		return "False"
	case n == True:
		return "True"
	case n < 0 || int(n) >= len(b.nodes):
		return fmt.Sprintf("Error (%d not a valid index)", n)
	}
	return fmt.Sprintf("(%d[%s] ? %d : %d)", n, b.Varname(n), b.nodes[n].low, b.nodes[n].high)
}

// PrintTable writes the nodes reachable from n..., or the whole table if n is
// absent, one node per line.
func (b *BDD) PrintTable(w io.Writer, n ...Node) error {
	tw := tabwriter.NewWriter(w, 0, 0, 0, ' ', 0)
	err := b.Allnodes(func(id, level, low, high int) error {
		if id > 1 {
			_, err := fmt.Fprintf(tw, "%d\t[%s\t] ? \t%d\t : %d\n", id, b.Varname(Node(id)), low, high)
			return err
		}
		return nil
	}, n...)
	if err != nil {
		return err
	}
	return tw.Flush()
}

// FPrintDot writes a graph-like description of the BDD with roots n... using
// the DOT format in file filename, or on the standard output if filename is
// "-".
func (b *BDD) FPrintDot(filename string, n ...Node) error {
	if filename == "-" {
		return b.PrintDot(os.Stdout, n...)
	}
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := b.PrintDot(out, n...); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// PrintDot writes a GraphViz DOT description of the nodes reachable from n...
// (or the whole table if n is absent). We do not draw arcs that go to the
// constant false.
func (b *BDD) PrintDot(w io.Writer, n ...Node) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph G {")
	fmt.Fprintln(bw, "1 [shape=box, label=\"1\", style=filled, shape=box, height=0.3, width=0.3];")
	err := b.Allnodes(func(id, level, low, high int) error {
		if id < 2 {
			return nil
		}
		fmt.Fprintf(bw, "%d %s\n", id, dotlabel(id, b.Varname(Node(id))))
		if low != 0 {
			fmt.Fprintf(bw, "%d -> %d [style=dotted];\n", id, low)
		}
		if high != 0 {
			fmt.Fprintf(bw, "%d -> %d [style=filled];\n", id, high)
		}
		return nil
	}, n...)
	if err != nil {
		return err
	}
	for k, r := range n {
		fmt.Fprintf(bw, "r%d [shape=plaintext, label=\"root %d\"];\nr%d -> %d;\n", k, k+1, k, r)
	}
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

func dotlabel(a int, name string) string {
	return fmt.Sprintf(`[label=<
	<FONT POINT-SIZE="20">%s</FONT>
	<FONT POINT-SIZE="10">[%d]</FONT>
>];`, name, a)
}
