// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package robdd builds Reduced Ordered Binary Decision Diagrams (ROBDD) using a
single universal operator, If-Then-Else (ITE), and prints each function as a
canonical ITE expression.

Basics

A BDD owns a table of nodes. Every Node is an index in this table, with the
convention that 1 (respectively 0) is the address of the constant function True
(respectively False). Nodes are hash-consed through a unicity table keyed by
the triple (variable, low, high), so that two nodes of the same BDD are equal if
and only if they denote the same Boolean function. Nodes are never reclaimed:
a BDD lives for the duration of one translation.

Variables are named symbols, declared with Ithvar. Their level is given by an
Order: by default variables are ordered by symbol code ("a" < "b" < ...), but
the first variables can be pinned with the Pinned option of New.

Labels

Each node carries its label, computed once at creation from the labels of its
children: "0" and "1" for the constants, the symbol of the variable for a
bare input, and ITE[x, high, low] otherwise. For instance, the conjunction of
a and b is labelled

	ITE[a, b, 0]

Subpackages aiger and sop translate And-Inverter Graphs and sum-of-products
expressions into nodes of a BDD; package check cross-checks the result with a
SAT solver.
*/
package robdd
