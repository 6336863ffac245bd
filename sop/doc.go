// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package sop translates sum-of-products expressions over named functions,
// such as
//
//	g*h+g'*h'
//
// into nodes of a BDD. A quote marks a complemented function, '*' is the
// conjunction and '+' the disjunction.
package sop
