// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package aiger translates combinational And-Inverter Graphs, given in the
// ASCII aiger format, into nodes of a BDD.
//
// Only the first output of a file is translated. Each input must be named in
// the symbol table; the name is the variable used in the BDD, so that two
// circuits sharing input names share variables. Latches are not supported.
// AND gates can be listed in any order: a gate using a literal defined later
// in the file is queued until its operands are known.
package aiger
