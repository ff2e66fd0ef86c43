// Package asm implements the front end of the register machine assembler.
//
// Source text is parsed line by line into a Listing of raw instructions,
// each tagged with the labels that precede it. Resolve then runs the two
// link passes: label positions are collected in program order, and a new,
// fully resolved Program is produced in which every label operand has been
// replaced by the immediate index of the instruction it names.
//
// The machine has seven byte registers (CRR, PC, R1-R5) and a small block
// of byte memory reachable only through register-indirect operands.
package asm
