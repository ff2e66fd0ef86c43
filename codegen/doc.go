// Package codegen translates a resolved register machine program into a
// tape program using only the eight cursor, cell, loop and I/O symbols.
//
// Every logical entity owns a fixed cell chosen by Plan. Instruction
// fragments enter and leave with the cursor on the home cell and every
// scratch cell zero. Control flow is a single outer loop that scans the
// instruction slots for the one whose index equals PC; the same
// scan-and-match builder addresses the indirect memory block.
package codegen
