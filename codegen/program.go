package codegen

import (
	"github.com/Hixos/brainfuck-assembly/asm"
)

// Generate translates a resolved program into target text.
//
// The output is the prologue, which zeroes the register file, sets PC to 0
// and arms the run flag, followed by the dispatch loop over every
// instruction slot. The text depends only on the program and the layout.
func Generate(prog *asm.Program, layout *Layout) (text string, err error) {
	return NewGenerator(layout).Generate(prog)
}

// Generate translates a resolved program into target text.
func (gen *Generator) Generate(prog *asm.Program) (text string, err error) {
	// PC must be able to hold the end address to halt.
	if prog.Len() > asm.PROGRAM_LIMIT {
		err = ErrCaseOverflow
		return
	}

	for n, inst := range prog.Instructions {
		err = checkOperands(inst)
		if err != nil {
			err = &ErrInstruction{Index: n, LineNo: inst.LineNo, Err: err}
			return
		}
	}

	layout := gen.Layout
	e := &emitter{pos: layout.Home()}

	gen.prologue(e)
	e.newline()

	gen.dispatch(e, prog.Len(), func(index int) {
		gen.fragment(e, prog.Instructions[index], true)
	})

	e.moveTo(layout.Home())
	e.newline()

	text = e.String()
	return
}

// prologue zeroes the registers, which leaves PC at 0, and sets the run flag.
func (gen *Generator) prologue(e *emitter) {
	layout := gen.Layout

	for _, reg := range asm.Registers() {
		e.clear(layout.Reg(reg))
	}
	e.set(layout.Run, 1)
	e.moveTo(layout.Home())
}
