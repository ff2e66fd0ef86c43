package codegen

import (
	"github.com/Hixos/brainfuck-assembly/asm"
)

// Generator emits target code for instructions over a fixed tape layout.
type Generator struct {
	Layout *Layout
}

// NewGenerator creates a generator for a layout.
func NewGenerator(layout *Layout) *Generator {
	return &Generator{Layout: layout}
}

// Fragment returns the code of a single instruction, without the default
// PC advance. The cursor starts and ends on the home cell.
func (gen *Generator) Fragment(inst asm.Instruction) (text string, err error) {
	err = checkOperands(inst)
	if err != nil {
		return
	}

	e := &emitter{pos: gen.Layout.Home()}
	gen.fragment(e, inst, false)
	text = e.String()
	return
}

// checkOperands rejects operands that cannot have come from Resolve.
func checkOperands(inst asm.Instruction) error {
	for _, op := range []asm.Operand{inst.Dest, inst.Operand} {
		switch op.Mode {
		case asm.MODE_LABEL:
			return ErrOperandLabel
		case asm.MODE_REGISTER, asm.MODE_INDIRECT:
			if op.Register < 0 || op.Register >= asm.REGISTER_COUNT {
				return ErrOperandInvalid
			}
		}
	}

	switch inst.Mnemonic {
	case asm.OP_MOV, asm.OP_ADD:
		if inst.Dest.Mode != asm.MODE_REGISTER && inst.Dest.Mode != asm.MODE_INDIRECT {
			return ErrOperandInvalid
		}
	case asm.OP_OUT:
		if inst.Dest.Mode != asm.MODE_REGISTER {
			return ErrOperandInvalid
		}
		return nil
	case asm.OP_GT:
		if inst.Dest.Mode != asm.MODE_REGISTER {
			return ErrOperandInvalid
		}
	case asm.OP_B:
		if inst.Dest != asm.RegisterDirect(asm.REG_PC) {
			return ErrOperandInvalid
		}
	default:
		return ErrOperandInvalid
	}

	if inst.Operand.Mode == asm.MODE_NONE {
		return ErrOperandInvalid
	}

	return nil
}

// fragment emits an instruction. With advance set, PC is incremented
// unless the instruction itself stores to PC.
func (gen *Generator) fragment(e *emitter, inst asm.Instruction, advance bool) {
	layout := gen.Layout
	pc := layout.Reg(asm.REG_PC)

	e.moveTo(layout.Home())

	body := func() {
		gen.body(e, inst)
	}

	switch {
	case !advance:
		if inst.Conditional {
			gen.guard(e, body, nil)
		} else {
			body()
		}
	case inst.WritesPC():
		if inst.Conditional {
			gen.guard(e, body, func() { e.add(pc, 1) })
		} else {
			body()
		}
	default:
		if inst.Conditional {
			gen.guard(e, body, nil)
		} else {
			body()
		}
		e.add(pc, 1)
	}

	e.moveTo(layout.Home())
}

// guard runs then when CRR holds exactly 1, otherwise orElse if not nil.
// CRR is only read.
func (gen *Generator) guard(e *emitter, then func(), orElse func()) {
	layout := gen.Layout
	crr := layout.Reg(asm.REG_CRR)
	value := layout.Scratch[SCRATCH_VALUE]
	tmp := layout.Scratch[SCRATCH_TMP]

	// Guard = (CRR - 1 == 0)
	e.copyInto(crr, value, tmp)
	e.add(value, -1)
	e.isZero(value, layout.Guard, tmp)
	e.clear(value)

	if orElse != nil {
		e.add(layout.Else, 1)
	}

	e.loop(layout.Guard, func() {
		e.add(layout.Guard, -1)
		if orElse != nil {
			e.add(layout.Else, -1)
		}
		then()
	})

	if orElse != nil {
		e.loop(layout.Else, func() {
			e.add(layout.Else, -1)
			orElse()
		})
	}
}

// body emits the unguarded effect of an instruction.
func (gen *Generator) body(e *emitter, inst asm.Instruction) {
	layout := gen.Layout

	switch inst.Mnemonic {
	case asm.OP_MOV, asm.OP_B:
		if inst.Dest.Mode == asm.MODE_INDIRECT {
			gen.store(e, inst.Dest.Register, inst.Operand, true)
		} else {
			gen.assign(e, layout.Reg(inst.Dest.Register), inst.Operand, true)
		}
	case asm.OP_ADD:
		if inst.Dest.Mode == asm.MODE_INDIRECT {
			gen.store(e, inst.Dest.Register, inst.Operand, false)
		} else {
			gen.assign(e, layout.Reg(inst.Dest.Register), inst.Operand, false)
		}
	case asm.OP_OUT:
		e.out(layout.Reg(inst.Dest.Register))
	case asm.OP_GT:
		gen.greater(e, inst.Dest.Register, inst.Operand)
	}
}

// memorySelect returns the scan cells used to address memory through reg.
func (gen *Generator) memorySelect(reg asm.Register) caseSelect {
	layout := gen.Layout
	return caseSelect{
		Selector: layout.Reg(reg),
		Cursor:   layout.Scratch[SCRATCH_CURSOR],
		Match:    layout.Scratch[SCRATCH_MATCH],
		Tmp:      layout.Scratch[SCRATCH_TMP],
	}
}

// load adds the value of op to dst, which must be zero. Registers and
// memory are preserved.
func (gen *Generator) load(e *emitter, dst int, op asm.Operand) {
	layout := gen.Layout
	tmp := layout.Scratch[SCRATCH_TMP]

	switch op.Mode {
	case asm.MODE_IMMEDIATE:
		e.add(dst, int(op.Value))
	case asm.MODE_REGISTER:
		e.copyInto(layout.Reg(op.Register), dst, tmp)
	case asm.MODE_INDIRECT:
		// Addresses outside the memory block read as zero.
		e.caseOf(gen.memorySelect(op.Register), len(layout.Memory), false, func(addr int) {
			e.copyInto(layout.Memory[addr], dst, tmp)
		})
	}
}

// assign stores (replace) or accumulates op into dst.
func (gen *Generator) assign(e *emitter, dst int, op asm.Operand, replace bool) {
	if op.Mode == asm.MODE_IMMEDIATE {
		if replace {
			e.clear(dst)
		}
		e.add(dst, int(op.Value))
		return
	}

	// Load first, so that dst may also be the source.
	value := gen.Layout.Scratch[SCRATCH_VALUE]
	gen.load(e, value, op)
	if replace {
		e.clear(dst)
	}
	e.moveInto(value, dst)
}

// store stores (replace) or accumulates op into memory at the address in
// reg. Addresses outside the memory block are ignored.
func (gen *Generator) store(e *emitter, reg asm.Register, op asm.Operand, replace bool) {
	layout := gen.Layout
	value := layout.Scratch[SCRATCH_VALUE]

	gen.load(e, value, op)
	e.caseOf(gen.memorySelect(reg), len(layout.Memory), false, func(addr int) {
		if replace {
			e.clear(layout.Memory[addr])
		}
		e.moveInto(value, layout.Memory[addr])
	})
	e.clear(value)
}

// greater sets CRR to 1 if reg > op, else 0, by counting both sides down
// together: if the right side reaches zero while the left is still
// nonzero, the left is greater.
func (gen *Generator) greater(e *emitter, reg asm.Register, op asm.Operand) {
	layout := gen.Layout
	crr := layout.Reg(asm.REG_CRR)
	tmp := layout.Scratch[SCRATCH_TMP]
	right := layout.Scratch[SCRATCH_VALUE]
	left := layout.Scratch[SCRATCH_LEFT]
	zero := layout.Scratch[SCRATCH_MATCH]

	// Both sides are copied before CRR is cleared, as either may be CRR.
	gen.load(e, right, op)
	e.copyInto(layout.Reg(reg), left, tmp)
	e.clear(crr)

	e.loop(left, func() {
		e.isZero(right, zero, tmp)
		e.loop(zero, func() {
			e.add(zero, -1)
			e.add(crr, 1)
			e.set(left, 1)
			e.add(right, 1)
		})
		e.add(left, -1)
		e.add(right, -1)
	})
	e.clear(right)
}
