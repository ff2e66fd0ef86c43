package asm

import (
	"fmt"
	"strings"
)

// Mnemonic is an opcode of the register machine.
type Mnemonic int

const (
	OP_MOV = Mnemonic(0) // MOV
	OP_ADD = Mnemonic(1) // ADD
	OP_OUT = Mnemonic(2) // OUT
	OP_GT  = Mnemonic(3) // GT
	OP_B   = Mnemonic(4) // B
)

var mnemonicName = []string{"MOV", "ADD", "OUT", "GT", "B"}

// mnemonicMap maps source words to opcodes.
var mnemonicMap = map[string]Mnemonic{
	"MOV": OP_MOV,
	"ADD": OP_ADD,
	"OUT": OP_OUT,
	"GT":  OP_GT,
	"B":   OP_B,
}

func (mn Mnemonic) String() string {
	if mn < 0 || int(mn) >= len(mnemonicName) {
		return "???"
	}
	return mnemonicName[mn]
}

// OperandMode is the addressing mode of an operand.
type OperandMode int

const (
	MODE_NONE      = OperandMode(0) // none
	MODE_IMMEDIATE = OperandMode(1) // immediate
	MODE_REGISTER  = OperandMode(2) // register
	MODE_INDIRECT  = OperandMode(3) // indirect
	MODE_LABEL     = OperandMode(4) // label
)

var modeName = []string{"none", "immediate", "register", "indirect", "label"}

func (mode OperandMode) String() string {
	if mode < 0 || int(mode) >= len(modeName) {
		return "?"
	}
	return modeName[mode]
}

// Operand is a tagged operand value. Only the field selected by Mode is
// meaningful.
type Operand struct {
	Mode     OperandMode
	Value    uint8    // MODE_IMMEDIATE
	Register Register // MODE_REGISTER, MODE_INDIRECT
	Label    string   // MODE_LABEL
}

// Immediate returns an immediate operand.
func Immediate(value uint8) Operand {
	return Operand{Mode: MODE_IMMEDIATE, Value: value}
}

// RegisterDirect returns an operand reading reg.
func RegisterDirect(reg Register) Operand {
	return Operand{Mode: MODE_REGISTER, Register: reg}
}

// RegisterIndirect returns an operand addressing memory at the value of reg.
func RegisterIndirect(reg Register) Operand {
	return Operand{Mode: MODE_INDIRECT, Register: reg}
}

// LabelRef returns an unresolved label operand.
func LabelRef(name string) Operand {
	return Operand{Mode: MODE_LABEL, Label: name}
}

func (op Operand) String() string {
	switch op.Mode {
	case MODE_IMMEDIATE:
		return fmt.Sprintf("#%d", op.Value)
	case MODE_REGISTER:
		return op.Register.String()
	case MODE_INDIRECT:
		return fmt.Sprintf("[%v]", op.Register)
	case MODE_LABEL:
		return op.Label
	default:
		return ""
	}
}

// Label is a label definition in the source.
type Label struct {
	Name   string
	LineNo int
}

// Instruction is a single machine instruction.
//
// Dest is the written location: a register, or memory for MOV/ADD with an
// indirect destination. For OUT it is the register that is printed, for GT
// the left hand side of the comparison, and for B it is always PC.
type Instruction struct {
	LineNo      int      // Source line number.
	Source      string   // Source line text.
	Labels      []Label  // Labels naming this instruction.
	Mnemonic    Mnemonic // Opcode.
	Conditional bool     // Executes only when CRR is 1.
	Dest        Operand  // Destination operand.
	Operand     Operand  // Value operand, MODE_NONE for OUT.
}

// WritesPC is true if the instruction stores to PC, replacing the default
// advance to the next instruction.
func (inst *Instruction) WritesPC() bool {
	switch inst.Mnemonic {
	case OP_MOV, OP_ADD, OP_B:
		return inst.Dest.Mode == MODE_REGISTER && inst.Dest.Register == REG_PC
	}
	return false
}

func (inst Instruction) String() string {
	name := inst.Mnemonic.String()
	if inst.Conditional {
		name += "C"
	}

	switch inst.Mnemonic {
	case OP_B:
		return fmt.Sprintf("%v %v", name, inst.Operand)
	case OP_OUT:
		return fmt.Sprintf("%v %v", name, inst.Dest)
	default:
		return fmt.Sprintf("%v %v, %v", name, inst.Dest, inst.Operand)
	}
}

// Listing is the parsed, unresolved source.
type Listing struct {
	Instructions []Instruction
	Trailing     []Label // Labels after the last instruction.
}

// Program is a fully resolved instruction list.
type Program struct {
	Instructions []Instruction
	Labels       map[string]int // Label name to instruction index.
}

// Len returns the number of instructions.
func (prog *Program) Len() int {
	return len(prog.Instructions)
}

// String renders the resolved program as an assembly listing.
func (prog *Program) String() string {
	var sb strings.Builder
	for n, inst := range prog.Instructions {
		for _, label := range inst.Labels {
			fmt.Fprintf(&sb, "%v:\n", label.Name)
		}
		fmt.Fprintf(&sb, "%3d: %v\n", n, inst)
	}
	return sb.String()
}
