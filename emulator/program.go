package emulator

import (
	"fmt"
	"strings"
)

// OpKind is the kind of a compiled op.
type OpKind int

const (
	OP_NOP   = OpKind(0) // nop
	OP_ADD   = OpKind(1) // add
	OP_MOVE  = OpKind(2) // move
	OP_JZ    = OpKind(3) // jz
	OP_JMP   = OpKind(4) // jmp
	OP_OUT   = OpKind(5) // out
	OP_IN    = OpKind(6) // in
	OP_DEBUG = OpKind(7) // debug
)

var opKindName = []string{"nop", "add", "move", "jz", "jmp", "out", "in", "debug"}

func (kind OpKind) String() string {
	if kind < 0 || int(kind) >= len(opKindName) {
		return "?"
	}
	return opKindName[kind]
}

// Op is a compiled target instruction.
//
// Runs of '+'/'-' fold into one OP_ADD and runs of '>'/'<' into one
// OP_MOVE. OP_JZ jumps past its loop when the cell is zero; OP_JMP jumps
// back to its OP_JZ, which tests again.
type Op struct {
	Kind   OpKind
	Data   int // Delta for add and move, target op index for jumps.
	Offset int // Offset of the first symbol in the program text.
}

func (op Op) String() string {
	switch op.Kind {
	case OP_ADD, OP_MOVE, OP_JZ, OP_JMP:
		return fmt.Sprintf("%v %d #%d", op.Kind, op.Data, op.Offset)
	default:
		return fmt.Sprintf("%v #%d", op.Kind, op.Offset)
	}
}

// Program is a compiled target program.
type Program struct {
	Ops []Op
}

// fold merges delta into the last op if it has the same kind.
func (prog *Program) fold(kind OpKind, delta int, offset int) {
	last := len(prog.Ops) - 1
	if last >= 0 && prog.Ops[last].Kind == kind {
		prog.Ops[last].Data += delta
		return
	}
	prog.Ops = append(prog.Ops, Op{Kind: kind, Data: delta, Offset: offset})
}

// Compile compiles target text. Symbols other than the eight target
// symbols and the '!' debug dump are ignored.
func Compile(text string) (prog *Program, err error) {
	prog = &Program{
		Ops: []Op{{Kind: OP_NOP}},
	}

	var loops Stack

	for offset, c := range text {
		switch c {
		case '+':
			prog.fold(OP_ADD, 1, offset)
		case '-':
			prog.fold(OP_ADD, -1, offset)
		case '>':
			prog.fold(OP_MOVE, 1, offset)
		case '<':
			prog.fold(OP_MOVE, -1, offset)
		case '.':
			prog.Ops = append(prog.Ops, Op{Kind: OP_OUT, Offset: offset})
		case ',':
			prog.Ops = append(prog.Ops, Op{Kind: OP_IN, Offset: offset})
		case '!':
			prog.Ops = append(prog.Ops, Op{Kind: OP_DEBUG, Offset: offset})
		case '[':
			err = loops.Open(len(prog.Ops), offset)
			if err != nil {
				err = &ErrCompile{Offset: offset, Err: err}
				prog = nil
				return
			}
			prog.Ops = append(prog.Ops, Op{Kind: OP_JZ, Offset: offset})
		case ']':
			open, ok := loops.Close()
			if !ok {
				err = &ErrCompile{Offset: offset, Err: ErrLoopUnbalanced}
				prog = nil
				return
			}
			prog.Ops = append(prog.Ops, Op{Kind: OP_JMP, Data: open, Offset: offset})
			prog.Ops[open].Data = len(prog.Ops)
		}
	}

	if offset, ok := loops.Unclosed(); ok {
		err = &ErrCompile{Offset: offset, Err: ErrLoopUnbalanced}
		prog = nil
		return
	}

	return
}

// String renders the op listing.
func (prog *Program) String() string {
	var sb strings.Builder
	for n, op := range prog.Ops {
		fmt.Fprintf(&sb, "%5d: %v\n", n, op)
	}
	return sb.String()
}
