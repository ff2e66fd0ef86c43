package codegen

import (
	"errors"

	"github.com/Hixos/brainfuck-assembly/asm"
	"github.com/Hixos/brainfuck-assembly/translate"
)

var f = translate.From

var (
	ErrMemorySize     = errors.New(f("memory size must be between 1 and %d", MEMORY_LIMIT))
	ErrCaseOverflow   = errors.New(f("more than %d instructions cannot halt with a byte PC", asm.PROGRAM_LIMIT))
	ErrOperandLabel   = errors.New(f("unresolved label operand"))
	ErrOperandInvalid = errors.New(f("operand invalid"))
)

// ErrInstruction locates a code generation error in the program.
type ErrInstruction struct {
	Index  int
	LineNo int
	Err    error
}

func (err *ErrInstruction) Error() string {
	return f("instruction %d (line %d) %v", err.Index, err.LineNo, err.Err)
}

func (err *ErrInstruction) Unwrap() error {
	return err.Err
}
