package emulator

import (
	"errors"

	"github.com/Hixos/brainfuck-assembly/translate"
)

var f = translate.From

var (
	// Compile errors
	ErrLoopUnbalanced = errors.New(f("unbalanced loop"))
	ErrLoopNesting    = errors.New(f("loop nesting exceeds %d", NESTING_LIMIT))

	// Runtime errors
	ErrTapeUnderflow = errors.New(f("cursor moved left of the tape"))
	ErrTapeOverflow  = errors.New(f("cursor moved right of the tape"))
	ErrStepLimit     = errors.New(f("step limit reached"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Offset int // Offset of the symbol in the program text.
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("offset %d %v", err.Offset, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrCompile indicates the location of a malformed program symbol.
type ErrCompile struct {
	Offset int
	Err    error
}

func (err *ErrCompile) Error() string {
	return f("offset %d %v", err.Offset, err.Err)
}

func (err *ErrCompile) Unwrap() error {
	return err.Err
}
