package asm

import (
	"errors"

	"github.com/Hixos/brainfuck-assembly/translate"
)

var f = translate.From

var (
	// Label errors
	ErrLabelDuplicate = errors.New(f("label duplicated"))
	ErrLabelReserved  = errors.New(f("label shadows a register"))

	// Program errors
	ErrProgramTooLong = errors.New(f("program exceeds %d instructions", PROGRAM_LIMIT))
)

// ErrSyntax is a line, or part of a line, that has no recognized shape.
type ErrSyntax string

func (err ErrSyntax) Error() string {
	return f("syntax error at '%v'", string(err))
}

// ErrMnemonicUnknown is an instruction word that names no opcode.
type ErrMnemonicUnknown string

func (err ErrMnemonicUnknown) Error() string {
	return f("unknown mnemonic '%v'", string(err))
}

// ErrRegisterUnknown is an operand naming a register outside the register file.
type ErrRegisterUnknown string

func (err ErrRegisterUnknown) Error() string {
	return f("unknown register '%v'", string(err))
}

// ErrLabelUndefined is a label operand with no matching definition.
type ErrLabelUndefined string

func (err ErrLabelUndefined) Error() string {
	return f("label %v undefined", string(err))
}

// ErrOperandArity is a count of operands that does not fit the mnemonic.
type ErrOperandArity struct {
	Mnemonic Mnemonic
	Want     int
	Got      int
}

func (err ErrOperandArity) Error() string {
	return f("%v takes %d operand(s), got %d", err.Mnemonic, err.Want, err.Got)
}

// ErrOperandType is an operand whose addressing mode the mnemonic rejects.
type ErrOperandType struct {
	Mnemonic Mnemonic
	Index    int // 1-based operand position.
	Operand  Operand
}

func (err ErrOperandType) Error() string {
	return f("%v operand %d: %v not allowed", err.Mnemonic, err.Index, err.Operand.Mode)
}

// ErrExpression is an immediate $(...) expression that did not evaluate
// to an integer.
type ErrExpression struct {
	Expr string
	Err  error
}

func (err ErrExpression) Error() string {
	if err.Err == nil {
		return f("$(%v) is not a valid expression", err.Expr)
	}
	return f("$(%v) is not a valid expression: %v", err.Expr, err.Err)
}

func (err ErrExpression) Unwrap() error {
	return err.Err
}

// ErrLine locates an assembly error in the source text.
type ErrLine struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrLine) Error() string {
	if len(err.Line) == 0 {
		return f("line %d %v", err.LineNo, err.Err)
	}
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrLine) Unwrap() error {
	return err.Err
}
