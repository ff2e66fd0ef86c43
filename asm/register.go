package asm

import (
	"regexp"
)

// Register is one of the fixed machine registers.
type Register int

const (
	REG_CRR = Register(0) // CRR
	REG_PC  = Register(1) // PC
	REG_R1  = Register(2) // R1
	REG_R2  = Register(3) // R2
	REG_R3  = Register(4) // R3
	REG_R4  = Register(5) // R4
	REG_R5  = Register(6) // R5

	REGISTER_COUNT = 7 // Size of the register file.
)

var registerName = [REGISTER_COUNT]string{"CRR", "PC", "R1", "R2", "R3", "R4", "R5"}

// registerMap maps source names to registers.
var registerMap = map[string]Register{
	"CRR": REG_CRR,
	"PC":  REG_PC,
	"R1":  REG_R1,
	"R2":  REG_R2,
	"R3":  REG_R3,
	"R4":  REG_R4,
	"R5":  REG_R5,
}

// registerLike matches words that can only be meant as a register name.
var registerLike = regexp.MustCompile(`^R[0-9]+$`)

func (reg Register) String() string {
	if reg < 0 || int(reg) >= len(registerName) {
		return "R?"
	}
	return registerName[reg]
}

// LookupRegister returns the register named by word.
func LookupRegister(word string) (reg Register, ok bool) {
	reg, ok = registerMap[word]
	return
}

// Registers returns the register file in tape order.
func Registers() (regs []Register) {
	for n := range REGISTER_COUNT {
		regs = append(regs, Register(n))
	}
	return
}
