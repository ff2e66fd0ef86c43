package codegen

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Hixos/brainfuck-assembly/asm"
	"github.com/Hixos/brainfuck-assembly/emulator"
)

const testStepLimit = 200_000_000

// newLayout plans the default layout.
func newLayout(t *testing.T) *Layout {
	t.Helper()

	layout, err := Plan(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	return layout
}

// assemble assembles source lines into a program.
func assemble(t *testing.T, program ...string) *asm.Program {
	t.Helper()

	assembler := &asm.Assembler{}
	prog, err := assembler.Assemble(strings.NewReader(strings.Join(program, "\n")))
	if err != nil {
		t.Fatal(err)
	}
	return prog
}

// runText executes target text with the given cells preset, returning the
// finished emulator and its output.
func runText(t *testing.T, text string, preset map[int]byte) (emu *emulator.Emulator, output []byte) {
	t.Helper()

	emu = emulator.NewEmulator(emulator.DEFAULT_TAPE_SIZE)
	emu.StepLimit = testStepLimit
	err := emu.Load(text)
	if err != nil {
		t.Fatal(err)
	}

	for cell, value := range preset {
		emu.Tape.Cells[cell] = value
	}

	out := &bytes.Buffer{}
	emu.Tape.Output = out

	err = emu.Run()
	if err != nil {
		t.Fatal(err)
	}

	output = out.Bytes()
	return
}

// runProgram assembles, generates and executes a program.
func runProgram(t *testing.T, layout *Layout, program ...string) (emu *emulator.Emulator, output []byte) {
	t.Helper()

	text, err := Generate(assemble(t, program...), layout)
	if err != nil {
		t.Fatal(err)
	}

	emu, output = runText(t, text, nil)
	assertClean(t, layout, emu)
	return
}

// assertClean checks that the cursor is home and every working cell is zero.
func assertClean(t *testing.T, layout *Layout, emu *emulator.Emulator) {
	t.Helper()
	assert := assert.New(t)

	cells := emu.Tape.Cells
	assert.Equal(layout.Home(), emu.Tape.Pos, "cursor not home")
	for _, cell := range []int{layout.Run, layout.Cursor, layout.Found, layout.Guard, layout.Else} {
		assert.Equal(byte(0), cells[cell], layout.Name(cell))
	}
	for _, cell := range layout.Scratches() {
		assert.Equal(byte(0), cells[cell], layout.Name(cell))
	}
}

// registers returns the register cells as a map.
func registers(layout *Layout, emu *emulator.Emulator) map[asm.Register]byte {
	regs := map[asm.Register]byte{}
	for _, reg := range asm.Registers() {
		regs[reg] = emu.Tape.Cells[layout.Reg(reg)]
	}
	return regs
}
