package codegen

import (
	"fmt"
	"iter"
	"slices"

	"github.com/Hixos/brainfuck-assembly/asm"
	"github.com/Hixos/brainfuck-assembly/internal"
)

const (
	SCRATCH_COUNT = 5 // Largest simultaneous scratch use of any template.
)

// Scratch cell roles. A template only relies on a scratch cell being zero
// at its own entry, and leaves it zero at exit.
const (
	SCRATCH_TMP    = 0 // Carrier for nondestructive copies and zero tests.
	SCRATCH_VALUE  = 1 // Loaded value operand.
	SCRATCH_LEFT   = 2 // Left hand side of a comparison.
	SCRATCH_CURSOR = 3 // Memory scan cursor.
	SCRATCH_MATCH  = 4 // Memory scan match flag, comparison zero flag.
)

// Layout is the static assignment of tape cells to logical entities.
// No two entities share a cell.
type Layout struct {
	Run    int // Outer loop flag, and the home cell of every fragment.
	Cursor int // Dispatch cursor, counts down from PC.
	Found  int // Dispatch match flag for the slot under test.
	Guard  int // Conditional guard flag.
	Else   int // Conditional guard else flag.

	Register [asm.REGISTER_COUNT]int
	Scratch  [SCRATCH_COUNT]int
	Memory   []int // Indirect memory, indexed by address.
}

// Plan builds the tape layout for a configuration.
func Plan(cfg Config) (layout *Layout, err error) {
	err = cfg.Validate()
	if err != nil {
		return
	}

	next := 0
	alloc := func() (offset int) {
		offset = next
		next++
		return
	}

	layout = &Layout{}
	layout.Run = alloc()
	layout.Cursor = alloc()
	layout.Found = alloc()
	layout.Guard = alloc()
	layout.Else = alloc()
	for n := range layout.Register {
		layout.Register[n] = alloc()
	}
	for n := range layout.Scratch {
		layout.Scratch[n] = alloc()
	}
	layout.Memory = make([]int, cfg.MemorySize)
	for n := range layout.Memory {
		layout.Memory[n] = alloc()
	}

	return
}

// Home returns the cell the cursor rests on between fragments.
func (layout *Layout) Home() int {
	return layout.Run
}

// Size returns the number of tape cells used.
func (layout *Layout) Size() int {
	return layout.Memory[len(layout.Memory)-1] + 1
}

// Reg returns the cell of a register.
func (layout *Layout) Reg(reg asm.Register) int {
	return layout.Register[reg]
}

// Cells iterates over every cell offset and its entity name, in tape order.
func (layout *Layout) Cells() iter.Seq2[int, string] {
	regNames := make([]string, 0, asm.REGISTER_COUNT)
	for _, reg := range asm.Registers() {
		regNames = append(regNames, reg.String())
	}
	scratchNames := make([]string, 0, SCRATCH_COUNT)
	for n := range SCRATCH_COUNT {
		scratchNames = append(scratchNames, fmt.Sprintf("S%d", n))
	}
	memNames := make([]string, 0, len(layout.Memory))
	for n := range layout.Memory {
		memNames = append(memNames, fmt.Sprintf("M%d", n))
	}

	return internal.Concat2(
		internal.Zip([]int{layout.Run, layout.Cursor, layout.Found, layout.Guard, layout.Else},
			[]string{"RUN", "CUR", "FND", "GRD", "ELS"}),
		internal.Zip(layout.Register[:], regNames),
		internal.Zip(layout.Scratch[:], scratchNames),
		internal.Zip(layout.Memory, memNames),
	)
}

// Lookup returns the cell of a named entity.
func (layout *Layout) Lookup(name string) (offset int, ok bool) {
	for cell, cellName := range layout.Cells() {
		if cellName == name {
			return cell, true
		}
	}
	return
}

// Name returns the entity name of a cell, or its offset if unassigned.
func (layout *Layout) Name(offset int) string {
	for cell, cellName := range layout.Cells() {
		if cell == offset {
			return cellName
		}
	}
	return fmt.Sprintf("%d", offset)
}

// Scratches returns the scratch cells in tape order.
func (layout *Layout) Scratches() []int {
	return slices.Clone(layout.Scratch[:])
}
