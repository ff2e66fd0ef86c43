package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Hixos/brainfuck-assembly/asm"
)

func TestConfigValidate(t *testing.T) {
	assert := assert.New(t)

	assert.NoError(DefaultConfig().Validate())
	assert.Equal(DEFAULT_MEMORY_SIZE, DefaultConfig().MemorySize)
	assert.NoError(Config{MemorySize: 1}.Validate())
	assert.NoError(Config{MemorySize: MEMORY_LIMIT}.Validate())
	assert.ErrorIs(Config{MemorySize: 0}.Validate(), ErrMemorySize)
	assert.ErrorIs(Config{MemorySize: MEMORY_LIMIT + 1}.Validate(), ErrMemorySize)

	layout, err := Plan(Config{})
	assert.Nil(layout)
	assert.ErrorIs(err, ErrMemorySize)
}

func TestPlan(t *testing.T) {
	assert := assert.New(t)

	layout := newLayout(t)

	// Every entity has its own cell, and the cells are contiguous from 0.
	seen := map[int]string{}
	for cell, name := range layout.Cells() {
		other, dup := seen[cell]
		assert.False(dup, "%s shares cell %d with %s", name, cell, other)
		seen[cell] = name
	}
	assert.Equal(layout.Size(), len(seen))
	for cell := range layout.Size() {
		assert.Contains(seen, cell)
	}

	assert.Equal(5+asm.REGISTER_COUNT+SCRATCH_COUNT+DEFAULT_MEMORY_SIZE, layout.Size())
	assert.Equal(layout.Run, layout.Home())
	assert.Equal(layout.Register[asm.REG_PC], layout.Reg(asm.REG_PC))
	assert.Equal(DEFAULT_MEMORY_SIZE, len(layout.Memory))
}

func TestLayoutNames(t *testing.T) {
	assert := assert.New(t)

	layout, err := Plan(Config{MemorySize: 4})
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	cell, ok := layout.Lookup("R3")
	assert.True(ok)
	assert.Equal(layout.Reg(asm.REG_R3), cell)
	assert.Equal("R3", layout.Name(cell))

	cell, ok = layout.Lookup("M3")
	assert.True(ok)
	assert.Equal(layout.Memory[3], cell)

	_, ok = layout.Lookup("M4")
	assert.False(ok)

	assert.Equal("RUN", layout.Name(layout.Run))
	assert.Equal("S1", layout.Name(layout.Scratch[SCRATCH_VALUE]))
	assert.Equal("99", layout.Name(99))

	scratches := layout.Scratches()
	assert.Equal(layout.Scratch[:], scratches)
	scratches[0] = -1
	assert.NotEqual(-1, layout.Scratch[0])
}
