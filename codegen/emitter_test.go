package codegen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmitterSymbols(t *testing.T) {
	assert := assert.New(t)

	e := &emitter{}
	e.add(3, 5)
	assert.Equal(">>>+++++", e.String())
	assert.Equal(3, e.pos)

	e = &emitter{pos: 3}
	e.add(1, -1)
	e.add(2, 200)
	e.add(2, 256)
	e.clear(2)
	assert.Equal("<<->"+strings.Repeat("-", 56)+"[-]", e.String())

	e = &emitter{pos: 2}
	e.loop(0, func() { e.add(1, 1) })
	e.out(4)
	assert.Equal("<<[>+<]>>>>.", e.String())
	assert.Equal(4, e.pos)
}

func TestEmitterCopyInto(t *testing.T) {
	assert := assert.New(t)

	for _, value := range []byte{0, 1, 77, 255} {
		e := &emitter{}
		e.copyInto(2, 4, 3)
		e.moveTo(0)

		emu, _ := runText(t, e.String(), map[int]byte{2: value, 4: 10})
		assert.Equal(value, emu.Tape.Cells[2])
		assert.Equal(value+10, emu.Tape.Cells[4])
		assert.Equal(byte(0), emu.Tape.Cells[3])
		assert.Equal(0, emu.Tape.Pos)
	}
}

func TestEmitterIsZero(t *testing.T) {
	assert := assert.New(t)

	for _, value := range []byte{0, 1, 2, 128, 255} {
		e := &emitter{}
		e.isZero(1, 2, 3)
		e.moveTo(0)

		emu, _ := runText(t, e.String(), map[int]byte{1: value})
		assert.Equal(value, emu.Tape.Cells[1])
		if value == 0 {
			assert.Equal(byte(1), emu.Tape.Cells[2])
		} else {
			assert.Equal(byte(0), emu.Tape.Cells[2])
		}
		assert.Equal(byte(0), emu.Tape.Cells[3])
	}
}

func TestEmitterCaseOf(t *testing.T) {
	assert := assert.New(t)

	const count = 6
	sel := caseSelect{Selector: 1, Cursor: 2, Match: 3, Tmp: 4}

	e := &emitter{}
	e.caseOf(sel, count, false, func(key int) {
		e.add(5, key+1)
		e.add(6, 1)
	})
	e.moveTo(0)
	text := e.String()

	for _, value := range []byte{0, 1, 3, 5, 6, 7, 200, 255} {
		emu, _ := runText(t, text, map[int]byte{1: value})
		cells := emu.Tape.Cells

		assert.Equal(value, cells[1], "selector")
		if value < count {
			assert.Equal(value+1, cells[5], "key")
			assert.Equal(byte(1), cells[6], "blocks run")
		} else {
			assert.Equal(byte(0), cells[5], "key")
			assert.Equal(byte(0), cells[6], "blocks run")
		}
		assert.Equal(byte(0), cells[2])
		assert.Equal(byte(0), cells[3])
		assert.Equal(byte(0), cells[4])
	}
}

func TestEmitterCaseOfFullRange(t *testing.T) {
	assert := assert.New(t)

	sel := caseSelect{Selector: 1, Cursor: 2, Match: 3, Tmp: 4}

	e := &emitter{}
	e.caseOf(sel, CASE_LIMIT, false, func(key int) {
		e.add(6, 1)
	})
	e.moveTo(0)
	text := e.String()

	for _, value := range []byte{0, 128, 255} {
		emu, _ := runText(t, text, map[int]byte{1: value})
		assert.Equal(byte(1), emu.Tape.Cells[6], "exactly one block for %d", value)
	}
}
