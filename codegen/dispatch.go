package codegen

import (
	"github.com/Hixos/brainfuck-assembly/asm"
)

const (
	CASE_LIMIT = 256 // Keys are compared modulo 256.
)

// caseSelect describes the cells of one scan-and-match dispatch.
type caseSelect struct {
	Selector int // Cell holding the key to select. Preserved.
	Cursor   int // Zero on entry and exit.
	Match    int // Zero on entry and exit.
	Tmp      int // Zero on entry and exit.
}

// caseOf runs block(key) for the single key in [0, count) equal to the
// selector value, and nothing if no key matches.
//
// The selector is copied into the cursor, which is decremented once per
// key; the block whose key brings the cursor to zero runs. With at most
// CASE_LIMIT keys only one key can match. A block may read or write the
// selector and use Tmp, but must leave Cursor and Match alone.
func (e *emitter) caseOf(sel caseSelect, count int, separate bool, block func(key int)) {
	e.copyInto(sel.Selector, sel.Cursor, sel.Tmp)

	for key := range count {
		if separate {
			e.newline()
		}
		e.isZero(sel.Cursor, sel.Match, sel.Tmp)
		e.loop(sel.Match, func() {
			e.add(sel.Match, -1)
			block(key)
		})
		if key < count-1 {
			e.add(sel.Cursor, -1)
		}
	}

	e.clear(sel.Cursor)
}

// dispatch emits the outer control loop around count instruction slots.
//
// The run flag is cleared on every pass and set again by the slot that
// matches PC; when no slot matches, the loop ends.
func (gen *Generator) dispatch(e *emitter, count int, slot func(index int)) {
	layout := gen.Layout
	sel := caseSelect{
		Selector: layout.Reg(asm.REG_PC),
		Cursor:   layout.Cursor,
		Match:    layout.Found,
		Tmp:      layout.Scratch[SCRATCH_TMP],
	}

	e.loop(layout.Run, func() {
		e.add(layout.Run, -1)
		e.caseOf(sel, count, true, func(index int) {
			e.add(layout.Run, 1)
			slot(index)
		})
		e.newline()
	})
}
