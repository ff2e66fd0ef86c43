package codegen

import (
	"strings"
)

// Target program symbols.
const (
	SYM_RIGHT = '>'
	SYM_LEFT  = '<'
	SYM_INC   = '+'
	SYM_DEC   = '-'
	SYM_OPEN  = '['
	SYM_CLOSE = ']'
	SYM_OUT   = '.'
	SYM_IN    = ','
)

// emitter writes target text while tracking the cursor position. Every
// loop is closed on the cell it was opened on, so the tracked position is
// exact at each symbol regardless of how often a loop runs.
type emitter struct {
	sb  strings.Builder
	pos int
}

// String returns the text emitted so far.
func (e *emitter) String() string {
	return e.sb.String()
}

// newline separates blocks to keep the text readable. It is ignored by
// the target.
func (e *emitter) newline() {
	e.sb.WriteByte('\n')
}

// moveTo moves the cursor to a cell.
func (e *emitter) moveTo(cell int) {
	switch {
	case cell > e.pos:
		e.sb.WriteString(strings.Repeat(string(SYM_RIGHT), cell-e.pos))
	case cell < e.pos:
		e.sb.WriteString(strings.Repeat(string(SYM_LEFT), e.pos-cell))
	}
	e.pos = cell
}

// add adds delta, modulo 256, to a cell using the shorter direction.
func (e *emitter) add(cell int, delta int) {
	delta &= 0xff
	if delta == 0 {
		return
	}
	e.moveTo(cell)
	if delta <= 128 {
		e.sb.WriteString(strings.Repeat(string(SYM_INC), delta))
	} else {
		e.sb.WriteString(strings.Repeat(string(SYM_DEC), 256-delta))
	}
}

// clear zeroes a cell.
func (e *emitter) clear(cell int) {
	e.moveTo(cell)
	e.sb.WriteString("[-]")
}

// set stores a constant in a cell.
func (e *emitter) set(cell int, value int) {
	e.clear(cell)
	e.add(cell, value)
}

// out emits a cell as output.
func (e *emitter) out(cell int) {
	e.moveTo(cell)
	e.sb.WriteByte(SYM_OUT)
}

// loop repeats body while cell is nonzero.
func (e *emitter) loop(cell int, body func()) {
	e.moveTo(cell)
	e.sb.WriteByte(SYM_OPEN)
	body()
	e.moveTo(cell)
	e.sb.WriteByte(SYM_CLOSE)
}

// moveInto empties src, adding its value to every dst.
func (e *emitter) moveInto(src int, dsts ...int) {
	e.loop(src, func() {
		e.add(src, -1)
		for _, dst := range dsts {
			e.add(dst, 1)
		}
	})
}

// copyInto adds src to dst, restoring src through tmp. tmp must be zero.
func (e *emitter) copyInto(src, dst, tmp int) {
	e.moveInto(src, dst, tmp)
	e.moveInto(tmp, src)
}

// isZero sets flag to 1 if cell is zero, else leaves it 0. flag and tmp
// must be zero; cell is preserved.
func (e *emitter) isZero(cell, flag, tmp int) {
	e.add(flag, 1)
	e.loop(cell, func() {
		e.add(flag, -1)
		e.moveInto(cell, tmp)
	})
	e.moveInto(tmp, cell)
}
