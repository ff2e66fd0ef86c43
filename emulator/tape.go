package emulator

import (
	"fmt"
	"io"
	"strings"
)

const (
	DEFAULT_TAPE_SIZE = 2048 // Default number of tape cells.
)

// Tape is the linear array of wrapping byte cells under a cursor. Input
// and Output carry the bytes read by ',' and written by '.'.
type Tape struct {
	Cells  []byte
	Pos    int
	Input  io.Reader
	Output io.Writer
}

// NewTape creates a zeroed tape of size cells.
func NewTape(size int) *Tape {
	return &Tape{
		Cells: make([]byte, size),
	}
}

// Reset zeroes every cell and parks the cursor on cell 0.
func (tape *Tape) Reset() {
	clear(tape.Cells)
	tape.Pos = 0
}

// Move moves the cursor by delta cells.
func (tape *Tape) Move(delta int) (err error) {
	pos := tape.Pos + delta
	switch {
	case pos < 0:
		err = ErrTapeUnderflow
	case pos >= len(tape.Cells):
		err = ErrTapeOverflow
	default:
		tape.Pos = pos
	}
	return
}

// Add adds delta, modulo 256, to the current cell.
func (tape *Tape) Add(delta int) {
	tape.Cells[tape.Pos] += byte(delta)
}

// Get returns the current cell.
func (tape *Tape) Get() byte {
	return tape.Cells[tape.Pos]
}

// Receive reads one input byte into the current cell. At end of input, or
// with no input attached, the cell is set to zero.
func (tape *Tape) Receive() (err error) {
	var one [1]byte
	tape.Cells[tape.Pos] = 0
	if tape.Input == nil {
		return
	}
	_, err = tape.Input.Read(one[:])
	if err == io.EOF {
		err = nil
		return
	}
	if err != nil {
		return
	}
	tape.Cells[tape.Pos] = one[0]
	return
}

// Send writes the current cell to the output.
func (tape *Tape) Send() (err error) {
	if tape.Output == nil {
		return
	}
	_, err = tape.Output.Write(tape.Cells[tape.Pos : tape.Pos+1])
	return
}

// Dump writes the first length cells as a row of names, the cursor cell
// marked with '*', above a row of values. A nil name labels cells by offset.
func (tape *Tape) Dump(w io.Writer, length int, name func(offset int) string) {
	if length <= 0 || length > len(tape.Cells) {
		length = len(tape.Cells)
	}
	if name == nil {
		name = func(offset int) string { return fmt.Sprintf("%d", offset) }
	}

	width := max(len(fmt.Sprintf("%d", len(tape.Cells)-1)), 3) + 1
	labels := make([]string, length)
	for n := range length {
		labels[n] = name(n)
		if n == tape.Pos {
			labels[n] += "*"
		}
		width = max(width, len(labels[n])+1)
	}

	var sb strings.Builder
	for _, label := range labels {
		fmt.Fprintf(&sb, "%-*s", width, label)
	}
	sb.WriteString("\n")
	for n := range length {
		fmt.Fprintf(&sb, "%-*d", width, tape.Cells[n])
	}
	sb.WriteString("\n")

	io.WriteString(w, sb.String())
}
