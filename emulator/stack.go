package emulator

const (
	NESTING_LIMIT = 1024 // Maximum loop nesting depth.
)

// loopEntry is a loop opened but not yet closed.
type loopEntry struct {
	Op     int // Index of the opening op.
	Offset int // Offset of the '[' symbol.
}

// Stack tracks the open loops while a program is compiled.
type Stack struct {
	Data []loopEntry
}

// Open pushes a newly opened loop.
func (s *Stack) Open(op int, offset int) (err error) {
	if s.Full() {
		err = ErrLoopNesting
		return
	}
	s.Data = append(s.Data, loopEntry{Op: op, Offset: offset})
	return
}

// Close pops the innermost open loop, returning its opening op index.
func (s *Stack) Close() (op int, ok bool) {
	if s.Empty() {
		return
	}
	op = s.Data[len(s.Data)-1].Op
	s.Data = s.Data[:len(s.Data)-1]
	return op, true
}

// Unclosed returns the symbol offset of the innermost open loop.
func (s *Stack) Unclosed() (offset int, ok bool) {
	if s.Empty() {
		return
	}
	return s.Data[len(s.Data)-1].Offset, true
}

func (s *Stack) Depth() int {
	return len(s.Data)
}

func (s *Stack) Empty() bool {
	return len(s.Data) == 0
}

func (s *Stack) Full() bool {
	return len(s.Data) == NESTING_LIMIT
}
