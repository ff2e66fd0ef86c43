package emulator

import (
	"log"
)

// Emulator state. Compiled program + tape.
type Emulator struct {
	Verbose   bool             // If set, enables verbose logging.
	Program   *Program         // Currently loaded program.
	Tape      *Tape            // Cell tape and I/O streams.
	StepLimit int              // If nonzero, Tick fails after this many ops.
	Names     func(int) string // Cell names for debug dumps, may be nil.
	DumpCells int              // Number of cells in a debug dump.

	Ip    int // Index of the next op.
	Steps int // Ops executed since the last reset.
}

// NewEmulator creates a new emulator with a tape of size cells.
func NewEmulator(size int) (emu *Emulator) {
	if size <= 0 {
		size = DEFAULT_TAPE_SIZE
	}

	emu = &Emulator{
		Program:   &Program{},
		Tape:      NewTape(size),
		DumpCells: 15,
	}

	return
}

// Load compiles text and makes it the current program.
func (emu *Emulator) Load(text string) (err error) {
	prog, err := Compile(text)
	if err != nil {
		return
	}

	emu.Program = prog
	emu.Reset()

	return
}

// Reset rewinds the program and zeroes the tape. The I/O streams are kept.
func (emu *Emulator) Reset() {
	emu.Ip = 0
	emu.Steps = 0
	emu.Tape.Reset()
}

// Offset returns the text offset of the next op.
func (emu *Emulator) Offset() int {
	if emu.Ip < len(emu.Program.Ops) {
		return emu.Program.Ops[emu.Ip].Offset
	}

	return -1
}

// Tick executes a single op. done is set once the program has ended.
func (emu *Emulator) Tick() (done bool, err error) {
	if emu.Ip >= len(emu.Program.Ops) {
		done = true
		return
	}

	op := emu.Program.Ops[emu.Ip]
	defer func() {
		if err != nil {
			err = &ErrRuntime{Offset: op.Offset, Err: err}
		}
	}()

	if emu.StepLimit > 0 && emu.Steps >= emu.StepLimit {
		err = ErrStepLimit
		return
	}
	emu.Steps++

	if emu.Verbose {
		log.Printf("%05d: %v @%d=%d", emu.Ip, op, emu.Tape.Pos, emu.Tape.Get())
	}

	tape := emu.Tape
	next := emu.Ip + 1

	switch op.Kind {
	case OP_NOP:
	case OP_ADD:
		tape.Add(op.Data)
	case OP_MOVE:
		err = tape.Move(op.Data)
	case OP_JZ:
		if tape.Get() == 0 {
			next = op.Data
		}
	case OP_JMP:
		next = op.Data
	case OP_OUT:
		err = tape.Send()
	case OP_IN:
		err = tape.Receive()
	case OP_DEBUG:
		tape.Dump(log.Writer(), emu.DumpCells, emu.Names)
	}
	if err != nil {
		return
	}

	emu.Ip = next
	done = emu.Ip >= len(emu.Program.Ops)

	return
}

// Run ticks until the program ends or fails.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
