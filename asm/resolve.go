package asm

import (
	"slices"
)

const (
	PROGRAM_LIMIT = 255 // Largest program whose end address fits in PC.
)

// Resolve links the labels of a listing, returning a new Program in which
// no label operands remain.
//
// The first pass assigns each instruction its index in program order and
// records the labels naming it; labels after the last instruction name the
// end of the program. The second pass rewrites label operands as immediate
// indexes. The listing itself is not modified.
func Resolve(listing *Listing) (prog *Program, err error) {
	var lineno int
	var line string

	defer func() {
		if err != nil {
			prog = nil
			err = &ErrLine{LineNo: lineno, Line: line, Err: err}
		}
	}()

	if len(listing.Instructions) > PROGRAM_LIMIT {
		lineno = listing.Instructions[PROGRAM_LIMIT].LineNo
		line = listing.Instructions[PROGRAM_LIMIT].Source
		err = ErrProgramTooLong
		return
	}

	labels := make(map[string]int, 16)
	define := func(list []Label, index int) error {
		for _, label := range list {
			lineno = label.LineNo
			_, ok := labels[label.Name]
			if ok {
				return ErrLabelDuplicate
			}
			labels[label.Name] = index
		}
		return nil
	}

	for n, inst := range listing.Instructions {
		err = define(inst.Labels, n)
		if err != nil {
			return
		}
	}
	err = define(listing.Trailing, len(listing.Instructions))
	if err != nil {
		return
	}

	resolved := make([]Instruction, 0, len(listing.Instructions))
	for _, inst := range listing.Instructions {
		lineno, line = inst.LineNo, inst.Source
		inst.Labels = slices.Clone(inst.Labels)

		if inst.Operand.Mode == MODE_LABEL {
			index, ok := labels[inst.Operand.Label]
			if !ok {
				err = ErrLabelUndefined(inst.Operand.Label)
				return
			}
			inst.Operand = Immediate(uint8(index))
		}

		resolved = append(resolved, inst)
	}

	prog = &Program{
		Instructions: resolved,
		Labels:       labels,
	}

	return
}
