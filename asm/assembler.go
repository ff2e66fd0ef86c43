package asm

import (
	"bufio"
	"io"
	"log"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Assembler parses register machine source text.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.

	predefine map[string]int // Constants visible to $(...) expressions.
}

// Predefine defines a new expression constant or redefines an existing one.
func (asm *Assembler) Predefine(name string, value int) {
	if asm.predefine == nil {
		asm.predefine = map[string]int{name: value}
	} else {
		asm.predefine[name] = value
	}
}

var (
	reLabel      = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)\s*:`)
	reStatement  = regexp.MustCompile(`^([A-Za-z]+)(?:\s+(.*))?$`)
	reIdentifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	reDecimal    = regexp.MustCompile(`^-?[0-9]+$`)
	reHex        = regexp.MustCompile(`^-?0x[0-9A-Fa-f]+$`)
)

// Assemble parses and resolves source text into a Program.
func (asm *Assembler) Assemble(input io.Reader) (prog *Program, err error) {
	listing, err := asm.Parse(input)
	if err != nil {
		return
	}

	prog, err = Resolve(listing)
	if err != nil {
		return
	}

	if asm.Verbose {
		log.Printf("resolved %d instructions\n%v", prog.Len(), prog)
	}

	return
}

// Parse parses an input stream into a Listing of unresolved instructions.
// Parsing stops at the first error.
func (asm *Assembler) Parse(input io.Reader) (listing *Listing, err error) {
	scanner := bufio.NewScanner(input)

	var text string
	var lineno int

	defer func() {
		if err != nil {
			listing = nil
			err = &ErrLine{LineNo: lineno, Line: text, Err: err}
		}
	}()

	listing = &Listing{}
	var pending []Label

	for scanner.Scan() {
		text = scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		line, _, _ := strings.Cut(text, ";")
		line = strings.TrimSpace(line)

		for {
			m := reLabel.FindStringSubmatch(line)
			if m == nil {
				break
			}
			name := m[1]
			if _, ok := LookupRegister(name); ok || registerLike.MatchString(name) {
				err = ErrLabelReserved
				return
			}
			pending = append(pending, Label{Name: name, LineNo: lineno})
			line = strings.TrimSpace(line[len(m[0]):])
		}

		if len(line) == 0 {
			continue
		}

		var inst Instruction
		inst, err = asm.parseStatement(line)
		if err != nil {
			return
		}
		inst.LineNo = lineno
		inst.Source = text
		inst.Labels = pending
		pending = nil

		listing.Instructions = append(listing.Instructions, inst)
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	listing.Trailing = pending

	return
}

// parseMnemonic splits a word into its opcode and conditional suffix.
func parseMnemonic(word string) (mn Mnemonic, cond bool, err error) {
	mn, ok := mnemonicMap[word]
	if ok {
		return
	}

	base, found := strings.CutSuffix(word, "C")
	if found {
		mn, ok = mnemonicMap[base]
		if ok {
			cond = true
			return
		}
	}

	err = ErrMnemonicUnknown(word)
	return
}

// parseStatement parses 'MNEMONIC{C} operand1[, operand2]'.
func (asm *Assembler) parseStatement(line string) (inst Instruction, err error) {
	m := reStatement.FindStringSubmatch(line)
	if m == nil {
		err = ErrSyntax(line)
		return
	}

	inst.Mnemonic, inst.Conditional, err = parseMnemonic(m[1])
	if err != nil {
		return
	}

	var operands []Operand
	if rest := strings.TrimSpace(m[2]); len(rest) > 0 {
		for _, word := range splitOperands(rest) {
			var op Operand
			op, err = asm.parseOperand(strings.TrimSpace(word))
			if err != nil {
				return
			}
			operands = append(operands, op)
		}
	}

	err = inst.bind(operands)

	return
}

// splitOperands splits on commas outside of parentheses and brackets.
func splitOperands(text string) (words []string) {
	depth := 0
	start := 0
	for n, c := range text {
		switch c {
		case '(', '[':
			depth++
		case ')', ']':
			depth--
		case ',':
			if depth == 0 {
				words = append(words, text[start:n])
				start = n + 1
			}
		}
	}
	words = append(words, text[start:])
	return
}

// parseOperand parses a single operand word.
func (asm *Assembler) parseOperand(word string) (op Operand, err error) {
	switch {
	case len(word) == 0:
		err = ErrSyntax(",")
	case word[0] == '#':
		var value int
		value, err = asm.valueOf(word[1:])
		if err == nil {
			op = Immediate(uint8(value))
		}
	case word[0] == '[':
		inner, ok := strings.CutSuffix(word[1:], "]")
		inner = strings.TrimSpace(inner)
		if !ok || !reIdentifier.MatchString(inner) {
			err = ErrSyntax(word)
			return
		}
		reg, ok := LookupRegister(inner)
		if !ok {
			err = ErrRegisterUnknown(inner)
			return
		}
		op = RegisterIndirect(reg)
	case reIdentifier.MatchString(word):
		reg, ok := LookupRegister(word)
		switch {
		case ok:
			op = RegisterDirect(reg)
		case registerLike.MatchString(word):
			err = ErrRegisterUnknown(word)
		default:
			op = LabelRef(word)
		}
	default:
		err = ErrSyntax(word)
	}

	return
}

// valueOf returns the value of an immediate, reduced modulo 256 by the caller.
func (asm *Assembler) valueOf(word string) (value int, err error) {
	if expr, ok := strings.CutPrefix(word, "$("); ok {
		expr, ok = strings.CutSuffix(expr, ")")
		if !ok {
			err = ErrSyntax("#" + word)
			return
		}
		return asm.parenEval(expr)
	}

	var v64 int64
	switch {
	case reHex.MatchString(word):
		// Leading zeros are decimal, so only 0x selects another base.
		v64, err = strconv.ParseInt(strings.Replace(word, "0x", "", 1), 16, 64)
	case reDecimal.MatchString(word):
		v64, err = strconv.ParseInt(word, 10, 64)
	default:
		err = ErrSyntax("#" + word)
	}
	if err != nil {
		err = ErrSyntax("#" + word)
		return
	}

	value = int(v64)
	return
}

// parenEval does compile-time $(...) evaluations.
func (asm *Assembler) parenEval(expr string) (value int, err error) {
	thread := starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, val := range asm.predefine {
		pred[key] = starlark.MakeInt(val)
	}

	prog := "rc=" + expr + "\n"
	dict, serr := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if serr != nil {
		err = ErrExpression{Expr: expr, Err: serr}
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrExpression{Expr: expr}
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrExpression{Expr: expr}
		return
	}

	value = int(st_int64)
	return
}

// bind checks operands against the mnemonic signature and stores them.
func (inst *Instruction) bind(operands []Operand) (err error) {
	want := 2
	if inst.Mnemonic == OP_OUT || inst.Mnemonic == OP_B {
		want = 1
	}
	if len(operands) != want {
		err = ErrOperandArity{Mnemonic: inst.Mnemonic, Want: want, Got: len(operands)}
		return
	}

	if inst.Mnemonic == OP_B {
		inst.Dest = RegisterDirect(REG_PC)
		inst.Operand = operands[0]
		return
	}

	dest := operands[0]
	switch dest.Mode {
	case MODE_LABEL:
		// Any other identifier in a destination is a misspelled register.
		err = ErrRegisterUnknown(dest.Label)
		return
	case MODE_REGISTER:
	case MODE_INDIRECT:
		if inst.Mnemonic != OP_MOV && inst.Mnemonic != OP_ADD {
			err = ErrOperandType{Mnemonic: inst.Mnemonic, Index: 1, Operand: dest}
			return
		}
	default:
		err = ErrOperandType{Mnemonic: inst.Mnemonic, Index: 1, Operand: dest}
		return
	}
	inst.Dest = dest

	if want == 2 {
		inst.Operand = operands[1]
	}

	return
}
