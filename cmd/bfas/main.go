package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/Hixos/brainfuck-assembly/asm"
	"github.com/Hixos/brainfuck-assembly/codegen"
	"github.com/Hixos/brainfuck-assembly/emulator"
)

// defines collects repeated -D NAME=VALUE flags.
type defines map[string]int

func (d defines) String() string {
	var parts []string
	for name, value := range d {
		parts = append(parts, fmt.Sprintf("%v=%v", name, value))
	}
	return strings.Join(parts, ",")
}

func (d defines) Set(text string) error {
	name, value, ok := strings.Cut(text, "=")
	if !ok || len(name) == 0 {
		return fmt.Errorf("expected NAME=VALUE, got %q", text)
	}
	v64, err := strconv.ParseInt(value, 0, 64)
	if err != nil {
		return err
	}
	d[name] = int(v64)
	return nil
}

func main() {
	var compile string
	var output string
	var memory int
	var execute bool
	var dump int
	var verbose bool

	predefine := defines{}

	flag.StringVar(&compile, "c", "-", ".bfs file to assemble")
	flag.StringVar(&output, "o", "-", "Output .bf file")
	flag.IntVar(&memory, "m", codegen.DEFAULT_MEMORY_SIZE, "Indirect memory cells")
	flag.BoolVar(&execute, "x", false, "Execute the program after assembly, printing output as numbers")
	flag.IntVar(&dump, "d", 0, "With -x, dump this many tape cells after execution")
	flag.Var(predefine, "D", "Predefine NAME=VALUE for $(...) expressions")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	var inf io.Reader = os.Stdin
	if compile != "-" {
		file, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer file.Close()
		inf = file
	}

	assembler := &asm.Assembler{Verbose: verbose}
	for name, value := range predefine {
		assembler.Predefine(name, value)
	}

	prog, err := assembler.Assemble(inf)
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}

	layout, err := codegen.Plan(codegen.Config{MemorySize: memory})
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}

	text, err := codegen.Generate(prog, layout)
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}

	if output == "-" {
		if !execute {
			os.Stdout.WriteString(text)
		}
	} else {
		err = os.WriteFile(output, []byte(text), 0o644)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
	}

	if execute {
		emu := emulator.NewEmulator(emulator.DEFAULT_TAPE_SIZE)
		emu.Names = layout.Name
		err = emu.Load(text)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		emu.Tape.Input = os.Stdin
		emu.Tape.Output = &emulator.NumberWriter{W: os.Stdout}

		err = emu.Run()
		fmt.Println()
		if err != nil {
			log.Fatal(err)
		}
		if dump > 0 {
			emu.Tape.Dump(os.Stdout, dump, layout.Name)
		}
	}
}
